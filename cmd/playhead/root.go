package main

import (
	"os"

	"github.com/google/uuid"
	"github.com/ingyamilmolinar/playhead/internal/config"
	game_log "github.com/ingyamilmolinar/playhead/internal/log"
	"github.com/ingyamilmolinar/playhead/internal/term"
	"github.com/ingyamilmolinar/playhead/internal/ui"
	"github.com/spf13/cobra"
)

var (
	cfg   = config.Default()
	notes = config.DefaultNotes
)

var rootCmd = &cobra.Command{
	Use:   "playhead",
	Short: "Loops a playhead over a staff and highlights the target note",
	Long: `Engraves a short passage once, then sweeps a playhead across it in a
fixed loop, marking the designated note as the playhead approaches it.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		parsed, err := config.ParseNotes(notes)
		if err != nil {
			return err
		}
		cfg.Staff.Notes = parsed
		return cfg.Validate()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()
		defer logger.Sync()
		switch cfg.Backend {
		case config.BackendTerminal:
			return term.Run(logger, cfg)
		default:
			return ui.Run(logger, cfg)
		}
	},
}

func init() {
	f := rootCmd.PersistentFlags()
	f.StringVar(&cfg.Backend, "backend", cfg.Backend, "host: window or terminal")
	f.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, error or none")
	f.StringVar(&cfg.Title, "title", cfg.Title, "caption drawn above the staff")
	f.StringVar(&notes, "notes", notes, "comma separated pitch:duration tokens")
	f.StringVar(&cfg.Staff.Clef, "clef", cfg.Staff.Clef, "treble or bass")
	f.StringVar(&cfg.Staff.TimeSignature, "time", cfg.Staff.TimeSignature, "time signature")
	f.DurationVar(&cfg.Loop.Duration, "loop", cfg.Loop.Duration, "loop length")
	f.DurationVar(&cfg.Loop.TickInterval, "tick", cfg.Loop.TickInterval, "frame interval for the terminal host")
	f.IntVar(&cfg.Overlay.DesignatedNote, "target", cfg.Overlay.DesignatedNote, "index of the highlighted note")
	f.IntVar(&cfg.Overlay.NoteCount, "note-count", cfg.Overlay.NoteCount, "expected number of notes (0 = from layout)")
	f.DurationVar(&cfg.Overlay.EarlyLead, "lead", cfg.Overlay.EarlyLead, "how early the highlight starts")
	f.Float64Var(&cfg.Overlay.BandThickness, "band", cfg.Overlay.BandThickness, "highlight band thickness in px")
	f.Float64Var(&cfg.Overlay.DotRadius, "dot-radius", cfg.Overlay.DotRadius, "playhead dot radius in px")
}

// newLogger tags every line with a fresh session id.
func newLogger() *game_log.Logger {
	return game_log.New(os.Stderr, game_log.LevelFromString(cfg.LogLevel)).
		With("session", uuid.NewString())
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
