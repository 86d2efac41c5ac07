package main

import (
	"fmt"
	"io"

	"github.com/ingyamilmolinar/playhead/core/beat"
	"github.com/ingyamilmolinar/playhead/core/engine"
	"github.com/ingyamilmolinar/playhead/core/surface"
	"github.com/ingyamilmolinar/playhead/internal/config"
	game_log "github.com/ingyamilmolinar/playhead/internal/log"
	"github.com/spf13/cobra"
)

var inspectAt = []int{0, 500, 800, 1100}

func init() {
	inspectCmd.Flags().IntSliceVar(&inspectAt, "at", inspectAt, "elapsed milliseconds to compute plans for")
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Prints layout geometry and overlay plans without opening a window",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()
		defer logger.Sync()
		return inspect(cmd.OutOrStdout(), logger, cfg, inspectAt)
	},
}

func inspect(w io.Writer, logger *game_log.Logger, cfg config.Config, at []int) error {
	e, err := engine.New(logger, engine.Options{
		Config:    cfg,
		Static:    surface.NewRecorder(cfg.Surface.Width, cfg.Surface.Height),
		Overlay:   surface.NewRecorder(cfg.Surface.Width, cfg.Surface.Height),
		Scheduler: beat.NewFrameQueue(),
	})
	if err != nil {
		return err
	}
	snap := e.Snapshot()
	st := snap.Staff()
	fmt.Fprintf(w, "staff x=%.1f y=%.1f w=%.1f h=%.1f\n", st.OriginX, st.OriginY, st.Width, st.Height)
	for _, n := range snap.Notes() {
		b := n.BoundingBox
		fmt.Fprintf(w, "note %d %s:%s box=(%.1f,%.1f %.1fx%.1f) anchor=%.1f\n",
			n.Index, n.Pitch, n.Duration, b.X, b.Y, b.W, b.H, n.AnchorY)
	}
	comp := e.Computer()
	fmt.Fprintf(w, "target=%d beat=%.1fms onset=%.1fms\n", comp.Config().DesignatedNote, comp.BeatMs(), comp.OnsetMs())
	for _, ms := range at {
		p := comp.Compute(float64(ms))
		hl := "none"
		if r := p.Highlight; r != nil {
			hl = fmt.Sprintf("(%.1f,%.1f %.1fx%.1f)", r.X, r.Y, r.W, r.H)
		}
		fmt.Fprintf(w, "t=%dms x=%.1f note=%d dot=(%.1f,%.1f) highlight=%s\n",
			ms, p.PlayheadX, p.Current, p.Dot.X, p.Dot.Y, hl)
	}
	return nil
}
