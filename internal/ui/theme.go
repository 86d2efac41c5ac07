package ui

import (
	"image/color"

	"github.com/ingyamilmolinar/playhead/core/notation"
	"github.com/ingyamilmolinar/playhead/core/overlay"
	"golang.org/x/image/colornames"
)

var (
	colBG       = color.RGBA{20, 20, 30, 255}
	colStaff    = color.RGBA{90, 90, 100, 255}
	colInk      = colornames.White
	colPlayhead = colornames.White
	colDot      = colornames.Deepskyblue
	colWarn     = color.NRGBA{R: 255, A: 77}
)

var windowPalette = notation.Palette{
	Background: colBG,
	Lines:      colStaff,
	Ink:        colInk,
}

var windowStyle = overlay.Style{
	Highlight:     colWarn,
	Playhead:      colPlayhead,
	PlayheadWidth: 1,
	Dot:           colDot,
}
