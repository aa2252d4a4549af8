package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Status is the information shown on the line below the viewport.
type Status struct {
	Phase       float64 // fraction of the day elapsed since midnight
	X, Y        int
	Facing      string
	FogOfWar    bool
	Directional bool
	Message     string
}

// Clock formats a fraction of a day as a 24-hour clock. Whole days wrap.
func Clock(phase float64) string {
	const day = 24 * 60
	minutes := int(math.Round(phase*day)) % day
	if minutes < 0 {
		minutes += day
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// DrawStatus draws a separator rule below the viewport and the status line
// under it.
func (r *Renderer) DrawStatus(st Status) {
	y := r.cfg.ScreenHeight
	r.drawHLine(y, tcell.ColorGray)

	line := fmt.Sprintf("%s  (%d,%d) %s  fog:%s  cone:%s",
		Clock(st.Phase), st.X, st.Y, st.Facing, onOff(st.FogOfWar), onOff(st.Directional))
	r.drawText(0, y+1, line, tcell.StyleDefault.Foreground(tcell.ColorWhite))
	if st.Message != "" {
		r.drawText(0, y+2, st.Message, tcell.StyleDefault.Foreground(tcell.ColorLightYellow))
	}
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < r.cfg.ScreenWidth*r.cfg.cellWidth(); x++ {
		r.surface.SetContent(x, y, '─', nil, style)
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.surface.SetContent(col, y, ch, nil, style)
		col += runewidth.RuneWidth(ch)
	}
}
