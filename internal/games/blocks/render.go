package blocks

import (
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/wordblocks/internal/core"
)

const (
	hudHeight  = 1
	panelWidth = 26
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}
	RenderSnapshot(dst, g.session.Snapshot(), g.Title())
}

// RenderSnapshot draws a snapshot: board, ghost and active piece, a side
// panel with the next piece and recent words, and any overlay. It only
// reads snap.
func RenderSnapshot(dst *core.Screen, snap Snapshot, title string) {
	cellW := 2
	if 2*snap.Width+2+panelWidth > dst.Width() {
		cellW = 1
	}
	boardW := cellW*snap.Width + 2
	boardH := snap.Height + 2

	if screen := dst.Bounds(); boardW > screen.W || boardH+hudHeight > screen.H {
		renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", boardW, boardH+hudHeight))
		return
	}

	renderHUD(dst, snap, title)

	frame := core.NewRect(0, hudHeight, boardW, boardH)
	if room := dst.Width() - boardW - panelWidth; room > 0 {
		frame.X = room / 2
	}
	dst.DrawBoxColor(frame, core.ColorGray)

	inner := frame.Inset(1)
	origin := core.Point{X: inner.X, Y: inner.Y}
	renderBoard(dst, snap, origin, cellW)

	if snap.Phase != PhaseEnded && snap.Active != nil {
		if gy, ok := snap.GhostY(); ok && gy != snap.Active.Y {
			ghost := *snap.Active
			ghost.Y = gy
			drawPiece(dst, &ghost, origin, cellW, core.ColorGray, ':')
		}
		drawPiece(dst, snap.Active, origin, cellW, snap.Active.Color, '█')
	}

	panel := core.NewRect(frame.Right()+1, frame.Y, dst.Width()-frame.Right()-1, boardH)
	renderPanel(dst, snap, panel)

	switch snap.Phase {
	case PhaseEnded:
		if snap.TimeLimit > 0 && snap.TimeLeft == 0 {
			renderOverlay(dst, "Time's up!", fmt.Sprintf("Score: %d  Press R", snap.Score))
		} else {
			renderOverlay(dst, "Game Over", "Press R to restart")
		}
	case PhasePaused:
		renderOverlay(dst, "Paused", "Press P to continue")
	}
}

func renderHUD(dst *core.Screen, snap Snapshot, title string) {
	hud := fmt.Sprintf(" %s  Score: %d  Level: %d  Lines: %d", title, snap.Score, snap.Level, snap.Lines)
	if snap.TimeLimit > 0 {
		hud += fmt.Sprintf("  Time: %s", formatClock(snap.TimeLeft))
	}
	dst.DrawTextColor(0, 0, hud, core.ColorBrightWhite)
}

func renderBoard(dst *core.Screen, snap Snapshot, origin core.Point, cellW int) {
	for y, row := range snap.Board {
		for x, c := range row {
			px := origin.X + x*cellW
			py := origin.Y + y
			if !c.Filled {
				dst.SetColor(px+cellW-1, py, '·', core.ColorGray)
				continue
			}
			for i := range cellW {
				dst.SetColor(px+i, py, '█', c.Color)
			}
		}
	}
}

func drawPiece(dst *core.Screen, v *PieceView, origin core.Point, cellW int, color core.Color, r rune) {
	for _, pt := range v.Cells() {
		if pt.Y < 0 {
			continue
		}
		for i := range cellW {
			dst.SetColor(origin.X+pt.X*cellW+i, origin.Y+pt.Y, r, color)
		}
	}
}

func renderPanel(dst *core.Screen, snap Snapshot, r core.Rect) {
	if r.W < 8 {
		return
	}
	y := r.Y
	line := func(text string, c core.Color) {
		if y >= r.Bottom() {
			return
		}
		dst.DrawTextColor(r.X, y, truncate(text, r.W), c)
		y++
	}

	line("Next", core.ColorBrightWhite)
	if snap.Next != nil {
		for _, row := range snap.Next.Shape {
			var sb strings.Builder
			for _, filled := range row {
				if filled {
					sb.WriteString("██")
				} else {
					sb.WriteString("  ")
				}
			}
			line(" "+sb.String(), snap.Next.Color)
		}
		line(" "+snap.Next.Content.Word, core.ColorGray)
	}
	y++

	if snap.Active != nil && snap.Phase != PhaseEnded {
		line("Falling", core.ColorBrightWhite)
		line(" "+snap.Active.Content.Word, snap.Active.Color)
		for _, l := range wrap(snap.Active.Content.Definition, r.W-1) {
			line(" "+l, core.ColorDefault)
		}
		y++
	}

	line(fmt.Sprintf("Speed %dms", snap.DropInterval/time.Millisecond), core.ColorGray)
	y++

	if len(snap.LastCleared) > 0 {
		line("Cleared", core.ColorBrightGreen)
		for _, p := range snap.LastCleared {
			line(" "+p.Word, core.ColorGreen)
			for _, l := range wrap(p.Definition, r.W-2) {
				line("  "+l, core.ColorDefault)
			}
		}
	}
}

// renderOverlay draws a centered overlay message.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	width := max(len([]rune(line1)), len([]rune(line2))) + 4
	box := core.NewRect(
		core.Clamp((dst.Width()-width)/2, 0, dst.Width()),
		core.Clamp((dst.Height()-5)/2, 0, dst.Height()),
		width, 5)
	dst.DrawRect(box, ' ')
	dst.DrawBoxColor(box, core.ColorBrightYellow)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}

func formatClock(d time.Duration) string {
	secs := int((d + time.Second - 1) / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 {
		return ""
	}
	if len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}

// wrap splits s into lines of at most width runes on word boundaries.
func wrap(s string, width int) []string {
	if width <= 0 || s == "" {
		return nil
	}
	var lines []string
	var cur []rune
	for _, word := range strings.Fields(s) {
		w := []rune(word)
		switch {
		case len(cur) == 0:
			cur = w
		case len(cur)+1+len(w) <= width:
			cur = append(append(cur, ' '), w...)
		default:
			lines = append(lines, truncate(string(cur), width))
			cur = w
		}
	}
	if len(cur) > 0 {
		lines = append(lines, truncate(string(cur), width))
	}
	return lines
}
