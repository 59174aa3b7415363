package blocks

import (
	"time"

	"github.com/vovakirdan/wordblocks/internal/content"
	"github.com/vovakirdan/wordblocks/internal/core"
)

// PieceView is a read-only copy of a piece.
type PieceView struct {
	Tag     string
	Shape   Shape
	X, Y    int
	Color   core.Color
	Content content.Pair
}

// Cells returns the board coordinates of every occupied cell.
func (v *PieceView) Cells() []core.Point {
	var pts []core.Point
	for y, row := range v.Shape {
		for x, filled := range row {
			if filled {
				pts = append(pts, core.Point{X: v.X + x, Y: v.Y + y})
			}
		}
	}
	return pts
}

// Snapshot is a deep copy of everything a renderer or test needs. Changing
// it never affects the session.
type Snapshot struct {
	Phase            Phase
	Width, Height    int
	Board            [][]Cell
	Active           *PieceView
	Next             *PieceView
	Score            int
	Level            int
	Lines            int
	DropInterval     time.Duration
	LastClearedWords []string
	LastCleared      []content.Pair
	Elapsed          time.Duration
	TimeLimit        time.Duration
	TimeLeft         time.Duration
	Pieces           int
}

// Snapshot returns the current state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:        s.phase,
		Width:        s.board.Width(),
		Height:       s.board.Height(),
		Board:        s.board.Rows(),
		Active:       viewOf(s.active),
		Next:         viewOf(s.next),
		Score:        s.score,
		Level:        s.level,
		Lines:        s.lines,
		DropInterval: s.interval,
		Elapsed:      s.elapsed,
		TimeLimit:    s.cfg.TimeLimit,
		Pieces:       s.pieces,
	}
	if s.cfg.TimeLimit > 0 {
		snap.TimeLeft = max(s.cfg.TimeLimit-s.elapsed, 0)
	}
	if len(s.lastCleared) > 0 {
		snap.LastCleared = append([]content.Pair(nil), s.lastCleared...)
		snap.LastClearedWords = make([]string, len(s.lastCleared))
		for i, p := range s.lastCleared {
			snap.LastClearedWords[i] = p.Word
		}
	}
	return snap
}

func viewOf(p *Piece) *PieceView {
	if p == nil {
		return nil
	}
	return &PieceView{
		Tag:     p.Archetype.Tag,
		Shape:   p.Shape.Clone(),
		X:       p.X,
		Y:       p.Y,
		Color:   p.Archetype.Color,
		Content: p.Content,
	}
}

// GhostY returns the row the active piece would land on if hard dropped.
// It works on the snapshot alone. ok is false when there is no active piece.
func (snap Snapshot) GhostY() (y int, ok bool) {
	if snap.Active == nil {
		return 0, false
	}
	fits := func(dy int) bool {
		for _, pt := range snap.Active.Cells() {
			py := pt.Y + dy
			if pt.X < 0 || pt.X >= snap.Width || py >= snap.Height {
				return false
			}
			if py >= 0 && snap.Board[py][pt.X].Filled {
				return false
			}
		}
		return true
	}
	if !fits(0) {
		return snap.Active.Y, true
	}
	dy := 0
	for fits(dy + 1) {
		dy++
	}
	return snap.Active.Y + dy, true
}
