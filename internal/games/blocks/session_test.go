package blocks

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vovakirdan/wordblocks/internal/content"
)

func newTestSession(t *testing.T, mutate func(*Config)) *Session {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Width = 10
	cfg.Height = 20
	if mutate != nil {
		mutate(&cfg)
	}
	deck := content.NewDeck([]content.Pair{
		{Word: "atom", Definition: "smallest unit of an element"},
		{Word: "ion", Definition: "charged atom"},
	})
	return NewSession(cfg, rand.New(rand.NewSource(5)), deck)
}

func TestSessionLifecycle(t *testing.T) {
	s := newTestSession(t, nil)
	assert.Equal(t, PhaseNotStarted, s.Phase())

	// Control calls before start do nothing
	assert.False(t, s.MoveHorizontal(1))
	assert.Equal(t, 0, s.HardDrop())

	s.Start()
	assert.Equal(t, PhaseRunning, s.Phase())
	snap := s.Snapshot()
	require.NotNil(t, snap.Active)
	require.NotNil(t, snap.Next)
	assert.Equal(t, 1, snap.Pieces)
	assert.Equal(t, 0, snap.Active.Y)
	assert.Equal(t, 1, snap.Level)

	s.Pause()
	assert.Equal(t, PhasePaused, s.Phase())
	s.TogglePause()
	assert.Equal(t, PhaseRunning, s.Phase())

	s.End()
	assert.Equal(t, PhaseEnded, s.Phase())
	s.End()
	assert.Equal(t, PhaseEnded, s.Phase())
}

func TestSessionStartOnlyOnce(t *testing.T) {
	s := newTestSession(t, nil)
	s.Start()
	s.HardDrop()
	pieces := s.Snapshot().Pieces

	s.Start()
	assert.Equal(t, pieces, s.Snapshot().Pieces)
}

func TestSessionCatchUpDrops(t *testing.T) {
	s := newTestSession(t, func(c *Config) {
		c.Scoring.BaseInterval = 500 * time.Millisecond
		c.Scoring.IntervalStep = 0
	})
	s.Start()
	y := s.active.Y

	s.Tick(1300 * time.Millisecond)

	assert.Equal(t, y+2, s.active.Y)
	assert.Equal(t, 300*time.Millisecond, s.clock.Pending())
}

func TestSessionCatchUpCap(t *testing.T) {
	s := newTestSession(t, func(c *Config) {
		c.MaxCatchUp = 3
		c.Scoring.BaseInterval = 100 * time.Millisecond
	})
	s.Start()
	y := s.active.Y

	s.Tick(time.Hour)

	assert.Equal(t, y+3, s.active.Y)
	assert.Less(t, s.clock.Pending(), 100*time.Millisecond)
}

func TestSessionPauseFreezes(t *testing.T) {
	s := newTestSession(t, nil)
	s.Start()
	before := s.Snapshot()

	s.Pause()
	s.Tick(10 * time.Second)
	assert.False(t, s.MoveHorizontal(-1))
	assert.False(t, s.Rotate())
	assert.False(t, s.SoftDrop())
	assert.Equal(t, 0, s.HardDrop())

	after := s.Snapshot()
	after.Phase = before.Phase
	assert.Equal(t, before, after)
	assert.Equal(t, time.Duration(0), s.clock.Pending())

	s.Resume()
	s.Tick(100 * time.Millisecond)
	assert.Equal(t, before.Active.Y, s.active.Y)
}

func TestSessionEndedIsTerminal(t *testing.T) {
	s := newTestSession(t, nil)
	s.Start()
	s.End()
	before := s.Snapshot()

	s.Tick(time.Minute)
	s.Resume()
	s.TogglePause()
	s.Start()
	s.MoveHorizontal(1)
	s.Rotate()
	s.SoftDrop()
	s.HardDrop()

	assert.Equal(t, before, s.Snapshot())
	assert.Equal(t, PhaseEnded, s.Phase())
}

func TestSessionGameOverAtSpawn(t *testing.T) {
	s := newTestSession(t, nil)
	s.Start()

	// Fill the top two rows except column 0 so nothing clears and the
	// spawn area is blocked.
	for y := 0; y < 2; y++ {
		for x := 1; x < s.board.Width(); x++ {
			s.board.Set(x, y, filled("wall"))
		}
	}

	s.HardDrop()

	assert.Equal(t, PhaseEnded, s.Phase())
	assert.Equal(t, 2, s.Snapshot().Pieces)
}

func TestSessionHardDropScoresDistance(t *testing.T) {
	s := newTestSession(t, nil)
	s.Start()

	p := s.active.Clone()
	expected := 0
	for !s.board.Collides(p, 0, expected+1) {
		expected++
	}

	dist := s.HardDrop()

	assert.Equal(t, expected, dist)
	assert.Positive(t, dist)
	assert.Equal(t, 2*dist, s.Score())
	assert.Equal(t, 2, s.Snapshot().Pieces)
	assert.Equal(t, p.Shape.Count(), s.board.Filled())
}

func TestSessionSoftDrop(t *testing.T) {
	s := newTestSession(t, nil)
	s.Start()
	y := s.active.Y

	assert.True(t, s.SoftDrop())
	assert.Equal(t, y+1, s.active.Y)
	assert.Equal(t, 1, s.Score())

	// Soft drop at the floor locks instead of moving
	for s.SoftDrop() {
	}
	assert.Equal(t, 2, s.Snapshot().Pieces)
	assert.Positive(t, s.board.Filled())
}

func TestSessionLineClear(t *testing.T) {
	s := newTestSession(t, func(c *Config) {
		c.Width = 4
		c.Height = 8
	})
	s.Start()

	s.active = pieceOf("I", 0, 0)
	s.active.Content = content.Pair{Word: "ion", Definition: "charged atom"}

	dist := s.HardDrop()

	assert.Equal(t, 7, dist)
	assert.Equal(t, 1, s.Lines())
	assert.Equal(t, 100+2*7, s.Score())
	assert.Equal(t, 0, s.board.Filled())

	snap := s.Snapshot()
	assert.Equal(t, []string{"ion"}, snap.LastClearedWords)
	assert.Equal(t, []content.Pair{{Word: "ion", Definition: "charged atom"}}, snap.LastCleared)
	assert.Equal(t, []string{"ion"}, s.DrainClearedWords())
	assert.Empty(t, s.DrainClearedWords())
}

func TestSessionLevelUpSpeedsGravity(t *testing.T) {
	s := newTestSession(t, func(c *Config) {
		c.Width = 4
		c.Height = 8
		c.Scoring.LinesPerLevel = 1
	})
	s.Start()
	start := s.DropInterval()

	s.active = pieceOf("I", 0, 0)
	s.HardDrop()

	assert.Equal(t, 2, s.Level())
	assert.Less(t, s.DropInterval(), start)
}

func TestSessionMoveHorizontal(t *testing.T) {
	s := newTestSession(t, nil)
	s.Start()
	s.active = pieceOf("O", 0, 5)

	assert.False(t, s.MoveHorizontal(-1), "wall on the left")
	assert.False(t, s.MoveHorizontal(0))
	assert.True(t, s.MoveHorizontal(5), "any positive direction moves one column")
	assert.Equal(t, 1, s.active.X)
}

func TestSessionRotateKicks(t *testing.T) {
	vertical := func(x, y int) *Piece {
		p := pieceOf("I", x, y)
		p.Shape = p.Shape.Rotate()
		return p
	}

	tests := []struct {
		name      string
		piece     *Piece
		obstacles [][2]int
		rotated   bool
		wantX     int
	}{
		{"in place", vertical(3, 5), nil, true, 3},
		{"kick left first", vertical(5, 5), [][2]int{{8, 5}}, true, 4},
		{"kick right when left blocked", pieceOf("T", 4, 5), [][2]int{{4, 7}, {3, 7}}, true, 5},
		{"kick two from right wall", vertical(8, 5), nil, true, 6},
		{"rejected at right wall", vertical(9, 5), nil, false, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(t, nil)
			s.Start()
			s.active = tt.piece
			for _, o := range tt.obstacles {
				s.board.Set(o[0], o[1], filled(""))
			}
			before := s.active.Clone()

			got := s.Rotate()

			assert.Equal(t, tt.rotated, got)
			assert.Equal(t, tt.wantX, s.active.X)
			if tt.rotated {
				assert.True(t, s.active.Shape.Equal(before.Shape.Rotate()))
			} else {
				assert.Equal(t, before, s.active, "rejected rotation leaves the piece unchanged")
			}
		})
	}
}

func TestSessionRotateDeterministic(t *testing.T) {
	run := func() []*Piece {
		s := newTestSession(t, nil)
		s.Start()
		s.active = pieceOf("T", 7, 3)
		s.board.Set(6, 5, filled(""))
		var out []*Piece
		for i := 0; i < 6; i++ {
			s.Rotate()
			out = append(out, s.active.Clone())
		}
		return out
	}
	assert.Equal(t, run(), run())
}

func TestSessionTimeLimit(t *testing.T) {
	s := newTestSession(t, func(c *Config) {
		c.TimeLimit = time.Second
	})
	s.Start()

	s.Tick(600 * time.Millisecond)
	assert.Equal(t, PhaseRunning, s.Phase())
	assert.Equal(t, 400*time.Millisecond, s.Snapshot().TimeLeft)

	s.Tick(600 * time.Millisecond)
	snap := s.Snapshot()
	assert.Equal(t, PhaseEnded, snap.Phase)
	assert.Equal(t, time.Second, snap.Elapsed)
	assert.Equal(t, time.Duration(0), snap.TimeLeft)
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	s := newTestSession(t, nil)
	s.Start()
	s.HardDrop()

	snap := s.Snapshot()
	snap.Board[19][0].Filled = !snap.Board[19][0].Filled
	snap.Active.Shape[0][0] = !snap.Active.Shape[0][0]
	snap.Active.X += 3

	fresh := s.Snapshot()
	assert.NotEqual(t, snap.Board[19][0], fresh.Board[19][0])
	assert.NotEqual(t, snap.Active, fresh.Active)
}

func TestGhostY(t *testing.T) {
	s := newTestSession(t, nil)
	s.Start()
	s.active = pieceOf("O", 0, 0)
	s.board.Set(0, 10, filled(""))

	gy, ok := s.Snapshot().GhostY()
	require.True(t, ok)
	assert.Equal(t, 8, gy)
}

func TestNewSessionPanicsOnSmallBoard(t *testing.T) {
	assert.Panics(t, func() {
		cfg := DefaultConfig()
		cfg.Width = 3
		NewSession(cfg, nil, nil)
	})
	assert.Panics(t, func() {
		cfg := DefaultConfig()
		cfg.Height = 3
		NewSession(cfg, nil, nil)
	})
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "not_started", PhaseNotStarted.String())
	assert.Equal(t, "running", PhaseRunning.String())
	assert.Equal(t, "paused", PhasePaused.String())
	assert.Equal(t, "ended", PhaseEnded.String())
}
