package blocks

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/wordblocks/internal/content"
)

// Phase is the lifecycle stage of a session.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseRunning
	PhasePaused
	PhaseEnded
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not_started"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// DefaultKickOffsets are the horizontal corrections tried, in order, when a
// rotation does not fit in place.
var DefaultKickOffsets = []int{-1, 1, -2, 2}

// Config describes one session.
type Config struct {
	Width, Height int
	Archetypes    []Archetype // nil means StandardArchetypes
	KickOffsets   []int       // nil means DefaultKickOffsets
	MaxCatchUp    int
	Scoring       ScoringConfig
	TimeLimit     time.Duration // zero means no limit
}

// DefaultConfig returns a 20x20 board with the classic pieces and scoring.
func DefaultConfig() Config {
	return Config{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		MaxCatchUp: DefaultMaxCatchUp,
		Scoring:    DefaultScoringConfig(),
	}
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used for lifecycle events.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// Session owns the board, bag and score of one game and drives them through
// NotStarted, Running, Paused and Ended. Ended is terminal. Calls that do
// not apply to the current phase do nothing.
type Session struct {
	cfg     Config
	board   *Board
	bag     *Bag
	factory *Factory
	clock   *Clock
	scoring *Scoring
	logger  *log.Logger

	phase  Phase
	active *Piece
	next   *Piece

	score    int
	lines    int
	level    int
	interval time.Duration
	elapsed  time.Duration
	pieces   int

	lastCleared  []content.Pair
	pendingWords []string
}

// NewSession builds a session that has not started yet. The deck must be
// fully resolved beforehand. It panics if an archetype cannot fit the board
// in every rotation.
func NewSession(cfg Config, rng *rand.Rand, deck *content.Deck, opts ...Option) *Session {
	if cfg.Archetypes == nil {
		cfg.Archetypes = StandardArchetypes()
	}
	if cfg.KickOffsets == nil {
		cfg.KickOffsets = DefaultKickOffsets
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		panic(fmt.Sprintf("blocks: invalid board size %dx%d", cfg.Width, cfg.Height))
	}
	if ext := maxExtent(cfg.Archetypes); ext > cfg.Width || ext > cfg.Height {
		panic(fmt.Sprintf("blocks: archetypes need a %dx%d board, got %dx%d",
			ext, ext, cfg.Width, cfg.Height))
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	bag := NewBag(cfg.Archetypes, rng)
	s := &Session{
		cfg:     cfg,
		board:   NewBoard(cfg.Width, cfg.Height),
		bag:     bag,
		factory: NewFactory(bag, deck, cfg.Width),
		clock:   NewClock(cfg.MaxCatchUp),
		scoring: NewScoring(cfg.Scoring),
		logger:  log.New(io.Discard),
		phase:   PhaseNotStarted,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.level = s.scoring.StartLevel()
	s.interval = s.scoring.DropInterval(s.level)
	return s
}

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Start moves a fresh session to Running and spawns the first two pieces.
// If the first piece has nowhere to go the session ends immediately.
func (s *Session) Start() {
	if s.phase != PhaseNotStarted {
		return
	}

	s.board.Reset()
	s.bag.queue = s.bag.queue[:0]
	s.clock.Reset()
	s.score = 0
	s.lines = 0
	s.level = s.scoring.StartLevel()
	s.interval = s.scoring.DropInterval(s.level)
	s.elapsed = 0
	s.pieces = 0
	s.lastCleared = nil
	s.pendingWords = nil

	s.phase = PhaseRunning
	s.next = s.factory.Next()
	s.spawn()

	s.logger.Debug("session started", "level", s.level, "interval", s.interval)
}

// Pause freezes a running session.
func (s *Session) Pause() {
	if s.phase == PhaseRunning {
		s.phase = PhasePaused
	}
}

// Resume continues a paused session.
func (s *Session) Resume() {
	if s.phase == PhasePaused {
		s.phase = PhaseRunning
	}
}

// TogglePause switches between Running and Paused.
func (s *Session) TogglePause() {
	switch s.phase {
	case PhaseRunning:
		s.Pause()
	case PhasePaused:
		s.Resume()
	}
}

// End terminates the session from any phase. Repeated calls do nothing.
func (s *Session) End() {
	if s.phase == PhaseEnded {
		return
	}
	s.phase = PhaseEnded
	s.logger.Debug("session ended", "score", s.score, "lines", s.lines, "level", s.level, "pieces", s.pieces)
}

// Tick advances the clock by elapsed and applies the resulting gravity
// drops in order. Nothing accumulates unless the session is running.
func (s *Session) Tick(elapsed time.Duration) {
	if s.phase != PhaseRunning || elapsed < 0 {
		return
	}

	timeUp := false
	if s.cfg.TimeLimit > 0 {
		if left := s.cfg.TimeLimit - s.elapsed; elapsed >= left {
			elapsed = left
			timeUp = true
		}
	}
	s.elapsed += elapsed

	for range s.clock.Tick(elapsed, s.interval) {
		if s.phase != PhaseRunning {
			break
		}
		s.dropOrLock()
	}

	if timeUp {
		s.logger.Debug("time limit reached", "limit", s.cfg.TimeLimit)
		s.End()
	}
}

// dropOrLock moves the active piece down one row, or locks it if it cannot.
func (s *Session) dropOrLock() bool {
	if !s.board.Collides(s.active, 0, 1) {
		s.active.Y++
		return true
	}
	s.lock()
	return false
}

// lock settles the active piece, clears rows, scores them and spawns the
// next piece.
func (s *Session) lock() {
	s.board.Merge(s.active)
	res := s.board.ClearFullRows()

	prevLevel := s.level
	lc := s.scoring.OnLinesCleared(res.Rows, s.level, s.lines)
	s.score += lc.ScoreDelta
	s.lines = lc.TotalLines
	s.level = lc.Level
	s.interval = lc.DropInterval

	if res.Rows > 0 {
		s.lastCleared = make([]content.Pair, 0, len(res.Words))
		for _, w := range res.Words {
			s.lastCleared = append(s.lastCleared, content.Pair{Word: w, Definition: res.Definitions[w]})
		}
		s.pendingWords = append(s.pendingWords, res.Words...)
		s.logger.Debug("rows cleared", "rows", res.Rows, "words", res.Words, "score", s.score)
	}
	if s.level != prevLevel {
		s.logger.Debug("level up", "level", s.level, "interval", s.interval)
	}

	s.spawn()
}

// spawn promotes the preview piece and draws a new one. A blocked spawn
// ends the game.
func (s *Session) spawn() {
	s.active = s.next
	s.next = s.factory.Next()
	s.pieces++

	if s.board.Collides(s.active, 0, 0) {
		s.logger.Debug("spawn blocked", "piece", s.active.Archetype.Tag)
		s.End()
	}
}

// DrainClearedWords returns the words cleared since the last call.
func (s *Session) DrainClearedWords() []string {
	words := s.pendingWords
	s.pendingWords = nil
	return words
}

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Level returns the current level.
func (s *Session) Level() int { return s.level }

// Lines returns the total rows cleared.
func (s *Session) Lines() int { return s.lines }

// DropInterval returns the current gravity interval.
func (s *Session) DropInterval() time.Duration { return s.interval }
