package blocks

import "time"

// ScoringConfig holds the score table and speed curve.
type ScoringConfig struct {
	LineScores     []int // indexed by rows cleared; larger counts use the last entry
	LinesPerLevel  int
	StartLevel     int
	FixedLevel     bool // level never rises above StartLevel
	SoftDropPoints int  // per row
	HardDropPoints int  // per row
	BaseInterval   time.Duration
	IntervalStep   time.Duration
	MinInterval    time.Duration
}

// DefaultScoringConfig returns the classic table: 0/100/300/500/800 times
// level, ten lines per level, 800ms gravity shrinking by 70ms to 100ms.
func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		LineScores:     []int{0, 100, 300, 500, 800},
		LinesPerLevel:  10,
		StartLevel:     1,
		SoftDropPoints: 1,
		HardDropPoints: 2,
		BaseInterval:   800 * time.Millisecond,
		IntervalStep:   70 * time.Millisecond,
		MinInterval:    100 * time.Millisecond,
	}
}

// LineClearResult is the outcome of scoring one lock resolution.
type LineClearResult struct {
	ScoreDelta   int
	TotalLines   int
	Level        int
	DropInterval time.Duration
}

// Scoring converts clears and drops into points, level and speed.
type Scoring struct {
	cfg ScoringConfig
}

// NewScoring creates a scoring engine, filling unset fields with defaults.
func NewScoring(cfg ScoringConfig) *Scoring {
	def := DefaultScoringConfig()
	if len(cfg.LineScores) == 0 {
		cfg.LineScores = def.LineScores
	}
	if cfg.LinesPerLevel <= 0 {
		cfg.LinesPerLevel = def.LinesPerLevel
	}
	if cfg.StartLevel <= 0 {
		cfg.StartLevel = 1
	}
	if cfg.BaseInterval <= 0 {
		cfg.BaseInterval = def.BaseInterval
	}
	if cfg.MinInterval <= 0 {
		cfg.MinInterval = def.MinInterval
	}
	if cfg.IntervalStep < 0 {
		cfg.IntervalStep = 0
	}
	return &Scoring{cfg: cfg}
}

// StartLevel returns the level a new session begins at.
func (s *Scoring) StartLevel() int {
	return s.cfg.StartLevel
}

// OnLinesCleared scores rows cleared at level and recomputes level and
// gravity from the new running total.
func (s *Scoring) OnLinesCleared(rows, level, totalLines int) LineClearResult {
	rows = max(rows, 0)
	idx := min(rows, len(s.cfg.LineScores)-1)
	total := totalLines + rows

	return LineClearResult{
		ScoreDelta:   s.cfg.LineScores[idx] * level,
		TotalLines:   total,
		Level:        s.LevelFor(total),
		DropInterval: s.DropInterval(s.LevelFor(total)),
	}
}

// LevelFor returns the level reached after totalLines cleared rows.
func (s *Scoring) LevelFor(totalLines int) int {
	if s.cfg.FixedLevel {
		return s.cfg.StartLevel
	}
	return max(s.cfg.StartLevel, totalLines/s.cfg.LinesPerLevel+1)
}

// DropInterval returns the gravity interval for level, never below the
// configured minimum.
func (s *Scoring) DropInterval(level int) time.Duration {
	d := s.cfg.BaseInterval - time.Duration(max(level-1, 0))*s.cfg.IntervalStep
	return max(d, s.cfg.MinInterval)
}

// OnSoftDrop returns the bonus for one player-initiated row.
func (s *Scoring) OnSoftDrop() int {
	return s.cfg.SoftDropPoints
}

// OnHardDrop returns the bonus for a hard drop across cells rows.
func (s *Scoring) OnHardDrop(cells int) int {
	return max(cells, 0) * s.cfg.HardDropPoints
}
