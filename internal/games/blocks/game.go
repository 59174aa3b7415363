// Package blocks implements Word Blocks, a falling block game whose pieces
// carry vocabulary words. Session is the embeddable simulation; Game adapts
// it to the arcade registry.
package blocks

import (
	"context"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/wordblocks/internal/config"
	"github.com/vovakirdan/wordblocks/internal/content"
	"github.com/vovakirdan/wordblocks/internal/core"
	"github.com/vovakirdan/wordblocks/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeClassic Mode = "classic"
	ModeTimed   Mode = "timed"
)

// Package-level settings applied by the CLI before games are created.
var (
	configPath       string
	difficultyPreset string
	contentProvider  content.Provider
	contentTopic     string
	gameLogger       = log.New(io.Discard)
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset name.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetContentProvider overrides the vocabulary source chosen by the config.
func SetContentProvider(p content.Provider) {
	contentProvider = p
}

// SetTopic overrides the vocabulary topic chosen by the config.
func SetTopic(topic string) {
	contentTopic = topic
}

// SetLogger sets the logger passed to every new session.
func SetLogger(l *log.Logger) {
	if l != nil {
		gameLogger = l
	}
}

func init() {
	registry.Register("blocks", func() registry.Game {
		return New()
	})
	registry.Register("blocks_timed", func() registry.Game {
		return NewTimed()
	})
}

// Game adapts a Session to the fixed-tick registry.Game interface.
type Game struct {
	mode    Mode
	topic   string
	cfg     config.BlocksConfig
	session *Session
	rng     *rand.Rand
	dt      time.Duration
	tick    uint64

	screenW int
	screenH int
}

// New creates a classic Word Blocks game.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewTimed creates the time-boxed variant.
func NewTimed() *Game {
	return &Game{mode: ModeTimed}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeTimed {
		return "blocks_timed"
	}
	return "blocks"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeTimed {
		return "Word Blocks (Timed)"
	}
	return "Word Blocks"
}

// Reset loads configuration, resolves the vocabulary deck and starts a new
// session. It blocks for at most the configured content timeout.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = loadConfig()
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.dt = time.Second / time.Duration(cfg.TickRateOrDefault())
	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	deck := content.Resolve(context.Background(), g.provider(), g.contentTopicName(), g.cfg.Content.Timeout(), gameLogger)

	g.session = NewSession(SessionConfig(g.cfg, g.mode), g.rng, deck, WithLogger(gameLogger.With("game", g.ID())))
	g.session.Start()
}

// loadConfig returns the validated config, falling back to defaults.
func loadConfig() config.BlocksConfig {
	cfg, err := config.LoadBlocks(configPath)
	if err != nil {
		gameLogger.Warn("using default config", "err", err)
		cfg = config.DefaultBlocksConfig()
	}
	if difficultyPreset != "" {
		if preset, err := config.ParseDifficulty(difficultyPreset); err == nil {
			config.ApplyBlocksPreset(&cfg, preset)
		} else {
			gameLogger.Warn("ignoring difficulty", "err", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		gameLogger.Warn("using default config", "err", err)
		cfg = config.DefaultBlocksConfig()
	}
	return cfg
}

func (g *Game) provider() content.Provider {
	switch {
	case contentProvider != nil:
		return contentProvider
	case g.cfg.Content.URL != "":
		return content.HTTPProvider{URL: g.cfg.Content.URL}
	case g.cfg.Content.File != "":
		return content.FileProvider{Path: g.cfg.Content.File}
	default:
		return content.EmbeddedProvider{}
	}
}

// SetTopic picks the vocabulary topic for this game only. It takes effect
// on the next Reset and wins over the package-level setting.
func (g *Game) SetTopic(topic string) {
	g.topic = topic
}

func (g *Game) contentTopicName() string {
	if g.topic != "" {
		return g.topic
	}
	if contentTopic != "" {
		return contentTopic
	}
	return g.cfg.Content.Topic
}

// SessionConfig converts file configuration into a session configuration.
func SessionConfig(c config.BlocksConfig, mode Mode) Config {
	sc := Config{
		Width:       c.Board.Width,
		Height:      c.Board.Height,
		KickOffsets: append([]int{}, c.Rotation.KickOffsets...),
		MaxCatchUp:  c.Timing.MaxCatchUp,
		Scoring: ScoringConfig{
			LineScores:     append([]int(nil), c.Scoring.LineScores...),
			LinesPerLevel:  c.Scoring.LinesPerLevel,
			StartLevel:     max(c.Difficulty.StartLevel, 1),
			FixedLevel:     c.Difficulty.Fixed,
			SoftDropPoints: c.Scoring.SoftDropPoints,
			HardDropPoints: c.Scoring.HardDropPoints,
			BaseInterval:   c.Timing.BaseInterval(),
			IntervalStep:   c.Timing.IntervalStep(),
			MinInterval:    c.Timing.MinInterval(),
		},
	}
	if mode == ModeTimed {
		sc.TimeLimit = c.Timed.Limit()
	}
	return sc
}

// Step advances the game by one tick: input first, in arrival order, then
// one tick of gravity.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionRestart) && g.session.Phase() == PhaseEnded {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: int(time.Second / g.dt),
		})
		return core.StepResult{State: g.State()}
	}

	for _, a := range input.Actions() {
		switch a {
		case core.ActionPause:
			g.session.TogglePause()
		case core.ActionLeft:
			g.session.MoveHorizontal(-1)
		case core.ActionRight:
			g.session.MoveHorizontal(1)
		case core.ActionRotate:
			g.session.Rotate()
		case core.ActionSoftDrop:
			g.session.SoftDrop()
		case core.ActionHardDrop:
			g.session.HardDrop()
		}
	}

	g.session.Tick(g.dt)

	return core.StepResult{
		State:        g.State(),
		ClearedWords: g.session.DrainClearedWords(),
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	phase := g.session.Phase()
	return core.GameState{
		Score:    g.session.Score(),
		Level:    g.session.Level(),
		Lines:    g.session.Lines(),
		GameOver: phase == PhaseEnded,
		Paused:   phase == PhasePaused,
	}
}

// Session exposes the underlying simulation.
func (g *Game) Session() *Session {
	return g.session
}

// Snapshot returns the current session snapshot.
func (g *Game) Snapshot() Snapshot {
	return g.session.Snapshot()
}
