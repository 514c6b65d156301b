// Package config loads process configuration from the environment,
// with documented fallback defaults for every setting.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Defaults applied when the corresponding environment variable is unset.
const (
	DefaultListenAddr       = "127.0.0.1:8000"
	DefaultQuestionsFile    = "./Questions/questions-example.json"
	DefaultQuestionsDir     = "./Questions"
	DefaultStaticDir        = "./Gameshow"
	DefaultInitialMoney     = 500
	DefaultInitialJokers    = 3
	DefaultNormalReward     = 500
	DefaultEstimationReward = 1000
)

// Config holds the full server configuration.
type Config struct {
	// ListenAddr is the address the HTTP server binds to.
	ListenAddr string

	// QuestionsFile is the question set loaded at startup.
	QuestionsFile string

	// QuestionsDir is the directory reload requests resolve filenames
	// against.
	QuestionsDir string

	// StaticDir is the directory the frontend is served from.
	StaticDir string

	Game    GameConfig
	Logging LoggingConfig
}

// GameConfig holds the tunable game constants.
type GameConfig struct {
	// InitialMoney is the balance every player starts with.
	InitialMoney int64

	// InitialJokers is the number of fifty-fifty jokers every player
	// starts with.
	InitialJokers int

	// NormalReward is the payout for a correct normal-question answer.
	NormalReward int64

	// EstimationReward is the payout for winning an estimation question.
	EstimationReward int64
}

// LoggingConfig controls logger construction.
type LoggingConfig struct {
	Level  string // debug, info, warn, error
	Format string // json or console
}

// Load reads configuration from the environment. Every setting falls back
// to its default when unset; Load only fails on malformed values.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("LISTEN_ADDR", DefaultListenAddr)
	v.SetDefault("QUESTIONS_FILE", DefaultQuestionsFile)
	v.SetDefault("QUESTIONS_DIR", DefaultQuestionsDir)
	v.SetDefault("STATIC_DIR", DefaultStaticDir)
	v.SetDefault("INITIAL_MONEY", DefaultInitialMoney)
	v.SetDefault("INITIAL_JOKERS", DefaultInitialJokers)
	v.SetDefault("NORMAL_Q_MONEY", DefaultNormalReward)
	v.SetDefault("ESTIMATION_Q_MONEY", DefaultEstimationReward)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")

	v.AutomaticEnv()

	cfg := &Config{
		ListenAddr:    v.GetString("LISTEN_ADDR"),
		QuestionsFile: v.GetString("QUESTIONS_FILE"),
		QuestionsDir:  v.GetString("QUESTIONS_DIR"),
		StaticDir:     v.GetString("STATIC_DIR"),
		Game: GameConfig{
			InitialMoney:     v.GetInt64("INITIAL_MONEY"),
			InitialJokers:    v.GetInt("INITIAL_JOKERS"),
			NormalReward:     v.GetInt64("NORMAL_Q_MONEY"),
			EstimationReward: v.GetInt64("ESTIMATION_Q_MONEY"),
		},
		Logging: LoggingConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
	}

	if cfg.Game.InitialJokers < 0 {
		return nil, fmt.Errorf("INITIAL_JOKERS must be non-negative, got %d", cfg.Game.InitialJokers)
	}

	return cfg, nil
}
