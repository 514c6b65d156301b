package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultListenAddr, cfg.ListenAddr)
	assert.Equal(t, DefaultQuestionsFile, cfg.QuestionsFile)
	assert.Equal(t, DefaultQuestionsDir, cfg.QuestionsDir)
	assert.Equal(t, DefaultStaticDir, cfg.StaticDir)
	assert.Equal(t, int64(DefaultInitialMoney), cfg.Game.InitialMoney)
	assert.Equal(t, DefaultInitialJokers, cfg.Game.InitialJokers)
	assert.Equal(t, int64(DefaultNormalReward), cfg.Game.NormalReward)
	assert.Equal(t, int64(DefaultEstimationReward), cfg.Game.EstimationReward)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("LISTEN_ADDR", "0.0.0.0:9000")
	t.Setenv("QUESTIONS_FILE", "/tmp/custom.json")
	t.Setenv("INITIAL_MONEY", "1000")
	t.Setenv("INITIAL_JOKERS", "1")
	t.Setenv("NORMAL_Q_MONEY", "250")
	t.Setenv("ESTIMATION_Q_MONEY", "2000")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9000", cfg.ListenAddr)
	assert.Equal(t, "/tmp/custom.json", cfg.QuestionsFile)
	assert.Equal(t, int64(1000), cfg.Game.InitialMoney)
	assert.Equal(t, 1, cfg.Game.InitialJokers)
	assert.Equal(t, int64(250), cfg.Game.NormalReward)
	assert.Equal(t, int64(2000), cfg.Game.EstimationReward)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadRejectsNegativeJokers(t *testing.T) {
	t.Setenv("INITIAL_JOKERS", "-2")

	_, err := Load()
	assert.Error(t, err)
}
