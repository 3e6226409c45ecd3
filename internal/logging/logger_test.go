package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alp4ka/pagenav/internal/config"
)

func TestNewLogger_CachesPerComponent(t *testing.T) {
	a := NewLogger("api")
	b := NewLogger("api")
	c := NewLogger("catalog")

	assert.Same(t, a, b)
	assert.NotSame(t, a, c)
	assert.Equal(t, "api", a.Data["component"])
}

func TestConfigure(t *testing.T) {
	var buf bytes.Buffer
	t.Setenv(LevelEnv, "")

	logger := Configure(config.LogConfig{Level: "warn", Format: "json"}, &buf)
	assert.Equal(t, logrus.WarnLevel, logger.GetLevel())

	NewLogger("configure-test").Info("dropped")
	NewLogger("configure-test").WithField("page", 3).Warn("kept")

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	assert.Equal(t, "kept", line["msg"])
	assert.Equal(t, "configure-test", line["component"])
	assert.EqualValues(t, 3, line["page"])
}

func TestConfigure_EnvOverridesLevel(t *testing.T) {
	var buf bytes.Buffer
	t.Setenv(LevelEnv, "debug")

	logger := Configure(config.LogConfig{Level: "error"}, &buf)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
}

func TestConfigure_UnknownLevel(t *testing.T) {
	var buf bytes.Buffer
	t.Setenv(LevelEnv, "")

	logger := Configure(config.LogConfig{Level: "verbose"}, &buf)
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
	assert.Contains(t, buf.String(), "Unknown log level")
}
