package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := Setup(Config{Format: "json", Output: &buf})
	t.Cleanup(func() { Setup(Config{}) })

	l.WithField("workflow", "daily-clips.yml").Info("dispatched")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "dispatched", entry["msg"])
	assert.Equal(t, "daily-clips.yml", entry["workflow"])
	assert.Equal(t, logrus.InfoLevel, l.GetLevel())
}

func TestSetup_Debug(t *testing.T) {
	var buf bytes.Buffer
	l := Setup(Config{Debug: true, Output: &buf})
	t.Cleanup(func() { Setup(Config{}) })

	l.Debug("verbose")

	assert.Equal(t, logrus.DebugLevel, l.GetLevel())
	assert.Contains(t, buf.String(), "verbose")
}
