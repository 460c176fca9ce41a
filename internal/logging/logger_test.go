package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		level string
		want  logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{"warn", logrus.WarnLevel},
		{" error ", logrus.ErrorLevel},
		{"", logrus.InfoLevel},
		{"nonsense", logrus.InfoLevel},
	}

	for _, tc := range tests {
		log := New(tc.level, "")
		assert.Equal(t, tc.want, log.GetLevel(), "level %q", tc.level)
	}
}

func TestNewWithOutput_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(&buf, "info", FormatJSON)

	Component(log, "api").WithField("file", "a.txt").Info("upload finished")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "upload finished", entry["msg"])
	assert.Equal(t, "api", entry["component"])
	assert.Equal(t, "a.txt", entry["file"])
}

func TestNewWithOutput_DebugDefaultsToText(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(&buf, "debug", "")

	log.Debug("hello")

	out := buf.String()
	assert.True(t, strings.Contains(out, "level=debug"), out)
	assert.True(t, strings.Contains(out, "msg=hello"), out)
}

func TestDiscard(t *testing.T) {
	entry := Discard()
	require.NotNil(t, entry)
	entry.Error("dropped")
}
