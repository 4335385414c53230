package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Level(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, New("debug").GetLevel())
	assert.Equal(t, logrus.InfoLevel, New("").GetLevel())
	assert.Equal(t, logrus.InfoLevel, New("loud").GetLevel())
}

func TestLogError(t *testing.T) {
	var buf bytes.Buffer
	l := New("info")
	l.SetOutput(&buf)

	LogError(l, "appointment", "FinishStage", "save failed", map[string]string{"order_id": "o-1"}, errors.New("boom"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "boom", entry["msg"])
	assert.Equal(t, "appointment", entry["module"])
	assert.Equal(t, "FinishStage", entry["funcName"])
	assert.Equal(t, "error", entry["level"])
	assert.NotNil(t, entry["data"])
}
