package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	logrus.SetOutput(buf)
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetLevel(logrus.DebugLevel)
	return buf
}

func TestWithContext_UserAndRequestID(t *testing.T) {
	buf := captureOutput(t)

	ctx := ContextWithUser(context.Background(), "secretary@church.org")
	ctx = ContextWithRequestID(ctx, "req-1")
	WithContext(ctx).WithField("event_id", "e1").Info("planning saved")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "secretary@church.org", entry["user"])
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, "e1", entry["event_id"])
	assert.Equal(t, "planning saved", entry["msg"])
}

func TestWithContext_Unknown(t *testing.T) {
	buf := captureOutput(t)

	WithContext(context.Background()).Warn("anonymous")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "unknown", entry["user"])
	_, hasRequestID := entry["request_id"]
	assert.False(t, hasRequestID)
}

func TestSetup_Level(t *testing.T) {
	Setup("debug")
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	Setup("not-a-level")
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}
