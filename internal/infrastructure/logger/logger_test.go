package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextFieldsAreCarried(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "debug", Format: "json", ServiceName: "test", Output: &buf})

	ctx := l.WithContext(context.Background())
	ctx = WithField(ctx, FieldRequestID, "req-1")
	Component(ctx, "finance", "usecase").WithField(FieldJobID, "job-1").Info("post-revenue")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "post-revenue", line["message"])
	assert.Equal(t, "req-1", line[FieldRequestID])
	assert.Equal(t, "job-1", line[FieldJobID])
	assert.Equal(t, "[finance][usecase]", line[FieldComponent])
	assert.Equal(t, "test", line["service"])
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	assert.Same(t, Default(), FromContext(context.Background()))
}

func TestInvalidLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "loud", Output: &buf})
	l.Debug("hidden")
	assert.Zero(t, buf.Len())
	l.Info("shown")
	assert.NotZero(t, buf.Len())
}
