package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(l Logger) {
	l.(*stdLogger).now = func() time.Time { return time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC) }
}

func TestLogger_Text_SortedKeys(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Info, Output: &buf, App: "vet"})
	fixedClock(l)

	l.Info("animal created", map[string]any{"species": "dog"})

	assert.Equal(t,
		"app=vet level=info msg=animal created species=dog ts=2025-12-22T10:00:00Z\n",
		buf.String())
}

func TestLogger_JSON_WithFieldsAreInherited(t *testing.T) {
	var buf bytes.Buffer
	root := New(Options{Level: Debug, Format: FormatJSON, Output: &buf})

	child := root.With(map[string]any{"request_id": "req-1"})
	child.Debug("hello", map[string]any{"pet_id": "p-1"})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, "p-1", entry["pet_id"])
	assert.Equal(t, "debug", entry["level"])
}

func TestLogger_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Warn, Output: &buf})

	l.Info("skipped", nil)
	l.Error("kept", nil)

	out := buf.String()
	assert.NotContains(t, out, "skipped")
	assert.True(t, strings.Contains(out, "msg=kept"))
}

func TestParseLevelAndFormat(t *testing.T) {
	assert.Equal(t, Debug, ParseLevel(" DEBUG "))
	assert.Equal(t, Warn, ParseLevel("warning"))
	assert.Equal(t, Info, ParseLevel("bogus"))
	assert.Equal(t, FormatJSON, ParseFormat("Json"))
	assert.Equal(t, FormatText, ParseFormat(""))
}

func TestFromContext(t *testing.T) {
	fallback := Nop()
	assert.Equal(t, fallback, FromContext(context.Background(), fallback))

	var buf bytes.Buffer
	l := New(Options{Output: &buf})
	ctx := WithContext(context.Background(), l)
	assert.Same(t, l.(*stdLogger), FromContext(ctx, fallback).(*stdLogger))
}
