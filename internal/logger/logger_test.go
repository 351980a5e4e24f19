package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_NotNil(t *testing.T) {
	l := NewLogger("user-management-server")
	require.NotNil(t, l)
}

// TestNewLogger_RoleField verifies that every entry carries the "role" field
// the logger was constructed with, so server logs can be filtered by
// component.
func TestNewLogger_RoleField(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("user-management-server")
	l.Logger = l.Output(&buf)

	l.Info().Msg("user created")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "user-management-server", entry["role"])
}

func TestNewLogger_ContainsTimestamp(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("user-management-server")
	l.Logger = l.Output(&buf)

	l.Info().Msg("request received")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	_, hasTime := entry["time"]
	assert.True(t, hasTime, "expected 'time' field in log entry")
}

// TestNewLogger_CallerFieldName verifies the caller field is renamed to
// "func"; NewLogger sets zerolog.CallerFieldName as a side effect.
func TestNewLogger_CallerFieldName(t *testing.T) {
	NewLogger("user-management-server")
	assert.Equal(t, "func", zerolog.CallerFieldName)
}

// Debug entries (token issuance, validation rejections) must not be dropped.
func TestNewLogger_GlobalLevelIsDebug(t *testing.T) {
	NewLogger("user-management-server")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNop_NotNil(t *testing.T) {
	require.NotNil(t, Nop())
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("login successful")

	assert.Empty(t, buf.String(), "Nop logger should produce no output")
}

func TestGetChildLogger_NotNil(t *testing.T) {
	parent := NewLogger("user-management-server")
	require.NotNil(t, parent.GetChildLogger())
}

// TestGetChildLogger_IsIndependent verifies that enriching a request-scoped
// child (as the trace-id middleware does) cannot mutate the parent.
func TestGetChildLogger_IsIndependent(t *testing.T) {
	parent := NewLogger("user-management-server")
	child := parent.GetChildLogger()
	assert.NotSame(t, parent, child)
}

func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger("user-management-server")
	parent.Logger = parent.Output(&buf)

	child := parent.GetChildLogger()
	child.Logger = child.Output(&buf)
	child.Info().Msg("response sent")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "user-management-server", entry["role"])
}

func TestFromContext_NotNil(t *testing.T) {
	l := FromContext(context.Background())
	require.NotNil(t, l)
}

func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("trace_id", "abc-123").Logger()
	ctx := zl.WithContext(context.Background())

	l := FromContext(ctx)
	require.NotNil(t, l)

	l.Info().Msg("user lookup")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "abc-123", entry["trace_id"])
}

func TestFromRequest_NotNil(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/user", nil)
	require.NotNil(t, FromRequest(req))
}

// TestFromRequest_ReturnsAttachedLogger verifies that a handler sees the
// request-scoped logger the middleware attached, trace id included.
func TestFromRequest_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("trace_id", "def-456").Logger()

	req := httptest.NewRequest(http.MethodGet, "/user", nil)
	req = req.WithContext(zl.WithContext(req.Context()))

	l := FromRequest(req)
	require.NotNil(t, l)

	l.Info().Msg("user deleted")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "def-456", entry["trace_id"])
}
