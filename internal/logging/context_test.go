package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/Amund211/battlemetrics/internal/logging"
	"github.com/stretchr/testify/require"
)

// Decodes the log lines written to buf, dropping the time
func entries(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	result := []map[string]any{}
	for line := range strings.Lines(buf.String()) {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		require.Contains(t, entry, "time")
		delete(entry, "time")
		result = append(result, entry)
	}
	return result
}

func newRootLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return slog.New(slog.NewJSONHandler(buf, nil)).With(slog.String("root", "yes")), buf
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	t.Run("stored logger", func(t *testing.T) {
		t.Parallel()

		logger, _ := newRootLogger()
		ctx := logging.AddToContext(t.Context(), logger)
		require.Same(t, logger, logging.FromContext(ctx))
	})

	t.Run("fallback", func(t *testing.T) {
		t.Parallel()

		require.NotNil(t, logging.FromContext(t.Context()))
	})
}

func TestAddMetaToContext(t *testing.T) {
	t.Parallel()

	t.Run("attrs are added to the stored logger", func(t *testing.T) {
		t.Parallel()

		logger, buf := newRootLogger()
		ctx := logging.AddToContext(t.Context(), logger)
		ctx = logging.AddMetaToContext(ctx, slog.String("a", "1"), slog.Int("b", 2))

		logging.FromContext(ctx).InfoContext(ctx, "lookup")

		require.Equal(t, []map[string]any{
			{"level": "INFO", "msg": "lookup", "root": "yes", "a": "1", "b": float64(2)},
		}, entries(t, buf))
	})

	t.Run("parent logger is unchanged", func(t *testing.T) {
		t.Parallel()

		logger, buf := newRootLogger()
		parent := logging.AddToContext(t.Context(), logger)
		child := logging.AddMetaToContext(parent, slog.String("a", "1"))

		logging.FromContext(parent).InfoContext(parent, "parent")

		require.Equal(t, []map[string]any{
			{"level": "INFO", "msg": "parent", "root": "yes"},
		}, entries(t, buf))
		require.NotSame(t, logging.FromContext(parent), logging.FromContext(child))
	})

	t.Run("no attrs", func(t *testing.T) {
		t.Parallel()

		logger, _ := newRootLogger()
		ctx := logging.AddToContext(t.Context(), logger)
		require.Equal(t, ctx, logging.AddMetaToContext(ctx))
	})
}

func TestLookupMeta(t *testing.T) {
	t.Parallel()

	t.Run("user id", func(t *testing.T) {
		t.Parallel()

		logger, buf := newRootLogger()
		ctx := logging.AddToContext(t.Context(), logger)
		ctx = logging.AddUserIDToContext(ctx, 76561198000000000)

		logging.FromContext(ctx).InfoContext(ctx, "lookup")

		require.Equal(t, []map[string]any{
			{"level": "INFO", "msg": "lookup", "root": "yes", "userID": "76561198000000000"},
		}, entries(t, buf))
	})

	t.Run("organization id", func(t *testing.T) {
		t.Parallel()

		logger, buf := newRootLogger()
		ctx := logging.AddToContext(t.Context(), logger)
		ctx = logging.AddOrganizationIDToContext(ctx, "42")

		logging.FromContext(ctx).WarnContext(ctx, "lookup")

		require.Equal(t, []map[string]any{
			{"level": "WARN", "msg": "lookup", "root": "yes", "organizationID": "42"},
		}, entries(t, buf))
	})

	t.Run("tracing handler is kept", func(t *testing.T) {
		t.Parallel()

		buf := &bytes.Buffer{}
		logger := slog.New(logging.NewTracingLogHandler(slog.NewJSONHandler(buf, nil)))
		ctx := logging.AddToContext(t.Context(), logger)
		ctx = logging.AddUserIDToContext(ctx, 1)

		require.IsType(t, logger.Handler(), logging.FromContext(ctx).Handler())
	})
}
