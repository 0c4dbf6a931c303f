package bitvec

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	l.WithDimension(8).LogAllocate(8, 1)
	assert.Contains(t, buf.String(), `"msg":"storage allocated"`)
	assert.Contains(t, buf.String(), `"dimension":8`)

	buf.Reset()
	l.LogAdjust(8, 16, errors.New("boom"))
	assert.Contains(t, buf.String(), `"level":"WARN"`)
	assert.Contains(t, buf.String(), `"error":"boom"`)

	buf.Reset()
	l.LogDisplace(4, 2, 8)
	assert.Contains(t, buf.String(), `"offset":2`)
}

func TestNoopLogger(t *testing.T) {
	l := NoopLogger()
	assert.False(t, l.Enabled(context.Background(), slog.LevelError))
	l.LogExtend(1, 2)
}

func TestMakeLogsAllocation(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	target := MustMake(false, 64, WithLogger(l))
	_ = MustMake(false, 8, DisplacedTo(target, 4), WithLogger(l))

	assert.Contains(t, buf.String(), "storage allocated")
	assert.Contains(t, buf.String(), "displaced vector created")
}

func TestLevelLoggers(t *testing.T) {
	ctx := context.Background()

	j := NewJSONLogger(slog.LevelWarn)
	assert.True(t, j.Enabled(ctx, slog.LevelWarn))
	assert.False(t, j.Enabled(ctx, slog.LevelInfo))

	txt := NewTextLogger(slog.LevelDebug)
	assert.True(t, txt.Enabled(ctx, slog.LevelDebug))

	v := MustMake(false, 4, Adjustable(), WithLogger(j))
	assert.NoError(t, v.Adjust(false, 8))
}
