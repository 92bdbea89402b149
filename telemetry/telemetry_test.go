package telemetry

import (
	"context"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestFromContext(t *testing.T) {
	t.Run("DefaultsToNoOp", func(t *testing.T) {
		c := FromContext(context.Background())

		// The no-op collector must be safe to use.
		c.Start("anything").End()
		var sb strings.Builder
		c.Report(&sb)
		assert.Equal(t, sb.String(), "")
	})

	t.Run("ReturnsAttachedCollector", func(t *testing.T) {
		c := NewTimingCollector()
		ctx := WithCollector(context.Background(), c)
		assert.Equal[Collector](t, FromContext(ctx), c)
	})
}

func TestTimingCollectorReport(t *testing.T) {
	c := NewTimingCollector()

	c.Start("store.load").End()
	timer := c.Start("ledger.persist")
	timer.End()

	var sb strings.Builder
	c.Report(&sb)

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	assert.Equal(t, len(lines), 2)
	assert.True(t, strings.HasPrefix(lines[0], "store.load"))
	assert.True(t, strings.HasPrefix(lines[1], "ledger.persist"))
}
