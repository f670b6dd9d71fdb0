package progress

import (
	"bytes"
	"context"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/witnet/witnet-evm/internal/usecase"
)

func TestSpinnerSink(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	sink := newSpinnerSink(&buf)
	ctx := context.Background()

	sink.OnProgress(ctx, usecase.ProgressEvent{Stage: "probing", Message: "Probing WitOracle", Current: 1, Total: 3, Spinner: true})
	assert.Equal(t, "probing", sink.Stage())
	assert.Contains(t, sink.spinner.Suffix, "Probing WitOracle")
	assert.Contains(t, sink.spinner.Suffix, "(1/3)")

	sink.Info("connected")
	sink.Error("failed")

	sink.OnProgress(ctx, usecase.ProgressEvent{Stage: "done"})
	assert.False(t, sink.spinner.Active())
	assert.Equal(t, "done", sink.Stage())

	out := buf.String()
	assert.Contains(t, out, "connected")
	assert.Contains(t, out, "failed")
}

func TestNopSink(t *testing.T) {
	sink := NewNopSink()
	assert.NotPanics(t, func() {
		sink.OnProgress(context.Background(), usecase.ProgressEvent{Spinner: true})
		sink.Info("x")
		sink.Error("y")
	})
}
