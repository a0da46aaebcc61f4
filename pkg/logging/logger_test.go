package logging_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fairscan/fairscan/pkg/logging"
)

func TestNewWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf)

	logger.Info().Str("player", "kni9ht").Msg("reconciled")

	out := buf.String()
	assert.Contains(t, out, `"player":"kni9ht"`)
	assert.Contains(t, out, `"message":"reconciled"`)
}

func TestContextCarriesLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf)

	ctx := logging.WithLogger(context.Background(), &logger)
	logging.Ctx(ctx).Info().Msg("from context")

	assert.Contains(t, buf.String(), "from context")
}

func TestCtxFallsBackToDefault(t *testing.T) {
	assert.NotNil(t, logging.Ctx(context.Background()))
	assert.NotNil(t, logging.Ctx(nil)) //nolint:staticcheck // nil ctx fallback is part of the contract
}

func TestWithPlayerAddsField(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf)

	ctx := logging.WithLogger(context.Background(), &logger)
	ctx = logging.WithPlayer(ctx, "asym_knight")
	logging.Ctx(ctx).Info().Msg("scan")

	assert.Contains(t, buf.String(), `"player":"asym_knight"`)
}

func TestWithScanFileAndOperationAddFields(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf)

	ctx := logging.WithLogger(context.Background(), &logger)
	ctx = logging.WithScanFile(ctx, "scans.yaml")
	ctx = logging.WithOperation(ctx, "rank")
	logging.Ctx(ctx).Info().Msg("scan")

	assert.Contains(t, buf.String(), `"scan_file":"scans.yaml"`)
	assert.Contains(t, buf.String(), `"operation":"rank"`)
}

func TestTestLoggerCaptures(t *testing.T) {
	tl := logging.NewTestLogger(t)

	tl.Info().Msg("first")
	tl.Debug().Msg("second")

	assert.True(t, tl.Contains("first"))
	assert.Equal(t, 2, tl.Count())

	tl.Clear()
	assert.Equal(t, 0, tl.Count())
}
