package errors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/fairscan/fairscan/pkg/errors"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestNotFoundError(t *testing.T) {
	err := pkgerrors.NewNotFoundError("player", "asym_knight")
	assert.Equal(t, "player asym_knight not found", err.Error())
	assert.True(t, errors.Is(err, pkgerrors.ErrNotFound))
	assert.True(t, pkgerrors.IsNotFound(err))
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := pkgerrors.NewValidationError("name", "", "must not be empty")
		assert.Equal(t, "validation failed for field name: must not be empty", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrInvalidInput))
		assert.True(t, pkgerrors.IsValidationError(err))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{Message: "top level must be a list"}
		assert.Equal(t, "validation failed: top level must be a list", err.Error())
	})
}

func TestParseError(t *testing.T) {
	cause := errors.New("unexpected token")
	err := pkgerrors.NewParseError("yaml", "scans.yaml", "bad document", cause)

	assert.Equal(t, "parse error in yaml file scans.yaml: bad document", err.Error())
	assert.True(t, errors.Is(err, cause))
	assert.True(t, errors.Is(err, pkgerrors.ErrInvalidInput))
}

func TestIOError(t *testing.T) {
	cause := errors.New("permission denied")
	err := pkgerrors.NewIOError("read", "/tmp/scans.yaml", cause)

	assert.Equal(t, "IO error during read of /tmp/scans.yaml: permission denied", err.Error())
	assert.True(t, errors.Is(err, cause))
}

func TestConfigError(t *testing.T) {
	err := pkgerrors.NewConfigError("viper", "bad config file", nil)
	assert.Equal(t, "configuration error in viper: bad config file", err.Error())
}

func TestWrappingThroughFmt(t *testing.T) {
	inner := pkgerrors.NewParseError("json", "scans.json", "truncated", nil)
	outer := fmt.Errorf("loading inputs: %w", inner)

	var parseErr *pkgerrors.ParseError
	require.True(t, errors.As(outer, &parseErr))
	assert.Equal(t, "scans.json", parseErr.File)
}
