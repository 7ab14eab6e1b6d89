package config

import (
	"testing"

	"github.com/bhasha-lang/bhasha/internal/errors"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsBilingualWithNoRecursionOverride(t *testing.T) {
	cfg := Default()
	require.Equal(t, errors.Bilingual, cfg.ErrorLanguage)
	require.Zero(t, cfg.MaxRecursionDepth)
	require.Empty(t, cfg.File)
}
