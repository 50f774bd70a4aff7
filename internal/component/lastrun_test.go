package component

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderLastRun(t *testing.T) {
	env := testEnv(t, nil)
	env.Settings.TimeFormat = "2006-01-02 15:04"

	var out strings.Builder
	require.NoError(t, RenderLastRun(&out, env))
	assert.Equal(t, "Last updated: 2024-01-02 03:04\n", out.String())
}
