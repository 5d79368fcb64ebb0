package app

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venvctl/internal/types"
)

func TestRenderFromSampleSpec(t *testing.T) {
	root, err := filepath.Abs(filepath.Join("..", ".."))
	require.NoError(t, err)
	specPath := filepath.Join(root, "fixtures", "env-sample.yaml")

	service := NewService()
	result, err := service.Render(t.Context(), RenderRequest{
		SpecPath: specPath,
		Platform: types.PlatformPosix,
	})
	require.NoError(t, err)
	assert.Contains(t, result.Script, `PY_PIN="3.11.6"`)
	assert.Contains(t, result.Script, "requirements-sample.txt")
}

func TestRenderRejectsUnknownPlatform(t *testing.T) {
	root, err := filepath.Abs(filepath.Join("..", ".."))
	require.NoError(t, err)
	specPath := filepath.Join(root, "fixtures", "env-sample.yaml")

	service := NewService()
	_, err = service.Render(t.Context(), RenderRequest{
		SpecPath: specPath,
		Platform: "beos",
	})
	require.Error(t, err)
}
