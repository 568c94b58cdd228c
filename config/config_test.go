package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "termchart.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault_isValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	iv, err := cfg.Interval()
	require.NoError(t, err)
	assert.Equal(t, -6.0, iv.From())
	assert.Equal(t, 6.0, iv.To())
}

func TestLoad_emptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_overridesDefaults(t *testing.T) {
	path := writeConfig(t, `
func: cos
x: "-3.14:3.14"
width: 80
axes: true
demo:
  funcs: [tan, saw]
  pause: 250ms
  loop: true
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "cos", cfg.Func)
	assert.Equal(t, uint(80), cfg.Width)
	assert.Equal(t, uint(40), cfg.Height, "unset fields keep their default")
	assert.True(t, cfg.Axes)
	assert.Equal(t, []string{"tan", "saw"}, cfg.Demo.Funcs)
	assert.Equal(t, 250*time.Millisecond, cfg.Demo.Pause)
	assert.True(t, cfg.Demo.Loop)
	assert.Equal(t, "*", cfg.Mark)
}

func TestLoad_invalid(t *testing.T) {
	for name, content := range map[string]string{
		"width too large": "width: 2000",
		"unknown func":    "func: nope",
		"bad interval":    `x: "6:-6"`,
		"nan interval":    `x: "nan:1"`,
		"inf interval":    `x: "-inf:inf"`,
		"overflow":        `x: "-1e308:1e308"`,
		"nan origin":      "origin: .nan",
		"inf origin":      "origin: .inf",
		"inf cell aspect": "cell_aspect: .inf",
		"wide glyph":      `mark: "**"`,
		"empty demo":      "demo:\n  funcs: []",
		"unknown demo fn": "demo:\n  funcs: [sin, nope]",
		"negative pause":  "demo:\n  pause: -1s",
		"not yaml":        "width: [",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, content))
			assert.Error(t, err)
		})
	}
}

func TestLoad_missingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestConfig_Size(t *testing.T) {
	cfg := Default()
	w, h := cfg.Size(200, 60)
	assert.Equal(t, uint(100), w)
	assert.Equal(t, uint(40), h)

	cfg.Width, cfg.Height = 0, 0
	w, h = cfg.Size(200, 60)
	assert.Equal(t, uint(200), w)
	assert.Equal(t, uint(59), h)

	w, h = cfg.Size(5000, 5000)
	assert.Equal(t, uint(1024), w)
	assert.Equal(t, uint(1024), h)

	w, h = cfg.Size(0, 0)
	assert.Zero(t, w)
	assert.Zero(t, h)
}
