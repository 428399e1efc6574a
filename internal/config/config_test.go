package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cristianoliveira/segbar/internal/colors"
	"github.com/cristianoliveira/segbar/internal/segment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupConfigDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_STATE_HOME", dir)
	colors.SetOutput(os.Stdout, &discard{})
	t.Cleanup(func() { colors.SetOutput(nil, nil) })
	return filepath.Join(dir, "segbar")
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(dir, FileModeDir))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), FileModeFile))
}

func TestLoadDefaults(t *testing.T) {
	setupConfigDir(t)
	Load()

	ctx := Current()

	assert.Equal(t, 4, ctx.SkipNoticeDuration)
	assert.InDelta(t, 0.003, ctx.MinSizeRatio, 1e-12)
	assert.InDelta(t, 0.006, ctx.MinSizeRatioLarger, 1e-12)
	assert.True(t, ctx.AutoSkip)
	assert.Equal(t, NoticeVisible, ctx.NoticeVisibility)
	assert.Equal(t, "default", Get("missing", "default"))
}

func TestLoadFromFile(t *testing.T) {
	dir := setupConfigDir(t)
	writeConfig(t, dir, `
skip_notice_duration = 7
min_size_ratio = 0.01
notice_visibility_mode = "faded-for-all"
auto_skip = false

[bar_types.sponsor]
color = "#123456"

[wiki_pages]
sponsor = "https://example.com/sponsor"
`)
	Load()

	ctx := Current()

	assert.Equal(t, 7, ctx.SkipNoticeDuration)
	assert.InDelta(t, 0.01, ctx.MinSizeRatio, 1e-12)
	assert.False(t, ctx.AutoSkip)
	assert.True(t, ctx.StartFaded(false))
	assert.Equal(t, "#123456", ctx.BarTypes["sponsor"].Color)
	assert.Equal(t, "0.7", ctx.BarTypes["sponsor"].Opacity)
	assert.Equal(t, "https://example.com/sponsor", ctx.WikiPages[segment.CategorySponsor])
}

func TestEnvOverridesFile(t *testing.T) {
	dir := setupConfigDir(t)
	writeConfig(t, dir, "skip_notice_duration = 7\n")
	t.Setenv("SEGBAR_SKIP_NOTICE_DURATION", "9")
	Load()

	assert.Equal(t, 9, Current().SkipNoticeDuration)
}

func TestConfigPathOverride(t *testing.T) {
	setupConfigDir(t)
	path := filepath.Join(t.TempDir(), "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte("skip_keybind = \"s\"\n"), FileModeFile))
	t.Setenv("SEGBAR_CONFIG_PATH", path)
	Load()

	assert.Equal(t, "s", Current().SkipKeybind)
}

func TestInvalidValuesFallBackToDefaults(t *testing.T) {
	setupConfigDir(t)
	t.Setenv("SEGBAR_SKIP_NOTICE_DURATION", "-3")
	t.Setenv("SEGBAR_MIN_SIZE_RATIO", "abc")
	t.Setenv("SEGBAR_NOTICE_VISIBILITY_MODE", "sometimes")
	t.Setenv("SEGBAR_AUTO_SKIP", "maybe")
	Load()

	ctx := Current()

	assert.Equal(t, 4, ctx.SkipNoticeDuration)
	assert.InDelta(t, 0.003, ctx.MinSizeRatio, 1e-12)
	assert.Equal(t, NoticeVisible, ctx.NoticeVisibility)
	assert.True(t, ctx.AutoSkip)
}

func TestBoolNormalization(t *testing.T) {
	setupConfigDir(t)
	t.Setenv("SEGBAR_SHOW_KEYBIND_HINT", "off")
	Load()

	assert.False(t, Current().ShowKeybindHint)
	assert.Equal(t, "false", Get("show_keybind_hint", ""))
}

func TestStartFaded(t *testing.T) {
	ctx := DefaultContext()
	assert.False(t, ctx.StartFaded(true))

	ctx.NoticeVisibility = NoticeFadedForAutoSkip
	assert.True(t, ctx.StartFaded(true))
	assert.False(t, ctx.StartFaded(false))
}

func TestWriteSample(t *testing.T) {
	setupConfigDir(t)
	Load()
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	require.NoError(t, WriteSample(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "skip_notice_duration = 4")
	assert.Contains(t, string(data), "[bar_types.sponsor]")
}

func TestRegisterValidatorPanicsOnDuplicate(t *testing.T) {
	assert.Panics(t, func() {
		RegisterValidator("skip_notice_duration", PositiveIntValidator())
	})
}
