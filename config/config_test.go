package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebnyberg/cropbox/encode"
	"github.com/stretchr/testify/require"
)

func TestLoadMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cropbox.toml")
	err := os.WriteFile(path, []byte(`
format = "jpeg"
jpeg_quality = 500
max_display_width = 640.0
log_level = "debug"
`), 0644)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "jpeg", cfg.Format)
	require.Equal(t, encode.DefaultJPEGQuality, cfg.JPEGQuality)
	require.Equal(t, 640.0, cfg.MaxDisplayWidth)
	require.Equal(t, int64(1), cfg.Workers)

	f, err := cfg.OutputFormat()
	require.NoError(t, err)
	require.Equal(t, encode.JPEG, f)
	l, err := cfg.Level()
	require.NoError(t, err)
	require.Equal(t, slog.LevelDebug, l)
}

func TestLoadInvalid(t *testing.T) {
	dir := t.TempDir()
	for name, body := range map[string]string{
		"format.toml": `format = "heic"`,
		"level.toml":  `log_level = "loud"`,
		"syntax.toml": `format = `,
	} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(body), 0644))
		_, err := Load(path)
		require.Error(t, err, name)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cropbox.toml")
	cfg := Default()
	cfg.Format = "bmp.zst"
	cfg.TIFFDeflate = true
	cfg.Workers = 4
	require.NoError(t, cfg.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg, got)
}
