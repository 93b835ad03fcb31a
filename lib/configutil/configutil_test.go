package configutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	BaseUrl   string `json:"base_url"`
	OutputDir string `json:"output_dir"`
	Verbose   bool   `json:"verbose"`
}

func writeFile(t testing.TB, path, contents string) {
	err := os.WriteFile(path, []byte(contents), 0600)
	if err != nil {
		t.Fatal(err)
	}
}

func chdir(t testing.TB, dir string) {
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	err = os.Chdir(dir)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		os.Chdir(prev)
	})
}

func TestReadConfigLocalOverride(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "app.json5"), `{
		// comments are allowed
		base_url: "https://example.com/users",
		output_dir: "out",
	}`)
	writeFile(t, filepath.Join(dir, "app.local.json5"), `{ output_dir: "local-out", verbose: true }`)

	cfg, err := ReadConfig[testConfig](filepath.Join(dir, "app.json5"))
	require.NoError(t, err)
	require.Equal(t, testConfig{
		BaseUrl:   "https://example.com/users",
		OutputDir: "local-out",
		Verbose:   true,
	}, cfg)
}

func TestReadConfigLocalResetsToFalse(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "app.json5"), `{ base_url: "https://example.com/users", verbose: true }`)
	writeFile(t, filepath.Join(dir, "app.local.json5"), `{ verbose: false }`)

	cfg, err := ReadConfig[testConfig](filepath.Join(dir, "app.json5"))
	require.NoError(t, err)
	require.Equal(t, testConfig{BaseUrl: "https://example.com/users"}, cfg)
}

func TestReadConfigMissing(t *testing.T) {
	_, err := ReadConfig[testConfig](filepath.Join(t.TempDir(), "app.json5"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadConfigInvalid(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "app.json5"), `{ base_url: `)

	_, err := ReadConfig[testConfig](filepath.Join(dir, "app.json5"))
	require.Error(t, err)
	require.NotErrorIs(t, err, os.ErrNotExist)
}

func TestReadRecursively(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0777))
	writeFile(t, filepath.Join(root, "app.json5"), `{ base_url: "http://found" }`)

	chdir(t, nested)

	cfg, err := ReadRecursively[testConfig]("app.json5")
	require.NoError(t, err)
	require.Equal(t, "http://found", cfg.BaseUrl)
}

func TestReadOrDefault(t *testing.T) {
	root := t.TempDir()
	chdir(t, root)

	fallback := testConfig{BaseUrl: "http://default", OutputDir: "."}

	cfg, err := ReadOrDefault("missing-app.json5", fallback)
	require.NoError(t, err)
	require.Equal(t, fallback, cfg)

	writeFile(t, filepath.Join(root, "missing-app.json5"), `{ output_dir: "elsewhere" }`)
	cfg, err = ReadOrDefault("missing-app.json5", fallback)
	require.NoError(t, err)
	require.Equal(t, testConfig{BaseUrl: "http://default", OutputDir: "elsewhere"}, cfg)
}
