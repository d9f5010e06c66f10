package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/PickPack/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent of testing.T.Chdir, Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestNewViper_DefaultsFromAppConfig(t *testing.T) {
	chdir(t, t.TempDir())
	app := model.DefaultAppConfig()
	app.DefaultBox = model.BoxMedium

	v, err := NewViper(app, "")
	require.NoError(t, err)
	cfg, err := Resolve(v)
	require.NoError(t, err)

	assert.Equal(t, "M", cfg.Box)
	assert.Equal(t, "strict", cfg.Overlap)
	assert.Equal(t, "text", cfg.LogFormat)

	s, err := cfg.Settings()
	require.NoError(t, err)
	assert.Equal(t, model.BoxMedium, s.Box)
}

func TestNewViper_FileAndEnvironmentOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pickpack.yaml")
	yaml := "box: L\noverlap: containment\nmax_iterations: 200\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))
	t.Setenv("PICKPACK_MAX_ITERATIONS", "300")

	v, err := NewViper(model.DefaultAppConfig(), path)
	require.NoError(t, err)
	cfg, err := Resolve(v)
	require.NoError(t, err)

	s, err := cfg.Settings()
	require.NoError(t, err)
	assert.Equal(t, model.BoxLarge, s.Box)
	assert.Equal(t, model.OverlapContainment, s.Overlap)
	assert.Equal(t, 300, s.MaxIterations, "environment beats the file")
}

func TestNewViper_ExplicitFileMissing(t *testing.T) {
	_, err := NewViper(model.DefaultAppConfig(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestConfigSettings_Invalid(t *testing.T) {
	_, err := Config{Box: "XL", Overlap: "strict"}.Settings()
	assert.ErrorIs(t, err, model.ErrUnknownBoxSize)

	_, err = Config{Box: "S", Overlap: "sideways"}.Settings()
	assert.Error(t, err)

	_, err = Config{Box: "S", MaxIterations: -1}.Settings()
	assert.Error(t, err)
}
