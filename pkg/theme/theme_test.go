package theme_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/prettiprint/pkg/errors"
	"github.com/arthur-debert/prettiprint/pkg/theme"
)

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"dark", "light", "mono"}, theme.Names())
}

func TestResolvePresetsComplete(t *testing.T) {
	// Every preset must define the full required role set plus all four
	// non-DEBUG event roles (the built-ins ship them even though
	// resolution would fall back to "info").
	eventRoles := []string{"event.INFO", "event.SUCCESS", "event.WARNING", "event.ERROR"}

	for _, name := range theme.Names() {
		t.Run(name, func(t *testing.T) {
			m, err := theme.Resolve(name, nil)
			require.NoError(t, err)

			for _, role := range theme.RequiredRoles {
				assert.Contains(t, m, role, "preset %q missing role %q", name, role)
				assert.NotEmpty(t, m[role])
			}
			for _, role := range eventRoles {
				assert.Contains(t, m, role, "preset %q missing role %q", name, role)
			}
		})
	}
}

func TestResolveCaseInsensitive(t *testing.T) {
	for _, name := range []string{"dark", "Dark", "DARK"} {
		m, err := theme.Resolve(name, nil)
		require.NoError(t, err)
		assert.Equal(t, "bold green", m["success"])
	}
}

func TestResolveOverrides(t *testing.T) {
	overrides := theme.Map{
		"success":     "bold white on green", // replaces a preset role
		"app.special": "italic magenta",      // brand-new role
	}

	m, err := theme.Resolve("dark", overrides)
	require.NoError(t, err)

	assert.Equal(t, "bold white on green", m["success"])
	assert.Equal(t, "italic magenta", m["app.special"])

	// Roles not overridden keep the preset value.
	assert.Equal(t, "bold cyan", m["info"])
	assert.Equal(t, "cyan", m["panel"])
}

func TestResolveReturnsFreshMap(t *testing.T) {
	first, err := theme.Resolve("mono", nil)
	require.NoError(t, err)
	first["success"] = "mutated"

	second, err := theme.Resolve("mono", nil)
	require.NoError(t, err)
	assert.Equal(t, "bold", second["success"], "presets must be immutable")
}

func TestResolveUnknownTheme(t *testing.T) {
	_, err := theme.Resolve("neon", nil)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownTheme))

	// The message must enumerate the valid identifiers.
	assert.Contains(t, err.Error(), "dark")
	assert.Contains(t, err.Error(), "light")
	assert.Contains(t, err.Error(), "mono")
	assert.Contains(t, err.Error(), "neon")
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := "success: \"bold white on #10b981\"\nbanner: \"reverse\"\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	m, err := theme.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "bold white on #10b981", m["success"])
	assert.Equal(t, "reverse", m["banner"])
}

func TestLoadFileErrors(t *testing.T) {
	_, err := theme.LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrThemeLoad))

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("a:\n- b\n c: d\n"), 0o644))
	_, err = theme.LoadFile(bad)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrThemeParse))
}
