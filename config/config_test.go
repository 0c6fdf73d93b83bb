package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/require"

	"github.com/relstor/ptk/keyseq"
	"github.com/relstor/ptk/output"
)

func TestReadRC(t *testing.T) {
	txt := `
{
	"Keymap": {
		"C-j": "accept-line",
		"C-x,C-c": "quit"
	},
	"EditingMode": "vi",
	"Style": {
		"Basic": ["on_default", "default"],
		"Selected": ["underline", "on_cyan", "black"],
		"Query": ["yellow", "bold"],
		"Matched": ["cyan", "bold", "on_red"],
		"Prompt": ["green", "bold"]
	},
	"Prompt": "> "
}
`
	var cfg Config
	require.NoError(t, cfg.Init())
	require.NoError(t, json.Unmarshal([]byte(txt), &cfg))

	require.Equal(t, map[string]string{"C-j": "accept-line", "C-x,C-c": "quit"}, cfg.Keymap)
	require.Equal(t, EditingModeVi, cfg.EditingMode)
	require.Equal(t, "> ", cfg.Prompt)
	require.Equal(t, output.ColorCyan, cfg.Style.Matched.Foreground)
}

func TestReadRCYAML(t *testing.T) {
	txt := `
Keymap:
  C-j: accept-line
  "C-x,C-c": quit
EditingMode: vi
Style:
  Basic:
    - on_default
    - default
  Selected:
    - underline
    - on_cyan
    - black
  Query:
    - yellow
    - bold
  Matched:
    - cyan
    - bold
    - on_red
  Prompt:
    - green
    - bold
Prompt: "> "
`
	var cfg Config
	require.NoError(t, cfg.Init())
	require.NoError(t, yaml.Unmarshal([]byte(txt), &cfg))

	require.Equal(t, EditingModeVi, cfg.EditingMode)
	require.Equal(t, "> ", cfg.Prompt)
}

func TestLocateRcfile(t *testing.T) {
	dir := t.TempDir()

	homedirFunc = func() (string, error) {
		return dir, nil
	}
	defer func() { homedirFunc = defaultHomedir }()

	expected := []string{
		filepath.Join(dir, "ptk"),
		filepath.Join(dir, "1", "ptk"),
		filepath.Join(dir, "2", "ptk"),
		filepath.Join(dir, "3", "ptk"),
		filepath.Join(dir, ".ptk"),
	}

	i := 0
	locater := LocatorFunc(func(dir string) (string, error) {
		require.True(t, i <= len(expected)-1, "Got %d directories, only have %d", i+1, len(expected))
		require.Equal(t, expected[i], dir)
		i++
		return "", errors.New("not found")
	})

	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_CONFIG_DIRS", strings.Join(
		[]string{
			filepath.Join(dir, "1"),
			filepath.Join(dir, "2"),
			filepath.Join(dir, "3"),
		},
		fmt.Sprintf("%c", filepath.ListSeparator),
	))

	LocateRcfile(locater)

	expected[0] = filepath.Join(dir, ".config", "ptk")
	t.Setenv("XDG_CONFIG_HOME", "")
	i = 0
	LocateRcfile(locater)
}

func TestLocateRcfileYAML(t *testing.T) {
	dir := t.TempDir()

	cfgDir := filepath.Join(dir, ".ptk")
	require.NoError(t, os.MkdirAll(cfgDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cfgDir, "config.yaml"), []byte("{}"), 0o644))

	homedirFunc = func() (string, error) {
		return dir, nil
	}
	defer func() { homedirFunc = defaultHomedir }()

	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("XDG_CONFIG_DIRS", "")

	file, err := LocateRcfile(DefaultConfigLocator)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(cfgDir, "config.yaml"), file)
}

func TestEditingMode(t *testing.T) {
	t.Run("valid values via JSON", func(t *testing.T) {
		for _, tc := range []struct {
			input    string
			expected EditingMode
		}{
			{`{"EditingMode":"emacs"}`, EditingModeEmacs},
			{`{"EditingMode":"vi"}`, EditingModeVi},
			{`{}`, EditingModeEmacs},
		} {
			var cfg Config
			require.NoError(t, cfg.Init())
			require.NoError(t, json.Unmarshal([]byte(tc.input), &cfg))
			require.Equal(t, tc.expected, cfg.EditingMode)
		}
	})

	t.Run("invalid value via JSON", func(t *testing.T) {
		var cfg Config
		require.NoError(t, cfg.Init())
		err := json.Unmarshal([]byte(`{"EditingMode":"bogus"}`), &cfg)
		require.Error(t, err)
		require.Contains(t, err.Error(), "bogus")
	})

	t.Run("UnmarshalFlag", func(t *testing.T) {
		var m EditingMode
		require.NoError(t, m.UnmarshalFlag("vi"))
		require.Equal(t, EditingModeVi, m)

		require.NoError(t, m.UnmarshalFlag(""))
		require.Equal(t, EditingModeEmacs, m)

		require.Error(t, m.UnmarshalFlag("bogus"))
	})
}

func TestColorMode(t *testing.T) {
	t.Run("valid values via JSON", func(t *testing.T) {
		for _, tc := range []struct {
			input    string
			expected ColorMode
		}{
			{`{"Color":"auto"}`, ColorModeAuto},
			{`{"Color":"none"}`, ColorModeNone},
			{`{}`, ""},
		} {
			var cfg Config
			require.NoError(t, cfg.Init())
			require.NoError(t, json.Unmarshal([]byte(tc.input), &cfg))
			require.Equal(t, tc.expected, cfg.Color)
		}
	})

	t.Run("invalid value via JSON", func(t *testing.T) {
		var cfg Config
		require.NoError(t, cfg.Init())
		err := json.Unmarshal([]byte(`{"Color":"bogus"}`), &cfg)
		require.Error(t, err)
		require.Contains(t, err.Error(), "bogus")
	})

	t.Run("UnmarshalFlag valid values", func(t *testing.T) {
		var c ColorMode
		require.NoError(t, c.UnmarshalFlag("auto"))
		require.Equal(t, ColorModeAuto, c)

		require.NoError(t, c.UnmarshalFlag("none"))
		require.Equal(t, ColorModeNone, c)

		require.NoError(t, c.UnmarshalFlag(""))
		require.Equal(t, ColorModeAuto, c)
	})

	t.Run("UnmarshalFlag invalid value", func(t *testing.T) {
		var c ColorMode
		err := c.UnmarshalFlag("bogus")
		require.Error(t, err)
		require.Contains(t, err.Error(), "bogus")
	})
}

func TestReadFilenameYAML(t *testing.T) {
	dir := t.TempDir()
	yamlFile := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(yamlFile, []byte(`
Keymap:
  C-j: accept-line
Prompt: "> "
Layout: bottom-up
`), 0o644))

	var cfg Config
	require.NoError(t, cfg.Init())
	require.NoError(t, cfg.ReadFilename(yamlFile))
	require.Equal(t, map[string]string{"C-j": "accept-line"}, cfg.Keymap)
	require.Equal(t, LayoutBottomUp, cfg.Layout)
}

func TestReadFilenameRejectsInvalidLayout(t *testing.T) {
	dir := t.TempDir()
	yamlFile := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(yamlFile, []byte("Layout: sideways\n"), 0o644))

	var cfg Config
	require.NoError(t, cfg.Init())
	err := cfg.ReadFilename(yamlFile)
	require.Error(t, err)
	require.Contains(t, err.Error(), "sideways")
}

func TestApplyDigraphsRegistersOverride(t *testing.T) {
	var cfg Config
	require.NoError(t, cfg.Init())
	cfg.DigraphOverrides = map[string]string{"z!": "ź"}

	require.NoError(t, cfg.ApplyDigraphs())

	r, ok := keyseq.Lookup('z', '!')
	require.True(t, ok)
	require.Equal(t, 'ź', r)
}

func TestApplyDigraphsReportsInvalidEntry(t *testing.T) {
	var cfg Config
	require.NoError(t, cfg.Init())
	cfg.DigraphOverrides = map[string]string{"abc": "x"}

	err := cfg.ApplyDigraphs()
	require.Error(t, err)
}
