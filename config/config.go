// Package config implements the toolkit's on-disk configuration:
// key bindings, editing-mode default, color styling and digraph overrides,
// loaded from a JSON or YAML rc-file located by the usual XDG base
// directory search order. Key bindings dispatch to named actions the
// application wires up itself, styling goes through output.StyleSet rather
// than a bespoke Attribute bitfield, and EditingMode/DigraphOverrides
// configure the Vi key-sequence state machine and its digraph table.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/relstor/ptk/keyseq"
	"github.com/relstor/ptk/output"
)

// EditingMode selects the default key-sequence dispatch style: Emacs-style
// bindings active immediately, or Vi-style with its Insert/Normal mode
// state machine.
type EditingMode string

const (
	EditingModeEmacs EditingMode = "emacs"
	EditingModeVi    EditingMode = "vi"
)

func (m *EditingMode) unmarshal(s string) error {
	switch s {
	case "", "emacs":
		*m = EditingModeEmacs
	case "vi":
		*m = EditingModeVi
	default:
		return fmt.Errorf("invalid EditingMode value %q: must be %q or %q", s, EditingModeEmacs, EditingModeVi)
	}
	return nil
}

// UnmarshalText implements encoding.TextUnmarshaler (used by JSON/YAML decoders).
func (m *EditingMode) UnmarshalText(b []byte) error {
	return m.unmarshal(string(b))
}

// UnmarshalFlag lets a future CLI flag parser decode this value directly
// from a command-line argument, the same convention go-flags uses.
func (m *EditingMode) UnmarshalFlag(s string) error {
	return m.unmarshal(s)
}

// ColorMode specifies how the renderer handles ANSI color codes.
type ColorMode string

const (
	ColorModeAuto ColorMode = "auto"
	ColorModeNone ColorMode = "none"
)

func (c *ColorMode) unmarshal(s string) error {
	switch s {
	case "", "auto":
		*c = ColorModeAuto
	case "none":
		*c = ColorModeNone
	default:
		return fmt.Errorf("invalid Color value %q: must be %q or %q", s, ColorModeAuto, ColorModeNone)
	}
	return nil
}

// UnmarshalText implements encoding.TextUnmarshaler (used by JSON/YAML decoders).
func (c *ColorMode) UnmarshalText(b []byte) error {
	return c.unmarshal(string(b))
}

// UnmarshalFlag lets a future CLI flag parser decode this value directly
// from a command-line argument, the same convention go-flags uses.
func (c *ColorMode) UnmarshalFlag(s string) error {
	return c.unmarshal(s)
}

// Config holds all the data that can be configured in the external
// configuration file.
type Config struct {
	// Keymap maps a chord string (e.g. "C-x,C-c") to the name of an
	// application-defined action. The strings are stored as given; this
	// package does not parse them.
	Keymap map[string]string `json:"Keymap" yaml:"Keymap"`

	EditingMode EditingMode        `json:"EditingMode" yaml:"EditingMode"`
	Style       output.StyleSet   `json:"Style" yaml:"Style"`
	Prompt      string            `json:"Prompt" yaml:"Prompt"`
	Layout      LayoutOrientation `json:"Layout" yaml:"Layout"`
	Color       ColorMode         `json:"Color" yaml:"Color"`

	// Height specifies the inline render height in lines or percentage
	// (e.g. "10", "50%"). When set, the application renders inline instead
	// of using the terminal's alternate screen buffer.
	Height string `json:"Height" yaml:"Height"`

	// HistoryBound caps the number of retained History entries; 0 means
	// unbounded. HistoryDedupe moves a re-entered history line to the
	// most-recent position instead of keeping both copies.
	HistoryBound  int  `json:"HistoryBound" yaml:"HistoryBound"`
	HistoryDedupe bool `json:"HistoryDedupe" yaml:"HistoryDedupe"`

	// DigraphOverrides extends the built-in RFC-1345 digraph table with
	// additional or replacement two-character mnemonics, applied by
	// ApplyDigraphs. Each key must be a 2-rune mnemonic, each value a
	// single-rune expansion.
	DigraphOverrides map[string]string `json:"DigraphOverrides" yaml:"DigraphOverrides"`
}

// DefaultPrompt is the default prompt string shown before the input line.
const DefaultPrompt = "> "

var homedirFunc = defaultHomedir

func defaultHomedir() (string, error) {
	home := os.Getenv("HOME")
	if home == "" {
		return "", errors.New("environment variable HOME not set")
	}
	return home, nil
}

// Init initializes the Config with default values.
func (c *Config) Init() error {
	c.Keymap = make(map[string]string)
	c.EditingMode = EditingModeEmacs
	c.Style = output.NewStyleSet()
	c.Prompt = DefaultPrompt
	c.Layout = DefaultLayoutOrientation
	return nil
}

// ApplyDigraphs registers every entry in DigraphOverrides with the keyseq
// package's digraph table. Entries that aren't exactly a 2-rune mnemonic
// mapping to a 1-rune expansion are skipped; ApplyDigraphs reports the
// first such error but still applies the rest.
func (c *Config) ApplyDigraphs() error {
	var firstErr error
	for mnemonic, expansion := range c.DigraphOverrides {
		runes := []rune(mnemonic)
		exp := []rune(expansion)
		if len(runes) != 2 || len(exp) != 1 {
			if firstErr == nil {
				firstErr = fmt.Errorf("invalid digraph override %q -> %q: mnemonic must be 2 runes, expansion must be 1 rune", mnemonic, expansion)
			}
			continue
		}
		keyseq.RegisterDigraph(runes[0], runes[1], exp[0])
	}
	return firstErr
}

// ReadFilename reads the config from the given file, and does the
// appropriate processing, if any.
func (c *Config) ReadFilename(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("failed to open file %s: %w", filename, err)
	}
	defer f.Close()

	switch ext := filepath.Ext(filename); ext {
	case ".yaml", ".yml":
		if err := yaml.NewDecoder(f).Decode(c); err != nil {
			return fmt.Errorf("failed to decode YAML: %w", err)
		}
	default:
		if err := json.NewDecoder(f).Decode(c); err != nil {
			return fmt.Errorf("failed to decode JSON: %w", err)
		}
	}

	if c.Layout != "" && !IsValidLayoutOrientation(c.Layout) {
		return fmt.Errorf("invalid layout orientation: %s", c.Layout)
	}

	return nil
}

// Locator locates a config file in a given directory.
type Locator interface {
	Locate(string) (string, error)
}

// LocatorFunc is a function that implements Locator.
type LocatorFunc func(string) (string, error)

// Locate calls the underlying function.
func (f LocatorFunc) Locate(dir string) (string, error) {
	return f(dir)
}

var configFilenames = []string{"config.json", "config.yaml", "config.yml"}

// appDirName is the XDG subdirectory name this package searches under.
const appDirName = "ptk"

// DefaultConfigLocator searches for a config file with one of the known
// filenames (config.json, config.yaml, config.yml) in the given directory.
var DefaultConfigLocator = LocatorFunc(func(dir string) (string, error) {
	for _, basename := range configFilenames {
		file := filepath.Join(dir, basename)
		if _, err := os.Stat(file); err == nil {
			return file, nil
		}
	}
	return "", fmt.Errorf("config file not found in %s", dir)
})

// LocateRcfile attempts to find the config file in various locations.
func LocateRcfile(locater Locator) (string, error) {
	// http://standards.freedesktop.org/basedir-spec/basedir-spec-latest.html
	//
	// Try in this order:
	//	  $XDG_CONFIG_HOME/ptk/config.{json,yaml,yml}
	//    $XDG_CONFIG_DIR/ptk/config.{json,yaml,yml} (where XDG_CONFIG_DIR is listed in $XDG_CONFIG_DIRS)
	//	  ~/.ptk/config.{json,yaml,yml}

	home, uErr := homedirFunc()

	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		if file, err := locater.Locate(filepath.Join(dir, appDirName)); err == nil {
			return file, nil
		}
	} else if uErr == nil {
		if file, err := locater.Locate(filepath.Join(home, ".config", appDirName)); err == nil {
			return file, nil
		}
	}

	if dirs := os.Getenv("XDG_CONFIG_DIRS"); dirs != "" {
		for dir := range strings.SplitSeq(dirs, fmt.Sprintf("%c", filepath.ListSeparator)) {
			if file, err := locater.Locate(filepath.Join(dir, appDirName)); err == nil {
				return file, nil
			}
		}
	}

	if uErr == nil {
		if file, err := locater.Locate(filepath.Join(home, "."+appDirName)); err == nil {
			return file, nil
		}
	}

	return "", errors.New("config file not found")
}
