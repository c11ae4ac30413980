// Package theme holds the named style presets and resolves a theme name
// plus optional per-role overrides into a concrete style mapping.
//
// Presets are declared in an embedded themes.yaml so the full role set for
// each theme lives in one reviewable place, mirroring how applications can
// ship their own theme files and load them with LoadFile.
package theme

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/prettiprint/pkg/errors"
)

// Map is a style mapping from role name to descriptor string.
// Themes are open maps: consumers may add roles of their own.
type Map map[string]string

// RequiredRoles is the role set every built-in preset must define.
// The event.* roles are not listed because resolution falls back to
// "info" when an event role is absent.
var RequiredRoles = []string{
	"accent",
	"rule",
	"success",
	"info",
	"warning",
	"error",
	"panel",
	"header",
	"table.header",
	"key",
	"value",
	"code.border",
}

// config mirrors the themes.yaml layout.
type config struct {
	Themes map[string]Map `yaml:"themes"`
}

//go:embed themes.yaml
var embeddedThemes []byte

// presets holds the immutable built-in themes, keyed by lower-case name.
var presets map[string]Map

func init() {
	var cfg config
	if err := yaml.Unmarshal(embeddedThemes, &cfg); err != nil {
		panic(fmt.Sprintf("theme: embedded themes.yaml is invalid: %v", err))
	}
	if len(cfg.Themes) == 0 {
		panic("theme: embedded themes.yaml defines no themes")
	}

	presets = make(map[string]Map, len(cfg.Themes))
	for name, m := range cfg.Themes {
		// A preset missing a required role is a defect in themes.yaml,
		// not a runtime condition.
		for _, role := range RequiredRoles {
			if _, ok := m[role]; !ok {
				panic(fmt.Sprintf("theme: preset %q is missing role %q", name, role))
			}
		}
		presets[strings.ToLower(name)] = m
	}
}

// Names returns the sorted identifiers of the built-in presets.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve merges the named preset with the given overrides and returns the
// result as a fresh Map. The name match is case-insensitive. Overrides win
// role-by-role and may introduce roles the preset does not define.
//
// An unrecognized name yields an ErrUnknownTheme error naming the valid set;
// nothing else can fail.
func Resolve(name string, overrides Map) (Map, error) {
	preset, ok := presets[strings.ToLower(name)]
	if !ok {
		return nil, errors.Newf(errors.ErrUnknownTheme,
			"unknown theme %q, choose from: %s", name, strings.Join(Names(), ", ")).
			WithDetail("theme", name).
			WithDetail("valid", Names())
	}

	merged := make(Map, len(preset)+len(overrides))
	for role, descriptor := range preset {
		merged[role] = descriptor
	}
	for role, descriptor := range overrides {
		merged[role] = descriptor
	}
	return merged, nil
}

// LoadFile reads a role→descriptor mapping from a YAML file. The file uses
// a flat layout (role: descriptor), suitable for passing to Resolve as
// overrides or to console.Options.CustomStyles.
func LoadFile(path string) (Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrThemeLoad, "failed to read theme file %s", path)
	}

	var m Map
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrapf(err, errors.ErrThemeParse, "failed to parse theme file %s", path)
	}
	return m, nil
}
