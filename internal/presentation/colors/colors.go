// Package colors resolves label display colors from per-category TOML files.
package colors

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/wakatools/wakaview/internal/core/model"
	"github.com/wakatools/wakaview/internal/util"
)

// FallbackLabel is the palette key consulted for any label without its own
// entry, including the synthetic bucket produced by unification.
const FallbackLabel = "Other"

const defaultColor = "#9E9E9E"

// Palette maps label names to hex colors for one category.
type Palette struct {
	entries map[string]string
}

type colorEntry struct {
	Color string `toml:"color"`
}

// NewPalette builds a palette from an explicit label→hex mapping.
func NewPalette(entries map[string]string) *Palette {
	copied := make(map[string]string, len(entries))
	for k, v := range entries {
		copied[k] = v
	}
	return &Palette{entries: copied}
}

// Load reads <dir>/<category>.toml, e.g. languages.toml. A missing file is
// not an error: the built-in defaults for the category are used instead.
// A file that exists but does not parse is an error.
func Load(dir string, category model.Category) (*Palette, error) {
	palette := NewPalette(defaults[category])
	if dir == "" {
		return palette, nil
	}

	path := filepath.Join(dir, category.String()+".toml")
	var decoded map[string]colorEntry
	if _, err := toml.DecodeFile(path, &decoded); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			util.LogDebug(fmt.Sprintf("No color file at %s, using built-in palette", path))
			return palette, nil
		}
		return nil, fmt.Errorf("load color file %s: %w", path, err)
	}

	for label, entry := range decoded {
		if entry.Color != "" {
			palette.entries[label] = entry.Color
		}
	}
	return palette, nil
}

// Color returns the hex color for a label, falling back to the "Other"
// entry and finally to a neutral gray.
func (p *Palette) Color(label string) string {
	if c, ok := p.entries[label]; ok {
		return c
	}
	if c, ok := p.entries[FallbackLabel]; ok {
		return c
	}
	return defaultColor
}

// Built-in palettes, keyed the way WakaTime names labels. Deliberately
// small: anything unlisted shares the fallback color.
var defaults = map[model.Category]map[string]string{
	model.CategoryLanguages: {
		"Python":     "#3572A5",
		"Go":         "#00ADD8",
		"JavaScript": "#F1E05A",
		"TypeScript": "#3178C6",
		"HTML":       "#E34C26",
		"CSS":        "#563D7C",
		"C":          "#555555",
		"C++":        "#F34B7D",
		"C#":         "#178600",
		"Java":       "#B07219",
		"Rust":       "#DEA584",
		"Shell":      "#89E051",
		"Markdown":   "#083FA1",
		"JSON":       "#292929",
		"YAML":       "#CB171E",
		"Other":      "#9E9E9E",
	},
	model.CategoryEditors: {
		"VS Code":      "#0078D7",
		"Vim":          "#019733",
		"Neovim":       "#57A143",
		"IntelliJ":     "#FE2857",
		"PyCharm":      "#21D789",
		"Sublime Text": "#FF9800",
		"Emacs":        "#7F5AB6",
		"Other":        "#9E9E9E",
	},
	model.CategoryOperatingSystems: {
		"Linux":   "#FCC624",
		"Mac":     "#A2AAAD",
		"Windows": "#0078D6",
		"Other":   "#9E9E9E",
	},
}
