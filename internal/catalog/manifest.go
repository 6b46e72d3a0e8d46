package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/Paintersrp/studio/internal/organizer"
)

type manifest struct {
	Categories []manifestCategory `yaml:"categories"`
	Modes      []manifestMode     `yaml:"modes"`
}

type manifestCategory struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
}

type manifestMode struct {
	ID          string `yaml:"id"`
	Label       string `yaml:"label"`
	Icon        string `yaml:"icon"`
	Description string `yaml:"description"`
	Category    string `yaml:"category"`
	Doc         string `yaml:"doc"`
}

// Load returns the built-in catalog overlaid with the manifest at path.
// An empty or absent manifest leaves the defaults unchanged; a manifest
// that fails to parse is an error rather than a silent fallback, since
// a user who wrote one wants to know it was ignored.
func Load(path string) (*Catalog, error) {
	cat := Default()
	if path == "" {
		return cat, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cat, nil
		}
		return nil, fmt.Errorf("reading catalog manifest: %w", err)
	}

	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing catalog manifest: %w", err)
	}

	cat.apply(m)
	return cat, nil
}

func (c *Catalog) apply(m manifest) {
	for _, mc := range m.Categories {
		if mc.ID == "" {
			continue
		}
		if i := c.categoryIndex(mc.ID); i >= 0 {
			if mc.Label != "" {
				c.Categories[i].Label = mc.Label
			}
			continue
		}
		label := mc.Label
		if label == "" {
			label = mc.ID
		}
		c.Categories = append(c.Categories, Category{ID: mc.ID, Label: label})
	}

	for _, mm := range m.Modes {
		if mm.ID == "" {
			continue
		}
		if i := c.modeIndex(mm.ID); i >= 0 {
			mode := &c.Modes[i]
			if mm.Label != "" {
				mode.Label = mm.Label
			}
			if mm.Icon != "" {
				mode.Icon = mm.Icon
			}
			if mm.Description != "" {
				mode.Description = mm.Description
			}
			if mm.Doc != "" {
				mode.Doc = mm.Doc
			}
			if mm.Category != "" {
				mode.CategoryID = c.resolveCategory(mm.Category)
			}
			continue
		}

		mode := Mode{
			ID:          mm.ID,
			Label:       mm.Label,
			Icon:        mm.Icon,
			Description: mm.Description,
			CategoryID:  c.resolveCategory(mm.Category),
			Doc:         mm.Doc,
		}
		if mode.Label == "" {
			mode.Label = mode.ID
		}
		if mode.Description == "" && mode.Doc != "" {
			mode.Description = Summary(mode.Doc)
		}
		c.Modes = append(c.Modes, mode)
	}
}

func (c *Catalog) categoryIndex(id string) int {
	for i := range c.Categories {
		if c.Categories[i].ID == id {
			return i
		}
	}
	return -1
}

func (c *Catalog) modeIndex(id string) int {
	for i := range c.Modes {
		if c.Modes[i].ID == id {
			return i
		}
	}
	return -1
}

// resolveCategory maps a manifest category reference to a known id,
// sending unknown and empty references to the uncategorized bucket.
func (c *Catalog) resolveCategory(id string) string {
	if id == "" || id == organizer.UncategorizedID {
		return organizer.UncategorizedID
	}
	if c.categoryIndex(id) >= 0 {
		return id
	}
	return organizer.UncategorizedID
}
