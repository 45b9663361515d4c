package image

import (
	_ "embed"
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// ModelSpec describes the constraints attached to one model.
type ModelSpec struct {
	Name        string   `yaml:"name"`
	Label       string   `yaml:"label"`
	Dimensions  []string `yaml:"dimensions"`
	HD          bool     `yaml:"hd"`
	SingleImage bool     `yaml:"single_image"`
}

// Catalog is the read-only set of models, qualities and styles accepted by the validator.
type Catalog struct {
	Qualities []string    `yaml:"qualities"`
	Styles    []string    `yaml:"styles"`
	Models    []ModelSpec `yaml:"models"`
}

var defaultCatalog = mustLoadCatalog(catalogYAML)

// DefaultCatalog returns the embedded catalog.
func DefaultCatalog() *Catalog {
	return defaultCatalog
}

// ParseCatalog decodes a catalog document.
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse image catalog: %w", err)
	}
	if len(c.Models) == 0 {
		return nil, fmt.Errorf("parse image catalog: no models defined")
	}
	for _, m := range c.Models {
		if m.Name == "" || len(m.Dimensions) == 0 {
			return nil, fmt.Errorf("parse image catalog: model %q is incomplete", m.Name)
		}
	}
	return &c, nil
}

func mustLoadCatalog(data []byte) *Catalog {
	c, err := ParseCatalog(data)
	if err != nil {
		panic(err)
	}
	return c
}

// Model looks a model up by name, ignoring case.
func (c *Catalog) Model(name string) (ModelSpec, bool) {
	for _, m := range c.Models {
		if strings.EqualFold(m.Name, name) {
			return m, true
		}
	}
	return ModelSpec{}, false
}

// ModelNames returns the model names in catalog order.
func (c *Catalog) ModelNames() []string {
	names := make([]string, 0, len(c.Models))
	for _, m := range c.Models {
		names = append(names, m.Name)
	}
	return names
}

// HasQuality reports whether q is an accepted quality. Matching is exact.
func (c *Catalog) HasQuality(q string) bool {
	return slices.Contains(c.Qualities, q)
}

// HasStyle reports whether s is an accepted style. Matching is exact.
func (c *Catalog) HasStyle(s string) bool {
	return slices.Contains(c.Styles, s)
}

// SupportsDimension reports whether "WxH" is allowed for the model.
func (m ModelSpec) SupportsDimension(width, height int) bool {
	return slices.Contains(m.Dimensions, fmt.Sprintf("%dx%d", width, height))
}
