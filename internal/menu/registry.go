package menu

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atomicstack/menu-stack/internal/panel"
)

// ErrInvalidCatalog wraps every validation failure.
var ErrInvalidCatalog = errors.New("invalid menu catalog")

// Catalog exposes lookup utilities for menu definitions.
type Catalog struct {
	Root  string        `yaml:"root" toml:"root" json:"root"`
	Menus []*Definition `yaml:"menus" toml:"menus" json:"menus"`

	byKind map[string]*Definition
}

// NewCatalog indexes the given definitions.
func NewCatalog(root string, menus ...*Definition) *Catalog {
	c := &Catalog{Root: root, Menus: menus}
	c.index()
	return c
}

func (c *Catalog) index() {
	c.byKind = make(map[string]*Definition, len(c.Menus))
	for _, def := range c.Menus {
		if def == nil {
			continue
		}
		def.Kind = strings.TrimSpace(def.Kind)
		if _, exists := c.byKind[def.Kind]; !exists {
			c.byKind[def.Kind] = def
		}
	}
}

// Find locates a definition by kind.
func (c *Catalog) Find(kind string) (*Definition, bool) {
	if c == nil {
		return nil, false
	}
	if c.byKind == nil {
		c.index()
	}
	def, ok := c.byKind[kind]
	return def, ok
}

// RootDefinition returns the definition the popup opens with.
func (c *Catalog) RootDefinition() (*Definition, bool) {
	return c.Find(c.Root)
}

// Template builds the panel template for kind.
func (c *Catalog) Template(kind string) (panel.Template, bool) {
	def, ok := c.Find(kind)
	if !ok {
		return panel.Template{}, false
	}
	return panel.Template{Kind: def.Kind, Title: def.DisplayTitle()}, true
}

// Kinds lists definition kinds in declaration order.
func (c *Catalog) Kinds() []string {
	kinds := make([]string, 0, len(c.Menus))
	for _, def := range c.Menus {
		if def != nil {
			kinds = append(kinds, def.Kind)
		}
	}
	return kinds
}

// Validate checks that the root exists, every target resolves, actions are
// known and item ids are unique per menu.
func (c *Catalog) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: nil catalog", ErrInvalidCatalog)
	}
	c.index()
	var problems []string
	seenKinds := make(map[string]struct{}, len(c.Menus))
	for i, def := range c.Menus {
		if def == nil {
			problems = append(problems, fmt.Sprintf("menu %d is empty", i))
			continue
		}
		if def.Kind == "" {
			problems = append(problems, fmt.Sprintf("menu %d has no kind", i))
			continue
		}
		if _, dup := seenKinds[def.Kind]; dup {
			problems = append(problems, fmt.Sprintf("menu %q declared twice", def.Kind))
		}
		seenKinds[def.Kind] = struct{}{}
		seenItems := make(map[string]struct{}, len(def.Items))
		for j := range def.Items {
			item := &def.Items[j]
			item.ID = strings.TrimSpace(item.ID)
			if item.ID == "" {
				problems = append(problems, fmt.Sprintf("menu %q item %d has no id", def.Kind, j))
				continue
			}
			if _, dup := seenItems[item.ID]; dup {
				problems = append(problems, fmt.Sprintf("menu %q item %q declared twice", def.Kind, item.ID))
			}
			seenItems[item.ID] = struct{}{}
			if strings.TrimSpace(item.Label) == "" {
				item.Label = item.ID
			}
			action, err := ParseAction(string(item.Action))
			if err != nil {
				problems = append(problems, fmt.Sprintf("menu %q item %q: %v", def.Kind, item.ID, err))
			}
			item.Action = action
			target := strings.TrimSpace(item.Target)
			item.Target = target
			if target != "" && action != ActionNone {
				problems = append(problems, fmt.Sprintf("menu %q item %q sets both target and action", def.Kind, item.ID))
			}
			if target != "" {
				if _, ok := c.byKind[target]; !ok {
					problems = append(problems, fmt.Sprintf("menu %q item %q targets unknown menu %q", def.Kind, item.ID, target))
				}
			}
		}
	}
	if _, ok := c.byKind[c.Root]; !ok {
		problems = append(problems, fmt.Sprintf("root menu %q not found", c.Root))
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidCatalog, strings.Join(problems, "; "))
	}
	return nil
}
