package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderTemplate is a named, reusable list of item identifiers for one box.
type OrderTemplate struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	CreatedAt   string   `json:"created_at" yaml:"created_at"`
	UpdatedAt   string   `json:"updated_at" yaml:"updated_at"`
	Box         BoxSize  `json:"box" yaml:"box"`
	Items       []string `json:"items" yaml:"items"`
	Builtin     bool     `json:"builtin,omitempty" yaml:"builtin,omitempty"`
}

// NewOrderTemplate creates a template with a fresh short ID.
func NewOrderTemplate(name, description string, box BoxSize, items []string) OrderTemplate {
	now := time.Now().UTC().Format(time.RFC3339)
	return OrderTemplate{
		ID:          uuid.New().String()[:8],
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
		Box:         box,
		Items:       copyItems(items),
	}
}

// Resolve turns the template's identifiers into catalog items.
func (t OrderTemplate) Resolve() ([]Item, error) {
	return NewItems(t.Items)
}

// TemplateStore holds a collection of order templates.
type TemplateStore struct {
	Templates []OrderTemplate `json:"templates" yaml:"templates"`
}

// NewTemplateStore creates an empty template store.
func NewTemplateStore() TemplateStore {
	return TemplateStore{
		Templates: []OrderTemplate{},
	}
}

// Add adds a template to the store.
func (ts *TemplateStore) Add(t OrderTemplate) {
	ts.Templates = append(ts.Templates, t)
}

// Remove removes a template by ID. Returns true if found and removed.
func (ts *TemplateStore) Remove(id string) bool {
	for i, t := range ts.Templates {
		if t.ID == id {
			ts.Templates = append(ts.Templates[:i], ts.Templates[i+1:]...)
			return true
		}
	}
	return false
}

// FindByID returns a pointer to the template with the given ID, or nil.
func (ts *TemplateStore) FindByID(id string) *OrderTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].ID == id {
			return &ts.Templates[i]
		}
	}
	return nil
}

// FindByName returns a pointer to the first template with the given name, or nil.
func (ts *TemplateStore) FindByName(name string) *OrderTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].Name == name {
			return &ts.Templates[i]
		}
	}
	return nil
}

// Names returns the template names in store order.
func (ts *TemplateStore) Names() []string {
	names := make([]string, len(ts.Templates))
	for i, t := range ts.Templates {
		names[i] = t.Name
	}
	return names
}

// BuiltinTemplates returns the sample orders shipped with the tool, one per box.
func BuiltinTemplates() []OrderTemplate {
	small := concat(
		run("tablet_A_01", 3),
		run("ereader_B_02", 1), run("ereader_A_02", 1),
		run("ereader_B_funda", 2), run("ereader_A_funda", 2),
		run("telefono_C_03", 1), run("telefono_A_02", 1), run("telefono_F_02", 1),
		run("telefono_D_01", 2), run("telefono_B_01", 1),
		run("reloj_B_01", 3), run("reloj_B_02", 2), run("reloj_B_01", 1),
		run("telefono_B_01", 2), run("telefono_D_funda", 2), run("telefono_B_funda", 1),
	)
	medium := concat(
		run("tablet_A_02", 2), run("tablet_A_funda", 2), run("tablet_A_01", 2),
		run("tablet_B_funda", 2), run("tablet_B_02", 2), run("tablet_B_funda", 2),
		run("tablet_D_funda", 2),
		run("ereader_A_02", 1), run("ereader_A_01", 1), run("ereader_B_01", 2),
		run("telefono_F_02", 1), run("telefono_D_01", 2), run("telefono_B_01", 4),
		run("telefono_D_01", 1),
	)
	large := concat(
		run("tablet_A_02", 3), run("tablet_C_02", 3), run("tablet_B_01", 3),
		run("tablet_A_01", 2), run("tablet_D_01", 1),
		run("tablet_A_funda", 2), run("tablet_B_funda", 2), run("tablet_A_funda", 4),
		run("ereader_B_01", 4), run("telefono_B_01", 6),
		run("pulsera_B_01", 12), run("telefono_B_funda", 6),
	)

	return []OrderTemplate{
		{ID: "sample-s", Name: "sample-S", Description: "Mixed devices for the small box", Box: BoxSmall, Items: small, Builtin: true},
		{ID: "sample-m", Name: "sample-M", Description: "Tablets and phones for the medium box", Box: BoxMedium, Items: medium, Builtin: true},
		{ID: "sample-l", Name: "sample-L", Description: "Bulk tablets and bracelets for the large box", Box: BoxLarge, Items: large, Builtin: true},
	}
}

func run(id string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = id
	}
	return out
}

func concat(runs ...[]string) []string {
	var out []string
	for _, r := range runs {
		out = append(out, r...)
	}
	return out
}

func copyItems(items []string) []string {
	if items == nil {
		return []string{}
	}
	cp := make([]string, len(items))
	copy(cp, items)
	return cp
}
