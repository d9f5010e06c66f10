package project

import (
	"path/filepath"
	"testing"

	"github.com/piwi3910/PickPack/internal/model"
)

func TestSaveAndLoadTemplates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "templates.json")

	store := model.NewTemplateStore()
	store.Add(model.NewOrderTemplate("Restock", "Weekly restock", model.BoxMedium, []string{"tablet_A_01", "reloj_B_01"}))

	if err := SaveTemplates(path, store); err != nil {
		t.Fatalf("SaveTemplates error: %v", err)
	}

	loaded, err := LoadTemplates(path)
	if err != nil {
		t.Fatalf("LoadTemplates error: %v", err)
	}

	if len(loaded.Templates) != 1 {
		t.Fatalf("expected 1 template, got %d", len(loaded.Templates))
	}
	if loaded.Templates[0].Name != "Restock" {
		t.Errorf("expected 'Restock', got %q", loaded.Templates[0].Name)
	}
	if loaded.Templates[0].Box != model.BoxMedium {
		t.Errorf("expected box M, got %s", loaded.Templates[0].Box)
	}
	if len(loaded.Templates[0].Items) != 2 {
		t.Errorf("expected 2 items, got %d", len(loaded.Templates[0].Items))
	}
}

func TestLoadTemplates_NotFound(t *testing.T) {
	store, err := LoadTemplates(filepath.Join(t.TempDir(), "nonexistent.json"))
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if len(store.Templates) != 0 {
		t.Errorf("expected empty store, got %d templates", len(store.Templates))
	}
}

func TestSaveTemplates_SkipsBuiltins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "templates.json")

	store, err := LoadWithBuiltins(path)
	if err != nil {
		t.Fatalf("LoadWithBuiltins error: %v", err)
	}
	store.Add(model.NewOrderTemplate("Mine", "", model.BoxSmall, []string{"pulsera_B_01"}))
	if err := SaveTemplates(path, store); err != nil {
		t.Fatalf("SaveTemplates error: %v", err)
	}

	user, err := LoadTemplates(path)
	if err != nil {
		t.Fatalf("LoadTemplates error: %v", err)
	}
	if len(user.Templates) != 1 || user.Templates[0].Name != "Mine" {
		t.Fatalf("expected only the user template on disk, got %v", user.Names())
	}

	all, err := LoadWithBuiltins(path)
	if err != nil {
		t.Fatalf("LoadWithBuiltins error: %v", err)
	}
	builtins := len(model.BuiltinTemplates())
	if len(all.Templates) != builtins+1 {
		t.Fatalf("expected %d templates, got %d", builtins+1, len(all.Templates))
	}
	if all.FindByName("sample-S") == nil {
		t.Error("expected built-in sample-S")
	}
	if all.Templates[builtins].Name != "Mine" {
		t.Errorf("expected user templates after built-ins, got %v", all.Names())
	}
}
