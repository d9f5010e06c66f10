package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/piwi3910/PickPack/internal/model"
)

// DefaultTemplatePath returns the default file path for the templates store.
// This is located at ~/.pickpack/templates.json.
func DefaultTemplatePath() string {
	return filepath.Join(DefaultConfigDir(), "templates.json")
}

// SaveTemplates writes the user templates to a JSON file. Built-in templates
// are never written.
func SaveTemplates(path string, store model.TemplateStore) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	user := model.NewTemplateStore()
	for _, t := range store.Templates {
		if !t.Builtin {
			user.Add(t)
		}
	}
	data, err := json.MarshalIndent(user, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadTemplates reads a template store from a JSON file.
// If the file does not exist, returns an empty store.
func LoadTemplates(path string) (model.TemplateStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.NewTemplateStore(), nil
		}
		return model.TemplateStore{}, err
	}
	var store model.TemplateStore
	if err := json.Unmarshal(data, &store); err != nil {
		return model.TemplateStore{}, err
	}
	if store.Templates == nil {
		store.Templates = []model.OrderTemplate{}
	}
	return store, nil
}

// LoadWithBuiltins loads the user templates at path and puts the built-in
// sample orders in front of them.
func LoadWithBuiltins(path string) (model.TemplateStore, error) {
	user, err := LoadTemplates(path)
	if err != nil {
		return model.TemplateStore{}, err
	}
	store := model.NewTemplateStore()
	for _, t := range model.BuiltinTemplates() {
		store.Add(t)
	}
	for _, t := range user.Templates {
		store.Add(t)
	}
	return store, nil
}
