package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/piwi3910/PickPack/internal/model"
	"gopkg.in/yaml.v3"
)

// BackupData is the top-level structure for import/export of all application data.
type BackupData struct {
	Version   string                `json:"version" yaml:"version"`
	CreatedAt string                `json:"created_at" yaml:"created_at"`
	Config    model.AppConfig       `json:"config" yaml:"config"`
	Templates []model.OrderTemplate `json:"templates" yaml:"templates"`
}

const backupVersion = "1.0.0"

// isYAML reports whether the path names a YAML file.
func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// ExportAllData writes the config and user templates to a single file.
// Paths ending in .yaml or .yml are written as YAML, anything else as JSON.
func ExportAllData(exportPath string, config model.AppConfig, store model.TemplateStore) error {
	backup := BackupData{
		Version:   backupVersion,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Config:    config,
		Templates: []model.OrderTemplate{},
	}
	for _, t := range store.Templates {
		if !t.Builtin {
			backup.Templates = append(backup.Templates, t)
		}
	}

	var data []byte
	var err error
	if isYAML(exportPath) {
		data, err = yaml.Marshal(backup)
	} else {
		data, err = json.MarshalIndent(backup, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to marshal backup data: %w", err)
	}

	dir := filepath.Dir(exportPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	if err := os.WriteFile(exportPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write backup file: %w", err)
	}
	return nil
}

// ImportAllData reads a backup file written by ExportAllData.
// The caller is responsible for applying the imported config.
func ImportAllData(importPath string) (BackupData, error) {
	data, err := os.ReadFile(importPath)
	if err != nil {
		return BackupData{}, fmt.Errorf("failed to read backup file: %w", err)
	}
	var backup BackupData
	if isYAML(importPath) {
		err = yaml.Unmarshal(data, &backup)
	} else {
		err = json.Unmarshal(data, &backup)
	}
	if err != nil {
		return BackupData{}, fmt.Errorf("failed to parse backup file: %w", err)
	}
	if backup.Version == "" {
		return BackupData{}, fmt.Errorf("invalid backup file: missing version field")
	}
	if backup.Config.RecentOrders == nil {
		backup.Config.RecentOrders = []string{}
	}
	return backup, nil
}
