package fileutil

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileExists checks if a file exists at the given path
func FileExists(filePath string) bool {
	info, err := os.Stat(filePath)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// WriteFileWithOverwrite writes data to a file, respecting the overwrite flag
// Returns true if the file was written, false if it was skipped
func WriteFileWithOverwrite(filePath string, data []byte, perm os.FileMode, overwrite bool) (bool, error) {
	if FileExists(filePath) && !overwrite {
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return false, fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(filePath, data, perm); err != nil {
		return false, fmt.Errorf("unable to write to %q, make sure that the path exists and is writable: %w", filePath, err)
	}

	return true, nil
}

// WriteJSONFile writes data as indented JSON, respecting the overwrite flag
func WriteJSONFile(data any, filePath string, overwrite bool) (bool, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return false, fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return writeDump(jsonData, filePath, "JSON", overwrite)
}

// WriteYAMLFile writes data as YAML, respecting the overwrite flag
func WriteYAMLFile(data any, filePath string, overwrite bool) (bool, error) {
	yamlData, err := yaml.Marshal(data)
	if err != nil {
		return false, fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return writeDump(yamlData, filePath, "YAML", overwrite)
}

// WriteRecordsFile dumps data as YAML when filePath ends in .yaml or .yml,
// and as JSON otherwise.
func WriteRecordsFile(data any, filePath string, overwrite bool) (bool, error) {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return WriteYAMLFile(data, filePath, overwrite)
	default:
		return WriteJSONFile(data, filePath, overwrite)
	}
}

func writeDump(data []byte, filePath, format string, overwrite bool) (bool, error) {
	if FileExists(filePath) && !overwrite {
		slog.Info(format+" file already exists, skipping", "filename", filePath, "overwrite", overwrite)
		return false, nil
	}

	slog.Info("Writing "+format+" file", "filename", filePath)
	return WriteFileWithOverwrite(filePath, data, 0644, true)
}
