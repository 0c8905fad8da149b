package efirom

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
	"howett.net/plist"
)

func LoadMappings(path string) ([]Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mappings: %w", err)
	}

	var mappings []Mapping
	switch strings.ToLower(filepath.Ext(path)) {
	case ".plist":
		_, err = plist.Unmarshal(data, &mappings)
	default:
		err = yaml.Unmarshal(data, &mappings)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse mappings %s: %w", path, err)
	}

	for i, m := range mappings {
		if !strings.HasPrefix(string(m.Identifier), "Mac-") || m.Model == "" {
			return nil, fmt.Errorf("mappings %s: entry %d (%q, %q) is invalid", path, i, m.Identifier, m.Model)
		}
	}
	return mappings, nil
}
