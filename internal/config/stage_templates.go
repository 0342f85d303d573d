package config

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// StageTemplate is one stage definition of a named template set. New
// projects get their registration stages seeded from a template.
type StageTemplate struct {
	Name      string `yaml:"name"`
	SortOrder int    `yaml:"sort_order"`
}

// StageTemplates maps a template set name to its ordered stage list.
type StageTemplates map[string][]StageTemplate

// LoadStageTemplates reads stage template sets from a YAML file. Each set
// is validated for non-empty names and unique sort orders, and returned
// sorted by order.
func LoadStageTemplates(path string) (StageTemplates, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read stage templates: %w", err)
	}

	var templates StageTemplates
	if err := yaml.Unmarshal(data, &templates); err != nil {
		return nil, fmt.Errorf("parse stage templates: %w", err)
	}

	for setName, stages := range templates {
		orders := make(map[int]bool, len(stages))
		for _, stage := range stages {
			if stage.Name == "" {
				return nil, fmt.Errorf("stage templates %q: stage with empty name", setName)
			}
			if stage.SortOrder < 1 {
				return nil, fmt.Errorf("stage templates %q: stage %q has invalid sort order %d", setName, stage.Name, stage.SortOrder)
			}
			if orders[stage.SortOrder] {
				return nil, fmt.Errorf("stage templates %q: duplicate sort order %d", setName, stage.SortOrder)
			}
			orders[stage.SortOrder] = true
		}
		sort.Slice(stages, func(i, j int) bool { return stages[i].SortOrder < stages[j].SortOrder })
		templates[setName] = stages
	}

	return templates, nil
}
