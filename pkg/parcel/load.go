package parcel

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/minjaecho/massplanner/pkg/regulation"
)

// Load reads a massing project from a YAML file.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading project file: %w", err)
	}

	var proj Project
	if err := yaml.Unmarshal(data, &proj); err != nil {
		return nil, fmt.Errorf("parsing project YAML: %w", err)
	}

	proj.Parcel.Polygon = toGeoPolygon(proj.Parcel.RawPolygon)
	for i := range proj.Parcel.Neighbors {
		proj.Parcel.Neighbors[i].Polygon = toGeoPolygon(proj.Parcel.Neighbors[i].RawPolygon)
	}
	applyDefaults(&proj)
	return &proj, nil
}

// LoadProject loads a massing project from a project directory.
// It looks for parcel.yaml in the given directory.
func LoadProject(projectDir string) (*Project, error) {
	return Load(filepath.Join(projectDir, "parcel.yaml"))
}

func applyDefaults(proj *Project) {
	if proj.Building.Stories <= 0 {
		proj.Building.Stories = 1
	}
	if proj.Building.StoryHeight <= 0 {
		proj.Building.StoryHeight = regulation.DefaultStoryHeight
	}
}
