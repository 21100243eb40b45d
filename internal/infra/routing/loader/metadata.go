package loader

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"wayfinder/internal/errors"
)

// BuildingMetadata describes where a building data set came from
type BuildingMetadata struct {
	Version  string       `json:"version"`
	Building BuildingInfo `json:"building"`
	Survey   SurveyInfo   `json:"survey"`
	Output   OutputInfo   `json:"output"`
}

// BuildingInfo identifies the mapped building
type BuildingInfo struct {
	Name   string   `json:"name"`
	Floors []string `json:"floors,omitempty"`
}

// SurveyInfo records how the graph was produced
type SurveyInfo struct {
	GeneratedAt time.Time `json:"generated_at"`
	Tool        string    `json:"tool,omitempty"`
	Frame       string    `json:"frame,omitempty"`
}

// OutputInfo holds the expected row counts of the data files
type OutputInfo struct {
	NodesCount   int64 `json:"nodes_count"`
	EdgesCount   int64 `json:"edges_count"`
	TargetsCount int64 `json:"targets_count"`
	AnchorsCount int64 `json:"anchors_count"`
}

// LoadMetadata loads and parses the metadata.json file from the given directory
func LoadMetadata(dataDir string) (*BuildingMetadata, error) {
	metadataPath := filepath.Join(dataDir, "metadata.json")

	data, err := os.ReadFile(metadataPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(err, "metadata.json not found in building data directory")
		}

		return nil, errors.Wrap(err, "failed to read metadata.json")
	}

	var metadata BuildingMetadata
	if err := json.Unmarshal(data, &metadata); err != nil {
		return nil, errors.Wrap(err, "failed to parse metadata.json")
	}

	return &metadata, nil
}

// Validate checks if the metadata is valid and complete
func (m *BuildingMetadata) Validate() error {
	if m.Version == "" {
		return errors.New("metadata version is required")
	}

	if m.Building.Name == "" {
		return errors.New("building name is required")
	}

	if m.Survey.GeneratedAt.IsZero() {
		return errors.New("survey generated_at timestamp is required")
	}

	if m.Output.NodesCount <= 0 {
		return errors.New("output nodes_count must be positive")
	}

	if m.Output.TargetsCount <= 0 {
		return errors.New("output targets_count must be positive")
	}

	return nil
}

// CheckCounts compares the declared counts with loaded data
func (m *BuildingMetadata) CheckCounts(data *BuildingData) error {
	checks := []struct {
		file     string
		declared int64
		loaded   int
	}{
		{"nodes.csv", m.Output.NodesCount, len(data.Nodes)},
		{"edges.csv", m.Output.EdgesCount, len(data.Edges)},
		{"targets.csv", m.Output.TargetsCount, len(data.Targets)},
		{"anchors.csv", m.Output.AnchorsCount, len(data.Anchors)},
	}

	for _, check := range checks {
		if check.declared != int64(check.loaded) {
			return errors.Errorf("%s has %d rows, metadata declares %d", check.file, check.loaded, check.declared)
		}
	}

	return nil
}

// Summary returns a brief summary of the metadata for logging
func (m *BuildingMetadata) Summary() map[string]any {
	return map[string]any{
		"building":      m.Building.Name,
		"floors":        len(m.Building.Floors),
		"generated_at":  m.Survey.GeneratedAt,
		"nodes_count":   m.Output.NodesCount,
		"edges_count":   m.Output.EdgesCount,
		"targets_count": m.Output.TargetsCount,
		"anchors_count": m.Output.AnchorsCount,
	}
}
