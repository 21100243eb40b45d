package loader

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"wayfinder/internal/domain/entity"
	"wayfinder/internal/errors"
)

// Node is a walkable point of the navigation graph
type Node struct {
	ID       int64        // Node ID as written in nodes.csv
	Position entity.Point // Building-local position in meters
}

// Edge connects two nodes. Edges are walkable in both directions.
type Edge struct {
	From   int64   // Source node ID
	To     int64   // Target node ID
	Weight float64 // Cost in meters; zero means the straight-line length
}

// BuildingData holds all loaded building data
type BuildingData struct {
	Nodes   []Node
	Edges   []Edge
	Targets []entity.TargetInstance
	Anchors []entity.Anchor
}

// CSVLoader handles loading of building data from CSV files
type CSVLoader struct {
	dataDir string
}

// NewCSVLoader creates a new CSV loader for the given data directory
func NewCSVLoader(dataDir string) *CSVLoader {
	return &CSVLoader{dataDir: dataDir}
}

// DataDir returns the directory the loader reads from
func (l *CSVLoader) DataDir() string {
	return l.dataDir
}

// Load loads all building data from CSV files
func (l *CSVLoader) Load() (*BuildingData, error) {
	nodes, err := l.LoadNodes()
	if err != nil {
		return nil, err
	}

	edges, err := l.LoadEdges()
	if err != nil {
		return nil, err
	}

	targets, err := l.LoadTargets()
	if err != nil {
		return nil, err
	}

	anchors, err := l.LoadAnchors()
	if err != nil {
		return nil, err
	}

	return &BuildingData{
		Nodes:   nodes,
		Edges:   edges,
		Targets: targets,
		Anchors: anchors,
	}, nil
}

// LoadNodes loads nodes from nodes.csv
// Expected CSV format: id,x,y,z
func (l *CSVLoader) LoadNodes() ([]Node, error) {
	var nodes []Node

	err := l.readRecords("nodes.csv", 4, false, func(record []string, lineNum int) error {
		id, err := strconv.ParseInt(strings.TrimSpace(record[0]), 10, 64)
		if err != nil {
			return errors.Wrapf(err, "nodes.csv line %d: invalid id", lineNum)
		}

		position, err := parsePoint(record[1:4])
		if err != nil {
			return errors.Wrapf(err, "nodes.csv line %d", lineNum)
		}

		nodes = append(nodes, Node{ID: id, Position: position})

		return nil
	})
	if err != nil {
		return nil, err
	}

	return nodes, nil
}

// LoadEdges loads edges from edges.csv
// Expected CSV format: from,to[,weight]
func (l *CSVLoader) LoadEdges() ([]Edge, error) {
	var edges []Edge

	err := l.readRecords("edges.csv", 2, false, func(record []string, lineNum int) error {
		from, err := strconv.ParseInt(strings.TrimSpace(record[0]), 10, 64)
		if err != nil {
			return errors.Wrapf(err, "edges.csv line %d: invalid from", lineNum)
		}

		to, err := strconv.ParseInt(strings.TrimSpace(record[1]), 10, 64)
		if err != nil {
			return errors.Wrapf(err, "edges.csv line %d: invalid to", lineNum)
		}

		edge := Edge{From: from, To: to}
		if len(record) > 2 && strings.TrimSpace(record[2]) != "" {
			weight, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
			if err != nil {
				return errors.Wrapf(err, "edges.csv line %d: invalid weight", lineNum)
			}
			if weight < 0 {
				return errors.Errorf("edges.csv line %d: negative weight %v", lineNum, weight)
			}
			edge.Weight = weight
		}

		edges = append(edges, edge)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return edges, nil
}

// LoadTargets loads destination instances from targets.csv
// Expected CSV format: name,x,y,z
func (l *CSVLoader) LoadTargets() ([]entity.TargetInstance, error) {
	var targets []entity.TargetInstance

	err := l.readRecords("targets.csv", 4, false, func(record []string, lineNum int) error {
		name := strings.TrimSpace(record[0])
		if name == "" {
			return errors.Errorf("targets.csv line %d: empty name", lineNum)
		}

		position, err := parsePoint(record[1:4])
		if err != nil {
			return errors.Wrapf(err, "targets.csv line %d", lineNum)
		}

		targets = append(targets, entity.TargetInstance{Name: name, Position: position})

		return nil
	})
	if err != nil {
		return nil, err
	}

	return targets, nil
}

// LoadAnchors loads QR anchors from anchors.csv. The file is optional.
// Expected CSV format: id,label,x,y,z
func (l *CSVLoader) LoadAnchors() ([]entity.Anchor, error) {
	anchors := []entity.Anchor{}

	err := l.readRecords("anchors.csv", 5, true, func(record []string, lineNum int) error {
		id := strings.TrimSpace(record[0])
		if id == "" {
			return errors.Errorf("anchors.csv line %d: empty id", lineNum)
		}

		position, err := parsePoint(record[2:5])
		if err != nil {
			return errors.Wrapf(err, "anchors.csv line %d", lineNum)
		}

		anchors = append(anchors, entity.Anchor{
			ID:       id,
			Label:    strings.TrimSpace(record[1]),
			Position: position,
		})

		return nil
	})
	if err != nil {
		return nil, err
	}

	return anchors, nil
}

// readRecords skips the header row and hands every record with at least
// minColumns fields to parse
func (l *CSVLoader) readRecords(name string, minColumns int, optional bool, parse func(record []string, lineNum int) error) error {
	path := filepath.Join(l.dataDir, name)
	file, err := os.Open(path)
	if err != nil {
		if optional && os.IsNotExist(err) {
			return nil
		}

		return errors.Wrapf(err, "failed to open %s", name)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}

		return errors.Wrapf(err, "failed to read %s header", name)
	}

	lineNum := 1
	for {
		record, readErr := reader.Read()
		if errors.Is(readErr, io.EOF) {
			return nil
		}
		if readErr != nil {
			return errors.Wrapf(readErr, "failed to read %s", name)
		}
		lineNum++

		if len(record) < minColumns {
			return errors.Errorf("invalid %s format at line %d: expected %d columns, got %d", name, lineNum, minColumns, len(record))
		}

		if err := parse(record, lineNum); err != nil {
			return err
		}
	}
}

func parsePoint(fields []string) (entity.Point, error) {
	var coords [3]float64
	for i, field := range fields {
		value, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return entity.Point{}, errors.Wrapf(err, "invalid coordinate %q", field)
		}
		coords[i] = value
	}

	return entity.Point{X: coords[0], Y: coords[1], Z: coords[2]}, nil
}
