package model

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// jsonModel is the on-disk JSON layout of a result model.
type jsonModel struct {
	Nodes []struct {
		ID NodeID  `json:"id"`
		X  float64 `json:"x"`
		Y  float64 `json:"y"`
		Z  float64 `json:"z"`
	} `json:"nodes"`
	Elements []struct {
		ID ElementID `json:"id"`
		I  NodeID    `json:"i"`
		J  NodeID    `json:"j"`
	} `json:"elements"`
	Forces []struct {
		Element ElementID `json:"element"`
		VyI     float64   `json:"Vy_i"`
		VyJ     float64   `json:"Vy_j"`
		MzI     float64   `json:"Mz_i"`
		MzJ     float64   `json:"Mz_j"`
	} `json:"forces"`
}

// LoadFile loads a result model from disk. The format is chosen by file
// extension: .json for a JSON document, .xlsx for a result workbook.
func LoadFile(path string) (*Model, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return LoadJSON(path)
	case ".xlsx":
		return LoadWorkbook(path)
	}
	return nil, fmt.Errorf("unsupported model format %q (want .json or .xlsx)", filepath.Ext(path))
}

// LoadJSON loads a result model from a JSON file and validates it.
func LoadJSON(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw jsonModel
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	m := &Model{
		Nodes:    make(CoordinateTable, len(raw.Nodes)),
		Elements: make(ConnectivityTable, len(raw.Elements)),
		Forces:   make(ForceSet, len(raw.Forces)),
	}
	for _, n := range raw.Nodes {
		m.Nodes[n.ID] = Point3{X: n.X, Y: n.Y, Z: n.Z}
	}
	for _, e := range raw.Elements {
		m.Elements[e.ID] = Connectivity{I: e.I, J: e.J}
	}
	for _, f := range raw.Forces {
		m.Forces[f.Element] = map[Quantity]Endpoints{
			ShearVy:  {I: f.VyI, J: f.VyJ},
			MomentMz: {I: f.MzI, J: f.MzJ},
		}
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}
