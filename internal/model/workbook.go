package model

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Workbook sheet names expected in an XLSX result export.
const (
	SheetNodes    = "Nodes"
	SheetElements = "Elements"
	SheetForces   = "Forces"
)

// LoadWorkbook loads a result model from an XLSX workbook and validates it.
// The workbook must contain three sheets:
//
//	Nodes:    Node, X, Y, Z
//	Elements: Element, NodeI, NodeJ
//	Forces:   Element, Vy_i, Vy_j, Mz_i, Mz_j
//
// The first row of each sheet is treated as a header and skipped.
func LoadWorkbook(path string) (*Model, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m := &Model{
		Nodes:    make(CoordinateTable),
		Elements: make(ConnectivityTable),
		Forces:   make(ForceSet),
	}

	if err := eachRow(f, SheetNodes, 4, func(row int, cells []float64) error {
		m.Nodes[NodeID(cells[0])] = Point3{X: cells[1], Y: cells[2], Z: cells[3]}
		return nil
	}); err != nil {
		return nil, err
	}

	if err := eachRow(f, SheetElements, 3, func(row int, cells []float64) error {
		m.Elements[ElementID(cells[0])] = Connectivity{I: NodeID(cells[1]), J: NodeID(cells[2])}
		return nil
	}); err != nil {
		return nil, err
	}

	if err := eachRow(f, SheetForces, 5, func(row int, cells []float64) error {
		m.Forces[ElementID(cells[0])] = map[Quantity]Endpoints{
			ShearVy:  {I: cells[1], J: cells[2]},
			MomentMz: {I: cells[3], J: cells[4]},
		}
		return nil
	}); err != nil {
		return nil, err
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// eachRow walks the data rows of a sheet, parsing the first want columns of
// each row as numbers. Blank rows are skipped.
func eachRow(f *excelize.File, sheet string, want int, fn func(row int, cells []float64) error) error {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return fmt.Errorf("reading sheet %s: %w", sheet, err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("sheet %s is empty", sheet)
	}

	for i, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}
		if len(row) < want {
			return fmt.Errorf("sheet %s row %d: want %d columns, got %d", sheet, i+2, want, len(row))
		}
		cells := make([]float64, want)
		for c := 0; c < want; c++ {
			v, err := strconv.ParseFloat(strings.TrimSpace(row[c]), 64)
			if err != nil {
				return fmt.Errorf("sheet %s row %d column %d: %w", sheet, i+2, c+1, err)
			}
			cells[c] = v
		}
		if err := fn(i+2, cells); err != nil {
			return err
		}
	}
	return nil
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
