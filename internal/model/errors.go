package model

import "fmt"

// MissingTopologyError reports a node or element identifier that is absent
// from the coordinate or connectivity tables.
type MissingTopologyError struct {
	Kind string // "node" or "element"
	ID   int
}

func (e *MissingTopologyError) Error() string {
	return fmt.Sprintf("%s %d not found in model", e.Kind, e.ID)
}

// MissingQuantityError reports an element/quantity pair that is absent from
// the force dataset.
type MissingQuantityError struct {
	Element  ElementID
	Quantity Quantity
}

func (e *MissingQuantityError) Error() string {
	return fmt.Sprintf("no %s record for element %d", e.Quantity, e.Element)
}
