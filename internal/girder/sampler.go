package girder

import "github.com/DigitalDetectiv/sfd-bmd-central-girder/internal/model"

// SampleQuantity returns one endpoint record per element of the girder, in
// the girder's element order. Values pass through unmodified: the dataset's
// raw (value_i, value_j) pair is returned as stored, including sign. When
// adjacent elements disagree at their shared node the disagreement is kept;
// reconciling it is the diagram's job to display, not this package's to fix.
//
// A missing element/quantity record is fatal and names both.
func SampleQuantity(g Girder, q model.Quantity, forces model.ForceSet) ([]model.Endpoints, error) {
	records := make([]model.Endpoints, len(g.Elements))
	for k, eid := range g.Elements {
		ep, err := forces.Lookup(eid, q)
		if err != nil {
			return nil, err
		}
		records[k] = ep
	}
	return records, nil
}
