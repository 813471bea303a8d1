package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordinateLookup(t *testing.T) {
	coords := CoordinateTable{5: {X: 1, Y: 2, Z: 3}}

	p, err := coords.Coordinate(5)
	require.NoError(t, err)
	assert.Equal(t, Point3{X: 1, Y: 2, Z: 3}, p)

	_, err = coords.Coordinate(6)
	var missing *MissingTopologyError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "node", missing.Kind)
	assert.Equal(t, 6, missing.ID)
	assert.Contains(t, err.Error(), "node 6")
}

func TestConnectivityLookup(t *testing.T) {
	conn := ConnectivityTable{15: {I: 3, J: 13}}

	c, err := conn.Connectivity(15)
	require.NoError(t, err)
	assert.Equal(t, Connectivity{I: 3, J: 13}, c)

	_, err = conn.Connectivity(16)
	var missing *MissingTopologyError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "element", missing.Kind)
	assert.Contains(t, err.Error(), "element 16")
}

func TestForceSetLookup(t *testing.T) {
	fs := ForceSet{15: {ShearVy: {I: 100, J: -100}}}

	ep, err := fs.Lookup(15, ShearVy)
	require.NoError(t, err)
	assert.Equal(t, Endpoints{I: 100, J: -100}, ep)

	_, err = fs.Lookup(15, MomentMz)
	var missing *MissingQuantityError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, ElementID(15), missing.Element)
	assert.Equal(t, MomentMz, missing.Quantity)
}

func TestForceSetMaxAbs(t *testing.T) {
	fs := ForceSet{
		1: {ShearVy: {I: -120, J: 80}, MomentMz: {I: 500, J: -900}},
		2: {ShearVy: {I: 30, J: -30}},
	}

	assert.Equal(t, 120.0, fs.MaxAbs(ShearVy))
	assert.Equal(t, 900.0, fs.MaxAbs(MomentMz))
	assert.Equal(t, 0.0, fs.MaxAbs(Quantity("Nx")))
}

func TestQuantityComponents(t *testing.T) {
	assert.Equal(t, "Vy_i", ShearVy.ComponentI())
	assert.Equal(t, "Vy_j", ShearVy.ComponentJ())
	assert.Equal(t, "Mz_i", MomentMz.ComponentI())
	assert.Equal(t, "kN", ShearVy.Unit())
	assert.Equal(t, "kN·m", MomentMz.Unit())
	assert.Equal(t, "Bending Moment", MomentMz.Label())
}

func TestModelValidate(t *testing.T) {
	valid := &Model{
		Nodes:    CoordinateTable{1: {}, 2: {X: 2.5}},
		Elements: ConnectivityTable{10: {I: 1, J: 2}},
		Forces:   ForceSet{10: {ShearVy: {I: 1, J: 1}}},
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name string
		edit func(m *Model)
		want string
	}{
		{
			name: "unknown node",
			edit: func(m *Model) { m.Elements[11] = Connectivity{I: 1, J: 99} },
			want: "unknown node 99",
		},
		{
			name: "NaN force",
			edit: func(m *Model) { m.Forces[10] = map[Quantity]Endpoints{ShearVy: {I: math.NaN(), J: 0}} },
			want: "NaN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Model{
				Nodes:    CoordinateTable{1: {}, 2: {X: 2.5}},
				Elements: ConnectivityTable{10: {I: 1, J: 2}},
				Forces:   ForceSet{10: {ShearVy: {I: 1, J: 1}}},
			}
			tt.edit(m)
			err := m.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestElementIDsSorted(t *testing.T) {
	m := &Model{Elements: ConnectivityTable{30: {}, 10: {}, 20: {}}}
	assert.Equal(t, []ElementID{10, 20, 30}, m.ElementIDs())
}
