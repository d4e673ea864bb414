package grid

import (
	"encoding/json"
	"testing"

	voxel "github.com/rmera/govoxel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioField(t *testing.T) *TensorField {
	t.Helper()
	B := cube10(t)
	A, err := NewAggregator(B, 2, 1, 2)
	require.NoError(t, err)
	F := frame(t, B, []float64{4, 4, 4}, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, A.AddFrame(F))
	field, err := A.Field()
	require.NoError(t, err)
	return field
}

func TestFieldAccessors(t *testing.T) {
	field := scenarioField(t)
	v, err := field.Voigt(1, 0, 1, nil)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 2, 3, 4, 5, 6}, v, 1e-12)
	h, err := field.Hydrostatic(1, 0, 1)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, h, 1e-12)
	vm, err := field.VonMises(1, 0, 1)
	require.NoError(t, err)
	assert.InDelta(t, voxel.VonMises([]float64{1, 2, 3, 4, 5, 6}), vm, 1e-12)
	p, err := field.Principal(1, 0, 1)
	require.NoError(t, err)
	require.Len(t, p, 3)
	//eigenvalues come out sorted, and their sum is the trace
	assert.LessOrEqual(t, p[0], p[1])
	assert.LessOrEqual(t, p[1], p[2])
	assert.InDelta(t, 6.0, p[0]+p[1]+p[2], 1e-9)
	_, err = field.Voigt(5, 0, 0, nil)
	require.Error(t, err, "out-of-range indexes must be rejected")
}

func TestComponentPlane(t *testing.T) {
	field := scenarioField(t)
	//cut normal to y (the single-point axis): the plane holds the x and z
	//axes of the grid
	P, err := field.ComponentPlane(1, 0, 0, 0)
	require.NoError(t, err)
	c, r := P.Dims()
	assert.Equal(t, 2, c)
	assert.Equal(t, 2, r)
	assert.InDelta(t, -5.0, P.X(0), 1e-12)
	assert.InDelta(t, 5.0, P.X(1), 1e-12)
	//the xx component of the particle bin, zero elsewhere
	assert.InDelta(t, 1.0, P.Z(1, 1), 1e-12)
	assert.InDelta(t, 0.0, P.Z(0, 0), 1e-12)
	assert.InDelta(t, 0.0, P.Z(0, 1), 1e-12)
	assert.InDelta(t, 0.0, P.Z(1, 0), 1e-12)
	//the off-diagonal components go through the Voigt mapping: (1,2)
	//picks the 4th Voigt slot, and the order of row and col is moot
	P12, err := field.ComponentPlane(1, 0, 1, 2)
	require.NoError(t, err)
	P21, err := field.ComponentPlane(1, 0, 2, 1)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, P12.Z(1, 1), 1e-12)
	assert.Equal(t, P12.Z(1, 1), P21.Z(1, 1))
	//errors
	_, err = field.ComponentPlane(3, 0, 0, 0)
	require.Error(t, err)
	_, err = field.ComponentPlane(1, 7, 0, 0)
	require.Error(t, err)
	_, err = field.ComponentPlane(1, 0, 0, 4)
	require.Error(t, err)
}

func TestScalarPlane(t *testing.T) {
	field := scenarioField(t)
	P, err := field.ScalarPlane(1, 0, voxel.Hydrostatic)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, P.Z(1, 1), 1e-12)
	assert.InDelta(t, 0.0, P.Z(0, 0), 1e-12)
}

func TestFieldJSON(t *testing.T) {
	field := scenarioField(t)
	j, err := json.Marshal(field)
	require.NoError(t, err)
	back := new(TensorField)
	require.NoError(t, json.Unmarshal(j, back))
	nx, ny, nz := back.Dims()
	assert.Equal(t, [3]int{2, 1, 2}, [3]int{nx, ny, nz})
	v, err := back.Voigt(1, 0, 1, nil)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 2, 3, 4, 5, 6}, v, 1e-12)
	//a mangled dump is rejected
	bad := new(TensorField)
	require.Error(t, bad.UnmarshalJSON([]byte(`{"nx":2,"ny":2,"nz":2,"data":[1,2,3]}`)))
}
