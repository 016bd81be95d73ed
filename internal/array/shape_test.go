package array

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		want  int
	}{
		{"scalar", Shape{}, 1},
		{"vector", Shape{5}, 5},
		{"matrix", Shape{2, 3}, 6},
		{"3d", Shape{2, 3, 4}, 24},
		{"zero axis", Shape{3, 0, 2}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.shape.NumElements())
		})
	}
}

func TestShapeValidate(t *testing.T) {
	require.NoError(t, Shape{2, 0, 3}.Validate())

	err := Shape{2, -1}.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrParameter))

	var perr *ParameterError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "shape", perr.Param)
}

func TestShapeComputeStrides(t *testing.T) {
	assert.Equal(t, []int{12, 4, 1}, Shape{2, 3, 4}.ComputeStrides())
	assert.Equal(t, []int{1}, Shape{7}.ComputeStrides())
	assert.Empty(t, Shape{}.ComputeStrides())
}

func TestShapeIndexAt(t *testing.T) {
	shape := Shape{2, 2, 2}

	idx, err := shape.IndexAt([]int{1, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, 7, idx)

	idx, err = shape.IndexAt([]int{1, 0, 1})
	require.NoError(t, err)
	assert.Equal(t, 5, idx)

	t.Run("wrong coordinate count", func(t *testing.T) {
		_, err := shape.IndexAt([]int{1, 1})
		assert.True(t, errors.Is(err, ErrParameter))
	})

	t.Run("coordinate out of range", func(t *testing.T) {
		_, err := shape.IndexAt([]int{0, 2, 0})
		assert.True(t, errors.Is(err, ErrParameter))
	})
}

func TestShapeIndexToCoord(t *testing.T) {
	shape := Shape{2, 2, 2}

	coord, err := shape.IndexToCoord(7)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 1}, coord)

	coord, err = Shape{3, 4}.IndexToCoord(6)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, coord)

	_, err = shape.IndexToCoord(8)
	assert.True(t, errors.Is(err, ErrOutOfBounds))
}

func TestShapeIndexRoundTrip(t *testing.T) {
	shape := Shape{3, 1, 4, 2}
	for i := 0; i < shape.NumElements(); i++ {
		coord, err := shape.IndexToCoord(i)
		require.NoError(t, err)
		idx, err := shape.IndexAt(coord)
		require.NoError(t, err)
		assert.Equal(t, i, idx)
	}
}

func TestNormalizeAxis(t *testing.T) {
	assert.Equal(t, 2, NormalizeAxis(-1, 3))
	assert.Equal(t, 0, NormalizeAxis(-3, 3))
	assert.Equal(t, 1, NormalizeAxis(1, 3))
	// Bounds are the caller's job.
	assert.Equal(t, -1, NormalizeAxis(-4, 3))
	assert.Equal(t, 5, NormalizeAxis(5, 3))
}

func TestCheckAxes(t *testing.T) {
	axes, err := checkAxes([]int{-1, 0}, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 0}, axes)

	_, err = checkAxes([]int{0, -3}, 3)
	assert.True(t, errors.Is(err, ErrMustBeUnique))

	_, err = checkAxes([]int{3}, 3)
	assert.True(t, errors.Is(err, ErrAxisOutOfBounds))
}

func TestNextCoord(t *testing.T) {
	shape := Shape{2, 3}
	coord := make([]int, 2)
	var visited [][]int
	for ok := true; ok; ok = nextCoord(coord, shape) {
		visited = append(visited, []int{coord[0], coord[1]})
	}
	assert.Equal(t, [][]int{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}}, visited)
	assert.Equal(t, []int{0, 0}, coord)
}
