package array

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConcatenate(t *testing.T) {
	c, err := Concatenate(Flat([]int{1, 2}), arange(t, Shape{2, 2}))
	require.NoError(t, err)
	assert.Equal(t, Shape{6}, c.Shape())
	assert.Equal(t, []int{1, 2, 0, 1, 2, 3}, c.Elements())

	_, err = Concatenate[int]()
	assert.True(t, errors.Is(err, ErrParameter))
}

func TestConcatenateAlong(t *testing.T) {
	a := mustNew(t, []int{1, 2, 3, 4}, Shape{2, 2})
	b := mustNew(t, []int{5, 6, 7, 8}, Shape{2, 2})

	cols, err := ConcatenateAlong([]*Array[int]{a, b}, 1)
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 4}, cols.Shape())
	assert.Equal(t, []int{1, 2, 5, 6, 3, 4, 7, 8}, cols.Elements())

	rows, err := ConcatenateAlong([]*Array[int]{a, mustNew(t, []int{5, 6}, Shape{1, 2}), b}, 0)
	require.NoError(t, err)
	assert.Equal(t, Shape{5, 2}, rows.Shape())
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 5, 6, 7, 8}, rows.Elements())

	neg, err := ConcatenateAlong([]*Array[int]{a, b}, -1)
	require.NoError(t, err)
	assert.True(t, Equal(cols, neg))

	single, err := ConcatenateAlong([]*Array[int]{a}, 0)
	require.NoError(t, err)
	assert.True(t, Equal(a, single))
}

func TestConcatenateAlongErrors(t *testing.T) {
	a := arange(t, Shape{2, 2})

	_, err := ConcatenateAlong([]*Array[int]{}, 0)
	assert.True(t, errors.Is(err, ErrParameter))

	_, err = ConcatenateAlong([]*Array[int]{a, arange(t, Shape{3, 3})}, 0)
	assert.True(t, errors.Is(err, ErrParameter))

	_, err = ConcatenateAlong([]*Array[int]{a, arange(t, Shape{4})}, 0)
	assert.True(t, errors.Is(err, ErrParameter))

	_, err = ConcatenateAlong([]*Array[int]{a, a}, 2)
	assert.True(t, errors.Is(err, ErrAxisOutOfBounds))
}

func TestStack(t *testing.T) {
	a := Flat([]int{1, 2})
	b := Flat([]int{3, 4})

	tests := []struct {
		axis  int
		shape Shape
		want  []int
	}{
		{0, Shape{2, 2}, []int{1, 2, 3, 4}},
		{1, Shape{2, 2}, []int{1, 3, 2, 4}},
		{-1, Shape{2, 2}, []int{1, 3, 2, 4}},
	}
	for _, tt := range tests {
		s, err := Stack([]*Array[int]{a, b}, tt.axis)
		require.NoError(t, err)
		assert.Equal(t, tt.shape, s.Shape(), "axis %d", tt.axis)
		assert.Equal(t, tt.want, s.Elements(), "axis %d", tt.axis)
	}

	m := arange(t, Shape{2, 3})
	s, err := Stack([]*Array[int]{m, m, m}, 1)
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 3, 3}, s.Shape())
	for k := 0; k < 3; k++ {
		v, err := s.At(1, k, 2)
		require.NoError(t, err)
		assert.Equal(t, 5, v)
	}
}

func TestStackErrors(t *testing.T) {
	_, err := Stack([]*Array[int]{Flat([]int{1, 2}), Flat([]int{1})}, 0)
	assert.True(t, errors.Is(err, ErrParameter))

	_, err = Stack([]*Array[int]{Flat([]int{1, 2})}, 2)
	assert.True(t, errors.Is(err, ErrAxisOutOfBounds))

	_, err = Stack([]*Array[int]{}, 0)
	assert.True(t, errors.Is(err, ErrParameter))
}

func TestVStack(t *testing.T) {
	v, err := VStack([]*Array[int]{Flat([]int{1, 2}), Flat([]int{3, 4})})
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 2}, v.Shape())
	assert.Equal(t, []int{1, 2, 3, 4}, v.Elements())

	mixed, err := RowStack([]*Array[int]{mustNew(t, []int{1, 2, 3, 4}, Shape{2, 2}), Flat([]int{5, 6})})
	require.NoError(t, err)
	assert.Equal(t, Shape{3, 2}, mixed.Shape())
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, mixed.Elements())
}

func TestHStack(t *testing.T) {
	v, err := HStack([]*Array[int]{Flat([]int{1, 2}), Flat([]int{3})})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, v.Elements())

	m, err := HStack([]*Array[int]{
		mustNew(t, []int{1, 2}, Shape{2, 1}),
		mustNew(t, []int{3, 4}, Shape{2, 1}),
	})
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 2}, m.Shape())
	assert.Equal(t, []int{1, 3, 2, 4}, m.Elements())
}

func TestDStack(t *testing.T) {
	d, err := DStack([]*Array[int]{Flat([]int{1, 2}), Flat([]int{3, 4})})
	require.NoError(t, err)
	assert.Equal(t, Shape{1, 2, 2}, d.Shape())
	assert.Equal(t, []int{1, 3, 2, 4}, d.Elements())

	m, err := DStack([]*Array[int]{arange(t, Shape{2, 2}), arange(t, Shape{2, 2})})
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 2, 2}, m.Shape())
	assert.Equal(t, []int{0, 0, 1, 1, 2, 2, 3, 3}, m.Elements())
}

func TestColumnStack(t *testing.T) {
	c, err := ColumnStack([]*Array[int]{Flat([]int{1, 2, 3}), Flat([]int{4, 5, 6})})
	require.NoError(t, err)
	assert.Equal(t, Shape{3, 2}, c.Shape())
	assert.Equal(t, []int{1, 4, 2, 5, 3, 6}, c.Elements())

	mixed, err := ColumnStack([]*Array[int]{mustNew(t, []int{1, 2, 3, 4}, Shape{2, 2}), Flat([]int{5, 6})})
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 3}, mixed.Shape())
	assert.Equal(t, []int{1, 2, 5, 3, 4, 6}, mixed.Elements())

	_, err = ColumnStack([]*Array[int]{Flat([]int{1, 2}), Flat([]int{1, 2, 3})})
	assert.True(t, errors.Is(err, ErrParameter))

	_, err = ColumnStack([]*Array[int]{arange(t, Shape{1, 1, 1})})
	assert.True(t, errors.Is(err, ErrUnsupportedDimension))
}
