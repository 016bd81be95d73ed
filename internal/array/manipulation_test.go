package array

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReshape(t *testing.T) {
	a := arange(t, Shape{2, 3})

	tests := []struct {
		name  string
		shape Shape
		want  Shape
	}{
		{"swap", Shape{3, 2}, Shape{3, 2}},
		{"flatten with -1", Shape{-1}, Shape{6}},
		{"infer middle", Shape{2, -1, 1}, Shape{2, 3, 1}},
		{"add axes", Shape{1, 6, 1}, Shape{1, 6, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := a.Reshape(tt.shape)
			require.NoError(t, err)
			assert.Equal(t, tt.want, b.Shape())
			assert.Equal(t, a.Elements(), b.Elements())
		})
	}
}

func TestReshapeErrors(t *testing.T) {
	a := arange(t, Shape{2, 3})

	_, err := a.Reshape(Shape{4})
	assert.True(t, errors.Is(err, ErrShapeMismatch))

	_, err = a.Reshape(Shape{-1, 4})
	assert.True(t, errors.Is(err, ErrShapeMismatch))

	_, err = a.Reshape(Shape{-1, -1})
	assert.True(t, errors.Is(err, ErrParameter))

	_, err = a.Reshape(Shape{-2, -3})
	assert.True(t, errors.Is(err, ErrParameter))
}

func TestResize(t *testing.T) {
	a := Flat([]int{1, 2, 3})

	b, err := a.Resize(Shape{2, 4})
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 4}, b.Shape())
	assert.Equal(t, []int{1, 2, 3, 1, 2, 3, 1, 2}, b.Elements())

	c, err := a.Resize(Shape{2})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, c.Elements())

	d, err := Empty[int]().Resize(Shape{2})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0}, d.Elements())

	_, err = a.Resize(Shape{-1})
	assert.True(t, errors.Is(err, ErrParameter))
}

func TestCycleTake(t *testing.T) {
	b, err := Flat([]int{1, 2}).CycleTake(5)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 1, 2, 1}, b.Elements())

	_, err = Empty[int]().CycleTake(1)
	assert.True(t, errors.Is(err, ErrParameter))

	_, err = Flat([]int{1}).CycleTake(-1)
	assert.True(t, errors.Is(err, ErrMustBeAtLeast))
}

func TestRavel(t *testing.T) {
	a := arange(t, Shape{2, 2, 2})
	r := a.Ravel()
	assert.Equal(t, Shape{8}, r.Shape())
	assert.Equal(t, a.Elements(), r.Elements())

	back, err := r.Reshape(a.Shape())
	require.NoError(t, err)
	assert.True(t, Equal(a, back))
}

func TestInsertFlat(t *testing.T) {
	a := Flat([]int{1, 2, 3})

	tests := []struct {
		name    string
		indices []int
		values  []int
		want    []int
	}{
		{"single", []int{1}, []int{9}, []int{1, 9, 2, 3}},
		{"front", []int{0}, []int{9}, []int{9, 1, 2, 3}},
		{"end", []int{3}, []int{4}, []int{1, 2, 3, 4}},
		{"negative", []int{-1}, []int{9}, []int{1, 2, 9, 3}},
		{"block at one index", []int{1}, []int{7, 8}, []int{1, 7, 8, 2, 3}},
		{"scalar at many", []int{0, 2}, []int{0}, []int{0, 1, 2, 0, 3}},
		{"pairwise", []int{2, 0}, []int{7, 8}, []int{8, 1, 2, 7, 3}},
		{"same index keeps order", []int{1, 1}, []int{7, 8}, []int{1, 7, 8, 2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := a.Insert(tt.indices, Flat(tt.values))
			require.NoError(t, err)
			assert.Equal(t, tt.want, b.Elements())
			assert.Equal(t, Shape{len(tt.want)}, b.Shape())
		})
	}

	assert.Equal(t, []int{1, 2, 3}, a.Elements(), "receiver must be unchanged")
}

func TestInsertFlatFlattensFirst(t *testing.T) {
	b, err := arange(t, Shape{2, 2}).Insert([]int{2}, Single(9))
	require.NoError(t, err)
	assert.Equal(t, Shape{5}, b.Shape())
	assert.Equal(t, []int{0, 1, 9, 2, 3}, b.Elements())
}

func TestInsertFlatErrors(t *testing.T) {
	a := Flat([]int{1, 2, 3})

	_, err := a.Insert([]int{4}, Single(0))
	assert.True(t, errors.Is(err, ErrOutOfBounds))

	_, err = a.Insert([]int{0, 1}, Flat([]int{1, 2, 3}))
	assert.True(t, errors.Is(err, ErrParameter))
}

func TestInsertAlong(t *testing.T) {
	a := mustNew(t, []int{1, 2, 3, 4}, Shape{2, 2})

	t.Run("column", func(t *testing.T) {
		b, err := a.InsertAlong([]int{1}, Flat([]int{8, 9}), 1)
		require.NoError(t, err)
		assert.Equal(t, Shape{2, 3}, b.Shape())
		assert.Equal(t, []int{1, 8, 2, 3, 9, 4}, b.Elements())
	})

	t.Run("scalar row", func(t *testing.T) {
		b, err := a.InsertAlong([]int{1}, Single(0), 0)
		require.NoError(t, err)
		assert.Equal(t, Shape{3, 2}, b.Shape())
		assert.Equal(t, []int{1, 2, 0, 0, 3, 4}, b.Elements())
	})

	t.Run("one slice per index", func(t *testing.T) {
		c := arange(t, Shape{2, 3})
		b, err := c.InsertAlong([]int{0, 3}, Flat([]int{10, 11, 20, 21}), 1)
		require.NoError(t, err)
		assert.Equal(t, Shape{2, 5}, b.Shape())
		assert.Equal(t, []int{10, 0, 1, 2, 20, 11, 3, 4, 5, 21}, b.Elements())
	})

	t.Run("same slice repeated", func(t *testing.T) {
		b, err := a.InsertAlong([]int{0, 2}, Flat([]int{7, 8}), 0)
		require.NoError(t, err)
		assert.Equal(t, Shape{4, 2}, b.Shape())
		assert.Equal(t, []int{7, 8, 1, 2, 3, 4, 7, 8}, b.Elements())
	})

	t.Run("3d middle axis", func(t *testing.T) {
		c := arange(t, Shape{2, 2, 2})
		b, err := c.InsertAlong([]int{1}, Single(-1), 1)
		require.NoError(t, err)
		assert.Equal(t, Shape{2, 3, 2}, b.Shape())
		assert.Equal(t, []int{0, 1, -1, -1, 2, 3, 4, 5, -1, -1, 6, 7}, b.Elements())
	})

	t.Run("2d values take column k along axis", func(t *testing.T) {
		v := mustNew(t, []int{8, 9, 10, 11}, Shape{2, 2})
		b, err := a.InsertAlong([]int{0, 1}, v, 1)
		require.NoError(t, err)
		assert.Equal(t, Shape{2, 4}, b.Shape())
		assert.Equal(t, []int{8, 1, 9, 2, 10, 3, 11, 4}, b.Elements())
	})

	t.Run("row values broadcast down the axis", func(t *testing.T) {
		v := mustNew(t, []int{5, 6}, Shape{1, 2})
		b, err := a.InsertAlong([]int{0, 2}, v, 1)
		require.NoError(t, err)
		assert.Equal(t, Shape{2, 4}, b.Shape())
		assert.Equal(t, []int{5, 1, 2, 6, 5, 3, 4, 6}, b.Elements())
	})

	t.Run("column values broadcast across slices", func(t *testing.T) {
		v := mustNew(t, []int{5, 6}, Shape{2, 1})
		b, err := a.InsertAlong([]int{0, 2}, v, 1)
		require.NoError(t, err)
		assert.Equal(t, []int{5, 1, 2, 5, 6, 3, 4, 6}, b.Elements())
	})

	t.Run("3d values keep their layout", func(t *testing.T) {
		c := arange(t, Shape{2, 1, 2})
		v := mustNew(t, []int{10, 11, 12, 13}, Shape{2, 1, 2})
		b, err := c.InsertAlong([]int{0}, v, 1)
		require.NoError(t, err)
		assert.Equal(t, Shape{2, 2, 2}, b.Shape())
		assert.Equal(t, []int{10, 11, 0, 1, 12, 13, 2, 3}, b.Elements())
	})
}

func TestInsertAlongErrors(t *testing.T) {
	a := arange(t, Shape{2, 2})

	_, err := a.InsertAlong([]int{0}, Single(0), 2)
	assert.True(t, errors.Is(err, ErrAxisOutOfBounds))

	_, err = a.InsertAlong([]int{3}, Single(0), 0)
	assert.True(t, errors.Is(err, ErrOutOfBounds))

	_, err = a.InsertAlong([]int{0}, Flat([]int{1, 2, 3}), 0)
	assert.True(t, errors.Is(err, ErrParameter))

	_, err = a.InsertAlong([]int{0, 1}, arange(t, Shape{3, 3}), 1)
	assert.True(t, errors.Is(err, ErrParameter))
}

func TestDeleteFlat(t *testing.T) {
	a := Flat([]int{1, 2, 3})

	b, err := a.Delete(1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, b.Elements())

	c, err := a.Delete(2, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, c.Elements())

	d, err := a.Delete(-1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, d.Elements())

	_, err = a.Delete(3)
	assert.True(t, errors.Is(err, ErrOutOfBounds))

	e, err := arange(t, Shape{2, 2}).Delete(0)
	require.NoError(t, err)
	assert.Equal(t, Shape{3}, e.Shape())
}

func TestDeleteAlong(t *testing.T) {
	a := arange(t, Shape{3, 4})

	cols, err := a.DeleteAlong([]int{0, 2}, 1)
	require.NoError(t, err)
	assert.Equal(t, Shape{3, 2}, cols.Shape())
	assert.Equal(t, []int{1, 3, 5, 7, 9, 11}, cols.Elements())

	rows, err := a.DeleteAlong([]int{1, 1}, 0)
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 4}, rows.Shape())
	assert.Equal(t, []int{0, 1, 2, 3, 8, 9, 10, 11}, rows.Elements())

	last, err := a.DeleteAlong([]int{-1}, -1)
	require.NoError(t, err)
	assert.Equal(t, Shape{3, 3}, last.Shape())

	_, err = a.DeleteAlong([]int{3}, 0)
	assert.True(t, errors.Is(err, ErrOutOfBounds))

	_, err = a.DeleteAlong([]int{0}, 2)
	assert.True(t, errors.Is(err, ErrAxisOutOfBounds))
}

func TestAppend(t *testing.T) {
	b := Flat([]int{1, 2}).Append(arange(t, Shape{2, 2}))
	assert.Equal(t, Shape{6}, b.Shape())
	assert.Equal(t, []int{1, 2, 0, 1, 2, 3}, b.Elements())
}

func TestAppendAlong(t *testing.T) {
	a := mustNew(t, []int{1, 2, 3, 4}, Shape{2, 2})

	t.Run("axis 0", func(t *testing.T) {
		b, err := a.AppendAlong(mustNew(t, []int{5, 6}, Shape{1, 2}), 0)
		require.NoError(t, err)
		assert.Equal(t, Shape{3, 2}, b.Shape())
		assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, b.Elements())
	})

	t.Run("axis 1 single column", func(t *testing.T) {
		b, err := a.AppendAlong(mustNew(t, []int{5, 6}, Shape{2, 1}), 1)
		require.NoError(t, err)
		assert.Equal(t, Shape{2, 3}, b.Shape())
		assert.Equal(t, []int{1, 2, 5, 3, 4, 6}, b.Elements())
	})

	t.Run("axis 1 several columns", func(t *testing.T) {
		b, err := a.AppendAlong(mustNew(t, []int{5, 6, 7, 8}, Shape{2, 2}), 1)
		require.NoError(t, err)
		assert.Equal(t, Shape{2, 4}, b.Shape())
		assert.Equal(t, []int{1, 2, 5, 6, 3, 4, 7, 8}, b.Elements())
	})

	t.Run("rank mismatch", func(t *testing.T) {
		_, err := a.AppendAlong(Flat([]int{5, 6}), 0)
		assert.True(t, errors.Is(err, ErrParameter))
	})

	t.Run("off-axis mismatch", func(t *testing.T) {
		_, err := a.AppendAlong(mustNew(t, []int{5, 6, 7}, Shape{1, 3}), 0)
		assert.True(t, errors.Is(err, ErrParameter))
	})
}

func TestUnique(t *testing.T) {
	a := mustNew(t, []int{3, 1, 2, 3, 1, 2}, Shape{2, 3})
	u := Unique(a)
	assert.Equal(t, Shape{3}, u.Shape())
	assert.Equal(t, []int{1, 2, 3}, u.Elements())

	s := Unique(Flat([]string{"b", "a", "b"}))
	assert.Equal(t, []string{"a", "b"}, s.Elements())

	assert.True(t, Unique(Empty[int]()).IsEmpty())
}

func TestUniqueNaN(t *testing.T) {
	nan := math.NaN()
	u := Unique(Flat([]float64{nan, 1, nan, 1, 0.5}))
	got := u.Elements()
	require.Len(t, got, 4)
	assert.True(t, math.IsNaN(got[0]))
	assert.True(t, math.IsNaN(got[1]))
	assert.Equal(t, []float64{0.5, 1}, got[2:])
}

func TestUniqueAlong(t *testing.T) {
	t.Run("axis 0", func(t *testing.T) {
		a := mustNew(t, []int{1, 0, 0, 1, 0, 0, 2, 3, 4}, Shape{3, 3})
		u, err := UniqueAlong(a, 0)
		require.NoError(t, err)
		assert.Equal(t, Shape{2, 3}, u.Shape())
		assert.Equal(t, []int{1, 0, 0, 2, 3, 4}, u.Elements())
	})

	t.Run("last axis of 2d", func(t *testing.T) {
		a := mustNew(t, []int{1, 0, 1, 2, 5, 2}, Shape{2, 3})
		u, err := UniqueAlong(a, 1)
		require.NoError(t, err)
		assert.Equal(t, Shape{2, 2}, u.Shape())
		assert.Equal(t, []int{0, 1, 5, 2}, u.Elements())
	})

	t.Run("interior axis of 3d", func(t *testing.T) {
		a := mustNew(t, []int{5, 6, 1, 2, 5, 6, 7, 8, 3, 4, 7, 8}, Shape{2, 3, 2})
		u, err := UniqueAlong(a, 1)
		require.NoError(t, err)
		assert.Equal(t, Shape{2, 2, 2}, u.Shape())
		assert.Equal(t, []int{1, 2, 5, 6, 3, 4, 7, 8}, u.Elements())
	})

	t.Run("last axis of 3d", func(t *testing.T) {
		a := mustNew(t, []int{9, 1, 9, 9, 1, 9, 9, 1, 9, 9, 1, 9}, Shape{2, 2, 3})
		u, err := UniqueAlong(a, -1)
		require.NoError(t, err)
		assert.Equal(t, Shape{2, 2, 2}, u.Shape())
		assert.Equal(t, []int{1, 9, 1, 9, 1, 9, 1, 9}, u.Elements())
	})

	t.Run("already unique keeps every slice", func(t *testing.T) {
		a := arange(t, Shape{2, 3, 4})
		for axis := 0; axis < 3; axis++ {
			u, err := UniqueAlong(a, axis)
			require.NoError(t, err)
			assert.True(t, Equal(a, u), "axis %d", axis)
		}
	})

	t.Run("axis out of bounds", func(t *testing.T) {
		_, err := UniqueAlong(arange(t, Shape{2}), 1)
		assert.True(t, errors.Is(err, ErrAxisOutOfBounds))
	})
}

func TestTrimZeros(t *testing.T) {
	a := Flat([]int{0, 0, 1, 2, 0, 3, 0})
	b, err := TrimZeros(a)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 0, 3}, b.Elements())

	c, err := TrimZeros(Flat([]int{0, 0}))
	require.NoError(t, err)
	assert.True(t, c.IsEmpty())

	d, err := TrimZeros(Flat([]string{"", "x", ""}))
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, d.Elements())

	_, err = TrimZeros(arange(t, Shape{2, 2}))
	assert.True(t, errors.Is(err, ErrUnsupportedDimension))
}

func TestAtLeast(t *testing.T) {
	scalar := mustNew(t, []int{7}, Shape{})
	vec := Flat([]int{1, 2, 3})
	mat := arange(t, Shape{2, 3})

	tests := []struct {
		name string
		a    *Array[int]
		n    int
		want Shape
	}{
		{"scalar 0", scalar, 0, Shape{}},
		{"scalar 1", scalar, 1, Shape{1}},
		{"scalar 2", scalar, 2, Shape{1, 1}},
		{"scalar 3", scalar, 3, Shape{1, 1, 1}},
		{"vector 1", vec, 1, Shape{3}},
		{"vector 2", vec, 2, Shape{1, 3}},
		{"vector 3", vec, 3, Shape{1, 3, 1}},
		{"matrix 2", mat, 2, Shape{2, 3}},
		{"matrix 3", mat, 3, Shape{2, 3, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := tt.a.AtLeast(tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.want, b.Shape())
			assert.Equal(t, tt.a.Elements(), b.Elements())
		})
	}

	_, err := vec.AtLeast(4)
	assert.True(t, errors.Is(err, ErrMustBeOneOf))
	_, err = vec.AtLeast(-1)
	assert.True(t, errors.Is(err, ErrMustBeOneOf))
}

func TestRepeat(t *testing.T) {
	b, err := Flat([]int{1, 2}).Repeat(2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 2, 2}, b.Elements())

	a := mustNew(t, []int{1, 2, 3, 4}, Shape{2, 2})

	rows, err := a.RepeatAlong(2, 0)
	require.NoError(t, err)
	assert.Equal(t, Shape{4, 2}, rows.Shape())
	assert.Equal(t, []int{1, 2, 1, 2, 3, 4, 3, 4}, rows.Elements())

	cols, err := a.RepeatAlong(2, 1)
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 4}, cols.Shape())
	assert.Equal(t, []int{1, 1, 2, 2, 3, 3, 4, 4}, cols.Elements())

	_, err = a.Repeat(-1)
	assert.True(t, errors.Is(err, ErrMustBeAtLeast))
}

func TestTile(t *testing.T) {
	v := Flat([]int{1, 2})

	b, err := v.Tile(2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 1, 2}, b.Elements())

	c, err := v.Tile(2, 2)
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 4}, c.Shape())
	assert.Equal(t, []int{1, 2, 1, 2, 1, 2, 1, 2}, c.Elements())

	m := mustNew(t, []int{1, 2, 3, 4}, Shape{2, 2})
	d, err := m.Tile(2)
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 4}, d.Shape())
	assert.Equal(t, []int{1, 2, 1, 2, 3, 4, 3, 4}, d.Elements())

	_, err = v.Tile(-1)
	assert.True(t, errors.Is(err, ErrMustBeAtLeast))
}
