package array

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArithmetic(t *testing.T) {
	col := mustNew(t, []int{1, 2}, Shape{2, 1})
	row := Flat([]int{10, 20})

	sum := Add(col, row)
	assert.Equal(t, Shape{2, 2}, sum.Shape())
	assert.Equal(t, []int{11, 21, 12, 22}, sum.Elements())

	assert.Equal(t, []int{9, 19, 8, 18}, Sub(row, col).Elements())
	assert.Equal(t, []int{10, 20, 20, 40}, Mul(col, row).Elements())

	q := Div(Flat([]float64{1, 2, 3}), Single(2.0))
	assert.InDeltaSlice(t, []float64{0.5, 1, 1.5}, q.Elements(), 1e-12)
}

func TestArithmeticPanicsOnMismatch(t *testing.T) {
	a := Flat([]int{1, 2, 3})
	b := Flat([]int{1, 2})

	assert.Panics(t, func() { Add(a, b) })
	assert.Panics(t, func() { Sub(a, b) })
	assert.Panics(t, func() { Mul(a, b) })
	assert.Panics(t, func() { Div(a, b) })
}

func TestZipWith(t *testing.T) {
	words := Flat([]string{"a", "b"})
	counts := mustNew(t, []int{1, 3}, Shape{2, 1})

	out, err := ZipWith(words, counts, strings.Repeat)
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 2}, out.Shape())
	assert.Equal(t, []string{"a", "b", "aaa", "bbb"}, out.Elements())

	_, err = ZipWith(Flat([]int{1, 2, 3}), Flat([]int{1, 2}), func(x, y int) int { return x + y })
	assert.True(t, errors.Is(err, ErrBroadcastShapeMismatch))
}
