package uinputdev

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCalculateRelativeMoveFirstCallReturnsZero(t *testing.T) {
	d := &Device{}
	dx, dy := d.CalculateRelativeMove(100, 200)
	require.Equal(t, int16(0), dx)
	require.Equal(t, int16(0), dy)
	x, y := d.LogicalPos()
	require.Equal(t, int16(100), x)
	require.Equal(t, int16(200), y)
}

func TestCalculateRelativeMoveSubsequentCallReturnsDelta(t *testing.T) {
	d := &Device{}
	d.CalculateRelativeMove(100, 200)
	dx, dy := d.CalculateRelativeMove(105, 195)
	require.Equal(t, int16(5), dx)
	require.Equal(t, int16(-5), dy)
}

func TestSetLogicalPos(t *testing.T) {
	d := &Device{}
	d.SetLogicalPos(10, 20)
	x, y := d.LogicalPos()
	require.Equal(t, int16(10), x)
	require.Equal(t, int16(20), y)
	dx, dy := d.CalculateRelativeMove(10, 20)
	require.Equal(t, int16(0), dx)
	require.Equal(t, int16(0), dy)
}
