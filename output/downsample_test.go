package output

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDownsampleMonochromeDropsColor(t *testing.T) {
	s := Style{Foreground: ColorRed, Background: RGBColor(10, 200, 30), Attrs: AttrBold}
	got := s.Downsample(Monochrome)

	require.Equal(t, ColorDefault, got.Foreground)
	require.Equal(t, ColorDefault, got.Background)
	require.Equal(t, AttrBold, got.Attrs, "attributes survive monochrome down-sampling")
}

func TestDownsampleTrueColorPassesThrough(t *testing.T) {
	c := RGBColor(10, 200, 30)
	got := c.downsample(TrueColor)
	require.Equal(t, c, got)
}

func TestDownsampleNamedANSIStaysNamedAtEveryDepth(t *testing.T) {
	for _, depth := range []ColorDepth{Monochrome, ANSI16, Indexed256, TrueColor} {
		got := ColorRed.downsample(depth)
		if depth == Monochrome {
			continue // Monochrome is handled at the Style level, not per-Color
		}
		require.Equal(t, ColorRed, got)
	}
}

func TestDownsampleRGBToANSI16PicksNearestPrimary(t *testing.T) {
	got := RGBColor(250, 5, 5).downsample(ANSI16)
	require.Equal(t, ColorLightRed, got)
}

func TestDownsampleRGBToIndexed256StaysInCube(t *testing.T) {
	got := RGBColor(0, 0, 0).downsample(Indexed256)
	require.Equal(t, colorIndexed, got.kind)
	require.GreaterOrEqual(t, got.index, uint8(16))
}
