package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVT100OutputBuffersUntilFlush(t *testing.T) {
	var buf bytes.Buffer
	o := NewVT100Output(&buf, nil)

	o.Write("hello")
	require.Empty(t, buf.String(), "Write must not reach the writer before Flush")

	require.NoError(t, o.Flush())
	require.Equal(t, "hello", buf.String())
}

func TestVT100OutputCursorGotoIsOneIndexed(t *testing.T) {
	var buf bytes.Buffer
	o := NewVT100Output(&buf, nil)

	o.CursorGoto(0, 0)
	require.NoError(t, o.Flush())
	require.Equal(t, "\x1b[1;1H", buf.String())
}

func TestVT100OutputAlternateScreenToggle(t *testing.T) {
	var buf bytes.Buffer
	o := NewVT100Output(&buf, nil)

	o.EnterAlternateScreen()
	o.QuitAlternateScreen()
	require.NoError(t, o.Flush())
	require.Equal(t, "\x1b[?1049h\x1b[?1049l", buf.String())
}

func TestVT100OutputSetAttributesEmitsSGR(t *testing.T) {
	var buf bytes.Buffer
	o := NewVT100Output(&buf, nil)

	o.SetAttributes(Style{Foreground: ColorRed, Attrs: AttrBold}, ANSI16)
	require.NoError(t, o.Flush())
	require.Equal(t, "\x1b[1;31m", buf.String())
}

func TestVT100OutputSetAttributesNoopOnBlankStyle(t *testing.T) {
	var buf bytes.Buffer
	o := NewVT100Output(&buf, nil)

	o.SetAttributes(Style{Foreground: ColorDefault, Background: ColorDefault}, TrueColor)
	require.NoError(t, o.Flush())
	require.Empty(t, buf.String())
}

func TestVT100OutputGetSizeErrorsWithoutSizer(t *testing.T) {
	var buf bytes.Buffer
	o := NewVT100Output(&buf, nil)

	_, err := o.GetSize()
	require.Error(t, err)
}

func TestVT100OutputTrueColorSGR(t *testing.T) {
	var buf bytes.Buffer
	o := NewVT100Output(&buf, nil)

	o.SetAttributes(Style{Foreground: RGBColor(10, 20, 30)}, TrueColor)
	require.NoError(t, o.Flush())
	require.Equal(t, "\x1b[38;2;10;20;30m", buf.String())
}
