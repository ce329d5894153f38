package rast

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPixmapPutPixelAndSwap(t *testing.T) {
	pm := NewPixmap(10, 10)

	pm.PutPixel(Pt(2, 3), Red)
	assert.Equal(t, Transparent, pm.GetPixel(2, 3), "write visible before swap")

	pm.Swap()
	assert.Equal(t, Red, pm.GetPixel(2, 3))
}

// Out-of-bounds coordinates are silently ignored.
func TestPixmapPutPixelOutOfBounds(t *testing.T) {
	pm := NewPixmap(10, 10)

	oob := []Point2[int]{
		{-1, 5}, {10, 5}, {5, -1}, {5, 10},
		{-100, -100}, {100, 100},
	}
	for _, p := range oob {
		pm.PutPixel(p, White)
	}

	pm.Swap()
	for i, v := range pm.Data() {
		if v != 0 {
			t.Fatalf("out-of-bounds write modified data at index %d", i)
		}
	}
}

func TestPixmapAttrSlots(t *testing.T) {
	pm := NewPixmap(4, 4)

	if _, ok := pm.Attr(0); ok {
		t.Error("Attr(0) set on a fresh pixmap")
	}

	pm.SetAttr(0, Green)
	c, ok := pm.Attr(0)
	require.True(t, ok)
	assert.Equal(t, Green, c)

	// Only slot 0 is supported.
	pm.SetAttr(1, Red)
	if _, ok := pm.Attr(1); ok {
		t.Error("slot 1 stored an attribute")
	}
}

func TestPixmapClear(t *testing.T) {
	pm := NewPixmap(4, 4)
	pm.Clear(Blue)
	pm.Swap()

	for y := range 4 {
		for x := range 4 {
			assert.Equal(t, Blue, pm.GetPixel(x, y))
		}
	}
}

func TestPixmapImageInterface(t *testing.T) {
	var _ image.Image = (*Pixmap)(nil)

	pm := NewPixmap(6, 4)
	pm.PutPixel(Pt(1, 2), Magenta)
	pm.Swap()

	assert.Equal(t, image.Rect(0, 0, 6, 4), pm.Bounds())
	assert.Equal(t, color.NRGBAModel, pm.ColorModel())
	assert.Equal(t, color.NRGBA{R: 255, B: 255, A: 255}, pm.At(1, 2))
	assert.Equal(t, color.NRGBA{}, pm.At(0, 0))
}

func TestPixmapToImageCopies(t *testing.T) {
	pm := NewPixmap(4, 4)
	pm.PutPixel(Pt(0, 0), White)
	pm.Swap()

	img := pm.ToImage()

	// Publishing a new frame must not mutate the earlier snapshot.
	pm.PutPixel(Pt(0, 0), Red)
	pm.Swap()

	r, g, b, a := img.At(0, 0).RGBA()
	assert.Equal(t, []uint32{0xffff, 0xffff, 0xffff, 0xffff}, []uint32{r, g, b, a})
}

func TestPixmapSavePNG(t *testing.T) {
	pm := NewPixmap(8, 8)
	pm.SetAttr(0, White)
	_, err := pm.Draw(Mesh[float64](Tri(Pt(0.0, 0.0), Pt(100.0, 0.0), Pt(0.0, 100.0))))
	require.NoError(t, err)
	pm.Swap()

	path := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, pm.SavePNG(path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 8, 8), img.Bounds())

	r, _, _, _ := img.At(3, 3).RGBA()
	assert.Equal(t, uint32(0xffff), r)
}

func TestPixmapDrawInterpolated(t *testing.T) {
	pm := NewPixmap(16, 16)

	// Interpolate per-vertex colors manually via the triangle's
	// barycentric output, bypassing the single-attribute path.
	tri := Tri(Pt(0.0, 0.0), Pt(16.0, 0.0), Pt(0.0, 16.0))
	for c := range tri.Points() {
		px := Lerp3(c.Barycentric(), Red, Green, Blue)
		pm.PutPixel(Pt(int(c.P.X), int(c.P.Y)), px)
	}
	pm.Swap()

	// The first vertex lies on the grid and gets its color exactly; the
	// pixels nearest the other two vertices are dominated by theirs.
	assert.Equal(t, Red, pm.GetPixel(0, 0))

	nearGreen := pm.GetPixel(15, 0)
	assert.Greater(t, nearGreen.G, nearGreen.R)
	assert.Greater(t, nearGreen.G, nearGreen.B)

	nearBlue := pm.GetPixel(0, 15)
	assert.Greater(t, nearBlue.B, nearBlue.R)
	assert.Greater(t, nearBlue.B, nearBlue.G)
}
