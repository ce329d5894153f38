package rast

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Compile-time interface checks.
var (
	_ Renderer[uint8]   = (*Framebuffer[uint8])(nil)
	_ Renderer[RGBA]    = (*Pixmap)(nil)
	_ Coord[float64]    = Point2[float64]{}
	_ Coord[float64]    = LineCoord[float64]{}
	_ Coord[float64]    = TriangleCoord[float64]{}
	_ Drawable[float64] = Point[float64]{}
	_ Drawable[float64] = Line[float64]{}
	_ Drawable[float64] = Rectangle[float64]{}
	_ Drawable[float64] = Triangle[float64]{}
	_ Drawable[float64] = Shape[float64]{}
)

// A triangle whose interior exceeds the viewport paints every pixel of the
// buffer after the frame is published.
func TestDrawFullCoverage(t *testing.T) {
	fb := NewFramebuffer[uint8](16, 16)
	fb.SetAttr(0, 1)

	tri := Tri(Pt(0.0, 0.0), Pt(100.0, 0.0), Pt(0.0, 100.0))
	_, err := fb.Draw(Mesh[float64](tri))
	require.NoError(t, err)

	fb.Swap()
	for i, px := range fb.Front() {
		if px != 1 {
			t.Fatalf("pixel %d = %d, want 1", i, px)
		}
	}
}

func TestDrawStats(t *testing.T) {
	fb := NewFramebuffer[uint8](64, 64)
	fb.SetAttr(0, 1)

	stats, err := fb.Draw(Mesh[float64](
		Tri(Pt(0.0, 0.0), Pt(3.0, 0.0), Pt(0.0, 3.0)),
		Ln(Pt(0.0, 10.0), Pt(3.0, 10.0)),
	))
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Shapes)
	assert.Equal(t, 3+2, stats.Vertices)
	assert.Equal(t, 8+4, stats.Fragments)
}

// Fragment accounting does not depend on whether an attribute is set: an
// attribute-less renderer counts the same fragments and writes nothing.
func TestDrawFragmentsIndependentOfAttr(t *testing.T) {
	mesh := func() []Drawable[float64] {
		return []Drawable[float64]{Tri(Pt(0.0, 0.0), Pt(3.0, 0.0), Pt(0.0, 3.0))}
	}

	withAttr := NewFramebuffer[uint8](16, 16)
	withAttr.SetAttr(0, 9)
	sa, err := withAttr.Draw(Mesh(mesh()...))
	require.NoError(t, err)

	without := NewFramebuffer[uint8](16, 16)
	sb, err := without.Draw(Mesh(mesh()...))
	require.NoError(t, err)

	assert.Equal(t, sa.Fragments, sb.Fragments)

	without.Swap()
	for i, px := range without.Front() {
		if px != 0 {
			t.Fatalf("pixel %d = %d written without an attribute", i, px)
		}
	}
}

// Primitives outside the viewport still count shapes and vertices, but no
// fragments.
func TestDrawClipsOutOfBounds(t *testing.T) {
	fb := NewFramebuffer[uint8](16, 16)
	fb.SetAttr(0, 1)

	stats, err := fb.Draw(Mesh[float64](
		Tri(Pt(20.0, 20.0), Pt(30.0, 20.0), Pt(20.0, 30.0)),
		Tri(Pt(-10.0, -10.0), Pt(-2.0, -10.0), Pt(-10.0, -2.0)),
	))
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Shapes)
	assert.Equal(t, 6, stats.Vertices)
	assert.Zero(t, stats.Fragments)
}

func TestDrawPartialClip(t *testing.T) {
	fb := NewFramebuffer[uint8](16, 16)
	fb.SetAttr(0, 1)

	// Covers the whole 16x16 viewport and much more.
	stats, err := fb.Draw(Mesh[float64](Tri(Pt(0.0, 0.0), Pt(100.0, 0.0), Pt(0.0, 100.0))))
	require.NoError(t, err)
	assert.Equal(t, 16*16, stats.Fragments)
}

// boundedRenderer simulates a fallible backing store: it accepts a limited
// number of writes and reports an error afterwards.
type boundedRenderer struct {
	*Framebuffer[uint8]
	writes int
	limit  int
	err    error
}

func (b *boundedRenderer) PutPixel(p Point2[int], px uint8) {
	b.writes++
	if b.writes > b.limit {
		b.err = errors.New("backing store exhausted")
		return
	}
	b.Framebuffer.PutPixel(p, px)
}

func (b *boundedRenderer) Err() error { return b.err }

func TestDrawFallibleRendererAborts(t *testing.T) {
	b := &boundedRenderer{Framebuffer: NewFramebuffer[uint8](16, 16), limit: 4}
	b.SetAttr(0, 1)

	stats, err := Draw[float64, uint8](b, Mesh[float64](
		Tri(Pt(0.0, 0.0), Pt(100.0, 0.0), Pt(0.0, 100.0)),
		Tri(Pt(0.0, 0.0), Pt(3.0, 0.0), Pt(0.0, 3.0)),
	))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "exhausted")
	// The fold aborts after the first drawable's error check.
	assert.Equal(t, 1, stats.Shapes)
}

func TestDrawLogsStats(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))

	fb := NewFramebuffer[uint8](8, 8)
	_, err := fb.Draw(Mesh[float64](Tri(Pt(0.0, 0.0), Pt(3.0, 0.0), Pt(0.0, 3.0))))
	require.NoError(t, err)

	out := buf.String()
	assert.True(t, strings.Contains(out, "mesh drawn"), "log output: %s", out)
	assert.True(t, strings.Contains(out, "fragments=8"), "log output: %s", out)
}

func TestDrawEmptyMesh(t *testing.T) {
	fb := NewFramebuffer[uint8](8, 8)
	stats, err := fb.Draw(Mesh[float64]())
	require.NoError(t, err)
	assert.Equal(t, Stats{}, stats)
}
