package rast

import (
	"image"
	"image/color"
	"image/png"
	"iter"
	"os"
)

// Pixmap is an RGBA-backed Renderer over two rectangular pixel buffers,
// 4 bytes per pixel. The published front buffer doubles as an image.Image,
// so a swapped frame can be encoded or composited directly.
type Pixmap struct {
	width  int
	height int
	front  []uint8 // RGBA format, published frame
	back   []uint8 // RGBA format, in-progress frame
	color  RGBA
	hasCol bool
}

// NewPixmap creates a new pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		front:  make([]uint8, width*height*4),
		back:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data of the published frame (RGBA format).
func (p *Pixmap) Data() []uint8 {
	return p.front
}

// PutPixel writes one pixel into the back buffer. Out-of-bounds
// coordinates are silently ignored, so direct callers need no guard of
// their own; Draw clips before calling.
func (p *Pixmap) PutPixel(pt Point2[int], c RGBA) {
	if pt.X < 0 || pt.X >= p.width || pt.Y < 0 || pt.Y >= p.height {
		return
	}
	i := (pt.Y*p.width + pt.X) * 4
	p.back[i+0] = uint8(clamp255(c.R * 255))
	p.back[i+1] = uint8(clamp255(c.G * 255))
	p.back[i+2] = uint8(clamp255(c.B * 255))
	p.back[i+3] = uint8(clamp255(c.A * 255))
}

// Swap exchanges the front and back buffer identities in O(1).
func (p *Pixmap) Swap() {
	p.front, p.back = p.back, p.front
}

// Attr returns the current draw color. Only slot 0 is supported.
func (p *Pixmap) Attr(slot int) (RGBA, bool) {
	if slot != 0 || !p.hasCol {
		return RGBA{}, false
	}
	return p.color, true
}

// SetAttr sets the current draw color. Slots other than 0 are ignored.
func (p *Pixmap) SetAttr(slot int, c RGBA) {
	if slot != 0 {
		return
	}
	p.color = c
	p.hasCol = true
}

// Draw rasterizes a float64-coordinate mesh into the back buffer. It is a
// convenience wrapper around the package-level Draw.
func (p *Pixmap) Draw(mesh iter.Seq[Drawable[float64]]) (Stats, error) {
	return Draw[float64, RGBA](p, mesh)
}

// Clear fills the back buffer with a color.
func (p *Pixmap) Clear(c RGBA) {
	r := uint8(clamp255(c.R * 255))
	g := uint8(clamp255(c.G * 255))
	b := uint8(clamp255(c.B * 255))
	a := uint8(clamp255(c.A * 255))

	for i := 0; i < len(p.back); i += 4 {
		p.back[i+0] = r
		p.back[i+1] = g
		p.back[i+2] = b
		p.back[i+3] = a
	}
}

// GetPixel returns the color of a pixel in the published frame.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	i := (y*p.width + x) * 4
	return RGBA{
		R: float64(p.front[i+0]) / 255,
		G: float64(p.front[i+1]) / 255,
		B: float64(p.front[i+2]) / 255,
		A: float64(p.front[i+3]) / 255,
	}
}

// ToImage copies the published frame into an image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.front)
	return img
}

// SavePNG saves the published frame to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, p.ToImage())
}

// At implements the image.Image interface over the published frame.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(x, y).Color()
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
