// Command rastdemo demonstrates the rast software rasterizer.
package main

import (
	"flag"
	"image"
	"image/png"
	"log"
	"log/slog"
	"os"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/rast"
)

func main() {
	var (
		width   = flag.Int("width", 128, "framebuffer width")
		height  = flag.Int("height", 128, "framebuffer height")
		scale   = flag.Int("scale", 4, "nearest-neighbor upscale factor for the output image")
		output  = flag.String("output", "demo.png", "output file")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		rast.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	pm := rast.NewPixmap(*width, *height)
	w := float64(*width)
	h := float64(*height)

	// Flat-colored primitives through the Draw pipeline.
	pm.SetAttr(0, rast.RGB(0.2, 0.25, 0.3))
	if _, err := pm.Draw(rast.Mesh[float64](
		rast.Rect(0, w, 0, h),
	)); err != nil {
		log.Fatalf("background: %v", err)
	}

	pm.SetAttr(0, rast.Yellow)
	stats, err := pm.Draw(rast.Mesh[float64](
		rast.Ln(rast.Pt(0.0, h-1), rast.Pt(w-1, 0.0)),
		rast.Ln(rast.Pt(0.0, 0.0), rast.Pt(w-1, h-1)),
		rast.Tri(rast.Pt(w*0.7, h*0.55), rast.Pt(w*0.95, h*0.95), rast.Pt(w*0.45, h*0.95)),
	))
	if err != nil {
		log.Fatalf("shapes: %v", err)
	}

	// A triangle with per-vertex colors, blended from the barycentric
	// weights each fragment carries.
	tri := rast.Tri(
		rast.Pt(w*0.5, h*0.08),
		rast.Pt(w*0.9, h*0.5),
		rast.Pt(w*0.1, h*0.5),
	)
	for c := range tri.Points() {
		px := rast.Lerp3(c.Barycentric(), rast.Red, rast.Green, rast.Blue)
		pm.PutPixel(rast.Pt(int(c.P.X), int(c.P.Y)), px)
	}

	pm.Swap()

	if err := save(pm, *output, *scale); err != nil {
		log.Fatalf("save: %v", err)
	}

	log.Printf("demo saved to %s (%dx%d, scale %d, %d fragments)",
		*output, *width, *height, *scale, stats.Fragments)
}

// save writes the pixmap to a PNG file, upscaled with nearest-neighbor
// interpolation so individual pixels stay visible.
func save(pm *rast.Pixmap, path string, scale int) error {
	if scale < 1 {
		scale = 1
	}

	dst := image.NewNRGBA(image.Rect(0, 0, pm.Width()*scale, pm.Height()*scale))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), pm, pm.Bounds(), xdraw.Src, nil)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := png.Encode(f, dst); err != nil {
		return err
	}
	return f.Close()
}
