// Package rast provides a minimal 2D scan-conversion engine for Go.
//
// # Overview
//
// rast converts geometric primitives (points, line segments, axis-aligned
// rectangles, triangles) defined in continuous coordinates into discrete
// pixel coordinates. Line and triangle output carries per-pixel
// interpolation weights (barycentric coordinates) so that callers can blend
// per-vertex attributes such as color, normals, or texture coordinates.
//
// The library operates purely in already-projected 2D screen space. It is
// intended as a building block for larger pipelines: image encoding,
// windowing, and 3D transforms are left to the caller.
//
// # Quick Start
//
//	import "github.com/gogpu/rast"
//
//	pm := rast.NewPixmap(128, 128)
//	pm.SetAttr(0, rast.White)
//
//	tri := rast.Tri(
//		rast.Pt(0.0, 0.0),
//		rast.Pt(100.0, 100.0),
//		rast.Pt(0.0, 100.0),
//	)
//
//	stats, _ := pm.Draw(rast.Mesh[float64](tri))
//	pm.Swap() // publish the frame
//	pm.SavePNG("output.png")
//
// # Architecture
//
// The library is organized around three small contracts:
//   - Coord: a grid point plus optional interpolation weights
//   - Drawable: a primitive exposing a vertex count and a lazy Coord sequence
//   - Renderer: a double-buffered pixel store consumed by Draw
//
// Rasterization is pull-based: no primitive ever materializes its full point
// list, so arbitrarily large meshes draw in O(1) memory per shape.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// # Limitations
//
// No anti-aliasing, sub-pixel coverage, depth testing, or texture sampling.
// Rendering is single-threaded; a Renderer is not safe for concurrent use.
package rast

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
