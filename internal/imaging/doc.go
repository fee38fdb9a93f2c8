// Package imaging provides the image primitives used to assemble and inspect
// mosaics.
//
// This package decodes tile sources from disk, resizes them to an exact tile
// size, caches resized tiles for the duration of one build, reports metadata
// about source files, draws tile-boundary overlays on previews, and extracts
// single cells back out of a finished canvas. All operations work with
// standard Go image.Image types and use a coordinate system where (0,0) is
// at the top-left corner, X increases rightward, and Y increases downward.
//
// # Supported Formats
//
// Decoding goes through github.com/disintegration/imaging, so every format
// registered with the image package can be read. The loader registers PNG,
// JPEG, GIF and BMP explicitly; TIFF comes along with the imaging library.
// JPEG files are rotated according to their EXIF orientation tag.
//
// # Grid Coordinates
//
// Cells are addressed by (row, col), both 0-based. Cell (row, col) of a grid
// with tiles of w×h pixels covers the pixel rectangle
// (col*w, row*h)-((col+1)*w, (row+1)*h), exclusive at the bottom-right.
//
// # Thread Safety
//
// TileCache is not safe for concurrent use. It is meant to live inside a
// single, sequential build and be dropped afterwards.
package imaging
