// Package mosaic assembles square grids of randomly chosen images.
//
// A build lists the image files of one directory, shuffles them, repeats the
// shuffled list when it is shorter than the n×n cells of the grid, and pastes
// each selected image, stretched to the tile size, into the canvas in
// row-major order:
//
//	result, err := mosaic.Build("photos", mosaic.Options{
//	    Grid: 4,
//	    Tile: mosaic.TileSize{Width: 200, Height: 200},
//	    Rand: mosaic.NewSeededRand(42),
//	})
//	if err != nil {
//	    return err
//	}
//	err = mosaic.Save(result.Canvas, "out.png")
//
// # Randomness
//
// The order of the pool comes from an injected Shuffler. Two builds of the
// same folder with generators seeded alike produce identical canvases.
//
// # Failures
//
// Directory and parameter problems abort the build and are reported through
// ErrDirectoryNotFound, ErrNoImagesFound and ErrInvalidParameter. An image
// that cannot be decoded only costs its own cell: the cell keeps the
// background colour and is reported as Skipped in Result.Cells.
package mosaic
