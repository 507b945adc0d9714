// Package imaging converts between grids and pictures.
//
// GridFromImage samples a raster image into a grid, one cell per square
// block of pixels. Render goes the other way: it paints a grid and the
// bounding boxes found in it into an *image.NRGBA, which EncodePNG and
// SavePNG turn into PNG output and CropBox zooms into one box.
//
// # Coordinate System
//
// Pixel coordinates are 0-based with (0,0) at the top-left corner, X
// increasing rightward and Y downward. Grid boxes are 1-based (row, column)
// pairs, so a box's X runs along pixel Y and its Y along pixel X.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. The remaining functions are
// stateless and never modify their input images.
package imaging
