// Package imageio converts between image files and the intensity grids
// and masks used by the segmentation pipeline.
//
// Images are reduced to grayscale and scaled to [0,1]; masks are written as
// black/white PNGs. Any format supported by imaging (PNG, JPEG, GIF, TIFF,
// BMP) can be read.
package imageio
