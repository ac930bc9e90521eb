// Package pixel implements the 1-bit color model of monochrome displays.
//
// The model is compatible with Go's native [color.Color] and [image.Image] /
// [draw.Image] interfaces, which lets a framebuffer take part in the standard image
// pipelines (encoding, drawing, scaling).
package pixel
