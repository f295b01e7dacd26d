// Package render produces PNG thumbnails from a DICOM dataset's pixel
// data. Full photometric-interpretation and transfer-syntax decoding is
// explicitly out of scope (spec.md §1's "DICOM pixel decoding and image
// transcoding" non-goal is delegated to an image library); this package
// covers the uncompressed (native) transfer syntaxes the teacher's own
// dicom/pixel package decodes without a compressed codec, and returns an
// error for anything else rather than guessing.
//
// Grounded on the teacher's dicom/pixel package
// (_examples/codeninja55-go-radx/dicom/pixel: extractor.go's Extract and
// pixel_data.go's PixelData.Image), scoped here to dicom/pixel's own
// native-only registration; resizing reuses golang.org/x/image/draw,
// already a pack dependency.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"

	"golang.org/x/image/draw"

	"github.com/codeninja55/rudicom/dicom"
	"github.com/codeninja55/rudicom/dicom/pixel"
)

// ErrUnsupportedPixelData is returned when ds's pixel data isn't one this
// package knows how to decode.
var ErrUnsupportedPixelData = fmt.Errorf("render: unsupported pixel data encoding")

// Thumbnail decodes ds's pixel data at its native Rows x Columns size via
// dicom/pixel.Extract, then resizes to width x height (either may be 0 to
// preserve the native size in that dimension) and encodes the result as
// PNG.
func Thumbnail(ds *dicom.DataSet, width, height int) ([]byte, error) {
	pd, err := pixel.Extract(ds)
	if err != nil {
		var tsErr *pixel.TransferSyntaxError
		if errors.As(err, &tsErr) {
			return nil, fmt.Errorf("render: %w: transfer syntax %s", ErrUnsupportedPixelData, tsErr.UID)
		}
		return nil, fmt.Errorf("render: %w: %v", ErrUnsupportedPixelData, err)
	}
	if pd.SamplesPerPixel != 1 {
		return nil, fmt.Errorf("render: %w: %d samples per pixel", ErrUnsupportedPixelData, pd.SamplesPerPixel)
	}

	img := pd.Image()
	bounds := img.Bounds()
	if width <= 0 {
		width = bounds.Dx()
	}
	if height <= 0 {
		height = bounds.Dy()
	}

	dst := newGrayLike(img, width, height)
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("render: encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// newGrayLike returns a destination image of the same grayscale depth as
// src (8- or 16-bit), per pixel.PixelData.Image's own BitsAllocated split.
func newGrayLike(src image.Image, width, height int) draw.Image {
	rect := image.Rect(0, 0, width, height)
	if _, ok := src.(*image.Gray16); ok {
		return image.NewGray16(rect)
	}
	return image.NewGray(rect)
}
