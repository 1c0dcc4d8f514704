// Package imagefile reads and writes canvas rasters as image files.
package imagefile

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/jung-kurt/gofpdf"
)

// Format identifies an output encoding.
type Format int

const (
	PNG Format = iota
	JPEG
	GIF
	TIFF
	BMP
	PDF
)

var formatNames = map[Format]string{
	PNG:  "png",
	JPEG: "jpeg",
	GIF:  "gif",
	TIFF: "tiff",
	BMP:  "bmp",
	PDF:  "pdf",
}

var imagingFormats = map[Format]imaging.Format{
	PNG:  imaging.PNG,
	JPEG: imaging.JPEG,
	GIF:  imaging.GIF,
	TIFF: imaging.TIFF,
	BMP:  imaging.BMP,
}

// ErrUnsupportedFormat is returned for names and extensions with no encoder.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// DefaultName is the file name used when the user gives none.
const DefaultName = "my-image.png"

func (f Format) String() string {
	if n, ok := formatNames[f]; ok {
		return n
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat resolves a format name such as "png" or "jpg".
func ParseFormat(name string) (Format, error) {
	n := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(name), "."))
	if n == "pdf" {
		return PDF, nil
	}
	f, err := imaging.FormatFromExtension(n)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
	for k, v := range imagingFormats {
		if v == f {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
}

// FormatFromPath picks the format from the file extension of path.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return 0, fmt.Errorf("%w: %q has no extension", ErrUnsupportedFormat, path)
	}
	return ParseFormat(ext)
}

// Options tunes encoding.
type Options struct {
	// Scale resizes the output with nearest-neighbour sampling when it is
	// positive and not 1.
	Scale float64
	// Quality applies to JPEG output.
	Quality int
}

// Encode writes img to w in format f.
func Encode(w io.Writer, img image.Image, f Format) error {
	return EncodeWith(w, img, f, Options{})
}

// EncodeWith writes img to w in format f using opts.
func EncodeWith(w io.Writer, img image.Image, f Format, opts Options) error {
	if opts.Scale > 0 && opts.Scale != 1 {
		b := img.Bounds()
		width := int(float64(b.Dx())*opts.Scale + 0.5)
		height := int(float64(b.Dy())*opts.Scale + 0.5)
		if width < 1 {
			width = 1
		}
		if height < 1 {
			height = 1
		}
		img = imaging.Resize(img, width, height, imaging.NearestNeighbor)
	}
	if f == PDF {
		return encodePDF(w, img)
	}
	imf, ok := imagingFormats[f]
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
	}
	var encOpts []imaging.EncodeOption
	if opts.Quality > 0 {
		encOpts = append(encOpts, imaging.JPEGQuality(opts.Quality))
	}
	return imaging.Encode(w, img, imf, encOpts...)
}

// encodePDF places img on a single page sized to the image, one point per
// pixel.
func encodePDF(w io.Writer, img image.Image) error {
	b := img.Bounds()
	width, height := float64(b.Dx()), float64(b.Dy())
	// Portrait keeps Wd and Ht as given; landscape would swap them.
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: width, Ht: height},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return err
	}
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("canvas", opts, &buf)
	pdf.ImageOptions("canvas", 0, 0, width, height, false, opts, 0, "")
	return pdf.Output(w)
}

// Save writes img to path, choosing the format from the extension.
func Save(path string, img image.Image, opts Options) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := EncodeWith(out, img, f, opts); err != nil {
		if cerr := out.Close(); cerr != nil {
			return fmt.Errorf("%w (closing file: %v)", err, cerr)
		}
		return err
	}
	return out.Close()
}

// Open decodes the image file at path.
func Open(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return img, nil
}
