package export

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/archit-tiwari-26/timetable3.0/infra/render"
)

// Scale is the fixed pixel-density factor applied to every snapshot
// capture. It is a display convention, not configurable.
const Scale = 2

// ErrSourceMissing is returned when the requested surface was never
// rendered. The export aborts before any side effect.
var ErrSourceMissing = errors.New("export source not rendered")

// Snapshot captures the surface registered under id and writes it to the
// named PDF file. The surface is re-laid-out off-screen at its natural
// content size, rasterized at the fixed scale onto an opaque white
// background, and placed full-page in a document whose page matches the
// raster's pixel dimensions.
func Snapshot(reg *render.Registry, id, filename string) error {
	s, ok := reg.Lookup(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrSourceMissing, id)
	}
	img := render.Rasterize(s.Grid, Scale)
	pdf, err := buildPDF(img)
	if err != nil {
		return err
	}
	if err := pdf.OutputFileAndClose(filename); err != nil {
		return fmt.Errorf("write %s: %w", filename, err)
	}
	return nil
}

// SnapshotTo captures like Snapshot but streams the document to w.
func SnapshotTo(reg *render.Registry, id string, w io.Writer) error {
	s, ok := reg.Lookup(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrSourceMissing, id)
	}
	pdf, err := buildPDF(render.Rasterize(s.Grid, Scale))
	if err != nil {
		return err
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

// buildPDF assembles a single-page document sized exactly to the raster:
// landscape when wider than tall, portrait otherwise, image at the origin.
func buildPDF(img image.Image) (*gofpdf.Fpdf, error) {
	b := img.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())

	orientation := "P"
	size := gofpdf.SizeType{Wd: w, Ht: h}
	if w > h {
		// gofpdf flips a custom size for landscape pages, so hand it the
		// portrait-normalized dimensions.
		orientation = "L"
		size = gofpdf.SizeType{Wd: h, Ht: w}
	}
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: orientation,
		UnitStr:        "pt",
		Size:           size,
	})
	pdf.AddPage()

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode raster: %w", err)
	}
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("grid", opts, &buf)
	pdf.ImageOptions("grid", 0, 0, w, h, false, opts, 0, "")
	if pdf.Err() {
		return nil, fmt.Errorf("assemble pdf: %w", pdf.Error())
	}
	return pdf, nil
}
