package render

import (
	"bytes"
	"io"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"

	"github.com/akeil/snipbook"
	"github.com/akeil/snipbook/internal/logging"
)

// pdfPageWidth is the pixel width at which pages are composed before they
// are embedded into the PDF.
const pdfPageWidth = 1240

// RenderPDF exports the whole book as a PDF document, one PDF page per
// book page, and writes it to the given writer.
func RenderPDF(s snipbook.Storage, b *snipbook.Book, w io.Writer) error {
	logging.Debug("Render PDF for book %q with %v pages", b.Title, len(b.Pages))
	pdf := setupPDF("A4", b)

	for i := range b.Pages {
		err := renderPDFPage(pdf, s, b, i)
		if err != nil {
			return err
		}
	}

	return pdf.Output(w)
}

func setupPDF(pageSize string, b *snipbook.Book) *gofpdf.Fpdf {
	orientation := "P" // [P]ortrait or [L]andscape
	sizeUnit := "pt"
	fontDir := ""
	pdf := gofpdf.New(orientation, sizeUnit, pageSize, fontDir)

	pdf.SetMargins(0, 8, 0) // left, top, right
	pdf.AliasNbPages("{totalPages}")
	pdf.SetFont("helvetica", "", 8)
	pdf.SetTextColor(127, 127, 127)
	pdf.SetProducer("snipbook", true)
	pdf.SetTitle(b.Title, true)

	pdf.SetFooterFunc(func() {
		pdf.SetY(-20)
		pdf.SetX(24)
		pdf.Cellf(0, 10, "%d / {totalPages}  |  %v", pdf.PageNo(), b.Title)
	})

	return pdf
}

func renderPDFPage(pdf *gofpdf.Fpdf, s snipbook.Storage, b *snipbook.Book, pageIndex int) error {
	pdf.AddPage()

	name := uuid.New().String()
	opts := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: true}

	var buf bytes.Buffer
	err := RenderPagePNG(s, b, pageIndex, pdfPageWidth, &buf)
	if err != nil {
		return err
	}
	pdf.RegisterImageOptionsReader(name, opts, &buf)

	// scale the page image to the usable page width
	wPage, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	w := wPage - left - right

	x := 0.0
	y := 0.0
	h := 0.0
	flow := false
	link := 0
	linkStr := ""
	pdf.ImageOptions(name, x, y, w, h, flow, opts, link, linkStr)

	return nil
}
