package export

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/Odongfelix/jweb/internal/core/domain"
	"github.com/Odongfelix/jweb/internal/utils"
	"github.com/go-pdf/fpdf"
)

const logoName = "report-logo"

var pdfColumnWidths = []float64{24, 34, 38, 38, 24, 24, 28, 32, 32}

// PDF writes rows to a landscape A4 table. An unusable logo is reported
// through opts.OnLogoError and left out.
func PDF(rows []domain.JournalEntryReportRow, opts Options) ([]byte, error) {
	return renderPDF(rows, opts, true)
}

func renderPDF(rows []domain.JournalEntryReportRow, opts Options, compress bool) ([]byte, error) {
	opts = opts.withDefaults()

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetCompression(compress)
	// core fonts are cp1252, text arrives as UTF-8
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(opts.Title, true)
	pdf.SetAutoPageBreak(true, 12)
	pdf.AddPage()

	top := 10.0
	if len(opts.Logo) > 0 {
		if err := drawLogo(pdf, opts.Logo); err != nil {
			if opts.OnLogoError != nil {
				opts.OnLogoError(err)
			}
		} else {
			top = 30
		}
	}

	pdf.SetXY(10, top)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, tr(opts.Title), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 6, "Generated "+opts.GeneratedAt.Format("2006-01-02 15:04"), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range opts.headers() {
		pdf.CellFormat(pdfColumnWidths[i], 7, tr(h), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	for _, r := range rows {
		cells := []struct {
			text  string
			align string
		}{
			{r.Date.Format("2006-01-02"), "L"},
			{r.Office, "L"},
			{r.DebitAccount, "L"},
			{r.CreditAccount, "L"},
			{utils.FormatGrouped(r.DebitUSD, 2), "R"},
			{utils.FormatGrouped(r.CreditUSD, 2), "R"},
			{utils.FormatGrouped(r.ConversionRate, 2), "R"},
			{utils.FormatGrouped(r.DebitUGX, 2), "R"},
			{utils.FormatGrouped(r.CreditUGX, 2), "R"},
		}
		for i, c := range cells {
			pdf.CellFormat(pdfColumnWidths[i], 6, tr(c.text), "1", 0, c.align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write document: %w", err)
	}
	return buf.Bytes(), nil
}

// drawLogo registers and places the logo. On failure the document's error
// state is cleared so rendering can continue.
func drawLogo(pdf *fpdf.Fpdf, logo []byte) error {
	imageType, err := imageType(logo)
	if err != nil {
		return err
	}

	opt := fpdf.ImageOptions{ImageType: imageType, ReadDpi: true}
	pdf.RegisterImageOptionsReader(logoName, opt, bytes.NewReader(logo))
	if !pdf.Ok() {
		err := pdf.Error()
		pdf.ClearError()
		return fmt.Errorf("failed to load logo: %w", err)
	}

	pdf.ImageOptions(logoName, 10, 8, 0, 18, false, opt, 0, "")
	if !pdf.Ok() {
		err := pdf.Error()
		pdf.ClearError()
		return fmt.Errorf("failed to draw logo: %w", err)
	}
	return nil
}

func imageType(data []byte) (string, error) {
	switch ct := http.DetectContentType(data); ct {
	case "image/png":
		return "PNG", nil
	case "image/jpeg":
		return "JPG", nil
	case "image/gif":
		return "GIF", nil
	default:
		return "", fmt.Errorf("unsupported logo content type %q", ct)
	}
}
