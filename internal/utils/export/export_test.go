package export_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"

	"github.com/Odongfelix/jweb/internal/apperrors"
	"github.com/Odongfelix/jweb/internal/core/domain"
	"github.com/Odongfelix/jweb/internal/utils/export"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleRows() []domain.JournalEntryReportRow {
	return []domain.JournalEntryReportRow{
		{
			Date:           time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
			Office:         "Head Office",
			DebitAccount:   "Cash",
			CreditAccount:  "Sales",
			DebitUSD:       decimal.NewFromInt(100),
			CreditUSD:      decimal.NewFromInt(100),
			ConversionRate: decimal.NewFromInt(3700),
			DebitUGX:       decimal.NewFromInt(370000),
			CreditUGX:      decimal.NewFromInt(370000),
		},
		{
			Date:           time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC),
			Office:         "Gulu",
			DebitAccount:   "Bank",
			CreditAccount:  "Cash",
			DebitUSD:       decimal.RequireFromString("1.5"),
			CreditUSD:      decimal.RequireFromString("1.5"),
			ConversionRate: decimal.NewFromInt(3700),
			DebitUGX:       decimal.NewFromInt(5550),
			CreditUGX:      decimal.NewFromInt(5550),
		},
	}
}

func pngLogo(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			img.Set(x, y, color.RGBA{R: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestRender_EmptyRowsProducesNoFile(t *testing.T) {
	for _, format := range []domain.ExportFormat{domain.ExportXLSX, domain.ExportPDF} {
		file, err := export.Render(format, nil, export.Options{})
		assert.ErrorIs(t, err, apperrors.ErrNoDataToExport)
		assert.Nil(t, file)
	}
}

func TestRender_UnsupportedFormat(t *testing.T) {
	_, err := export.Render("csv", sampleRows(), export.Options{})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestRender_XLSX(t *testing.T) {
	day := time.Date(2024, 3, 4, 15, 0, 0, 0, time.UTC)

	file, err := export.Render(domain.ExportXLSX, sampleRows(), export.Options{GeneratedAt: day})
	require.NoError(t, err)
	assert.Equal(t, "journal_entries_report_2024-03-04.xlsx", file.FileName)
	assert.Equal(t, export.ContentTypeXLSX, file.ContentType)

	wb, err := excelize.OpenReader(bytes.NewReader(file.Content))
	require.NoError(t, err)
	defer wb.Close()

	assert.Equal(t, []string{export.SheetName}, wb.GetSheetList())
	rows, err := wb.GetRows(export.SheetName, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Debit (USD)", rows[0][4])
	assert.Equal(t, "Credit (UGX)", rows[0][8])
	assert.Equal(t, []string{"2024-03-02", "Head Office", "Cash", "Sales", "100", "100", "3700", "370000", "370000"}, rows[1])
	assert.Equal(t, "1.5", rows[2][4])
}

func TestRender_PDF(t *testing.T) {
	day := time.Date(2024, 3, 4, 15, 0, 0, 0, time.UTC)

	file, err := export.Render(domain.ExportPDF, sampleRows(), export.Options{GeneratedAt: day, Logo: pngLogo(t)})
	require.NoError(t, err)
	assert.Equal(t, "journal_entries_report_2024-03-04.pdf", file.FileName)
	assert.Equal(t, export.ContentTypePDF, file.ContentType)
	assert.True(t, bytes.HasPrefix(file.Content, []byte("%PDF")))
}

func TestPDF_InvalidLogoIsSkipped(t *testing.T) {
	var logoErr error
	opts := export.Options{
		Logo:        []byte("definitely not an image"),
		OnLogoError: func(err error) { logoErr = err },
	}

	content, err := export.PDF(sampleRows(), opts)

	require.NoError(t, err)
	assert.Error(t, logoErr)
	assert.True(t, bytes.HasPrefix(content, []byte("%PDF")))
}

func TestPDF_CorruptPNGIsSkipped(t *testing.T) {
	logo := pngLogo(t)
	corrupt := append([]byte{}, logo[:24]...)

	var logoErr error
	content, err := export.PDF(sampleRows(), export.Options{
		Logo:        corrupt,
		OnLogoError: func(err error) { logoErr = err },
	})

	require.NoError(t, err)
	assert.Error(t, logoErr)
	assert.NotEmpty(t, content)
}
