package export

import (
	"fmt"

	"github.com/Odongfelix/jweb/internal/core/domain"
	"github.com/xuri/excelize/v2"
)

// XLSX writes rows to a single-sheet workbook.
func XLSX(rows []domain.JournalEntryReportRow, opts Options) ([]byte, error) {
	opts = opts.withDefaults()

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	headers := opts.headers()
	header := make([]any, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		values := []any{
			r.Date.Format("2006-01-02"),
			r.Office,
			r.DebitAccount,
			r.CreditAccount,
			r.DebitUSD.InexactFloat64(),
			r.CreditUSD.InexactFloat64(),
			r.ConversionRate.InexactFloat64(),
			r.DebitUGX.InexactFloat64(),
			r.CreditUGX.InexactFloat64(),
		}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return nil, err
	}
	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(SheetName, "A1", lastCol+"1", boldStyle); err != nil {
		return nil, err
	}
	amountStyle, err := f.NewStyle(&excelize.Style{NumFmt: 4}) // #,##0.00
	if err != nil {
		return nil, err
	}
	lastRow := fmt.Sprintf("%s%d", lastCol, len(rows)+1)
	if err := f.SetCellStyle(SheetName, "E2", lastRow, amountStyle); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(SheetName, "A", lastCol, 18); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
