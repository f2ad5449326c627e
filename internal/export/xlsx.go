package export

import (
	"github.com/xuri/excelize/v2"

	"user-registry-backend/internal/user"
)

// writeXLSX builds the spreadsheet report: one header row, one row per
// user, columns widened to fit their longest cell.
func writeXLSX(users []user.User) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	header := make([]any, len(reportColumns))
	widths := make([]float64, len(reportColumns))
	for i, col := range reportColumns {
		header[i] = col
		widths[i] = float64(len(col))
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}

	for i, u := range users {
		cells := reportRow(u)
		row := make([]any, len(cells))
		for j, cell := range cells {
			row[j] = cell
			if w := float64(len([]rune(cell))); w > widths[j] {
				widths[j] = w
			}
		}

		addr, err := excelize.JoinCellName("A", i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, addr, &row); err != nil {
			return nil, err
		}
	}

	for i := range reportColumns {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(sheet, col, col, widths[i]+2); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
