package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"quiz-forge/internal/domain"
)

// SheetName is the worksheet holding the exported rows.
const SheetName = "Quiz"

// XLSX writes the CSV rows into a single worksheet workbook.
func XLSX(quiz *domain.QuizResult) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	rows := append([][]string{tableHeader}, tableRows(quiz)...)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		values := make([]interface{}, len(row))
		for j, v := range row {
			values[j] = v
		}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
