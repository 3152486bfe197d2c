package pubchem

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/ChrisMcGann/chemtools/pkg/formula"
)

const sheetName = "Properties"

// cellValue returns the value written to a spreadsheet cell. Numbers stay
// numeric; formulae are written as text.
func cellValue(p Properties, name string) any {
	v, ok := p.Get(name)
	if !ok {
		return nil
	}
	if f, ok := v.(*formula.Formula); ok {
		return f.String()
	}
	return v
}

// ExportXLSX writes one row per compound with a CID column followed by
// props to an Excel workbook at path.
func ExportXLSX(path string, props []string, rows []Properties) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)

	headers := append([]string{"CID"}, props...)
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return err
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetName, "A1", last, headerStyle); err != nil {
		return err
	}

	for r, p := range rows {
		values := make([]any, 0, len(headers))
		values = append(values, p.CID)
		for _, name := range props {
			values = append(values, cellValue(p, name))
		}
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return err
		}
	}

	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return err
	}
	if err := f.SetColWidth(sheetName, "A", lastCol, 18); err != nil {
		return err
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}

// WriteCSV writes the same table as ExportXLSX as CSV.
func WriteCSV(w io.Writer, props []string, rows []Properties) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(append([]string{"CID"}, props...)); err != nil {
		return err
	}
	for _, p := range rows {
		record := make([]string, 0, len(props)+1)
		record = append(record, fmt.Sprint(p.CID))
		for _, name := range props {
			record = append(record, p.Format(name))
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
