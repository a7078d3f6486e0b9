// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet holding the exported pay statements.
const SheetName = "Pay Statements"

var sheetHeaders = []string{
	"Name",
	"Date",
	"Filename",
	"Extraction Date",
	"Address",
	"Phone",
	"Email",
}

// workbook renders entries as one row per pay statement. Individuals without
// statements still get a row so their contact details are exported.
func workbook(entries []Entry) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("xlsx sheet: %w", err)
	}

	row := 1
	write := func(col int, v any) error {
		cell, err := excelize.CoordinatesToCellName(col, row)
		if err != nil {
			return err
		}
		return f.SetCellValue(SheetName, cell, v)
	}

	for i, h := range sheetHeaders {
		if err := write(i+1, h); err != nil {
			return nil, fmt.Errorf("xlsx header: %w", err)
		}
	}

	for _, e := range entries {
		recs := e.Records
		if len(recs) == 0 {
			recs = []Record{{}}
		}
		for _, r := range recs {
			row++
			for col, v := range []string{e.Name, r.Date, r.Filename, r.ExtractedAt, e.Address, e.Phone, e.Email} {
				if err := write(col+1, v); err != nil {
					return nil, fmt.Errorf("xlsx row %d: %w", row, err)
				}
			}
		}
	}

	_ = f.SetColWidth(SheetName, "A", "A", 24) // name
	_ = f.SetColWidth(SheetName, "B", "B", 14) // date
	_ = f.SetColWidth(SheetName, "C", "C", 40) // filename
	_ = f.SetColWidth(SheetName, "D", "D", 20) // extraction date
	_ = f.SetColWidth(SheetName, "E", "G", 28) // contact

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}
