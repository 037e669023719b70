package documents

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

// ExportSheet names the worksheet holding the register.
const ExportSheet = "Documents"

// ExportHeader lists the export columns in order.
var ExportHeader = []string{
	"ID",
	"Serial Number",
	"Name",
	"Document Number",
	"Originating Unit",
	"Category",
	"Deadline",
	"Entry Time",
	"Status",
	"Last Stage",
	"Completed By",
	"Completion Time",
}

var exportWidths = []float64{8, 24, 36, 18, 24, 16, 12, 20, 40, 18, 18, 20}

const exportTimeLayout = "2006-01-02 15:04:05"

func buildWorkbook(docs []Document) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(ExportSheet)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("remove default sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	for i, header := range ExportHeader {
		if err := setCell(f, i+1, 1, header); err != nil {
			return nil, err
		}

		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(ExportSheet, col, col, exportWidths[i]); err != nil {
			return nil, fmt.Errorf("set column width: %w", err)
		}
	}

	last, _ := excelize.CoordinatesToCellName(len(ExportHeader), 1)
	if err := f.SetCellStyle(ExportSheet, "A1", last, headerStyle); err != nil {
		return nil, fmt.Errorf("set header style: %w", err)
	}
	if err := f.SetPanes(ExportSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, fmt.Errorf("freeze header: %w", err)
	}

	for i, d := range docs {
		row := i + 2
		values := []any{
			d.ID,
			d.SerialNumber,
			d.Name,
			deref(d.DocumentNumber),
			d.OriginatingUnit,
			deref(d.Category),
			deref(d.Deadline),
			d.EntryTime.UTC().Format(exportTimeLayout),
			d.Status,
			deref(d.LastStage),
			deref(d.CompletedBy),
			formatTime(d.CompletionTime),
		}
		for j, v := range values {
			if v == "" {
				continue
			}
			if err := setCell(f, j+1, row, v); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func setCell(f *excelize.File, col, row int, value any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("cell name: %w", err)
	}
	if err := f.SetCellValue(ExportSheet, cell, value); err != nil {
		return fmt.Errorf("set cell %s: %w", cell, err)
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(exportTimeLayout)
}
