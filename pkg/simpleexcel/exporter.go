package simpleexcel

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const defaultSheetName = "Sheet1"

// Exporter renders in-memory sheets into an xlsx workbook.
type Exporter struct {
	sheets []*Sheet

	colNameCache map[int]string
}

func NewExporter() *Exporter {
	return &Exporter{
		sheets:       []*Sheet{},
		colNameCache: make(map[int]string),
	}
}

// AddSheet appends a sheet to the workbook. Sheets are rendered in order.
func (e *Exporter) AddSheet(s *Sheet) *Exporter {
	e.sheets = append(e.sheets, s)
	return e
}

// GetSheet returns a sheet by name, or nil if not found.
func (e *Exporter) GetSheet(name string) *Sheet {
	for _, sheet := range e.sheets {
		if sheet.Name == name {
			return sheet
		}
	}
	return nil
}

// BuildExcel renders every sheet into a new excelize.File.
// The caller owns the returned file and must Close it.
func (e *Exporter) BuildExcel() (*excelize.File, error) {
	if len(e.sheets) == 0 {
		return nil, fmt.Errorf("no sheets to export")
	}

	f := excelize.NewFile()
	styles := newStyleCache()

	for i, sheet := range e.sheets {
		if i == 0 {
			if err := f.SetSheetName(defaultSheetName, sheet.Name); err != nil {
				f.Close()
				return nil, fmt.Errorf("rename sheet %q: %w", sheet.Name, err)
			}
		} else if _, err := f.NewSheet(sheet.Name); err != nil {
			f.Close()
			return nil, fmt.Errorf("create sheet %q: %w", sheet.Name, err)
		}

		if err := e.renderSheet(f, styles, sheet); err != nil {
			f.Close()
			return nil, fmt.Errorf("render sheet %q: %w", sheet.Name, err)
		}
	}

	return f, nil
}

// ExportToExcel generates the workbook and saves it to path, replacing any existing file.
func (e *Exporter) ExportToExcel(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f, err := e.BuildExcel()
	if err != nil {
		return err
	}
	defer f.Close()
	return f.SaveAs(path)
}

// ToBytes exports the workbook to an in-memory byte slice.
func (e *Exporter) ToBytes() ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := e.ToWriter(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ToWriter exports the workbook directly to a writer.
func (e *Exporter) ToWriter(w io.Writer) error {
	f, err := e.BuildExcel()
	if err != nil {
		return err
	}
	defer f.Close()

	return f.Write(w)
}

func (e *Exporter) renderSheet(f *excelize.File, styles *styleCache, s *Sheet) error {
	for _, ref := range s.refs() {
		c := s.cells[ref]
		cell := e.getCellAddress(ref.Col, ref.Row)
		if c.Value != nil {
			if err := f.SetCellValue(s.Name, cell, c.Value); err != nil {
				return err
			}
		}
		styleID, err := styles.styleID(f, c.Style)
		if err != nil {
			return fmt.Errorf("cell %s: %w", cell, err)
		}
		if styleID != 0 {
			if err := f.SetCellStyle(s.Name, cell, cell, styleID); err != nil {
				return err
			}
		}
	}

	for _, m := range s.merges {
		if err := f.MergeCell(s.Name, m.Start.Name(), m.End.Name()); err != nil {
			return fmt.Errorf("merge %s: %w", m, err)
		}
	}

	for col := 1; col <= s.maxCol; col++ {
		width, ok := s.colWidths[col]
		if !ok {
			continue
		}
		colName := e.getColName(col)
		if err := f.SetColWidth(s.Name, colName, colName, width); err != nil {
			return err
		}
	}

	for _, v := range s.validations {
		dv := excelize.NewDataValidation(v.AllowBlank)
		dv.Sqref = v.Range().String()
		if err := dv.SetDropList(v.Values); err != nil {
			return fmt.Errorf("validation %s: %w", dv.Sqref, err)
		}
		if err := f.AddDataValidation(s.Name, dv); err != nil {
			return fmt.Errorf("validation %s: %w", dv.Sqref, err)
		}
	}

	if s.page != nil {
		if err := e.renderPageSetup(f, s.Name, *s.page); err != nil {
			return err
		}
	}
	return nil
}

func (e *Exporter) renderPageSetup(f *excelize.File, sheet string, p PageSetup) error {
	opts := &excelize.PageLayoutOptions{}
	switch p.Orientation {
	case "":
	case OrientationLandscape, OrientationPortrait:
		orientation := p.Orientation
		opts.Orientation = &orientation
	default:
		return fmt.Errorf("unknown page orientation %q", p.Orientation)
	}
	if p.PaperSize > 0 {
		size := p.PaperSize
		opts.Size = &size
	}
	if err := f.SetPageLayout(sheet, opts); err != nil {
		return fmt.Errorf("page layout: %w", err)
	}

	fit := p.FitToPage
	if err := f.SetSheetProps(sheet, &excelize.SheetPropsOptions{FitToPage: &fit}); err != nil {
		return fmt.Errorf("sheet props: %w", err)
	}
	return nil
}

// getColName returns the column name for a given column number, with caching.
func (e *Exporter) getColName(col int) string {
	if name, ok := e.colNameCache[col]; ok {
		return name
	}
	name, _ := excelize.ColumnNumberToName(col)
	e.colNameCache[col] = name
	return name
}

func (e *Exporter) getCellAddress(col, row int) string {
	return fmt.Sprintf("%s%d", e.getColName(col), row)
}
