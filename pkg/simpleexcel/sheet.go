package simpleexcel

import (
	"errors"
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"
)

const (
	OrientationLandscape = "landscape"
	OrientationPortrait  = "portrait"

	// PaperSizeA4 is the OOXML paper size code for A4 (210 mm by 297 mm).
	PaperSizeA4 = 9
)

// ErrInvalidCoordinate is returned for rows or columns below 1.
var ErrInvalidCoordinate = errors.New("invalid cell coordinate")

// CellRef addresses a cell by 1-based row and column.
type CellRef struct {
	Row int
	Col int
}

// Name returns the A1-style name of the cell.
func (r CellRef) Name() string {
	name, _ := excelize.CoordinatesToCellName(r.Col, r.Row)
	return name
}

// Range is an inclusive rectangle of cells.
type Range struct {
	Start CellRef
	End   CellRef
}

// String returns the range in A1:B2 notation.
func (r Range) String() string {
	return fmt.Sprintf("%s:%s", r.Start.Name(), r.End.Name())
}

// Cell is a value and its style. A nil value leaves the cell empty.
type Cell struct {
	Value interface{}
	Style StyleTemplate
}

// ListValidation restricts a single column range to a list of values.
type ListValidation struct {
	Col        int
	FirstRow   int
	LastRow    int
	Values     []string
	AllowBlank bool
}

// Range returns the cells the validation covers.
func (v ListValidation) Range() Range {
	return Range{Start: CellRef{Row: v.FirstRow, Col: v.Col}, End: CellRef{Row: v.LastRow, Col: v.Col}}
}

// PageSetup holds print metadata for the sheet.
type PageSetup struct {
	Orientation string
	PaperSize   int
	FitToPage   bool
}

// Sheet is an in-memory grid of styled cells that is rendered by an Exporter.
type Sheet struct {
	Name string

	cells       map[CellRef]*Cell
	maxRow      int
	maxCol      int
	merges      []Range
	colWidths   map[int]float64
	validations []ListValidation
	page        *PageSetup
}

// NewSheet returns an empty sheet.
func NewSheet(name string) *Sheet {
	return &Sheet{
		Name:      name,
		cells:     make(map[CellRef]*Cell),
		colWidths: make(map[int]float64),
	}
}

func (s *Sheet) cell(row, col int) (*Cell, error) {
	if row < 1 || col < 1 {
		return nil, fmt.Errorf("%w: row %d, col %d", ErrInvalidCoordinate, row, col)
	}
	ref := CellRef{Row: row, Col: col}
	c, ok := s.cells[ref]
	if !ok {
		c = &Cell{}
		s.cells[ref] = c
		if row > s.maxRow {
			s.maxRow = row
		}
		if col > s.maxCol {
			s.maxCol = col
		}
	}
	return c, nil
}

// SetValue sets the value of a cell without touching its style.
func (s *Sheet) SetValue(row, col int, value interface{}) error {
	c, err := s.cell(row, col)
	if err != nil {
		return err
	}
	c.Value = value
	return nil
}

// SetFont replaces the font of a cell.
func (s *Sheet) SetFont(row, col int, font *FontTemplate) error {
	c, err := s.cell(row, col)
	if err != nil {
		return err
	}
	c.Style.Font = font
	return nil
}

// SetFill replaces the fill of a cell.
func (s *Sheet) SetFill(row, col int, fill *FillTemplate) error {
	c, err := s.cell(row, col)
	if err != nil {
		return err
	}
	c.Style.Fill = fill
	return nil
}

// SetBorder replaces the border of a cell.
func (s *Sheet) SetBorder(row, col int, border *BorderTemplate) error {
	c, err := s.cell(row, col)
	if err != nil {
		return err
	}
	c.Style.Border = border
	return nil
}

// SetAlignment replaces the alignment of a cell.
func (s *Sheet) SetAlignment(row, col int, alignment *AlignmentTemplate) error {
	c, err := s.cell(row, col)
	if err != nil {
		return err
	}
	c.Style.Alignment = alignment
	return nil
}

// Cell returns a copy of the cell at row, col. Unset cells are zero.
func (s *Sheet) Cell(row, col int) Cell {
	if c, ok := s.cells[CellRef{Row: row, Col: col}]; ok {
		return *c
	}
	return Cell{}
}

// Value returns the value at row, col or nil.
func (s *Sheet) Value(row, col int) interface{} {
	return s.Cell(row, col).Value
}

// Dimensions returns the last used row and column.
func (s *Sheet) Dimensions() (rows, cols int) {
	return s.maxRow, s.maxCol
}

// MergeCells merges the rectangle between the two corners.
func (s *Sheet) MergeCells(startRow, startCol, endRow, endCol int) error {
	if _, err := s.cell(startRow, startCol); err != nil {
		return err
	}
	if _, err := s.cell(endRow, endCol); err != nil {
		return err
	}
	s.merges = append(s.merges, Range{
		Start: CellRef{Row: startRow, Col: startCol},
		End:   CellRef{Row: endRow, Col: endCol},
	})
	return nil
}

// Merges returns the merged ranges in the order they were added.
func (s *Sheet) Merges() []Range {
	return append([]Range(nil), s.merges...)
}

// SetColWidth sets the width of a column in character units.
func (s *Sheet) SetColWidth(col int, width float64) error {
	if col < 1 {
		return fmt.Errorf("%w: col %d", ErrInvalidCoordinate, col)
	}
	s.colWidths[col] = width
	return nil
}

// ColWidth returns the width set for col, or 0.
func (s *Sheet) ColWidth(col int) float64 {
	return s.colWidths[col]
}

// AddListValidation attaches a drop-down list restriction.
func (s *Sheet) AddListValidation(v ListValidation) error {
	if v.Col < 1 || v.FirstRow < 1 || v.LastRow < v.FirstRow {
		return fmt.Errorf("%w: list validation col %d rows %d-%d", ErrInvalidCoordinate, v.Col, v.FirstRow, v.LastRow)
	}
	if len(v.Values) == 0 {
		return fmt.Errorf("list validation %s has no values", v.Range())
	}
	v.Values = append([]string(nil), v.Values...)
	s.validations = append(s.validations, v)
	return nil
}

// Validations returns the list validations in the order they were added.
func (s *Sheet) Validations() []ListValidation {
	return append([]ListValidation(nil), s.validations...)
}

// SetPageSetup sets the print metadata.
func (s *Sheet) SetPageSetup(p PageSetup) {
	s.page = &p
}

// PageSetup returns the print metadata, or nil when unset.
func (s *Sheet) PageSetup() *PageSetup {
	return s.page
}

// refs returns the used cell references in row-major order.
func (s *Sheet) refs() []CellRef {
	refs := make([]CellRef, 0, len(s.cells))
	for ref := range s.cells {
		refs = append(refs, ref)
	}
	sort.Slice(refs, func(i, j int) bool {
		if refs[i].Row != refs[j].Row {
			return refs[i].Row < refs[j].Row
		}
		return refs[i].Col < refs[j].Col
	})
	return refs
}
