package agenda

import (
	"fmt"
	"time"

	"github.com/locvowork/daily_agenda/pkg/simpleexcel"
)

const (
	titleRow     = 1
	headerRow    = 2
	firstSlotRow = 3

	titleFontSize  = 14
	headerFontSize = 11
	fontColorWhite = "FFFFFF"
)

// Build lays out a complete agenda sheet for the day of now.
//
// The sheet is built in a single top-to-bottom pass: title, header, slot rows,
// column widths, borders, list validations, value coloring, footer, page setup.
// Value coloring looks at the values present at build time only; no conditional
// format is installed, so later edits to the produced file keep their color.
func Build(layout *Layout, now time.Time) (*simpleexcel.Sheet, error) {
	if layout == nil {
		return nil, fmt.Errorf("%w: layout is nil", ErrInvalidLayout)
	}
	if err := layout.Validate(); err != nil {
		return nil, err
	}

	slots, err := TimeSlots(layout.TimeGrid.Start, layout.TimeGrid.Slots, layout.TimeGrid.Step())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLayout, err)
	}

	b := &builder{
		layout:  layout,
		sheet:   simpleexcel.NewSheet(layout.SheetName),
		cols:    len(layout.Columns),
		lastRow: firstSlotRow + len(slots) - 1,
	}

	steps := []func() error{
		func() error { return b.writeTitle(now) },
		b.writeHeader,
		func() error { return b.writeSlots(slots) },
		b.sizeColumns,
		b.applyBorders,
		b.addValidations,
		b.colorByValue,
		b.writeFooter,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return nil, err
		}
	}
	b.setupPage()

	return b.sheet, nil
}

// TitleFor returns the title text for the day of now.
func (l *Layout) TitleFor(now time.Time) string {
	return fmt.Sprintf("%s - %s", l.Title, now.Format(l.DateFormat))
}

// FooterRow returns the row index of the footer caption.
func (l *Layout) FooterRow() int {
	return firstSlotRow + l.TimeGrid.Slots
}

type builder struct {
	layout  *Layout
	sheet   *simpleexcel.Sheet
	cols    int
	lastRow int // last time slot row
}

func (b *builder) writeTitle(now time.Time) error {
	s := b.sheet
	if err := s.MergeCells(titleRow, 1, titleRow, b.cols); err != nil {
		return err
	}
	if err := s.SetValue(titleRow, 1, b.layout.TitleFor(now)); err != nil {
		return err
	}
	if err := s.SetFont(titleRow, 1, &simpleexcel.FontTemplate{Bold: true, Size: titleFontSize, Color: fontColorWhite}); err != nil {
		return err
	}
	if err := s.SetFill(titleRow, 1, &simpleexcel.FillTemplate{Color: b.layout.Palette.Header}); err != nil {
		return err
	}
	return s.SetAlignment(titleRow, 1, &simpleexcel.AlignmentTemplate{Horizontal: "center", Vertical: "center"})
}

func (b *builder) writeHeader() error {
	s := b.sheet
	font := &simpleexcel.FontTemplate{Bold: true, Size: headerFontSize, Color: fontColorWhite}
	fill := &simpleexcel.FillTemplate{Color: b.layout.Palette.Subheader}
	align := &simpleexcel.AlignmentTemplate{Horizontal: "center", Vertical: "center"}

	for i, col := range b.layout.Columns {
		c := i + 1
		if err := s.SetValue(headerRow, c, col.Header); err != nil {
			return err
		}
		if err := s.SetFont(headerRow, c, font); err != nil {
			return err
		}
		if err := s.SetFill(headerRow, c, fill); err != nil {
			return err
		}
		if err := s.SetAlignment(headerRow, c, align); err != nil {
			return err
		}
	}
	return nil
}

// writeSlots writes one row per time label. Even rows get the alternate tint.
func (b *builder) writeSlots(slots []string) error {
	s := b.sheet
	alternate := &simpleexcel.FillTemplate{Color: b.layout.Palette.AlternateRow}
	plain := &simpleexcel.FillTemplate{Color: b.layout.Palette.PlainRow}

	for i, label := range slots {
		row := firstSlotRow + i
		fill := plain
		if row%2 == 0 {
			fill = alternate
		}

		item := newSlotRow(label, b.layout.Columns)
		for j, col := range b.layout.Columns {
			c := j + 1
			if err := s.SetFill(row, c, fill); err != nil {
				return err
			}
			if v := item.field(col.FieldName); v != "" {
				if err := s.SetValue(row, c, v); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (b *builder) sizeColumns() error {
	for i, col := range b.layout.Columns {
		if col.Width <= 0 {
			continue
		}
		if err := b.sheet.SetColWidth(i+1, col.Width); err != nil {
			return err
		}
	}
	return nil
}

// applyBorders only sets border and alignment, fill and font stay as they are.
func (b *builder) applyBorders() error {
	s := b.sheet
	heavy := &simpleexcel.BorderTemplate{Style: simpleexcel.BorderStyleMedium, Color: b.layout.Palette.Border}
	light := &simpleexcel.BorderTemplate{Style: simpleexcel.BorderStyleThin, Color: b.layout.Palette.Border}
	align := &simpleexcel.AlignmentTemplate{Horizontal: "center", Vertical: "center", WrapText: true}

	for row := titleRow; row <= b.lastRow; row++ {
		border := light
		if row == titleRow || row == headerRow {
			border = heavy
		}
		for c := 1; c <= b.cols; c++ {
			if err := s.SetBorder(row, c, border); err != nil {
				return err
			}
			if err := s.SetAlignment(row, c, align); err != nil {
				return err
			}
		}
	}
	return nil
}

func (b *builder) addValidations() error {
	for i, col := range b.layout.Columns {
		if len(col.Choices) == 0 {
			continue
		}
		err := b.sheet.AddListValidation(simpleexcel.ListValidation{
			Col:        i + 1,
			FirstRow:   firstSlotRow,
			LastRow:    b.lastRow,
			Values:     col.Choices,
			AllowBlank: true,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// colorByValue replaces the font of cells whose current value has a color.
// Blank and unmatched values keep their font.
func (b *builder) colorByValue() error {
	for i, col := range b.layout.Columns {
		if len(col.ValueColors) == 0 {
			continue
		}
		c := i + 1
		for row := firstSlotRow; row <= b.lastRow; row++ {
			v, _ := b.sheet.Value(row, c).(string)
			color, ok := col.ColorFor(v)
			if !ok {
				continue
			}
			if err := b.sheet.SetFont(row, c, &simpleexcel.FontTemplate{Color: color}); err != nil {
				return err
			}
		}
	}
	return nil
}

func (b *builder) writeFooter() error {
	s := b.sheet
	row := b.lastRow + 1
	f := b.layout.Footer

	if err := s.MergeCells(row, 1, row, b.cols); err != nil {
		return err
	}
	if err := s.SetValue(row, 1, f.Caption); err != nil {
		return err
	}
	if err := s.SetFont(row, 1, &simpleexcel.FontTemplate{Italic: true, Size: f.Size, Color: f.Color}); err != nil {
		return err
	}
	if err := s.SetAlignment(row, 1, &simpleexcel.AlignmentTemplate{Horizontal: "center"}); err != nil {
		return err
	}
	return s.SetFill(row, 1, &simpleexcel.FillTemplate{Color: f.Fill})
}

func (b *builder) setupPage() {
	b.sheet.SetPageSetup(simpleexcel.PageSetup{
		Orientation: b.layout.Page.Orientation,
		PaperSize:   b.layout.Page.PaperSize,
		FitToPage:   b.layout.Page.FitToPage,
	})
}
