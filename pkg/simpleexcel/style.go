package simpleexcel

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

const (
	BorderStyleThin   = "thin"
	BorderStyleMedium = "medium"
	BorderStyleThick  = "thick"
	BorderStyleDashed = "dashed"
	BorderStyleDotted = "dotted"
	BorderStyleDouble = "double"
)

// borderStyleIDs maps border names to excelize border style indexes.
var borderStyleIDs = map[string]int{
	BorderStyleThin:   1,
	BorderStyleMedium: 2,
	BorderStyleDashed: 3,
	BorderStyleDotted: 4,
	BorderStyleThick:  5,
	BorderStyleDouble: 6,
}

// StyleTemplate defines the styling of a single cell. Every component is optional
// and is set independently of the others.
type StyleTemplate struct {
	Font      *FontTemplate      `yaml:"font"`
	Fill      *FillTemplate      `yaml:"fill"`
	Border    *BorderTemplate    `yaml:"border"`
	Alignment *AlignmentTemplate `yaml:"alignment"`
}

type FontTemplate struct {
	Bold   bool    `yaml:"bold"`
	Italic bool    `yaml:"italic"`
	Size   float64 `yaml:"size"`
	Color  string  `yaml:"color"` // Hex color
}

type FillTemplate struct {
	Color string `yaml:"color"` // Hex color
}

// BorderTemplate applies the same line to all four sides of a cell.
type BorderTemplate struct {
	Style string `yaml:"style"` // thin, medium, thick, dashed, dotted, double
	Color string `yaml:"color"` // Hex color
}

type AlignmentTemplate struct {
	Horizontal string `yaml:"horizontal"` // center, left, right
	Vertical   string `yaml:"vertical"`   // top, center, bottom
	WrapText   bool   `yaml:"wrap_text"`
}

// IsZero reports whether no component is set.
func (s StyleTemplate) IsZero() bool {
	return s.Font == nil && s.Fill == nil && s.Border == nil && s.Alignment == nil
}

// key returns a string that is equal for two templates rendering to the same style.
func (s StyleTemplate) key() string {
	var sb strings.Builder
	if s.Font != nil {
		fmt.Fprintf(&sb, "f:%v:%v:%g:%s|", s.Font.Bold, s.Font.Italic, s.Font.Size, normalizeColor(s.Font.Color))
	}
	if s.Fill != nil {
		fmt.Fprintf(&sb, "i:%s|", normalizeColor(s.Fill.Color))
	}
	if s.Border != nil {
		fmt.Fprintf(&sb, "b:%s:%s|", s.Border.Style, normalizeColor(s.Border.Color))
	}
	if s.Alignment != nil {
		fmt.Fprintf(&sb, "a:%s:%s:%v|", s.Alignment.Horizontal, s.Alignment.Vertical, s.Alignment.WrapText)
	}
	return sb.String()
}

// toExcelize converts the template to an excelize style definition.
func (s StyleTemplate) toExcelize() (*excelize.Style, error) {
	style := &excelize.Style{}
	if s.Font != nil {
		style.Font = &excelize.Font{
			Bold:   s.Font.Bold,
			Italic: s.Font.Italic,
			Size:   s.Font.Size,
			Color:  normalizeColor(s.Font.Color),
		}
	}
	if s.Fill != nil {
		style.Fill = excelize.Fill{
			Type:    "pattern",
			Color:   []string{normalizeColor(s.Fill.Color)},
			Pattern: 1,
		}
	}
	if s.Border != nil {
		id, ok := borderStyleIDs[s.Border.Style]
		if !ok {
			return nil, fmt.Errorf("unknown border style %q", s.Border.Style)
		}
		color := normalizeColor(s.Border.Color)
		for _, side := range []string{"left", "right", "top", "bottom"} {
			style.Border = append(style.Border, excelize.Border{Type: side, Color: color, Style: id})
		}
	}
	if s.Alignment != nil {
		style.Alignment = &excelize.Alignment{
			Horizontal: s.Alignment.Horizontal,
			Vertical:   s.Alignment.Vertical,
			WrapText:   s.Alignment.WrapText,
		}
	}
	return style, nil
}

func normalizeColor(c string) string {
	return strings.ToUpper(strings.TrimPrefix(c, "#"))
}

// styleCache creates each distinct style once per workbook.
type styleCache struct {
	ids map[string]int
}

func newStyleCache() *styleCache {
	return &styleCache{ids: make(map[string]int)}
}

func (c *styleCache) styleID(f *excelize.File, tmpl StyleTemplate) (int, error) {
	if tmpl.IsZero() {
		return 0, nil
	}

	key := tmpl.key()
	if id, ok := c.ids[key]; ok {
		return id, nil
	}

	style, err := tmpl.toExcelize()
	if err != nil {
		return 0, err
	}
	id, err := f.NewStyle(style)
	if err != nil {
		return 0, fmt.Errorf("create style: %w", err)
	}
	c.ids[key] = id
	return id, nil
}
