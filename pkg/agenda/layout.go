package agenda

import (
	"embed"
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v2"
)

const DefaultLocale = "en"

// ErrInvalidLayout is returned when a layout template cannot produce an agenda.
var ErrInvalidLayout = errors.New("invalid agenda layout")

//go:embed layouts/*.yaml
var layoutFS embed.FS

// Layout holds every fixed parameter of the generated agenda.
type Layout struct {
	SheetName  string         `yaml:"sheet_name"`
	Title      string         `yaml:"title"`
	DateFormat string         `yaml:"date_format"` // Go reference layout
	Palette    Palette        `yaml:"palette"`
	TimeGrid   TimeGrid       `yaml:"time_grid"`
	Columns    []ColumnConfig `yaml:"columns"`
	Footer     Footer         `yaml:"footer"`
	Page       Page           `yaml:"page"`
}

type Palette struct {
	Header       string `yaml:"header"`
	Subheader    string `yaml:"subheader"`
	AlternateRow string `yaml:"alternate_row"`
	PlainRow     string `yaml:"plain_row"`
	Border       string `yaml:"border"`
}

type TimeGrid struct {
	Start       string `yaml:"start"` // HH:MM
	Slots       int    `yaml:"slots"`
	StepMinutes int    `yaml:"step_minutes"`
}

// Step returns the slot duration.
func (g TimeGrid) Step() time.Duration {
	return time.Duration(g.StepMinutes) * time.Minute
}

// ColumnConfig defines one agenda column and the SlotRow field it shows.
type ColumnConfig struct {
	FieldName   string       `yaml:"field_name"`
	Header      string       `yaml:"header"`
	Width       float64      `yaml:"width"`
	Default     string       `yaml:"default"`
	Choices     []string     `yaml:"choices"`
	ValueColors []ValueColor `yaml:"value_colors"`
}

// ColorFor returns the font color for value, if the column has one.
func (c ColumnConfig) ColorFor(value string) (string, bool) {
	for _, vc := range c.ValueColors {
		if vc.Value == value {
			return vc.Color, true
		}
	}
	return "", false
}

type ValueColor struct {
	Value string `yaml:"value"`
	Color string `yaml:"color"`
}

type Footer struct {
	Caption string  `yaml:"caption"`
	Size    float64 `yaml:"size"`
	Color   string  `yaml:"color"`
	Fill    string  `yaml:"fill"`
}

type Page struct {
	Orientation string `yaml:"orientation"`
	PaperSize   int    `yaml:"paper_size"`
	FitToPage   bool   `yaml:"fit_to_page"`
}

// LoadLayout returns the embedded layout for locale.
func LoadLayout(locale string) (*Layout, error) {
	if locale == "" {
		locale = DefaultLocale
	}
	data, err := layoutFS.ReadFile("layouts/" + locale + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("%w: no layout for locale %q", ErrInvalidLayout, locale)
	}
	return ParseLayout(data)
}

// ParseLayout decodes and validates a YAML layout template.
func ParseLayout(data []byte) (*Layout, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: layout is empty", ErrInvalidLayout)
	}
	var l Layout
	if err := yaml.UnmarshalStrict(data, &l); err != nil {
		return nil, fmt.Errorf("%w: decode yaml: %v", ErrInvalidLayout, err)
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

// Validate checks that the layout can be built.
func (l *Layout) Validate() error {
	if l.SheetName == "" {
		return fmt.Errorf("%w: sheet_name is required", ErrInvalidLayout)
	}
	if len(l.Columns) == 0 {
		return fmt.Errorf("%w: no columns", ErrInvalidLayout)
	}
	for _, col := range l.Columns {
		if !isSlotField(col.FieldName) {
			return fmt.Errorf("%w: unknown field_name %q", ErrInvalidLayout, col.FieldName)
		}
	}
	if l.TimeGrid.Slots <= 0 {
		return fmt.Errorf("%w: time_grid.slots must be positive", ErrInvalidLayout)
	}
	if l.TimeGrid.StepMinutes <= 0 {
		return fmt.Errorf("%w: time_grid.step_minutes must be positive", ErrInvalidLayout)
	}
	if _, err := time.Parse(timeLabelLayout, l.TimeGrid.Start); err != nil {
		return fmt.Errorf("%w: time_grid.start %q: %v", ErrInvalidLayout, l.TimeGrid.Start, err)
	}
	return nil
}
