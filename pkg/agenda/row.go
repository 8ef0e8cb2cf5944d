package agenda

import (
	"reflect"
)

// SlotRow is one time slot of the agenda.
type SlotRow struct {
	Time     string
	Task     string
	Priority string
	Status   string
	Notes    string
}

var slotRowType = reflect.TypeOf(SlotRow{})

func isSlotField(name string) bool {
	f, ok := slotRowType.FieldByName(name)
	return ok && f.Type.Kind() == reflect.String
}

// newSlotRow returns the row for a time label with column defaults applied.
func newSlotRow(label string, columns []ColumnConfig) SlotRow {
	row := SlotRow{Time: label}
	v := reflect.ValueOf(&row).Elem()
	for _, col := range columns {
		if col.Default == "" {
			continue
		}
		if f := v.FieldByName(col.FieldName); f.IsValid() && f.CanSet() {
			f.SetString(col.Default)
		}
	}
	return row
}

// field returns the named field of the row, or "" when it does not exist.
func (r SlotRow) field(name string) string {
	f := reflect.ValueOf(r).FieldByName(name)
	if !f.IsValid() || f.Kind() != reflect.String {
		return ""
	}
	return f.String()
}
