package agenda

import (
	"fmt"
	"time"
)

const timeLabelLayout = "15:04"

// TimeSlots returns count zero-padded HH:MM labels starting at start, step apart.
func TimeSlots(start string, count int, step time.Duration) ([]string, error) {
	t, err := time.Parse(timeLabelLayout, start)
	if err != nil {
		return nil, fmt.Errorf("parse start time %q: %w", start, err)
	}
	if count < 0 {
		return nil, fmt.Errorf("negative slot count %d", count)
	}

	labels := make([]string, count)
	for i := range labels {
		labels[i] = t.Add(time.Duration(i) * step).Format(timeLabelLayout)
	}
	return labels, nil
}
