package agenda

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeSlotsDefaultGrid(t *testing.T) {
	slots, err := TimeSlots("08:00", 21, 30*time.Minute)
	require.NoError(t, err)

	require.Len(t, slots, 21)
	assert.Equal(t, "08:00", slots[0])
	assert.Equal(t, "08:30", slots[1])
	assert.Equal(t, "12:00", slots[8])
	assert.Equal(t, "18:00", slots[20])

	for i := 1; i < len(slots); i++ {
		prev, err := time.Parse(timeLabelLayout, slots[i-1])
		require.NoError(t, err)
		cur, err := time.Parse(timeLabelLayout, slots[i])
		require.NoError(t, err)
		assert.Equal(t, 30*time.Minute, cur.Sub(prev), "between %s and %s", slots[i-1], slots[i])
	}
}

func TestTimeSlotsZeroPadding(t *testing.T) {
	slots, err := TimeSlots("7:05", 3, 25*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, []string{"07:05", "07:30", "07:55"}, slots)
}

func TestTimeSlotsErrors(t *testing.T) {
	_, err := TimeSlots("eight", 21, 30*time.Minute)
	assert.Error(t, err)

	_, err = TimeSlots("08:00", -1, 30*time.Minute)
	assert.Error(t, err)

	slots, err := TimeSlots("08:00", 0, 30*time.Minute)
	require.NoError(t, err)
	assert.Empty(t, slots)
}
