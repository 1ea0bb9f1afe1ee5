package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDay_ValidLabels(t *testing.T) {
	labels := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

	for i, label := range labels {
		day, err := ParseDay(label)
		require.NoError(t, err)
		assert.Equal(t, Days[i], day)
		assert.Equal(t, label, day.String())
	}
}

func TestParseDay_UnrecognizedLabel(t *testing.T) {
	_, err := ParseDay("Funday")
	require.Error(t, err)

	var invalidErr *InvalidInputError
	require.ErrorAs(t, err, &invalidErr)
	assert.Equal(t, "day", invalidErr.Field)
	assert.Equal(t, "Funday", invalidErr.Value)
}

func TestParseDay_CaseSensitive(t *testing.T) {
	_, err := ParseDay("monday")
	assert.Error(t, err)
}

func TestParseShift_ValidLabels(t *testing.T) {
	labels := []string{"Morning", "Afternoon", "Evening"}

	for i, label := range labels {
		shift, err := ParseShift(label)
		require.NoError(t, err)
		assert.Equal(t, Shifts[i], shift)
		assert.Equal(t, label, shift.String())
	}
}

func TestParseShift_UnrecognizedLabel(t *testing.T) {
	_, err := ParseShift("Night")
	require.Error(t, err)

	var invalidErr *InvalidInputError
	require.ErrorAs(t, err, &invalidErr)
	assert.Equal(t, "shift", invalidErr.Field)
}

func TestDayAndShiftOrder(t *testing.T) {
	// Generation iterates these slices, so the order is contractual
	require.Len(t, Days, 7)
	assert.Equal(t, Monday, Days[0])
	assert.Equal(t, Sunday, Days[6])

	require.Len(t, Shifts, 3)
	assert.Equal(t, Morning, Shifts[0])
	assert.Equal(t, Evening, Shifts[2])
}
