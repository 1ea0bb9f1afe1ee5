package scheduling

// Day is one of the seven days of the scheduling week, in calendar order
type Day int

const (
	Monday Day = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// Days lists all days in calendar order. Schedule generation iterates this
// order, so it is part of the scheduling contract, not a display convenience.
var Days = []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var dayLabels = map[Day]string{
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
	Sunday:    "Sunday",
}

func (d Day) String() string {
	return dayLabels[d]
}

// ParseDay converts a day label to a Day.
// Returns an InvalidInputError for unrecognized labels.
func ParseDay(label string) (Day, error) {
	for _, day := range Days {
		if dayLabels[day] == label {
			return day, nil
		}
	}
	return 0, &InvalidInputError{Field: "day", Value: label}
}

// Shift is one of the three daily work periods, in within-day order
type Shift int

const (
	Morning Shift = iota
	Afternoon
	Evening
)

// Shifts lists all shifts in within-day order. Like Days, this order
// determines which shift gets first claim on employees during generation.
var Shifts = []Shift{Morning, Afternoon, Evening}

var shiftLabels = map[Shift]string{
	Morning:   "Morning",
	Afternoon: "Afternoon",
	Evening:   "Evening",
}

func (s Shift) String() string {
	return shiftLabels[s]
}

// ParseShift converts a shift label to a Shift.
// Returns an InvalidInputError for unrecognized labels.
func ParseShift(label string) (Shift, error) {
	for _, shift := range Shifts {
		if shiftLabels[shift] == label {
			return shift, nil
		}
	}
	return 0, &InvalidInputError{Field: "shift", Value: label}
}
