package scheduling

// DropReason explains why a recorded preference was not honored in pass 1
type DropReason string

const (
	// DropWeeklyLimit means the employee had already reached the weekly day cap
	DropWeeklyLimit DropReason = "weekly limit reached"

	// DropAlreadyScheduled means the employee was already assigned a shift that day
	DropAlreadyScheduled DropReason = "already scheduled that day"
)

// DroppedPreference records a preference that could not be honored.
// Dropped preferences are not rerouted to other shifts.
type DroppedPreference struct {
	Employee string
	Day      Day
	Shift    Shift
	Reason   DropReason
}

// Cell is one (day, shift) slot in a finished schedule
type Cell struct {
	Day   Day
	Shift Shift

	// Employees assigned to this slot, preference assignments first,
	// random top-ups after
	Employees []string

	// Required is the minimum staffing the scheduler attempted to reach
	Required int
}

// Understaffed returns true if the cell fell short of its required minimum
func (c Cell) Understaffed() bool {
	return len(c.Employees) < c.Required
}

// ScheduleResult is the complete outcome of a scheduling run: the full
// 7x3 grid plus per-employee day totals. It is a snapshot; mutating it has
// no effect on the Scheduler.
type ScheduleResult struct {
	// Cells holds all 21 slots in day-major order (Monday Morning first,
	// Sunday Evening last). Use Cell for keyed access.
	Cells []Cell

	// DaysWorked maps each known employee to the number of days they were
	// assigned this week. Employees with zero assignments are included.
	DaysWorked map[string]int

	// Dropped lists preferences that could not be honored in pass 1
	Dropped []DroppedPreference
}

// Cell returns the slot for the given day and shift
func (r *ScheduleResult) Cell(day Day, shift Shift) Cell {
	return r.Cells[int(day)*len(Shifts)+int(shift)]
}

// UnderstaffedCells returns the slots that fell short of the required
// minimum, in day-major order
func (r *ScheduleResult) UnderstaffedCells() []Cell {
	var cells []Cell
	for _, cell := range r.Cells {
		if cell.Understaffed() {
			cells = append(cells, cell)
		}
	}
	return cells
}
