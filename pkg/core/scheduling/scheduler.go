package scheduling

import (
	"math/rand"
	"sort"
	"time"
)

const (
	// DefaultMinEmployeesPerShift is the staffing minimum each shift is
	// topped up toward
	DefaultMinEmployeesPerShift = 2

	// DefaultMaxDaysPerWeek is the most days any employee can be assigned
	// in one week
	DefaultMaxDaysPerWeek = 5
)

// SchedulerConfig contains the construction-time parameters of a Scheduler
type SchedulerConfig struct {
	// MinEmployeesPerShift is the staffing minimum per (day, shift) slot.
	// Defaults to DefaultMinEmployeesPerShift if zero.
	MinEmployeesPerShift int

	// MaxDaysPerWeek caps the days any employee works in the week.
	// Defaults to DefaultMaxDaysPerWeek if zero.
	MaxDaysPerWeek int

	// Seed seeds the random source used for top-up selection. The source
	// is rebuilt from this seed at the start of every BuildSchedule call,
	// so repeated runs draw the same sequence. Defaults to a time-based
	// seed (fixed at construction) if nil.
	Seed *int64
}

// Scheduler assigns employees to one of three daily shifts across a 7-day
// week. Preferences are accumulated first; BuildSchedule then runs a
// deterministic preference pass followed by a random top-up pass.
//
// A Scheduler is not safe for concurrent use.
type Scheduler struct {
	minPerShift int
	maxDays     int
	seed        int64
	rng         *rand.Rand

	// Accumulated intent (write-only phase)
	known       map[string]bool
	preferences map[string]map[Day]Shift

	// Per-run state, reset at the start of every BuildSchedule call
	assigned    map[Day]map[Shift][]string
	daysWorked  map[string]int
	assignedDay map[string]map[Day]bool
	dropped     []DroppedPreference
}

// NewScheduler creates a Scheduler with the given configuration,
// applying defaults for zero-valued fields
func NewScheduler(cfg SchedulerConfig) *Scheduler {
	if cfg.MinEmployeesPerShift <= 0 {
		cfg.MinEmployeesPerShift = DefaultMinEmployeesPerShift
	}
	if cfg.MaxDaysPerWeek <= 0 {
		cfg.MaxDaysPerWeek = DefaultMaxDaysPerWeek
	}
	seed := time.Now().UnixNano()
	if cfg.Seed != nil {
		seed = *cfg.Seed
	}
	return &Scheduler{
		minPerShift: cfg.MinEmployeesPerShift,
		maxDays:     cfg.MaxDaysPerWeek,
		seed:        seed,
		known:       make(map[string]bool),
		preferences: make(map[string]map[Day]Shift),
	}
}

// AddEmployee registers an employee in the scheduling pool without recording
// any preference. Registering the same employee twice is a no-op.
// Returns an InvalidInputError for an empty name.
func (s *Scheduler) AddEmployee(name string) error {
	if name == "" {
		return &InvalidInputError{Field: "employee", Value: name}
	}
	s.known[name] = true
	return nil
}

// RecordPreference stores an employee's preferred shift for a day. The
// employee is registered in the pool if not already known.
//
// Returns an InvalidInputError for an empty employee name or an unrecognized
// day or shift label. Returns ErrDuplicatePreference if the employee already
// has a preference for that day; the first preference wins.
func (s *Scheduler) RecordPreference(employee, dayLabel, shiftLabel string) error {
	if employee == "" {
		return &InvalidInputError{Field: "employee", Value: employee}
	}
	day, err := ParseDay(dayLabel)
	if err != nil {
		return err
	}
	shift, err := ParseShift(shiftLabel)
	if err != nil {
		return err
	}

	s.known[employee] = true
	prefs := s.preferences[employee]
	if prefs == nil {
		prefs = make(map[Day]Shift)
		s.preferences[employee] = prefs
	}
	if _, exists := prefs[day]; exists {
		return ErrDuplicatePreference
	}
	prefs[day] = shift
	return nil
}

// Employees returns the registered employee names in sorted order
func (s *Scheduler) Employees() []string {
	names := make([]string, 0, len(s.known))
	for name := range s.known {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Preferences returns a copy of the recorded preferences for an employee.
// The result is nil for unknown employees.
func (s *Scheduler) Preferences(employee string) map[Day]Shift {
	prefs, ok := s.preferences[employee]
	if !ok {
		return nil
	}
	copied := make(map[Day]Shift, len(prefs))
	for day, shift := range prefs {
		copied[day] = shift
	}
	return copied
}

// BuildSchedule produces the weekly schedule from the accumulated
// preferences. It never fails: impossible staffing is surfaced as
// understaffed cells in the result, not as an error, and an empty employee
// pool yields an all-understaffed schedule.
//
// All per-run state is reset on entry, so for a fixed random seed and an
// unchanged preference set repeated calls return identical results.
func (s *Scheduler) BuildSchedule() *ScheduleResult {
	s.reset()

	employees := s.Employees()

	// Pass 1: honor preferences. Deterministic: fixed day/shift order,
	// employees in sorted name order within each cell.
	for _, day := range Days {
		for _, shift := range Shifts {
			for _, employee := range employees {
				preferred, ok := s.preferences[employee][day]
				if !ok || preferred != shift {
					continue
				}
				if s.daysWorked[employee] >= s.maxDays {
					s.dropped = append(s.dropped, DroppedPreference{
						Employee: employee,
						Day:      day,
						Shift:    shift,
						Reason:   DropWeeklyLimit,
					})
					continue
				}
				if s.assignedDay[employee][day] {
					s.dropped = append(s.dropped, DroppedPreference{
						Employee: employee,
						Day:      day,
						Shift:    shift,
						Reason:   DropAlreadyScheduled,
					})
					continue
				}
				s.assign(employee, day, shift)
			}
		}
	}

	// Pass 2: top up understaffed cells with uniform random draws from the
	// eligible pool. The pool shrinks as employees fill their day or week.
	for _, day := range Days {
		for _, shift := range Shifts {
			for len(s.assigned[day][shift]) < s.minPerShift {
				pool := s.eligible(employees, day)
				if len(pool) == 0 {
					break
				}
				selected := pool[s.rng.Intn(len(pool))]
				s.assign(selected, day, shift)
			}
		}
	}

	return s.buildResult(employees)
}

// reset clears all per-run assignment state and rebuilds the random
// source from the seed, so every run draws the same sequence
func (s *Scheduler) reset() {
	s.rng = rand.New(rand.NewSource(s.seed))
	s.assigned = make(map[Day]map[Shift][]string, len(Days))
	for _, day := range Days {
		s.assigned[day] = make(map[Shift][]string, len(Shifts))
	}
	s.daysWorked = make(map[string]int, len(s.known))
	s.assignedDay = make(map[string]map[Day]bool, len(s.known))
	s.dropped = nil
}

// assign places an employee in a cell and updates their caps
func (s *Scheduler) assign(employee string, day Day, shift Shift) {
	s.assigned[day][shift] = append(s.assigned[day][shift], employee)
	s.daysWorked[employee]++
	days := s.assignedDay[employee]
	if days == nil {
		days = make(map[Day]bool)
		s.assignedDay[employee] = days
	}
	days[day] = true
}

// eligible returns the employees who can still be assigned on the given day:
// not yet scheduled that day and under the weekly cap. Order is the sorted
// employee order, so selection is reproducible for a fixed random source.
func (s *Scheduler) eligible(employees []string, day Day) []string {
	var pool []string
	for _, employee := range employees {
		if s.daysWorked[employee] >= s.maxDays {
			continue
		}
		if s.assignedDay[employee][day] {
			continue
		}
		pool = append(pool, employee)
	}
	return pool
}

// buildResult snapshots the per-run state into an immutable ScheduleResult
func (s *Scheduler) buildResult(employees []string) *ScheduleResult {
	cells := make([]Cell, 0, len(Days)*len(Shifts))
	for _, day := range Days {
		for _, shift := range Shifts {
			names := make([]string, len(s.assigned[day][shift]))
			copy(names, s.assigned[day][shift])
			cells = append(cells, Cell{
				Day:       day,
				Shift:     shift,
				Employees: names,
				Required:  s.minPerShift,
			})
		}
	}

	daysWorked := make(map[string]int, len(employees))
	for _, employee := range employees {
		daysWorked[employee] = s.daysWorked[employee]
	}

	dropped := make([]DroppedPreference, len(s.dropped))
	copy(dropped, s.dropped)

	return &ScheduleResult{
		Cells:      cells,
		DaysWorked: daysWorked,
		Dropped:    dropped,
	}
}
