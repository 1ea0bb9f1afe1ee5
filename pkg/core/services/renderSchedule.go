package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/harshithkalluri/shiftweek/pkg/core/scheduling"
)

// RenderSchedule formats a generated schedule as a console report: the week
// grid day by day, followed by an alphabetical per-employee work summary
func RenderSchedule(result *GenerateScheduleResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Weekly Schedule (week of %s, run %s)\n\n",
		result.WeekStart.Format("2006-01-02"), result.RunID)

	for _, day := range scheduling.Days {
		date := result.DayDates[int(day)]
		fmt.Fprintf(&b, "%s %s\n", strings.ToUpper(day.String()), date.Format("2006-01-02"))
		b.WriteString(strings.Repeat("-", 50))
		b.WriteString("\n")

		for _, shift := range scheduling.Shifts {
			cell := result.Schedule.Cell(day, shift)

			names := "—"
			if len(cell.Employees) > 0 {
				names = strings.Join(cell.Employees, ", ")
			}

			status := ""
			if cell.Understaffed() {
				status = "  UNDERSTAFFED"
			}

			fmt.Fprintf(&b, "  %-10s : %s (%d/%d)%s\n",
				shift.String(), names, len(cell.Employees), cell.Required, status)
		}
		b.WriteString("\n")
	}

	b.WriteString("Employee Work Summary\n")
	b.WriteString(strings.Repeat("-", 50))
	b.WriteString("\n")

	names := make([]string, 0, len(result.Schedule.DaysWorked))
	for name := range result.Schedule.DaysWorked {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Fprintf(&b, "  %-20s : %d days\n", name, result.Schedule.DaysWorked[name])
	}

	if len(result.Schedule.Dropped) > 0 {
		fmt.Fprintf(&b, "\nDropped Preferences (%d)\n", len(result.Schedule.Dropped))
		b.WriteString(strings.Repeat("-", 50))
		b.WriteString("\n")
		for _, drop := range result.Schedule.Dropped {
			fmt.Fprintf(&b, "  %s: %s %s (%s)\n", drop.Employee, drop.Day, drop.Shift, drop.Reason)
		}
	}

	return b.String()
}
