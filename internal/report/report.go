// Package report renders run results for the console and exports fitness
// traces in a chart-ready form.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"strconv"
	"text/tabwriter"

	"github.com/limaJavier/uctp/pkg/model"
)

// PrintSchedule writes the best schedule of a run as a sorted table together
// with its residual cost (the negated fitness, zero when fully feasible).
func PrintSchedule(w io.Writer, result model.Result, input model.ModelInput) error {
	fmt.Fprintln(w, "Best Schedule Found:")

	table := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(table, "Course\tInstructor\tTime\tRoom\tRoom Cap\tCourse Cap")

	courses := make([]string, 0, len(result.Best))
	for course := range result.Best {
		courses = append(courses, course)
	}
	slices.Sort(courses)

	for _, course := range courses {
		assignment := result.Best[course]
		detail := input.CourseDetails[course]
		fmt.Fprintf(table, "%v\t%v\t%v\t%v\t%v\t%v\n",
			course,
			detail.Instructor,
			assignment.Time,
			assignment.Room,
			input.RoomCapacities[assignment.Room],
			detail.Students,
		)
	}
	if err := table.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "Cost: %v\n", -result.BestFitness)
	return err
}

// WriteHistory exports a fitness trace as two-column CSV (iteration index,
// fitness), one row per recorded value.
func WriteHistory(w io.Writer, history []int) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"iteration", "fitness"}); err != nil {
		return err
	}
	for i, fitness := range history {
		if err := writer.Write([]string{strconv.Itoa(i), strconv.Itoa(fitness)}); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
