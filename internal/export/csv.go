package export

import (
	"encoding/csv"
	"io"
	"strconv"
)

// CSVRenderer writes the normalized course list as a headed CSV table.
type CSVRenderer struct{}

func (CSVRenderer) Format() string    { return "csv" }
func (CSVRenderer) Extension() string { return ".csv" }

func (CSVRenderer) Render(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	header := []string{"name", "teacher", "location", "start_week", "end_week", "weekday", "start_time", "end_time", "course_type", "hours"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{
			r.Name,
			r.Teacher,
			r.Location,
			strconv.Itoa(r.StartWeek),
			strconv.Itoa(r.EndWeek),
			r.WeekdayLabel,
			r.StartTime,
			r.EndTime,
			r.CourseType,
			strconv.FormatFloat(r.Hours, 'f', 1, 64),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
