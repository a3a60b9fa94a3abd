package schedule

import (
	"github.com/rs/zerolog"

	"coursetable/internal/model"
)

// Statistics folds a semester's valid course list into its study-time
// distribution. The fold never mutates its input and tolerates an empty
// list. A course with a malformed time contributes zero hours and is logged,
// never aborting the aggregation.
func Statistics(courses []model.Course, logger zerolog.Logger) model.StudyStatistics {
	stats := model.StudyStatistics{
		PerType: map[string]model.TypeStat{},
		PerWeek: map[int]float64{},
		PerDay:  map[int]float64{},
		PerSlot: map[string]float64{},
	}
	for _, c := range courses {
		stats.TotalCourses++
		if c.IsSpecial {
			stats.SpecialCourses++
		} else {
			stats.NormalCourses++
		}

		hours, err := SlotDurationHours(c.StartTime, c.EndTime)
		if err != nil {
			logger.Warn().Err(err).Int64("course_id", c.CourseID).Msg("Skipping duration for malformed course time")
			hours = 0
		}
		weekSpan := c.EndWeek - c.StartWeek + 1
		total := hours * float64(weekSpan)

		stats.TotalHours = round1(stats.TotalHours + total)

		courseType := c.CourseType
		if courseType == "" {
			courseType = model.NormalCourseType
		}
		ts := stats.PerType[courseType]
		ts.Count++
		ts.Hours = round1(ts.Hours + total)
		stats.PerType[courseType] = ts

		for w := c.StartWeek; w <= c.EndWeek; w++ {
			stats.PerWeek[w] = round1(stats.PerWeek[w] + hours)
		}
		stats.PerDay[c.DayOfWeek] = round1(stats.PerDay[c.DayOfWeek] + total)

		slotKey := c.StartTime + "-" + c.EndTime
		stats.PerSlot[slotKey] = round1(stats.PerSlot[slotKey] + total)
	}
	return stats
}
