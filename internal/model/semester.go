package model

// DateLayout is the storage format for semester dates.
const DateLayout = "2006-01-02"

// Semester is a bounded teaching period. Dates are kept as "YYYY-MM-DD"
// strings for store compatibility; week-number arithmetic for every course
// in the semester hangs off StartDate. At most one semester is current.
type Semester struct {
	SemesterID int64  `db:"id" json:"semester_id"`
	Name       string `db:"name" json:"name"`
	StartDate  string `db:"start_date" json:"start_date"`
	EndDate    string `db:"end_date" json:"end_date"`
	Current    bool   `db:"current" json:"current"`
}
