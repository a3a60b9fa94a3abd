package model

// TimeSlot is one class period in the daily grid.
type TimeSlot struct {
	Start string `json:"start"` // "HH:MM"
	End   string `json:"end"`   // "HH:MM"
}

// Catalog is the fixed ordered list of class periods in a day. Free-slot
// computation matches course times against these entries by exact string
// equality on both endpoints.
var Catalog = []TimeSlot{
	{Start: "07:35", End: "07:45"},
	{Start: "08:00", End: "09:40"},
	{Start: "10:00", End: "11:40"},
	{Start: "14:00", End: "15:40"},
	{Start: "16:00", End: "17:40"},
	{Start: "19:00", End: "20:40"},
}
