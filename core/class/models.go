package class

import (
	"time"

	"github.com/jnedu/classroom2030/core"
)

// Status of a class relative to the current instant. Derived, never persisted.
type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusOngoing   Status = "ongoing"
	StatusCompleted Status = "completed"
)

// Class is a single scheduled classroom demonstration. Date and Time keep
// the localized forms the program publishes ("2025년 10월 22일",
// "10:45 - 11:30"); the evaluator in schedule.go derives everything else.
type Class struct {
	ID          string    `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Teacher     string    `db:"teacher" json:"teacher"`
	Subject     string    `db:"subject" json:"subject"`
	Grade       string    `db:"grade" json:"grade"`
	Date        string    `db:"class_date" json:"date"`
	Time        string    `db:"class_time" json:"time"`
	Location    string    `db:"location" json:"location"`
	Description string    `db:"description" json:"description"`
	DriveLink   string    `db:"drive_link" json:"drive_link"`
	Region      string    `db:"region" json:"region"`
	Status      Status    `db:"-" json:"status,omitempty"` // computed at read time
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// Filter narrows a class list. Empty fields put no constraint; set fields
// are ANDed together. StartDate/EndDate are inclusive YYYY-MM-DD bounds.
type Filter struct {
	Search    string   `query:"search"`
	Subjects  []string `query:"subject"`
	Grades    []string `query:"grade"`
	Regions   []string `query:"region"`
	Statuses  []string `query:"status"`
	StartDate string   `query:"start_date"`
	EndDate   string   `query:"end_date"`
}

func (f *Filter) IsEmpty() bool {
	return f.Search == "" &&
		f.Subjects == nil && f.Grades == nil && f.Regions == nil && f.Statuses == nil &&
		f.StartDate == "" && f.EndDate == ""
}

func (f *Filter) Clean() {
	f.Search = core.CleanString(f.Search)
	f.StartDate = core.CleanString(f.StartDate)
	f.EndDate = core.CleanString(f.EndDate)
}
