package models

// FacultyAssignment is a faculty member's commitment to a batch over a date
// range and weekly pattern. An empty schedule means the faculty member is
// engaged every day of the range.
type FacultyAssignment struct {
	FacultyID string         `bson:"facultyId" json:"facultyId"`
	BatchID   string         `bson:"batchId" json:"batchId"`
	Range     DateRange      `bson:"range" json:"range"`
	Schedule  WeeklySchedule `bson:"-" json:"schedule"`

	ScheduleEntries []ScheduleEntry `bson:"schedule,omitempty" json:"-"`
}

// ConflictWindow describes one colliding pair of time windows on a shared
// weekday. Windows are populated only when both sides specify them.
type ConflictWindow struct {
	Day      string     `json:"day"`
	Existing TimeWindow `json:"existing"`
	Proposed TimeWindow `json:"proposed"`
}

// FacultyConflict is one overlapping assignment that blocks a candidate
// range for a faculty member.
type FacultyConflict struct {
	BatchID string           `json:"batchId"`
	Days    []string         `json:"days"`
	Windows []ConflictWindow `json:"windows,omitempty"`
}

// FacultyAvailability is the per-faculty verdict of an availability check.
type FacultyAvailability struct {
	FacultyID   string            `json:"facultyId"`
	IsAvailable bool              `json:"isAvailable"`
	Conflicts   []FacultyConflict `json:"conflicts"`
}
