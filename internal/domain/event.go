package domain

import "time"

const (
	EventScheduled = "Scheduled"
	EventCompleted = "Completed"
	EventCancelled = "Cancelled"
)

type Event struct {
	ID              uint         `json:"eventID"`
	Title           string       `json:"title"`
	Description     string       `json:"description"`
	DateTime        time.Time    `json:"dateTime"`
	Location        string       `json:"location"`
	Status          string       `json:"status"`
	Amount          float64      `json:"amount"`
	CreatedByID     *uint        `json:"createdByPlannerId,omitempty"`
	AssignedStaffID *uint        `json:"assignedStaffId,omitempty"`
	AssignedStaff   *User        `json:"assignedStaff,omitempty"`
	Allocations     []Allocation `json:"allocations"`
	CreatedAt       time.Time    `json:"createdAt"`
	UpdatedAt       time.Time    `json:"updatedAt"`
}

// IsPastDue reports whether a scheduled event's date is strictly before now.
func (e Event) IsPastDue(now time.Time) bool {
	return e.Status == EventScheduled && !e.DateTime.IsZero() && e.DateTime.Before(now)
}
