package request

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/vietanh2810/event-management-api/internal/domain"
)

type EventRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DateTime    time.Time `json:"dateTime"`
	Location    string    `json:"location"`
	Status      string    `json:"status"`
	Amount      float64   `json:"amount"`
}

func (req *EventRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.Location, validation.Length(0, 255)),
		validation.Field(&req.Status, validation.In(domain.EventScheduled, domain.EventCompleted, domain.EventCancelled)),
		validation.Field(&req.Amount, validation.Min(0.0)),
	)
}

func (req *EventRequest) ToDomain() domain.Event {
	return domain.Event{
		Title:       req.Title,
		Description: req.Description,
		DateTime:    req.DateTime,
		Location:    req.Location,
		Status:      req.Status,
		Amount:      req.Amount,
	}
}

type ResourceRequest struct {
	Name         string `json:"name"`
	Type         string `json:"type"`
	Availability *bool  `json:"availability"`
}

func (req *ResourceRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Type, validation.Length(0, 100)),
	)
}

// ToDomain defaults availability to true when omitted.
func (req *ResourceRequest) ToDomain() domain.Resource {
	available := true
	if req.Availability != nil {
		available = *req.Availability
	}

	return domain.Resource{
		Name:         req.Name,
		Type:         req.Type,
		Availability: available,
	}
}

type AllocationRequest struct {
	Quantity int `json:"quantity"`
}

func (req *AllocationRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Quantity, validation.Required, validation.Min(1)),
	)
}
