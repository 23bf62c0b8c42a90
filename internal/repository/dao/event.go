package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrEventNotFound    = errors.New("event not found")
	ErrEventHasBookings = errors.New("event has bookings and cannot be deleted")
)

type Event struct {
	ID              uint   `gorm:"primaryKey"`
	Title           string `gorm:"not null;index"`
	Description     string
	DateTime        time.Time `gorm:"not null;index"`
	Location        string
	Status          string `gorm:"not null;default:Scheduled"` // "Scheduled", "Completed" or "Cancelled"
	Amount          float64
	CreatedByID     *uint        `gorm:"index"`
	CreatedBy       *User        `gorm:"foreignKey:CreatedByID"`
	AssignedStaffID *uint        `gorm:"index"`
	AssignedStaff   *User        `gorm:"foreignKey:AssignedStaffID"`
	Allocations     []Allocation `gorm:"foreignKey:EventID"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type EventDAO struct {
	db *gorm.DB
}

func NewEventDAO(db *gorm.DB) *EventDAO {
	return &EventDAO{
		db: db,
	}
}

func (d *EventDAO) withDetails(ctx context.Context) *gorm.DB {
	return d.db.WithContext(ctx).Preload("Allocations").Preload("AssignedStaff")
}

func (d *EventDAO) Insert(ctx context.Context, event Event) (Event, error) {
	result := d.db.WithContext(ctx).Omit(clause.Associations).Create(&event)
	if result.Error != nil {
		return Event{}, result.Error
	}

	return event, nil
}

func (d *EventDAO) FindAll(ctx context.Context) ([]Event, error) {
	var events []Event

	result := d.withDetails(ctx).Order("date_time, id").Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}

func (d *EventDAO) FindByID(ctx context.Context, id uint) (Event, error) {
	var event Event

	result := d.withDetails(ctx).First(&event, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Event{}, ErrEventNotFound
		}

		return Event{}, result.Error
	}

	return event, nil
}

// FindByTitle matches the title case-insensitively as a substring.
func (d *EventDAO) FindByTitle(ctx context.Context, title string) ([]Event, error) {
	var events []Event

	result := d.withDetails(ctx).
		Where("title ILIKE ?", "%"+escapeLike(title)+"%").
		Order("date_time, id").
		Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}

func (d *EventDAO) FindByAssignedStaff(ctx context.Context, staffID uint) ([]Event, error) {
	var events []Event

	result := d.withDetails(ctx).Where("assigned_staff_id = ?", staffID).Order("date_time, id").Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}

// Update writes the editable columns only; allocations are left as stored.
func (d *EventDAO) Update(ctx context.Context, event Event) (Event, error) {
	result := d.db.WithContext(ctx).
		Model(&Event{ID: event.ID}).
		Select("title", "description", "date_time", "location", "status", "amount").
		Updates(&event)
	if result.Error != nil {
		return Event{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Event{}, ErrEventNotFound
	}

	return d.FindByID(ctx, event.ID)
}

func (d *EventDAO) AssignStaff(ctx context.Context, eventID, staffID uint) (Event, error) {
	result := d.db.WithContext(ctx).
		Model(&Event{}).
		Where("id = ?", eventID).
		Update("assigned_staff_id", staffID)
	if result.Error != nil {
		return Event{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Event{}, ErrEventNotFound
	}

	return d.FindByID(ctx, eventID)
}

// CompleteIfScheduled moves a single event from Scheduled to Completed. It
// reports false when the event was not in the Scheduled state anymore.
func (d *EventDAO) CompleteIfScheduled(ctx context.Context, id uint) (bool, error) {
	result := d.db.WithContext(ctx).
		Model(&Event{}).
		Where("id = ? AND status = ?", id, "Scheduled").
		Update("status", "Completed")
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected == 1, nil
}

// Delete removes an event together with its allocations and messages, and
// returns the allocated resources to the pool. Events with bookings are kept.
func (d *EventDAO) Delete(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var event Event
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Select("id").First(&event, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEventNotFound
			}
			return err
		}

		var bookings int64
		if err := tx.Model(&Booking{}).Where("event_id = ?", id).Count(&bookings).Error; err != nil {
			return err
		}
		if bookings > 0 {
			return ErrEventHasBookings
		}

		var resourceIDs []uint
		if err := tx.Model(&Allocation{}).Where("event_id = ?", id).Pluck("resource_id", &resourceIDs).Error; err != nil {
			return err
		}
		if len(resourceIDs) > 0 {
			if err := tx.Model(&Resource{}).Where("id IN ?", resourceIDs).Update("availability", true).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("event_id = ?", id).Delete(&Allocation{}).Error; err != nil {
			return err
		}
		if err := tx.Where("event_id = ?", id).Delete(&Message{}).Error; err != nil {
			return err
		}

		return tx.Delete(&Event{}, id).Error
	})
}

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
