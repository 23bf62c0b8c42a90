package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrResourceNotFound    = errors.New("resource not found")
	ErrResourceUnavailable = errors.New("resource is not available for allocation")
)

type Resource struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"not null"`
	Type         string
	Availability bool `gorm:"not null"`
}

type Allocation struct {
	ID         uint     `gorm:"primaryKey"`
	EventID    uint     `gorm:"not null;index"`
	ResourceID uint     `gorm:"not null;index"`
	Resource   Resource `gorm:"foreignKey:ResourceID"`
	Quantity   int      `gorm:"not null"`
}

type ResourceDAO struct {
	db *gorm.DB
}

func NewResourceDAO(db *gorm.DB) *ResourceDAO {
	return &ResourceDAO{
		db: db,
	}
}

func (d *ResourceDAO) Insert(ctx context.Context, resource Resource) (Resource, error) {
	result := d.db.WithContext(ctx).Create(&resource)
	if result.Error != nil {
		return Resource{}, result.Error
	}

	return resource, nil
}

func (d *ResourceDAO) FindAll(ctx context.Context) ([]Resource, error) {
	var resources []Resource

	result := d.db.WithContext(ctx).Order("id").Find(&resources)
	if result.Error != nil {
		return nil, result.Error
	}

	return resources, nil
}

func (d *ResourceDAO) FindByID(ctx context.Context, id uint) (Resource, error) {
	var resource Resource

	result := d.db.WithContext(ctx).First(&resource, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Resource{}, ErrResourceNotFound
		}

		return Resource{}, result.Error
	}

	return resource, nil
}

// Allocate binds a resource to an event. The availability flip is a
// conditional update, so two concurrent allocations of one resource cannot
// both succeed.
func (d *ResourceDAO) Allocate(ctx context.Context, allocation Allocation) (Allocation, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id").First(&Event{}, allocation.EventID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEventNotFound
			}
			return err
		}

		if err := tx.Select("id").First(&Resource{}, allocation.ResourceID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrResourceNotFound
			}
			return err
		}

		result := tx.Model(&Resource{}).
			Where("id = ? AND availability = ?", allocation.ResourceID, true).
			Update("availability", false)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrResourceUnavailable
		}

		return tx.Omit(clause.Associations).Create(&allocation).Error
	})
	if err != nil {
		return Allocation{}, err
	}

	return allocation, nil
}
