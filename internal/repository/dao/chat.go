package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Message struct {
	ID         uint      `gorm:"primaryKey"`
	EventID    uint      `gorm:"not null;index"`
	Event      Event     `gorm:"foreignKey:EventID"`
	SenderID   uint      `gorm:"not null"`
	Sender     User      `gorm:"foreignKey:SenderID"`
	SenderRole string    `gorm:"not null"`
	Content    string    `gorm:"type:text;not null"`
	SentAt     time.Time `gorm:"not null;index"`
}

type MessageDAO struct {
	db *gorm.DB
}

func NewMessageDAO(db *gorm.DB) *MessageDAO {
	return &MessageDAO{
		db: db,
	}
}

func (d *MessageDAO) Insert(ctx context.Context, message Message) (Message, error) {
	result := d.db.WithContext(ctx).Omit(clause.Associations).Create(&message)
	if result.Error != nil {
		return Message{}, result.Error
	}

	var saved Message
	if err := d.db.WithContext(ctx).Preload("Sender").First(&saved, message.ID).Error; err != nil {
		return Message{}, err
	}

	return saved, nil
}

func (d *MessageDAO) FindByEventID(ctx context.Context, eventID uint) ([]Message, error) {
	var messages []Message

	result := d.db.WithContext(ctx).
		Preload("Sender").
		Where("event_id = ?", eventID).
		Order("sent_at ASC, id ASC").
		Find(&messages)
	if result.Error != nil {
		return nil, result.Error
	}

	return messages, nil
}
