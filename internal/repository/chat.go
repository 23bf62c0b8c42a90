package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/event-management-api/internal/domain"
	"github.com/vietanh2810/event-management-api/internal/repository/dao"
)

type MessageDAO interface {
	Insert(ctx context.Context, message dao.Message) (dao.Message, error)
	FindByEventID(ctx context.Context, eventID uint) ([]dao.Message, error)
}

type MessageRepository struct {
	dao MessageDAO
}

func NewMessageRepository(dao MessageDAO) *MessageRepository {
	return &MessageRepository{
		dao: dao,
	}
}

func (r *MessageRepository) Create(ctx context.Context, message domain.Message) (domain.Message, error) {
	saved, err := r.dao.Insert(ctx, dao.Message{
		EventID:    message.EventID,
		SenderID:   message.SenderID,
		SenderRole: message.SenderRole,
		Content:    message.Content,
		SentAt:     message.SentAt,
	})
	if err != nil {
		return domain.Message{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return messageDaoToDomain(saved), nil
}

func (r *MessageRepository) FindByEventID(ctx context.Context, eventID uint) ([]domain.Message, error) {
	found, err := r.dao.FindByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByEventID -> %w", err)
	}

	messages := make([]domain.Message, len(found))
	for i, m := range found {
		messages[i] = messageDaoToDomain(m)
	}

	return messages, nil
}

func messageDaoToDomain(m dao.Message) domain.Message {
	return domain.Message{
		ID:             m.ID,
		EventID:        m.EventID,
		SenderID:       m.SenderID,
		SenderUsername: m.Sender.Username,
		SenderRole:     m.SenderRole,
		Content:        m.Content,
		SentAt:         m.SentAt,
	}
}
