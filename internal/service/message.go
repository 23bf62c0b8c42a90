package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/vietanh2810/event-management-api/internal/domain"
)

const maxMessageLength = 2000

var (
	ErrEmptyMessage   = errors.New("message content is required")
	ErrMessageTooLong = fmt.Errorf("message content exceeds %d characters", maxMessageLength)
)

type MessageRepository interface {
	Create(ctx context.Context, message domain.Message) (domain.Message, error)
	FindByEventID(ctx context.Context, eventID uint) ([]domain.Message, error)
}

type MessageService struct {
	repo      MessageRepository
	eventRepo EventRepository
	userRepo  UserRepository
	now       func() time.Time
}

func NewMessageService(repo MessageRepository, eventRepo EventRepository, userRepo UserRepository) *MessageService {
	return &MessageService{
		repo:      repo,
		eventRepo: eventRepo,
		userRepo:  userRepo,
		now:       time.Now,
	}
}

// SendMessage posts content to an event's thread. The sender role is the one
// stored for the user at the time of sending.
func (s *MessageService) SendMessage(ctx context.Context, principal domain.Principal, eventID uint, content string) (domain.Message, error) {
	if strings.TrimSpace(content) == "" {
		return domain.Message{}, ErrEmptyMessage
	}
	if utf8.RuneCountInString(content) > maxMessageLength {
		return domain.Message{}, ErrMessageTooLong
	}

	if _, err := s.eventRepo.FindByID(ctx, eventID); err != nil {
		return domain.Message{}, fmt.Errorf("s.eventRepo.FindByID -> %w", err)
	}

	sender, err := s.userRepo.FindByUsername(ctx, principal.Username)
	if err != nil {
		return domain.Message{}, fmt.Errorf("s.userRepo.FindByUsername -> %w", err)
	}

	message, err := s.repo.Create(ctx, domain.Message{
		EventID:    eventID,
		SenderID:   sender.ID,
		SenderRole: sender.Role,
		Content:    content,
		SentAt:     s.now(),
	})
	if err != nil {
		return domain.Message{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return message, nil
}

func (s *MessageService) GetEventMessages(ctx context.Context, eventID uint) ([]domain.Message, error) {
	messages, err := s.repo.FindByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByEventID -> %w", err)
	}

	return messages, nil
}
