package domain

import "time"

type Message struct {
	ID             uint      `json:"messageId"`
	EventID        uint      `json:"eventId"`
	SenderID       uint      `json:"senderId"`
	SenderUsername string    `json:"senderUsername"`
	SenderRole     string    `json:"senderRole"`
	Content        string    `json:"content"`
	SentAt         time.Time `json:"sentAt"`
}
