package chat

import (
	"time"

	"github.com/google/uuid"
	"github.com/mishrashubham1104/PoojaConnect/internal/models"
	apperrors "github.com/mishrashubham1104/PoojaConnect/pkg/errors"
	"gorm.io/gorm"
)

// MessageStore owns persisted messages. It is the only writer to the
// messages table; records are immutable once appended.
type MessageStore struct {
	db *gorm.DB
}

func NewMessageStore(db *gorm.DB) *MessageStore {
	return &MessageStore{db: db}
}

// Append validates and persists a single message. A zero timestamp is
// replaced with the receipt time, mirroring `data.timestamp || new Date()`
// on the old backend.
func (s *MessageStore) Append(senderID, receiverID, text string, ts time.Time) (*models.Message, error) {
	if senderID == "" || receiverID == "" || text == "" {
		return nil, apperrors.BadRequest("senderId, receiverId and text are required")
	}

	if ts.IsZero() {
		ts = time.Now()
	}

	msg := models.Message{
		ID:         uuid.New().String(),
		SenderID:   senderID,
		ReceiverID: receiverID,
		Text:       text,
		Timestamp:  ts,
	}

	if err := s.db.Create(&msg).Error; err != nil {
		return nil, err
	}
	return &msg, nil
}

// FindConversation returns the full transcript between two participants,
// both directions, ascending by timestamp.
func (s *MessageStore) FindConversation(userA, userB string) ([]models.Message, error) {
	var messages []models.Message
	err := s.db.Where(
		"(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
		userA, userB, userB, userA,
	).Order("timestamp asc").Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

// FindForParticipant returns every message the user sent or received,
// newest first. The inbox aggregation walks this list.
func (s *MessageStore) FindForParticipant(userID string) ([]models.Message, error) {
	var messages []models.Message
	err := s.db.Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Order("timestamp desc").Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}
