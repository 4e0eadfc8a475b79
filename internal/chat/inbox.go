package chat

import (
	"errors"
	"sort"
	"time"

	"github.com/mishrashubham1104/PoojaConnect/internal/models"
	"github.com/mishrashubham1104/PoojaConnect/pkg/logger"
	"gorm.io/gorm"
)

// InboxEntry summarizes one conversation partner for the inbox view.
type InboxEntry struct {
	PartnerID       string    `json:"_id"`
	Name            string    `json:"name"`
	LastMessage     string    `json:"lastMessage"`
	LastMessageTime time.Time `json:"lastMessageTime"`
}

// InboxService derives the per-user inbox from the message store and the
// user directory. Read-only.
type InboxService struct {
	db    *gorm.DB
	store *MessageStore
}

func NewInboxService(db *gorm.DB, store *MessageStore) *InboxService {
	return &InboxService{db: db, store: store}
}

// Inbox returns one entry per distinct conversation partner of userID,
// carrying the partner's display name and the latest message between the
// pair. Partners with no directory record are skipped, not errors. A user
// with no messages gets an empty list.
func (s *InboxService) Inbox(userID string) ([]InboxEntry, error) {
	messages, err := s.store.FindForParticipant(userID)
	if err != nil {
		return nil, err
	}

	// messages are newest-first, so the first sighting of a partner is
	// also the latest message exchanged with them.
	latest := make(map[string]models.Message)
	order := make([]string, 0)
	for _, m := range messages {
		partnerID := m.SenderID
		if partnerID == userID {
			partnerID = m.ReceiverID
		}
		if _, seen := latest[partnerID]; !seen {
			latest[partnerID] = m
			order = append(order, partnerID)
		}
	}

	entries := make([]InboxEntry, 0, len(order))
	for _, partnerID := range order {
		var partner models.User
		if err := s.db.Select("id", "name").First(&partner, "id = ?", partnerID).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				logger.Warn().Err(err).Str("partner_id", partnerID).Msg("Inbox directory lookup failed")
			}
			continue
		}

		last := latest[partnerID]
		entries = append(entries, InboxEntry{
			PartnerID:       partnerID,
			Name:            partner.Name,
			LastMessage:     last.Text,
			LastMessageTime: last.Timestamp,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].LastMessageTime.After(entries[j].LastMessageTime)
	})
	return entries, nil
}
