package chat

import (
	"testing"
	"time"

	"github.com/mishrashubham1104/PoojaConnect/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestInboxAggregation(t *testing.T) {
	db := newTestDB(t)
	store := NewMessageStore(db)
	inbox := NewInboxService(db, store)

	db.Create(&models.User{ID: "inb_me", Name: "Me", Email: "inb_me@example.com"})
	db.Create(&models.User{ID: "inb_p1", Name: "Partner One", Email: "inb_p1@example.com"})
	db.Create(&models.User{ID: "inb_p2", Name: "Partner Two", Email: "inb_p2@example.com"})

	t0 := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	store.Append("inb_me", "inb_p1", "hello p1", t0)
	store.Append("inb_p1", "inb_me", "hi there", t0.Add(time.Minute))
	store.Append("inb_p2", "inb_me", "booking query", t0.Add(2*time.Minute))

	entries, err := inbox.Inbox("inb_me")
	assert.NoError(t, err)
	assert.Len(t, entries, 2)

	// Sorted by last message time, newest first
	assert.Equal(t, "inb_p2", entries[0].PartnerID)
	assert.Equal(t, "Partner Two", entries[0].Name)
	assert.Equal(t, "booking query", entries[0].LastMessage)

	assert.Equal(t, "inb_p1", entries[1].PartnerID)
	assert.Equal(t, "hi there", entries[1].LastMessage)
}

func TestInboxEmptyForUserWithNoMessages(t *testing.T) {
	db := newTestDB(t)
	inbox := NewInboxService(db, NewMessageStore(db))

	entries, err := inbox.Inbox("inb_nobody")
	assert.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestInboxSkipsPartnersMissingFromDirectory(t *testing.T) {
	db := newTestDB(t)
	store := NewMessageStore(db)
	inbox := NewInboxService(db, store)

	db.Create(&models.User{ID: "inb_u", Name: "User", Email: "inb_u@example.com"})
	db.Create(&models.User{ID: "inb_known", Name: "Known", Email: "inb_known@example.com"})

	t0 := time.Date(2025, 7, 2, 8, 0, 0, 0, time.UTC)
	store.Append("inb_u", "inb_known", "hi", t0)
	store.Append("inb_u", "inb_deleted", "are you there", t0.Add(time.Minute))

	entries, err := inbox.Inbox("inb_u")
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, "inb_known", entries[0].PartnerID)
}
