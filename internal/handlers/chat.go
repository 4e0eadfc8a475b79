package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mishrashubham1104/PoojaConnect/internal/chat"
	"github.com/mishrashubham1104/PoojaConnect/pkg/logger"
	"gorm.io/gorm"
)

var (
	Messages *chat.MessageStore
	Inboxes  *chat.InboxService
	Rooms    *chat.RoomRegistry
)

// InitChat wires the messaging services onto the given DB handle. Called
// from main at boot and from tests against the in-memory DB.
func InitChat(db *gorm.DB) {
	Messages = chat.NewMessageStore(db)
	Inboxes = chat.NewInboxService(db, Messages)
	Rooms = chat.NewRoomRegistry()
}

// GetInbox returns one entry per conversation partner with the latest
// message exchanged. GET /api/chat/inbox/:userId
func GetInbox(c *gin.Context) {
	userID := c.Param("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid IDs"})
		return
	}

	entries, err := Inboxes.Inbox(userID)
	if err != nil {
		logger.Error().Err(err).Str("user_id", userID).Msg("Inbox fetch failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Inbox failed"})
		return
	}

	c.JSON(http.StatusOK, entries)
}

// GetHistory returns the full ascending transcript between two users.
// GET /api/messages/:user1/:user2
//
// The guard against the literal "undefined" exists because the frontend
// is known to interpolate unset state into the URL.
func GetHistory(c *gin.Context) {
	user1 := c.Param("user1")
	user2 := c.Param("user2")

	if user1 == "" || user2 == "" || user1 == "undefined" || user2 == "undefined" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid IDs"})
		return
	}

	history, err := Messages.FindConversation(user1, user2)
	if err != nil {
		logger.Error().Err(err).Msg("History fetch failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "History failed"})
		return
	}

	c.JSON(http.StatusOK, history)
}
