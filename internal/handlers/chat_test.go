package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mishrashubham1104/PoojaConnect/internal/chat"
	"github.com/mishrashubham1104/PoojaConnect/internal/database"
	"github.com/mishrashubham1104/PoojaConnect/internal/models"
	"github.com/stretchr/testify/assert"
)

type fakeConn struct {
	id     string
	events []fakeEmit
}

type fakeEmit struct {
	event string
	args  []interface{}
}

func (f *fakeConn) ID() string { return f.id }

func (f *fakeConn) Emit(event string, args ...interface{}) {
	f.events = append(f.events, fakeEmit{event: event, args: args})
}

func historyContext(w *httptest.ResponseRecorder, user1, user2 string) *gin.Context {
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/api/messages/"+user1+"/"+user2, nil)
	c.Params = gin.Params{
		{Key: "user1", Value: user1},
		{Key: "user2", Value: user2},
	}
	return c
}

func TestGetHistoryRejectsPlaceholderIDs(t *testing.T) {
	SetupTestDB()
	gin.SetMode(gin.TestMode)

	for _, ids := range [][2]string{
		{"undefined", "h_bob"},
		{"h_alice", "undefined"},
		{"", "h_bob"},
	} {
		w := httptest.NewRecorder()
		GetHistory(historyContext(w, ids[0], ids[1]))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
}

func TestGetHistoryReturnsOrderedTranscript(t *testing.T) {
	SetupTestDB()
	gin.SetMode(gin.TestMode)

	t1 := time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC)
	Messages.Append("h2_a", "h2_b", "Hello", t1)
	Messages.Append("h2_b", "h2_a", "Hi back", t1.Add(time.Minute))

	w := httptest.NewRecorder()
	GetHistory(historyContext(w, "h2_a", "h2_b"))

	assert.Equal(t, http.StatusOK, w.Code)

	var history []models.Message
	json.Unmarshal(w.Body.Bytes(), &history)
	assert.Len(t, history, 2)
	assert.Equal(t, "Hello", history[0].Text)
	assert.Equal(t, "Hi back", history[1].Text)
}

func TestGetInboxEndpoint(t *testing.T) {
	SetupTestDB()
	gin.SetMode(gin.TestMode)

	database.DB.Create(&models.User{ID: "ibx_me", Name: "Me", Email: "ibx_me@example.com"})
	database.DB.Create(&models.User{ID: "ibx_p", Name: "Pandit Ji", Email: "ibx_p@example.com"})
	Messages.Append("ibx_p", "ibx_me", "Namaste", time.Date(2025, 8, 2, 9, 0, 0, 0, time.UTC))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/api/chat/inbox/ibx_me", nil)
	c.Params = gin.Params{{Key: "userId", Value: "ibx_me"}}

	GetInbox(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var entries []chat.InboxEntry
	json.Unmarshal(w.Body.Bytes(), &entries)
	assert.Len(t, entries, 1)
	assert.Equal(t, "ibx_p", entries[0].PartnerID)
	assert.Equal(t, "Pandit Ji", entries[0].Name)
	assert.Equal(t, "Namaste", entries[0].LastMessage)
}

func TestSendMessageDeliversToRegisteredRoom(t *testing.T) {
	SetupTestDB()
	gin.SetMode(gin.TestMode)

	registry := chat.NewRoomRegistry()
	sender := &fakeConn{id: "snd1"}
	receiver := &fakeConn{id: "rcv1"}
	registry.Register("dm_bob", receiver)

	HandleSendMessage(registry, Messages, sender, map[string]interface{}{
		"senderId":   "dm_alice",
		"receiverId": "dm_bob",
		"text":       "puja at 10?",
	})

	// Exactly one live delivery to the receiver's room
	assert.Len(t, receiver.events, 1)
	assert.Equal(t, "receive_message", receiver.events[0].event)

	// Sender gets the canonical record back as an ack
	assert.Len(t, sender.events, 1)
	assert.Equal(t, "message_sent", sender.events[0].event)

	// And the message is persisted
	conv, err := Messages.FindConversation("dm_alice", "dm_bob")
	assert.NoError(t, err)
	assert.Len(t, conv, 1)
	assert.Equal(t, "puja at 10?", conv[0].Text)
}

func TestSendMessageFansOutToAllTabs(t *testing.T) {
	SetupTestDB()
	gin.SetMode(gin.TestMode)

	registry := chat.NewRoomRegistry()
	tab1 := &fakeConn{id: "fan_t1"}
	tab2 := &fakeConn{id: "fan_t2"}
	registry.Register("fan_bob", tab1)
	registry.Register("fan_bob", tab2)

	HandleSendMessage(registry, Messages, nil, map[string]interface{}{
		"senderId":   "fan_alice",
		"receiverId": "fan_bob",
		"text":       "hello tabs",
	})

	assert.Len(t, tab1.events, 1)
	assert.Len(t, tab2.events, 1)
}

func TestSendMessageOfflineReceiverStillPersisted(t *testing.T) {
	SetupTestDB()
	gin.SetMode(gin.TestMode)

	registry := chat.NewRoomRegistry()
	sender := &fakeConn{id: "off_s"}

	HandleSendMessage(registry, Messages, sender, map[string]interface{}{
		"senderId":   "off_alice",
		"receiverId": "off_bob",
		"text":       "see you later",
	})

	conv, err := Messages.FindConversation("off_alice", "off_bob")
	assert.NoError(t, err)
	assert.Len(t, conv, 1)

	// No receiver online, but the sender ack still fires
	assert.Len(t, sender.events, 1)
	assert.Equal(t, "message_sent", sender.events[0].event)
}

func TestSendMessageDropsInvalidPayload(t *testing.T) {
	SetupTestDB()
	gin.SetMode(gin.TestMode)

	registry := chat.NewRoomRegistry()
	receiver := &fakeConn{id: "inv_r"}
	registry.Register("inv_bob", receiver)

	for _, payload := range []map[string]interface{}{
		{"receiverId": "inv_bob", "text": "no sender"},
		{"senderId": "inv_alice", "text": "no receiver"},
		{"senderId": "inv_alice", "receiverId": "inv_bob"},
		{"senderId": "inv_alice", "receiverId": "inv_bob", "text": ""},
	} {
		HandleSendMessage(registry, Messages, nil, payload)
	}

	assert.Empty(t, receiver.events)

	conv, err := Messages.FindConversation("inv_alice", "inv_bob")
	assert.NoError(t, err)
	assert.Empty(t, conv)
}

func TestSendMessageHonorsClientTimestamp(t *testing.T) {
	SetupTestDB()
	gin.SetMode(gin.TestMode)

	registry := chat.NewRoomRegistry()
	ts := time.Date(2025, 8, 3, 7, 30, 0, 0, time.UTC)

	HandleSendMessage(registry, Messages, nil, map[string]interface{}{
		"senderId":   "ts_alice",
		"receiverId": "ts_bob",
		"text":       "timed",
		"timestamp":  ts.Format(time.RFC3339),
	})

	conv, _ := Messages.FindConversation("ts_alice", "ts_bob")
	assert.Len(t, conv, 1)
	assert.True(t, conv[0].Timestamp.Equal(ts))
}
