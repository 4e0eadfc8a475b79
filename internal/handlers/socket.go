package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	socketio "github.com/googollee/go-socket.io"
	"github.com/googollee/go-socket.io/engineio"
	"github.com/googollee/go-socket.io/engineio/transport"
	"github.com/googollee/go-socket.io/engineio/transport/polling"
	"github.com/googollee/go-socket.io/engineio/transport/websocket"
	"github.com/mishrashubham1104/PoojaConnect/internal/chat"
	"github.com/mishrashubham1104/PoojaConnect/internal/models"
	"github.com/mishrashubham1104/PoojaConnect/pkg/logger"
)

var SocketServer *socketio.Server

// outgoingMessage is the receive_message / message_sent payload: the
// canonical stored record plus the optional display name the sender
// attached for first-render convenience.
type outgoingMessage struct {
	models.Message
	SenderName string `json:"senderName,omitempty"`
}

func InitSocketServer(registry *chat.RoomRegistry, store *chat.MessageStore) *socketio.Server {
	server := socketio.NewServer(&engineio.Options{
		Transports: []transport.Transport{
			&websocket.Transport{
				CheckOrigin: func(r *http.Request) bool { return true },
			},
			&polling.Transport{
				CheckOrigin: func(r *http.Request) bool { return true },
			},
		},
	})

	server.OnConnect("/", func(s socketio.Conn) error {
		s.SetContext("")
		logger.Debug().Str("socket_id", s.ID()).Msg("Socket connected")
		return nil
	})

	// join_room registers this connection under the caller's own user id
	// so send_message can route to it. Blank ids are ignored.
	server.OnEvent("/", "join_room", func(s socketio.Conn, userID string) {
		if userID == "" {
			return
		}
		registry.Register(userID, s)
		s.SetContext(userID)
		logger.Info().Str("user_id", userID).Str("socket_id", s.ID()).Msg("User joined room")
	})

	server.OnEvent("/", "send_message", func(s socketio.Conn, data map[string]interface{}) {
		HandleSendMessage(registry, store, s, data)
	})

	server.OnDisconnect("/", func(s socketio.Conn, reason string) {
		registry.Unregister(s)
		logger.Debug().Str("socket_id", s.ID()).Str("reason", reason).Msg("Socket disconnected")
	})

	server.OnError("/", func(s socketio.Conn, e error) {
		logger.Error().Err(e).Msg("Socket error")
	})

	go server.Serve()
	SocketServer = server
	return server
}

// HandleSendMessage is the send path: validate, persist, then fan out to
// the receiver's room and ack the sender with the canonical record.
// Persistence gates delivery: a message that failed to store is never
// forwarded, so live delivery and history cannot disagree.
func HandleSendMessage(registry *chat.RoomRegistry, store *chat.MessageStore, sender chat.Conn, data map[string]interface{}) {
	senderID, _ := data["senderId"].(string)
	receiverID, _ := data["receiverId"].(string)
	text, _ := data["text"].(string)
	senderName, _ := data["senderName"].(string)

	if senderID == "" || receiverID == "" || text == "" {
		logger.Warn().
			Str("sender_id", senderID).
			Str("receiver_id", receiverID).
			Msg("Dropping send_message with missing fields")
		return
	}

	msg, err := store.Append(senderID, receiverID, text, parseTimestamp(data["timestamp"]))
	if err != nil {
		logger.Error().Err(err).Str("sender_id", senderID).Msg("Failed to store message")
		return
	}

	out := outgoingMessage{Message: *msg, SenderName: senderName}
	for _, conn := range registry.ConnectionsFor(receiverID) {
		conn.Emit("receive_message", out)
	}

	// Ack with the generated id so the client can replace its optimistic
	// copy instead of dedup-matching on timestamp+text.
	if sender != nil {
		sender.Emit("message_sent", out)
	}
}

// parseTimestamp accepts the client formats seen in the wild: RFC3339
// strings and unix-millisecond numbers. Anything else falls back to the
// store's receipt time.
func parseTimestamp(v interface{}) time.Time {
	switch t := v.(type) {
	case string:
		if ts, err := time.Parse(time.RFC3339, t); err == nil {
			return ts
		}
	case float64:
		return time.UnixMilli(int64(t))
	case int64:
		return time.UnixMilli(t)
	}
	return time.Time{}
}

// SocketHandler wraps the socket.io server for gin
func SocketHandler(server *socketio.Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		server.ServeHTTP(c.Writer, c.Request)
	}
}
