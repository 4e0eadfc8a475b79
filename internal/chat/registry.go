package chat

import "sync"

// Conn is the slice of a live socket connection the registry needs.
// socketio.Conn satisfies it, and tests can substitute a fake.
type Conn interface {
	ID() string
	Emit(event string, args ...interface{})
}

// RoomRegistry maps a participant id to their currently connected
// sessions. A user may hold several connections at once (multiple tabs);
// delivery fans out to all of them. The registry is purely in-memory and
// rebuilt from scratch on restart — clients re-join after reconnecting.
type RoomRegistry struct {
	mu    sync.RWMutex
	rooms map[string]map[string]Conn // userID -> connID -> conn
	users map[string]string          // connID -> userID
}

func NewRoomRegistry() *RoomRegistry {
	return &RoomRegistry{
		rooms: make(map[string]map[string]Conn),
		users: make(map[string]string),
	}
}

// Register joins a connection into the room for userID. A blank id is
// ignored: the old backend treated `join_room('')` as a no-op too.
func (r *RoomRegistry) Register(userID string, conn Conn) {
	if userID == "" || conn == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// A connection belongs to at most one room; re-joining moves it.
	if prev, ok := r.users[conn.ID()]; ok && prev != userID {
		r.removeLocked(prev, conn.ID())
	}

	if r.rooms[userID] == nil {
		r.rooms[userID] = make(map[string]Conn)
	}
	r.rooms[userID][conn.ID()] = conn
	r.users[conn.ID()] = userID
}

// Unregister removes a connection from whatever room it joined.
// Safe to call for connections that never joined.
func (r *RoomRegistry) Unregister(conn Conn) {
	if conn == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	userID, ok := r.users[conn.ID()]
	if !ok {
		return
	}
	r.removeLocked(userID, conn.ID())
}

func (r *RoomRegistry) removeLocked(userID, connID string) {
	delete(r.users, connID)
	if room := r.rooms[userID]; room != nil {
		delete(room, connID)
		if len(room) == 0 {
			delete(r.rooms, userID)
		}
	}
}

// ConnectionsFor returns a snapshot of the live connections registered
// under userID. Empty when the user is offline.
func (r *RoomRegistry) ConnectionsFor(userID string) []Conn {
	r.mu.RLock()
	defer r.mu.RUnlock()

	room := r.rooms[userID]
	conns := make([]Conn, 0, len(room))
	for _, c := range room {
		conns = append(conns, c)
	}
	return conns
}

// UserFor reports which room a connection is registered under, if any.
func (r *RoomRegistry) UserFor(conn Conn) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	userID, ok := r.users[conn.ID()]
	return userID, ok
}

// Count returns the number of users with at least one live connection.
func (r *RoomRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rooms)
}
