package core

import (
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// RoomInfo is a point-in-time view of one room, for the HTTP API.
type RoomInfo struct {
	Name    string
	Members int
}

// Registry owns the room map, the reverse membership index, and the
// id counter. Every operation takes the single registry mutex for its
// full duration; nothing under the lock performs blocking I/O (queue
// pushes are buffered, non-blocking appends).
type Registry struct {
	mu      sync.Mutex
	rooms   map[string]*Room
	clients map[int64]*Client
	// joined maps client id to the names of rooms it occupies, so
	// disconnect cleanup never scans the whole room map.
	joined map[int64]map[string]struct{}

	nextID atomic.Int64
	log    *zerolog.Logger
}

// NewRegistry constructs an empty registry.
func NewRegistry(logger *zerolog.Logger) *Registry {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Registry{
		rooms:   make(map[string]*Room),
		clients: make(map[int64]*Client),
		joined:  make(map[int64]map[string]struct{}),
		log:     logger,
	}
}

// NextID returns a fresh process-unique connection id. Ids increase
// monotonically and are never reused.
func (reg *Registry) NextID() int64 {
	return reg.nextID.Add(1)
}

// Register makes the client known to the registry so a later Drop can
// find it. It joins no rooms.
func (reg *Registry) Register(c *Client) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	reg.clients[c.ID] = c
}

// EnsureRoom creates the room if absent. Idempotent.
func (reg *Registry) EnsureRoom(name string) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	reg.ensureRoomLocked(name)
}

func (reg *Registry) ensureRoomLocked(name string) *Room {
	room, ok := reg.rooms[name]
	if !ok {
		room = NewRoom(name)
		reg.rooms[name] = room
		reg.log.Debug().Str("room", name).Msg("room created")
	}
	return room
}

// Join inserts the client into the named room, creating the room if
// needed. A second join by the same id is a no-op: membership is
// deduplicated, never doubled.
func (reg *Registry) Join(name string, c *Client) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	room := reg.ensureRoomLocked(name)
	if !room.Add(c) {
		return
	}
	rooms, ok := reg.joined[c.ID]
	if !ok {
		rooms = make(map[string]struct{})
		reg.joined[c.ID] = rooms
	}
	rooms[name] = struct{}{}
	reg.log.Debug().Str("room", name).Int64("client_id", c.ID).Msg("client joined room")
}

// Leave removes the client from the named room. Unknown rooms and
// non-members are silent no-ops. A room left empty is reaped under
// the same lock so the map never accumulates dead entries.
func (reg *Registry) Leave(name string, id int64) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	reg.leaveLocked(name, id)
}

func (reg *Registry) leaveLocked(name string, id int64) {
	room, ok := reg.rooms[name]
	if !ok {
		return
	}
	if !room.Remove(id) {
		return
	}
	if rooms, ok := reg.joined[id]; ok {
		delete(rooms, name)
		if len(rooms) == 0 {
			delete(reg.joined, id)
		}
	}
	if room.Empty() {
		delete(reg.rooms, name)
		reg.log.Debug().Str("room", name).Msg("empty room reaped")
	}
}

// Member reports whether id currently occupies the named room.
func (reg *Registry) Member(name string, id int64) bool {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	room, ok := reg.rooms[name]
	return ok && room.Has(id)
}

// Broadcast fans frame out to every member of the named room except
// the sender. Unknown room is a no-op. A member whose queue is closed
// is purged from all of its rooms right here, under the same lock, so
// later broadcasts stop reaching it; the failure never propagates to
// the sender.
func (reg *Registry) Broadcast(name, frame string, senderID int64) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	room, ok := reg.rooms[name]
	if !ok {
		return
	}
	for _, member := range room.Broadcast(frame, senderID) {
		reg.log.Warn().Int64("client_id", member.ID).Str("room", name).
			Msg("dropping client with closed outbound queue")
		reg.dropLocked(member.ID)
	}
}

// Drop disconnects the client: it leaves every room it occupies, its
// registry entry is removed, and its outbound queue is closed so the
// paired writer terminates. Safe to call for unknown ids.
func (reg *Registry) Drop(id int64) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	reg.dropLocked(id)
}

func (reg *Registry) dropLocked(id int64) {
	for name := range reg.joined[id] {
		reg.leaveLocked(name, id)
	}
	if c, ok := reg.clients[id]; ok {
		delete(reg.clients, id)
		c.Outbound.Close()
		reg.log.Debug().Int64("client_id", id).Msg("client dropped")
	}
}

// Rooms returns a snapshot of all live rooms with member counts.
func (reg *Registry) Rooms() []RoomInfo {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	infos := make([]RoomInfo, 0, len(reg.rooms))
	for name, room := range reg.rooms {
		infos = append(infos, RoomInfo{Name: name, Members: room.Len()})
	}
	return infos
}
