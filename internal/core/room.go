package core

// Room groups clients subscribed to the same channel. Membership is
// keyed by client id; the Registry lock guards all access.
type Room struct {
	Name    string
	members map[int64]*Client
}

// NewRoom constructs a room with no members.
func NewRoom(name string) *Room {
	return &Room{
		Name:    name,
		members: make(map[int64]*Client),
	}
}

// Add inserts a client into the room. Returns true if newly added,
// false if the id was already a member (duplicate joins are no-ops).
func (r *Room) Add(c *Client) bool {
	if _, exists := r.members[c.ID]; exists {
		return false
	}
	r.members[c.ID] = c
	return true
}

// Remove deletes a member by id. Returns true if it was present.
func (r *Room) Remove(id int64) bool {
	if _, exists := r.members[id]; !exists {
		return false
	}
	delete(r.members, id)
	return true
}

// Has reports whether id is a member.
func (r *Room) Has(id int64) bool {
	_, exists := r.members[id]
	return exists
}

// Broadcast pushes frame onto every member's outbound queue except
// the sender. Members whose queue is already closed are returned so
// the caller can purge them; a dead member never aborts delivery to
// the rest.
func (r *Room) Broadcast(frame string, senderID int64) []*Client {
	var dead []*Client
	for id, member := range r.members {
		if id == senderID {
			continue
		}
		if !member.Outbound.Push(frame) {
			dead = append(dead, member)
		}
	}
	return dead
}

// Empty returns true if no members remain.
func (r *Room) Empty() bool {
	return len(r.members) == 0
}

// Len returns the member count.
func (r *Room) Len() int {
	return len(r.members)
}
