package core

import (
	"github.com/rs/zerolog"

	"textrelay/internal/proto"
)

// Session drives the registry on behalf of one connection's read
// loop. It holds the connection's client-asserted current room and
// enforces membership before relaying messages, so a peer cannot
// broadcast into a room it never joined.
type Session struct {
	reg     *Registry
	client  *Client
	current string
	log     *zerolog.Logger
}

// NewSession binds a registered client to the registry.
func NewSession(reg *Registry, client *Client, logger *zerolog.Logger) *Session {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Session{reg: reg, client: client, log: logger}
}

// Client returns the connection record this session drives.
func (s *Session) Client() *Client {
	return s.client
}

// Current returns the client-asserted current room, or "" when idle.
func (s *Session) Current() string {
	return s.current
}

// Handle dispatches one decoded command. Unknown frames fall through
// silently; the protocol reports no errors to the peer.
func (s *Session) Handle(cmd proto.Command) {
	switch cmd.Kind {
	case proto.KindJoin:
		s.reg.EnsureRoom(cmd.Room)
		s.reg.Join(cmd.Room, s.client)
		s.current = cmd.Room
	case proto.KindLeave:
		s.reg.Leave(cmd.Room, s.client.ID)
		// Current-room tracking resets on any leave, even for a
		// room that was never joined. Registry state is untouched
		// for such rooms.
		s.current = ""
	case proto.KindRoomMessage:
		if !s.reg.Member(cmd.Room, s.client.ID) {
			s.log.Debug().Int64("client_id", s.client.ID).Str("room", cmd.Room).
				Msg("ignoring message for room the sender has not joined")
			return
		}
		s.reg.Broadcast(cmd.Room, proto.ChatLine(cmd.User, cmd.Text), s.client.ID)
	case proto.KindUnknown:
	}
}

// Close removes the connection from every room and closes its
// outbound queue so the paired writer terminates.
func (s *Session) Close() {
	s.reg.Drop(s.client.ID)
	s.current = ""
}
