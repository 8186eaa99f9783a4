// Package proto implements the plain-text relay protocol: three
// tagged inbound command shapes and the untagged chat line the server
// fans out to room members.
package proto

import "strings"

// Kind discriminates the parsed command shapes.
type Kind int

const (
	// KindUnknown marks a frame that matched no command shape.
	// Unknown frames are ignored, never an error.
	KindUnknown Kind = iota
	// KindJoin subscribes the connection to a room, creating it if needed.
	KindJoin
	// KindLeave unsubscribes the connection from a room.
	KindLeave
	// KindRoomMessage relays text to the other occupants of a room.
	KindRoomMessage
)

const (
	prefixJoin        = "JOIN_ROOM:"
	prefixLeave       = "LEAVE_ROOM:"
	prefixRoomMessage = "ROOM_MSG:"
)

// Command is one decoded inbound frame.
type Command struct {
	Kind Kind
	Room string
	User string
	Text string
}

// Parse decodes a text frame into a Command. Room names are taken
// verbatim after the tag for JOIN/LEAVE (they may contain colons).
// ROOM_MSG splits its remainder on the first two colons only, so the
// message text keeps any colons of its own. Anything that does not
// decode comes back as KindUnknown.
func Parse(frame string) Command {
	if room, ok := strings.CutPrefix(frame, prefixJoin); ok {
		if room == "" {
			return Command{}
		}
		return Command{Kind: KindJoin, Room: room}
	}

	if room, ok := strings.CutPrefix(frame, prefixLeave); ok {
		// Older clients emit "LEAVE_ROOM: <room>" with a stray
		// space after the tag; tolerate exactly one.
		room = strings.TrimPrefix(room, " ")
		if room == "" {
			return Command{}
		}
		return Command{Kind: KindLeave, Room: room}
	}

	if rest, ok := strings.CutPrefix(frame, prefixRoomMessage); ok {
		parts := strings.SplitN(rest, ":", 3)
		if len(parts) < 3 || parts[0] == "" {
			return Command{}
		}
		return Command{
			Kind: KindRoomMessage,
			Room: parts[0],
			User: parts[1],
			Text: parts[2],
		}
	}

	return Command{}
}

// EncodeJoin builds a JOIN_ROOM frame.
func EncodeJoin(room string) string {
	return prefixJoin + room
}

// EncodeLeave builds a LEAVE_ROOM frame. The encode side emits no
// stray space; Parse stays tolerant of one for old clients.
func EncodeLeave(room string) string {
	return prefixLeave + room
}

// EncodeRoomMessage builds a ROOM_MSG frame.
func EncodeRoomMessage(room, user, text string) string {
	return prefixRoomMessage + room + ":" + user + ":" + text
}

// ChatLine is the untagged line delivered to room members. Keeping it
// untagged lets clients tell relayed chat from echoed control frames.
func ChatLine(user, text string) string {
	return user + ": " + text
}
