package proto

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		frame string
		want  Command
	}{
		{
			name:  "join",
			frame: "JOIN_ROOM:lobby",
			want:  Command{Kind: KindJoin, Room: "lobby"},
		},
		{
			name:  "join room name keeps colons",
			frame: "JOIN_ROOM:a:b:c",
			want:  Command{Kind: KindJoin, Room: "a:b:c"},
		},
		{
			name:  "leave",
			frame: "LEAVE_ROOM:lobby",
			want:  Command{Kind: KindLeave, Room: "lobby"},
		},
		{
			name:  "leave with stray space from old clients",
			frame: "LEAVE_ROOM: lobby",
			want:  Command{Kind: KindLeave, Room: "lobby"},
		},
		{
			name:  "room message",
			frame: "ROOM_MSG:lobby:alice:hi",
			want:  Command{Kind: KindRoomMessage, Room: "lobby", User: "alice", Text: "hi"},
		},
		{
			name:  "room message text keeps colons",
			frame: "ROOM_MSG:lobby:alice:see: this works",
			want:  Command{Kind: KindRoomMessage, Room: "lobby", User: "alice", Text: "see: this works"},
		},
		{
			name:  "room message empty text",
			frame: "ROOM_MSG:lobby:alice:",
			want:  Command{Kind: KindRoomMessage, Room: "lobby", User: "alice", Text: ""},
		},
		{
			name:  "room message too few parts",
			frame: "ROOM_MSG:lobby:alice",
			want:  Command{},
		},
		{
			name:  "room message empty room",
			frame: "ROOM_MSG::alice:hi",
			want:  Command{},
		},
		{
			name:  "empty join room",
			frame: "JOIN_ROOM:",
			want:  Command{},
		},
		{
			name:  "tags are case sensitive",
			frame: "join_room:lobby",
			want:  Command{},
		},
		{
			name:  "untagged frame",
			frame: "alice: hi",
			want:  Command{},
		},
		{
			name:  "empty frame",
			frame: "",
			want:  Command{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Parse(tt.frame); got != tt.want {
				t.Fatalf("Parse(%q) = %+v, want %+v", tt.frame, got, tt.want)
			}
		})
	}
}

func TestEncodersRoundTrip(t *testing.T) {
	if got := Parse(EncodeJoin("den")); got.Kind != KindJoin || got.Room != "den" {
		t.Fatalf("join round trip: %+v", got)
	}
	if got := Parse(EncodeLeave("den")); got.Kind != KindLeave || got.Room != "den" {
		t.Fatalf("leave round trip: %+v", got)
	}
	got := Parse(EncodeRoomMessage("den", "bob", "a:b"))
	if got.Kind != KindRoomMessage || got.Room != "den" || got.User != "bob" || got.Text != "a:b" {
		t.Fatalf("room message round trip: %+v", got)
	}
}

func TestChatLineIsUntagged(t *testing.T) {
	line := ChatLine("alice", "hi")
	if line != "alice: hi" {
		t.Fatalf("chat line = %q", line)
	}
	if got := Parse(line); got.Kind != KindUnknown {
		t.Fatalf("chat line must not decode as a command: %+v", got)
	}
}
