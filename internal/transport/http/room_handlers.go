package http

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"textrelay/internal/core"
)

// RoomHandlers serves read-only visibility into the live registry.
type RoomHandlers struct {
	reg *core.Registry
	log *zerolog.Logger
}

// NewRoomHandlers creates a new room handlers instance.
func NewRoomHandlers(reg *core.Registry, logger *zerolog.Logger) *RoomHandlers {
	return &RoomHandlers{reg: reg, log: logger}
}

// RoomResponse represents a room in API responses.
type RoomResponse struct {
	Name    string `json:"name"`
	Members int    `json:"members"`
}

// ErrorResponse is the generic error body for API endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ListRooms handles listing active rooms with member counts.
// GET /api/rooms
func (h *RoomHandlers) ListRooms(c *gin.Context) {
	infos := h.reg.Rooms()
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })

	response := make([]RoomResponse, 0, len(infos))
	for _, info := range infos {
		response = append(response, RoomResponse{
			Name:    info.Name,
			Members: info.Members,
		})
	}

	h.log.Debug().Int("room_count", len(response)).Msg("rooms listed")
	c.JSON(http.StatusOK, response)
}
