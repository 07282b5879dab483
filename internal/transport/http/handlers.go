package http

import (
	"net/http"
	"sort"

	"github.com/dkeye/Debate/internal/core"
	"github.com/dkeye/Debate/internal/domain"
	"github.com/gin-gonic/gin"
)

type RoomURI struct {
	Topic string `uri:"topic" binding:"required,max=200"`
}

type RoomResponse struct {
	Topic   domain.Topic     `json:"topic"`
	Scores  domain.Scores    `json:"scores"`
	Members []core.MemberDTO `json:"members"`
}

// RoomsHandler exposes read-only views of the live rooms.
type RoomsHandler struct {
	Rooms *core.RoomRegistry
}

func NewRoomsHandler(rooms *core.RoomRegistry) *RoomsHandler {
	return &RoomsHandler{Rooms: rooms}
}

func (h *RoomsHandler) Register(g *gin.RouterGroup) {
	g.GET("/rooms", h.listRooms)
	g.GET("/rooms/:topic", h.getRoom)
}

func (h *RoomsHandler) listRooms(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"rooms": h.Rooms.List()})
}

func (h *RoomsHandler) getRoom(c *gin.Context) {
	var uri RoomURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid topic"})
		return
	}
	room, ok := h.Rooms.Get(domain.Topic(uri.Topic))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return
	}
	members := room.MembersSnapshot()
	sort.Slice(members, func(i, j int) bool { return members[i].Username < members[j].Username })
	c.JSON(http.StatusOK, RoomResponse{
		Topic:   room.Topic(),
		Scores:  room.Scores(),
		Members: members,
	})
}

func Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
