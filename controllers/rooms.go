package controllers

import (
	"Chipster/middleware"
	"Chipster/services/poker"
	"Chipster/services/rooms"
	"net/http"

	"github.com/gin-gonic/gin"
)

type createRoomRequest struct {
	Name          string `json:"name"`
	Password      string `json:"password"`
	MaxPlayers    int    `json:"maxPlayers"`
	SmallBlind    int    `json:"smallBlind"`
	BigBlind      int    `json:"bigBlind"`
	StartingChips int    `json:"startingChips"`
}

type updateRoomRequest struct {
	Name          *string `json:"name"`
	Password      *string `json:"password"`
	MaxPlayers    *int    `json:"maxPlayers"`
	SmallBlind    *int    `json:"smallBlind"`
	BigBlind      *int    `json:"bigBlind"`
	StartingChips *int    `json:"startingChips"`
}

type joinRoomRequest struct {
	Password string `json:"password"`
}

// mustCaller writes 401 when AuthRequired did not run
func mustCaller(c *gin.Context) (rooms.Caller, bool) {
	caller, ok := middleware.CurrentCaller(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
	}
	return caller, ok
}

// @Summary List open rooms
// @Tags rooms
// @Produce json
// @Success 200 {array} poker.Room
// @Router /rooms [get]
func ListRooms(svc *rooms.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := svc.ListRooms(c.Request.Context())
		if err != nil {
			_ = c.Error(err)
			return
		}
		if list == nil {
			list = []*poker.Room{}
		}
		c.JSON(http.StatusOK, list)
	}
}

// @Summary Get a room
// @Tags rooms
// @Produce json
// @Param id path string true "Room code"
// @Success 200 {object} poker.Room
// @Failure 404 {object} object{error=string}
// @Router /rooms/{id} [get]
func GetRoom(svc *rooms.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		room, err := svc.GetRoom(c.Request.Context(), c.Param("id"))
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, room)
	}
}

// @Summary Create a room
// @Description The creator takes the first seat and owns the room. Zero settings take the defaults.
// @Tags rooms
// @Accept json
// @Produce json
// @Param body body createRoomRequest true "Room data"
// @Success 201 {object} poker.Room
// @Failure 400 {object} object{error=string}
// @Router /auth/rooms [post]
// @Security ApiKeyAuth
func CreateRoom(svc *rooms.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := mustCaller(c)
		if !ok {
			return
		}
		var req createRoomRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		room, err := svc.CreateRoom(c.Request.Context(), caller, rooms.CreateRoomInput{
			Name:     req.Name,
			Password: req.Password,
			Settings: poker.Settings{
				MaxPlayers:    req.MaxPlayers,
				SmallBlind:    req.SmallBlind,
				BigBlind:      req.BigBlind,
				StartingChips: req.StartingChips,
			},
		})
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusCreated, room)
	}
}

// @Summary Update a room
// @Description Owner only, between hands. An empty password removes it.
// @Tags rooms
// @Accept json
// @Produce json
// @Param id path string true "Room code"
// @Param body body updateRoomRequest true "Fields to change"
// @Success 200 {object} poker.Room
// @Failure 400 {object} object{error=string}
// @Failure 403 {object} object{error=string}
// @Router /auth/rooms/{id} [patch]
// @Security ApiKeyAuth
func UpdateRoom(svc *rooms.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := mustCaller(c)
		if !ok {
			return
		}
		var req updateRoomRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		room, err := svc.UpdateRoom(c.Request.Context(), caller, c.Param("id"), rooms.UpdateRoomInput{
			Name:          req.Name,
			Password:      req.Password,
			MaxPlayers:    req.MaxPlayers,
			SmallBlind:    req.SmallBlind,
			BigBlind:      req.BigBlind,
			StartingChips: req.StartingChips,
		})
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, room)
	}
}

// @Summary Close a room
// @Tags rooms
// @Produce json
// @Param id path string true "Room code"
// @Success 200 {object} object{message=string}
// @Failure 403 {object} object{error=string}
// @Router /auth/rooms/{id} [delete]
// @Security ApiKeyAuth
func DeleteRoom(svc *rooms.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := mustCaller(c)
		if !ok {
			return
		}
		if err := svc.DeleteRoom(c.Request.Context(), caller, c.Param("id")); err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Room closed"})
	}
}

// @Summary Take a seat
// @Tags rooms
// @Accept json
// @Produce json
// @Param id path string true "Room code"
// @Param body body joinRoomRequest false "Room password"
// @Success 200 {object} poker.Room
// @Failure 403 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Router /auth/rooms/{id}/join [post]
// @Security ApiKeyAuth
func JoinRoom(svc *rooms.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := mustCaller(c)
		if !ok {
			return
		}
		var req joinRoomRequest
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
				return
			}
		}

		room, err := svc.JoinRoom(c.Request.Context(), caller, c.Param("id"), req.Password)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, room)
	}
}

// @Summary Leave a seat
// @Tags rooms
// @Produce json
// @Param id path string true "Room code"
// @Success 200 {object} poker.Room
// @Failure 400 {object} object{error=string}
// @Router /auth/rooms/{id}/leave [post]
// @Security ApiKeyAuth
func LeaveRoom(svc *rooms.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := mustCaller(c)
		if !ok {
			return
		}
		room, err := svc.LeaveRoom(c.Request.Context(), caller, c.Param("id"))
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, room)
	}
}
