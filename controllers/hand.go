package controllers

import (
	"Chipster/services/rooms"
	"net/http"

	"github.com/gin-gonic/gin"
)

type handRequest struct {
	Action string `json:"action" binding:"required"`
}

type declareWinnerRequest struct {
	WinnerID string `json:"winnerId" binding:"required"`
	Pot      int    `json:"pot"`
}

// @Summary Start the next hand
// @Description Owner only. Rotates the button, posts the blinds and gives the first turn.
// @Tags hand
// @Accept json
// @Produce json
// @Param id path string true "Room code"
// @Param body body handRequest true "Must be {\"action\":\"start\"}"
// @Success 200 {object} poker.Room
// @Failure 400 {object} object{error=string}
// @Failure 403 {object} object{error=string}
// @Router /auth/rooms/{id}/hand [post]
// @Security ApiKeyAuth
func StartHand(svc *rooms.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := mustCaller(c)
		if !ok {
			return
		}
		var req handRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Action != "start" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid action"})
			return
		}

		room, err := svc.StartHand(c.Request.Context(), caller, c.Param("id"))
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, room)
	}
}

// @Summary Declare the winner
// @Description Owner only. Pays the pot to the winner and ends the hand.
// @Tags hand
// @Accept json
// @Produce json
// @Param id path string true "Room code"
// @Param body body declareWinnerRequest true "Winner seat and pot"
// @Success 200 {object} object{room=poker.Room,result=poker.HandResult}
// @Failure 400 {object} object{error=string}
// @Failure 403 {object} object{error=string}
// @Router /auth/rooms/{id}/hand [put]
// @Security ApiKeyAuth
func DeclareWinner(svc *rooms.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := mustCaller(c)
		if !ok {
			return
		}
		var req declareWinnerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "winnerId is required"})
			return
		}

		room, result, err := svc.DeclareWinner(c.Request.Context(), caller, c.Param("id"), req.WinnerID, req.Pot)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"room": room, "result": result})
	}
}
