package controllers

import (
	models "Chipster/models/postgres"
	"Chipster/services/poker"
	"Chipster/services/rooms"
	"net/http"

	"github.com/gin-gonic/gin"
)

type actionRequest struct {
	PlayerID string `json:"playerId" binding:"required"`
	Action   string `json:"action" binding:"required"`
	Amount   int    `json:"amount"`
}

// @Summary Play an action
// @Description fold, check, call, raise (amount = chips added on top of the call) or all-in, for a seat the caller owns
// @Tags hand
// @Accept json
// @Produce json
// @Param id path string true "Room code"
// @Param body body actionRequest true "Action"
// @Success 200 {object} object{room=poker.Room,result=poker.HandResult}
// @Failure 400 {object} object{error=string}
// @Failure 403 {object} object{error=string}
// @Router /auth/rooms/{id}/actions [post]
// @Security ApiKeyAuth
func ApplyAction(svc *rooms.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := mustCaller(c)
		if !ok {
			return
		}
		var req actionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "playerId and action are required"})
			return
		}
		kind, err := poker.ParseAction(req.Action)
		if err != nil {
			_ = c.Error(err)
			return
		}

		room, result, err := svc.ApplyAction(c.Request.Context(), caller, c.Param("id"), poker.Action{
			PlayerID: req.PlayerID,
			Type:     kind,
			Amount:   req.Amount,
		})
		if err != nil {
			_ = c.Error(err)
			return
		}
		response := gin.H{"room": room}
		if result != nil {
			response["result"] = result
		}
		c.JSON(http.StatusOK, response)
	}
}

// @Summary Action log of a room
// @Tags history
// @Produce json
// @Param id path string true "Room code"
// @Success 200 {array} models.GameAction
// @Failure 404 {object} object{error=string}
// @Router /rooms/{id}/actions [get]
func ListActions(svc *rooms.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		actions, err := svc.ListActions(c.Request.Context(), c.Param("id"))
		if err != nil {
			_ = c.Error(err)
			return
		}
		if actions == nil {
			actions = []models.GameAction{}
		}
		c.JSON(http.StatusOK, actions)
	}
}

// @Summary Finished hands of a room
// @Tags history
// @Produce json
// @Param id path string true "Room code"
// @Success 200 {array} models.HandResult
// @Failure 404 {object} object{error=string}
// @Router /rooms/{id}/results [get]
func ListResults(svc *rooms.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		results, err := svc.ListHandResults(c.Request.Context(), c.Param("id"))
		if err != nil {
			_ = c.Error(err)
			return
		}
		if results == nil {
			results = []models.HandResult{}
		}
		c.JSON(http.StatusOK, results)
	}
}
