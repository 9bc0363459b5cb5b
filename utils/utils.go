package utils

import (
	"Chipster/services/poker"
	"Chipster/services/rooms"
	"Chipster/services/users"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger logs method, path, status and latency of each request
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		c.Next()

		log.Printf("[HTTP] %s %s %d %v", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(startTime))
	}
}

// StatusFor maps a service error to its HTTP status
func StatusFor(err error) int {
	switch {
	case errors.Is(err, rooms.ErrForbidden),
		errors.Is(err, rooms.ErrNotYourSeat),
		errors.Is(err, rooms.ErrWrongPassword):
		return http.StatusForbidden
	case errors.Is(err, rooms.ErrAlreadySeated),
		errors.Is(err, users.ErrEmailTaken):
		return http.StatusConflict
	case errors.Is(err, rooms.ErrNameRequired):
		return http.StatusBadRequest
	case errors.Is(err, users.ErrUserNotFound):
		return http.StatusNotFound
	}

	switch poker.KindOf(err) {
	case poker.NotFound:
		return http.StatusNotFound
	case poker.IllegalAction, poker.Precondition:
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// ErrorHandler answers requests whose handler pushed an error with c.Error
// and wrote nothing
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err
		status := StatusFor(err)
		if status == http.StatusInternalServerError {
			log.Printf("[HTTP-ERROR] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
			c.JSON(status, gin.H{"error": "Internal server error"})
			return
		}
		c.JSON(status, gin.H{"error": err.Error()})
	}
}
