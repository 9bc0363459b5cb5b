package controllers

import (
	game_constants "Chipster/constants/game"
	"Chipster/middleware"
	models "Chipster/models/postgres"
	"Chipster/services/users"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type signUpRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Name     string `json:"name" form:"name" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" form:"email" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

// startSession stores the user in the cookie session and answers with a token
func startSession(c *gin.Context, secret []byte, user *models.User, status int) {
	token, err := middleware.GenerateToken(secret, user.ID, user.Email, user.Name, game_constants.TOKEN_TTL)
	if err != nil {
		_ = c.Error(err)
		return
	}

	session := sessions.Default(c)
	session.Set(middleware.SessionUserID, user.ID)
	session.Set(middleware.SessionName, user.Name)
	session.Set(middleware.SessionEmail, user.Email)
	if err := session.Save(); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(status, gin.H{
		"token": token,
		"user":  gin.H{"id": user.ID, "email": user.Email, "name": user.Name},
	})
}

// @Summary Register a new user
// @Description Creates the account and logs the user in
// @Tags users
// @Accept json
// @Produce json
// @Param body body signUpRequest true "Account data"
// @Success 201 {object} object{token=string}
// @Failure 400 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Router /signup [post]
func SignUp(store users.Store, secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req signUpRequest
		if err := c.ShouldBind(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Parameters can't be empty and the email must be valid"})
			return
		}
		req.Email = strings.TrimSpace(req.Email)
		req.Name = strings.TrimSpace(req.Name)

		//Minimum input sanitizing
		if req.Email == "" || req.Name == "" || strings.TrimSpace(req.Password) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Parameters can't be empty"})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), game_constants.PASSWORD_COST)
		if err != nil {
			_ = c.Error(err)
			return
		}

		user := &models.User{Email: req.Email, Name: req.Name, PasswordHash: string(hash)}
		if err := store.Create(c.Request.Context(), user); err != nil {
			_ = c.Error(err)
			return
		}
		log.Printf("[USER] New user %s (%s)", user.Name, user.ID)

		startSession(c, secret, user, http.StatusCreated)
	}
}

// @Summary Log in
// @Description Checks the credentials, opens a session and returns a bearer token
// @Tags users
// @Accept json
// @Produce json
// @Param body body loginRequest true "Credentials"
// @Success 200 {object} object{token=string}
// @Failure 401 {object} object{error=string}
// @Router /login [post]
func Login(store users.Store, secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBind(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		//Minimum input sanitizing
		if strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Password) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Parameters can't be empty"})
			return
		}

		user, err := store.ByEmail(c.Request.Context(), req.Email)
		if err != nil {
			if errors.Is(err, users.ErrUserNotFound) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password!"})
				return
			}
			_ = c.Error(err)
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password!"})
			return
		}

		startSession(c, secret, user, http.StatusOK)
	}
}

// @Summary Log out
// @Description Deletes the session cookie. Bearer tokens stay valid until they expire.
// @Tags users
// @Produce json
// @Success 200 {object} object{message=string}
// @Router /auth/logout [delete]
// @Security ApiKeyAuth
func Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Successfully logged out"})
}

// @Summary Current user
// @Tags users
// @Produce json
// @Success 200 {object} object{id=string,email=string,name=string,memberSince=string}
// @Failure 401 {object} object{error=string}
// @Router /auth/me [get]
// @Security ApiKeyAuth
func Me(store users.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := middleware.CurrentCaller(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		user, err := store.ByID(c.Request.Context(), caller.UserID)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"id":          user.ID,
			"email":       user.Email,
			"name":        user.Name,
			"memberSince": user.MemberSince,
		})
	}
}
