package middleware

import (
	"Chipster/services/rooms"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Session keys written at login
const (
	SessionUserID = "user_id"
	SessionName   = "user_name"
	SessionEmail  = "email"
)

const callerKey = "caller"

var ErrInvalidToken = errors.New("invalid or expired token")

// Claims carried by every token. The subject is the user id.
type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// GenerateToken signs an HS256 token for the user
func GenerateToken(secret []byte, userID, email, name string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: email,
		Name:  name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// ParseToken checks the signature and expiry of a token
func ParseToken(secret []byte, token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// BearerToken strips the "Bearer " prefix, if any
func BearerToken(header string) string {
	header = strings.TrimSpace(header)
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return header
}

// AuthRequired accepts a bearer token or the login session and stores the
// caller in the context
func AuthRequired(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		if header := c.GetHeader("Authorization"); header != "" {
			claims, err := ParseToken(secret, BearerToken(header))
			if err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
				return
			}
			c.Set(callerKey, rooms.Caller{UserID: claims.Subject, Name: claims.Name})
			c.Next()
			return
		}

		session := sessions.Default(c)
		userID, _ := session.Get(SessionUserID).(string)
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		name, _ := session.Get(SessionName).(string)
		c.Set(callerKey, rooms.Caller{UserID: userID, Name: name})
		c.Next()
	}
}

// CurrentCaller returns the user set by AuthRequired
func CurrentCaller(c *gin.Context) (rooms.Caller, bool) {
	v, ok := c.Get(callerKey)
	if !ok {
		return rooms.Caller{}, false
	}
	caller, ok := v.(rooms.Caller)
	return caller, ok
}
