package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/pulseboard/pulseboard-api/pkg/helpers"
	"github.com/pulseboard/pulseboard-api/pkg/response"
)

const CtxUserIDKey = "userID"

// Auth validates the access token and ensures an active session exists in
// Redis. It sets userID, userName and userEmail in the Gin context on success.
func Auth(rdb *redis.Client, jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie("access_token")
		if err != nil || token == "" {
			response.Error[any](c, http.StatusUnauthorized, "missing access token", nil)
			c.Abort()
			return
		}
		claims, err := jwt.ParseAccessToken(token)
		if err != nil {
			response.Error[any](c, http.StatusUnauthorized, "invalid access token", err.Error())
			c.Abort()
			return
		}

		// Retrieve session from Redis as a hash
		key := "user:session:" + claims.UserID
		data, err := rdb.HGetAll(c.Request.Context(), key).Result()
		if err != nil || len(data) == 0 || data["sid"] != claims.SessionID {
			response.Error[any](c, http.StatusUnauthorized, "session not found", nil)
			c.Abort()
			return
		}

		c.Set(CtxUserIDKey, data["user_id"])
		c.Set("userName", data["name"])
		c.Set("userEmail", data["email"])
		c.Next()
	}
}

// OptionalAuth sets userID when a valid session cookie is present and passes
// through silently otherwise. Used by public endpoints that personalize for
// logged-in callers.
func OptionalAuth(rdb *redis.Client, jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie("access_token")
		if err != nil || token == "" {
			c.Next()
			return
		}
		claims, err := jwt.ParseAccessToken(token)
		if err != nil {
			c.Next()
			return
		}
		if rdb != nil {
			key := "user:session:" + claims.UserID
			data, err := rdb.HGetAll(c.Request.Context(), key).Result()
			if err != nil || len(data) == 0 || data["sid"] != claims.SessionID {
				c.Next()
				return
			}
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Next()
	}
}
