package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"todoapi/internal/adapter/http/helper"
	"todoapi/internal/core/domain"
	"todoapi/internal/core/port"
)

const userIDKey = "x-user-id"

// Identity guards every protected route: it extracts the bearer token,
// verifies it, and resolves the bound user against the store. The attached
// owner id is the only identity handlers may trust.
func Identity(tokens port.TokenService, users port.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token := strings.TrimPrefix(header, "Bearer ")

		if token == "" {
			helper.AbortError(c, domain.Unauthorized("Unauthorized"))
			return
		}

		userID, err := tokens.VerifyToken(token)

		if err != nil {
			helper.AbortError(c, domain.Unauthorized("Invalid token"))
			return
		}

		oid, err := primitive.ObjectIDFromHex(userID)

		if err != nil {
			helper.AbortError(c, domain.Unauthorized("Invalid token"))
			return
		}

		// The token may outlive its user.
		user, err := users.GetByID(c.Request.Context(), oid)

		if err != nil {
			helper.AbortError(c, domain.Unauthorized("Unauthorized"))
			return
		}

		c.Set(userIDKey, user.ID)
		c.Next()
	}
}

func CurrentUserID(c *gin.Context) primitive.ObjectID {
	if value, ok := c.Get(userIDKey); ok {
		if id, ok := value.(primitive.ObjectID); ok {
			return id
		}
	}

	return primitive.NilObjectID
}
