package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/freteops/frete-service/internal/domain/dto"
	"github.com/freteops/frete-service/internal/i18n"
)

// RequireRole returns a middleware that rejects requests whose validated
// token does not carry the given role. It must run after JWTAuth.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		locale := i18n.GetLocale(c)
		requestID := GetRequestID(c)

		userRole, exists := c.Get("user_role")
		if !exists {
			message := i18n.GetTranslator().Translate(i18n.ErrKeyUnauthorized, locale)
			errorResp := dto.NewError(dto.ErrCodeUnauthorized, message).
				WithRequestID(requestID)
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResp)
			return
		}

		if r, ok := userRole.(string); !ok || r != role {
			message := i18n.GetTranslator().Translate(i18n.ErrKeyForbidden, locale)
			errorResp := dto.NewError(dto.ErrCodeForbidden, message).
				WithRequestID(requestID)
			c.AbortWithStatusJSON(http.StatusForbidden, errorResp)
			return
		}

		c.Next()
	}
}
