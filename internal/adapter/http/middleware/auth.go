package middleware

import (
	"net/http"
	"strings"

	"diamond_exteriors/internal/usecase"
	"diamond_exteriors/pkg"

	"github.com/gin-gonic/gin"
)

// AdminAuth gates the admin mutation surface behind a Bearer token issued by
// the login endpoint.
func AdminAuth(auth usecase.IAuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authorization header required", http.StatusUnauthorized)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}

		parts := strings.Split(header, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid authorization header format", http.StatusUnauthorized)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}

		if err := auth.ValidateToken(parts[1]); err != nil {
			appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid or expired token", http.StatusUnauthorized)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}

		c.Next()
	}
}
