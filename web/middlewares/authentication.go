package middlewares

import (
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"whitelotus.com/wms/web/common"
)

const AdminCookie = "wms.AdminCookie"

func parseJwt(tokenStr string, secret []byte) (*jwt.Token, error) {
	return jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	})
}

// Authentication guards the admin API. It accepts a Bearer token or the
// admin cookie and rejects anything unsigned, expired, or not carrying the
// admin role.
func Authentication(base64Secret string) gin.HandlerFunc {
	secret, err := base64.StdEncoding.DecodeString(base64Secret)
	if err != nil {
		panic("invalid base64 jwt secret: " + err.Error())
	}

	return func(c *gin.Context) {
		tokenStr := ""

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			cookie, err := c.Cookie(AdminCookie)
			if err != nil {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}
			tokenStr = cookie
		} else {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}
			tokenStr = parts[1]
		}

		token, err := parseJwt(tokenStr, secret)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, common.NewErrorResponse("invalid or expired token"))
			return
		}

		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			if role, ok := claims["role"].(string); !ok || role != "admin" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, common.NewErrorResponse("admin access required"))
				return
			}
			c.Set("claims", claims)
		}

		c.Next()
	}
}
