package middleware

import (
	"net/http"
	"strings"

	"medibook/models"
	"medibook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Legacy per-console token headers sent by the web clients.
const (
	UserTokenHeader   = "token"
	DoctorTokenHeader = "dtoken"
	AdminTokenHeader  = "atoken"
)

// bearerToken returns the token from the console header or, failing that, from an
// "Authorization: Bearer" header.
func bearerToken(c *gin.Context, legacyHeader string) string {
	if t := strings.TrimSpace(c.GetHeader(legacyHeader)); t != "" {
		return t
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	}
	return ""
}

// requireRole validates the token for role and hands its subject to bind before the
// rest of the chain runs.
func requireRole(role, legacyHeader string, bind func(c *gin.Context, subject string)) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c, legacyHeader)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{
				Success: false,
				Code:    string(utils.KindUnauthorized),
				Message: "Not Authorized. Login again",
			})
			return
		}

		subject, err := utils.ExtractIDForRole(tokenString, role)
		if err != nil {
			zap.L().Debug("Rejected token", zap.String("role", role), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{
				Success: false,
				Code:    string(utils.KindUnauthorized),
				Message: "Not Authorized. Login again",
			})
			return
		}

		bind(c, subject)
		c.Next()
	}
}

// setKey binds the token subject to a single context key.
func setKey(key string) func(c *gin.Context, subject string) {
	return func(c *gin.Context, subject string) {
		c.Set(key, subject)
	}
}

// JWTAuthUserMiddleware admits patient tokens and sets the user id.
func JWTAuthUserMiddleware() gin.HandlerFunc {
	return requireRole(models.RoleUser, UserTokenHeader, setKey(utils.CtxUserID))
}

// JWTAuthDoctorMiddleware admits doctor tokens and sets the doctor id.
func JWTAuthDoctorMiddleware() gin.HandlerFunc {
	return requireRole(models.RoleDoctor, DoctorTokenHeader, setKey(utils.CtxDoctorID))
}

// JWTAuthAdminMiddleware admits admin tokens and sets the admin email and flag.
func JWTAuthAdminMiddleware() gin.HandlerFunc {
	return requireRole(models.RoleAdmin, AdminTokenHeader, func(c *gin.Context, subject string) {
		c.Set(utils.CtxAdminEmail, subject)
		c.Set(utils.CtxIsAdmin, true)
	})
}
