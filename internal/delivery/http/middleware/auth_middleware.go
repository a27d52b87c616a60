package middleware

import (
	"net/http"
	"strings"

	"go-candidate-backend/internal/delivery/http/response"
	"go-candidate-backend/internal/domain"
	"go-candidate-backend/pkg/apperror"
	"go-candidate-backend/pkg/auth"
	"go-candidate-backend/pkg/security"

	"github.com/gin-gonic/gin"
)

// TokenVerifier is satisfied by auth.TokenService.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// AuthMiddleware admits a request only when it carries a valid bearer token
// whose email still resolves to a registered user.
func AuthMiddleware(tokens TokenVerifier, authUC domain.AuthUsecase, secLog *security.SecurityLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		deny := func(detail, reason string) {
			secLog.LogUnauthorizedAccess(c.Request.Context(), c.ClientIP(), c.Request.UserAgent(), c.GetString(string(domain.KeyRequestID)), reason)
			c.Header("WWW-Authenticate", "Bearer")
			response.Error(c, http.StatusUnauthorized, detail)
			c.Abort()
		}

		tokenString, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			deny(domain.MsgNotAuthenticated, "missing_bearer_token")
			return
		}

		claims, err := tokens.Verify(tokenString)
		if err != nil {
			deny(domain.MsgInvalidCredentials, "invalid_token")
			return
		}

		user, err := authUC.GetCurrentUser(c.Request.Context(), claims.Email)
		if apperror.IsKind(err, apperror.KindInternal) {
			c.Error(err)
			c.Abort()
			return
		}
		if err != nil || user == nil {
			deny(domain.MsgInvalidCredentials, "unknown_user")
			return
		}

		c.Set(string(domain.KeyUser), user)
		c.Set(string(domain.KeyUserID), user.UUID)
		c.Set(string(domain.KeyUserEmail), user.Email)

		c.Next()
	}
}

// bearerToken extracts the credentials of an "Authorization: Bearer <token>"
// header. The scheme is case insensitive.
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}
	return token, true
}
