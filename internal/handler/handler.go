package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/recruitly/talentflow/internal/auth"
	"github.com/recruitly/talentflow/internal/interview"
	"go.uber.org/zap"
)

type Handler struct {
	Logger *zap.Logger
	Engine *interview.Engine
}

// GetClaimsFromContext retrieves the verified token claims set by the
// auth middleware.
func (h *Handler) GetClaimsFromContext(c *gin.Context) *auth.Claims {
	contextClaims, exists := c.Get("claims")
	if !exists {
		return nil
	}

	claims, ok := contextClaims.(*auth.Claims)
	if !ok {
		return nil
	}

	return claims
}
