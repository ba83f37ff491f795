package middleware

import (
	"net/http"

	"github.com/MeiyanW/inner_court_app/internal/core/domain"
	portssvc "github.com/MeiyanW/inner_court_app/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// RequireAdmin rejects requests from members without the admin role. It must
// run after AuthMiddleware so the member id is present in the context.
func RequireAdmin(memberSvc portssvc.MemberSvcFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		memberID, ok := GetUserIDFromContext(c)
		if !ok {
			logger.Warn("Admin check without authenticated member")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		member, err := memberSvc.GetMember(c.Request.Context(), memberID)
		if err != nil {
			logger.Error("Failed to load member for admin check", "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify permissions"})
			return
		}

		if member.Role != domain.RoleAdmin {
			logger.Warn("Non-admin member attempted admin operation")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin privileges required"})
			return
		}

		c.Next()
	}
}
