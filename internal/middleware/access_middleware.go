package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/examtable/internal/app/models"
	"github.com/yigit/examtable/internal/app/models/dto"
	"github.com/yigit/examtable/internal/app/repositories"
	"github.com/yigit/examtable/internal/pkg/logger"
)

// AccessKeyHeader is the header department and faculty officers authenticate with
const AccessKeyHeader = "X-Access-Key"

const accessContextKey = "accessContext"

// AccessMiddleware resolves the X-Access-Key header against the roles table
// and attaches an AccessContext to the request. Core operations consume that
// context and never re-validate the key.
type AccessMiddleware struct {
	roleRepo *repositories.RoleRepository
}

// NewAccessMiddleware creates a new AccessMiddleware
func NewAccessMiddleware(roleRepo *repositories.RoleRepository) *AccessMiddleware {
	return &AccessMiddleware{roleRepo: roleRepo}
}

// RequireKey accepts any valid access key, regardless of role
func (m *AccessMiddleware) RequireKey() gin.HandlerFunc {
	return m.requireRole("")
}

// RequireRole accepts only keys bound to the given role type
func (m *AccessMiddleware) RequireRole(role models.RoleType) gin.HandlerFunc {
	return m.requireRole(role)
}

func (m *AccessMiddleware) requireRole(required models.RoleType) gin.HandlerFunc {
	return func(c *gin.Context) {
		accessKey := c.GetHeader(AccessKeyHeader)
		if accessKey == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Access key required")))
			return
		}

		role, err := m.roleRepo.GetByAccessKey(c.Request.Context(), accessKey)
		if err != nil {
			logger.Error().Err(err).Msg("Error validating access key")
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(
				dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Server error during key validation")))
			return
		}
		if role == nil {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(
				dto.NewErrorDetail(dto.ErrorCodeForbidden, "Invalid access key")))
			return
		}

		if required != "" && role.RoleType != required {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(
				dto.NewErrorDetail(dto.ErrorCodeForbidden, "Access denied for this role")))
			return
		}

		c.Set(accessContextKey, &models.AccessContext{
			Role:       role.RoleType,
			Department: role.DepartmentName,
			AccessKey:  role.AccessKey,
		})

		c.Next()
	}
}

// AccessFromContext returns the AccessContext the middleware attached. The
// second return is false only on routes that skipped the middleware, which is
// a wiring bug rather than a runtime condition.
func AccessFromContext(c *gin.Context) (*models.AccessContext, bool) {
	value, exists := c.Get(accessContextKey)
	if !exists {
		return nil, false
	}
	access, ok := value.(*models.AccessContext)
	return access, ok
}
