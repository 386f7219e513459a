package httpapi

import (
	"net/http"
	"strings"

	"taza-be/internal/apperror"
	"taza-be/internal/transport"
	"taza-be/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	ErrInvalidBody   = apperror.Validation("invalid request body")
	ErrInvalidID     = apperror.Validation("invalid id")
	ErrLoginRequired = apperror.Auth("authentication required")
)

func ok(c *gin.Context, status int, data any) {
	c.JSON(status, transport.Success(data))
}

func fail(c *gin.Context, err error) {
	status, body := transport.ErrorResponse(c.Request.Context(), err)
	c.AbortWithStatusJSON(status, body)
}

// requireAuth rejects requests the auth middleware did not attach a user to,
// surfacing the token rejection reason when there was one.
func requireAuth(c *gin.Context) {
	ctx := c.Request.Context()
	if _, found := utils.GetUserIDFromContext(ctx); !found {
		if err := utils.GetAuthErrorFromContext(ctx); err != nil {
			fail(c, err)
			return
		}
		fail(c, ErrLoginRequired)
		return
	}
	c.Next()
}

func currentUser(c *gin.Context) uint {
	id, _ := utils.GetUserIDFromContext(c.Request.Context())
	return id
}

func bind(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		fail(c, ErrInvalidBody)
		return false
	}
	return true
}

func pathUUID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		fail(c, ErrInvalidID)
		return uuid.Nil, false
	}
	return id, true
}

// optionalUUID treats nil and blank strings as absent.
func optionalUUID(s *string) (*uuid.UUID, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	id, err := uuid.Parse(strings.TrimSpace(*s))
	if err != nil {
		return nil, ErrInvalidID
	}
	return &id, nil
}

func noContent(c *gin.Context) {
	ok(c, http.StatusOK, gin.H{"ok": true})
}
