package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/naai-app/naai-api/internal/httperr"
)

// failStorage maps a persistence failure to its transport response.
// Connectivity-class errors get the dedicated message plus a remediation
// hint in the server log; everything else stays a generic 500.
func failStorage(c *gin.Context, log *zap.Logger, op string, err error) {
	if isConnectionError(err) {
		log.Error(op+": database unreachable; check that postgres is running and DATABASE_URL is correct", zap.Error(err))
		httperr.DBDown(c)
		return
	}
	log.Error(op, zap.Error(err))
	httperr.Internal(c)
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "broken pipe") ||
		strings.Contains(msg, "failed to connect")
}

func parseID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
