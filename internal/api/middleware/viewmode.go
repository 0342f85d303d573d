package middleware

import (
	"realty-crm-backend/internal/viewmode"

	"github.com/gin-gonic/gin"
)

// ViewModeKey is the context key under which the resolved view mode is
// stored
const ViewModeKey = "view_mode"

// ViewMode injects the view mode decided for a route group. The mode is
// fixed per mount point; handlers never re-derive it from the path.
func ViewMode(mode viewmode.Mode) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ViewModeKey, mode)
		c.Next()
	}
}

// ViewModeFromContext returns the injected view mode. Routes that forgot to
// inject one get read-only, so a misconfigured mount can never write.
func ViewModeFromContext(c *gin.Context) viewmode.Mode {
	if value, ok := c.Get(ViewModeKey); ok {
		if mode, ok := value.(viewmode.Mode); ok && mode.IsValid() {
			return mode
		}
	}
	return viewmode.ModeReadOnly
}
