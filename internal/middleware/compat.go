package middleware

import (
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
)

// legacyPathPatterns are the pre-versioning API paths still used by older
// clients. They are redirected to the /api prefix.
var legacyPathPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^/reminders(/upcoming)?$`),
	regexp.MustCompile(`^/reminder(/\d+(/complete)?)?$`),
	regexp.MustCompile(`^/chat$`),
	regexp.MustCompile(`^/general-chat$`),
	regexp.MustCompile(`^/conversations/[^/]+$`),
}

// APICompat redirects legacy API paths to their /api equivalents. Methods
// with a body get 307 so the method and payload survive the redirect.
func (m Middleware) APICompat() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, pattern := range legacyPathPatterns {
			if !pattern.MatchString(path) {
				continue
			}

			newPath := "/api" + path
			m.l.Infof(c.Request.Context(), "middleware.APICompat: redirecting %s to %s", path, newPath)

			status := http.StatusFound
			switch c.Request.Method {
			case http.MethodPost, http.MethodDelete, http.MethodPut, http.MethodPatch:
				status = http.StatusTemporaryRedirect
			}
			c.Redirect(status, newPath)
			c.Abort()
			return
		}
		c.Next()
	}
}
