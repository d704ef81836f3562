package server

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"movefunnel/internal/observability"
	"movefunnel/internal/services/session"
)

const sessionKey = "session"

// observe records request metrics and logs each request at debug, or warn
// for server errors.
func (s *Server) observe() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		elapsed := time.Since(start)
		s.deps.Metrics.ObserveHTTP(route, c.Request.Method, strconv.Itoa(status), elapsed.Seconds())

		args := []any{"method", c.Request.Method, "route", route, "status", status, "duration", elapsed}
		log := s.log.WithContext(c.Request.Context())
		if status >= 500 {
			log.Warn("request failed", append(args, "errors", c.Errors.String())...)
			return
		}
		log.Debug("request", args...)
	}
}

// loadSession resolves :id and stores the session on the context.
func (s *Server) loadSession(c *gin.Context) {
	id := c.Param("id")
	ctx := observability.ContextWithSessionID(c.Request.Context(), id)
	c.Request = c.Request.WithContext(ctx)

	sess, err := s.deps.Sessions.Get(ctx, id)
	if err != nil {
		_ = c.Error(err)
		failErr(c, err)
		return
	}
	c.Set(sessionKey, sess)
	c.Next()
}

func currentSession(c *gin.Context) *session.Session {
	return c.MustGet(sessionKey).(*session.Session)
}
