package handler

import (
	"fmt"
	"io"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/GTDGit/fas_dashboard/internal/middleware"
	"github.com/GTDGit/fas_dashboard/internal/sse"
	"github.com/GTDGit/fas_dashboard/internal/utils"
)

// pingInterval keeps idle SSE connections open through proxies.
var pingInterval = 30 * time.Second

// SSEHandler handles Server-Sent Events for dashboard real-time updates.
type SSEHandler struct {
	hub     *sse.Hub
	secret  string
	limiter *middleware.InvalidAuthRateLimiter
}

// NewSSEHandler creates a new SSEHandler. Pass the JWT middleware's limiter
// so failures on either path count against the same budget; nil gets a
// private limiter with the default settings.
func NewSSEHandler(hub *sse.Hub, secret string, limiter *middleware.InvalidAuthRateLimiter) *SSEHandler {
	if limiter == nil {
		limiter = middleware.NewInvalidAuthRateLimiter(middleware.DefaultInvalidAuthLimit, middleware.DefaultInvalidAuthWindow)
	}
	return &SSEHandler{hub: hub, secret: secret, limiter: limiter}
}

// Stream handles GET /v1/events?token=<jwt>
// EventSource API cannot set custom headers, so JWT is passed via query param.
func (h *SSEHandler) Stream(c *gin.Context) {
	ip := c.ClientIP()
	if h.limiter.Blocked(ip) {
		utils.Error(c, 429, "TOO_MANY_REQUESTS", "Too many invalid authentication attempts")
		return
	}

	token := c.Query("token")
	if token == "" {
		utils.Error(c, 401, "UNAUTHORIZED", "Missing token query parameter")
		return
	}

	claims, err := utils.ValidateJWT(h.secret, token)
	if err != nil {
		h.limiter.Fail(ip)
		log.Warn().Err(err).Str("ip", ip).Msg("Rejected SSE token")
		utils.Error(c, 401, "INVALID_TOKEN", "Invalid or expired token")
		return
	}

	clientID := fmt.Sprintf("dash-%s-%d", claims.Subject, time.Now().UnixNano())

	// SSE headers
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no") // Disable nginx buffering

	client := h.hub.Register(clientID)
	defer h.hub.Unregister(clientID)

	c.SSEvent("connected", gin.H{
		"clientId":  clientID,
		"message":   "SSE connection established",
		"timestamp": time.Now().Format(time.RFC3339),
	})
	c.Writer.Flush()

	log.Info().Str("client_id", clientID).Str("user_id", claims.Subject).Msg("Dashboard SSE stream started")

	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	c.Stream(func(w io.Writer) bool {
		select {
		case data, ok := <-client.Events:
			if !ok {
				return false
			}
			c.SSEvent("record", string(data))
			return true
		case <-ticker.C:
			c.SSEvent("ping", gin.H{"timestamp": time.Now().Format(time.RFC3339)})
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
