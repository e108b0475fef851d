package requestcontext

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestContext is the allow-listed projection of an inbound request that
// may be forwarded to the risk gate. Arbitrary request data is never carried
// here; only the fields below leave the handler layer.
type RequestContext struct {
	RequestID      string    `json:"request_id"`
	IP             string    `json:"ip"`
	UserAgent      string    `json:"user_agent"`
	AcceptLanguage string    `json:"accept_language"`
	Referer        string    `json:"referer"`
	DeviceID       string    `json:"device_id"`
	SessionID      string    `json:"session_id"`
	Path           string    `json:"path"`
	Method         string    `json:"method"`
	UserID         string    `json:"user_id"`
	Timestamp      time.Time `json:"timestamp"`
}

// FromEchoContext builds the projection from an Echo request. Device and
// session identifiers come from the headers the mobile clients send.
func FromEchoContext(c echo.Context) *RequestContext {
	req := c.Request()

	reqCtx := &RequestContext{
		IP:             c.RealIP(),
		UserAgent:      req.UserAgent(),
		AcceptLanguage: req.Header.Get("Accept-Language"),
		Referer:        req.Referer(),
		DeviceID:       req.Header.Get("X-Device-ID"),
		SessionID:      req.Header.Get("X-Session-ID"),
		Path:           req.URL.Path,
		Method:         req.Method,
		Timestamp:      time.Now(),
	}

	if requestID := c.Response().Header().Get(echo.HeaderXRequestID); requestID != "" {
		reqCtx.RequestID = requestID
	} else {
		reqCtx.RequestID = uuid.New().String()
	}

	if userID := c.Get("user_id"); userID != nil {
		if uid, ok := userID.(string); ok {
			reqCtx.UserID = uid
		}
	}

	return reqCtx
}
