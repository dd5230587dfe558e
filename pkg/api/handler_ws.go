package api

import (
	"github.com/coder/websocket"
	echo "github.com/labstack/echo/v5"
)

// wsHandler upgrades HTTP connections to WebSocket and delegates to
// ConnectionManager. An optional ?channel= query parameter subscribes
// the connection before the first client frame; invalid channels are
// rejected in-band the same way an explicit subscribe would be.
func (s *Server) wsHandler(c *echo.Context) error {
	if s.connManager == nil {
		return echo.NewHTTPError(503, "WebSocket not available")
	}

	conn, err := websocket.Accept(c.Response(), c.Request(), &websocket.AcceptOptions{
		// Accept all origins for now. Origin validation should use an
		// OriginPatterns allowlist read from server config once the
		// operator surface moves off the internal network.
		InsecureSkipVerify: true,
	})
	if err != nil {
		return err
	}

	var initial []string
	if channel := c.QueryParam("channel"); channel != "" {
		initial = append(initial, channel)
	}

	// HandleConnection blocks until the WebSocket closes.
	s.connManager.HandleConnection(c.Request().Context(), conn, initial...)
	return nil
}
