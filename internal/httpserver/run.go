package httpserver

import (
	"context"
	"fmt"
)

// Run maps all handlers and blocks serving HTTP until the listener fails.
func (srv HTTPServer) Run() error {
	if err := srv.mapHandlers(); err != nil {
		return err
	}

	srv.l.Infof(context.Background(), "HTTP server listening on :%d (%s)", srv.port, srv.mode)
	return srv.gin.Run(fmt.Sprintf(":%d", srv.port))
}
