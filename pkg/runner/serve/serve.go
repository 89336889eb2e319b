// Package serve runs the JSON HTTP API.
package serve

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"tableflip.dev/studyhub/pkg/api"
	"tableflip.dev/studyhub/pkg/app"
	"tableflip.dev/studyhub/pkg/notify"
)

type Serve struct {
	Service *app.Service
	Addr    string
	Logger  *log.Logger
	Debug   bool
}

func (n *Serve) Do(ctx context.Context) error {
	if !n.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	srv := &api.Server{
		Service:     n.Service,
		Permissions: &notify.Stored{Store: n.Service.Store},
		Logger:      n.Logger,
	}
	return srv.Run(ctx, n.Addr)
}
