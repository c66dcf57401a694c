package server

import (
	"context"
	"time"

	v1 "starfall/api/game/v1"
	"starfall/internal/conf"
	"starfall/internal/service"

	"github.com/yola1107/kratos/v2/log"
	"github.com/yola1107/kratos/v2/middleware/recovery"
	"github.com/yola1107/kratos/v2/transport/http"
)

// NewHTTPServer new an HTTP server.
func NewHTTPServer(c *conf.Server, game *service.GameService, logger log.Logger) *http.Server {
	var opts = []http.ServerOption{
		http.Middleware(
			recovery.Recovery(),
		),
	}
	if c.Http.Network != "" {
		opts = append(opts, http.Network(c.Http.Network))
	}
	if c.Http.Addr != "" {
		opts = append(opts, http.Address(c.Http.Addr))
	}
	opts = append(opts, http.Timeout(parseTimeout(c.Http.Timeout, time.Second)))

	srv := http.NewServer(opts...)
	registerGameRoutes(srv, game)
	return srv
}

// registerGameRoutes wires the /v1 game routes by hand; request and reply
// bodies are the JSON contracts in api/game/v1.
func registerGameRoutes(srv *http.Server, game *service.GameService) {
	r := srv.Route("/v1")

	r.POST("/spin", func(ctx http.Context) error {
		var in v1.SpinRequest
		if err := ctx.Bind(&in); err != nil {
			return err
		}
		h := ctx.Middleware(func(c context.Context, req any) (any, error) {
			return game.Spin(c, req.(*v1.SpinRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(200, out)
	})

	r.POST("/replay", func(ctx http.Context) error {
		var in v1.ReplayRequest
		if err := ctx.Bind(&in); err != nil {
			return err
		}
		h := ctx.Middleware(func(c context.Context, req any) (any, error) {
			return game.Replay(c, req.(*v1.ReplayRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(200, out)
	})

	r.GET("/profiles", func(ctx http.Context) error {
		h := ctx.Middleware(func(c context.Context, _ any) (any, error) {
			return game.Profiles(c)
		})
		out, err := h(ctx, nil)
		if err != nil {
			return err
		}
		return ctx.Result(200, out)
	})
}
