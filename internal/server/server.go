package server

import (
	"context"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/logview/rangeserve/internal/config"
)

// Server serves static files from a root directory over HTTP, answering
// byte-range requests with 206 Partial Content and decorating every response
// with permissive CORS headers. Requests the range handler does not claim
// are delegated to the standard library file server.
type Server struct {
	addr   string
	root   string
	static http.Handler
}

func New(cfg config.Config) *Server {
	return &Server{
		addr:   cfg.Addr(),
		root:   cfg.Root,
		static: http.FileServer(http.Dir(cfg.Root)),
	}
}

// Run serves until ctx is canceled, then shuts the listener down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{Addr: s.addr, Handler: s}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Infof("Listening on %s, serving %s", s.addr, s.root)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
