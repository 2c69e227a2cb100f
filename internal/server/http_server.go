package server

import (
	"context"
	"net/http"
)

// httpServer abstracts net/http.Server so tests can substitute a stub.
type httpServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
	Addr() string
}

type netHTTPServer struct {
	*http.Server
}

func (s *netHTTPServer) Addr() string { return s.Server.Addr }

func newHTTPServer(addr string, handler http.Handler) httpServer {
	return &netHTTPServer{
		Server: &http.Server{
			Addr:         addr,
			Handler:      handler,
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
			IdleTimeout:  idleTimeout,
		},
	}
}
