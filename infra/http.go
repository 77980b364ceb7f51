package infra

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/cloudcopper/bytesize/ports"
)

type WebServer struct {
	log     ports.Logger
	srv     *http.Server
	addr    net.Addr
	closeWg sync.WaitGroup
}

func NewWebServer(log ports.Logger, addr string, handler http.Handler) (*WebServer, error) {
	log = log.With(slog.String("entity", "WebServer"))

	l, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}

	s := &WebServer{
		log:  log,
		srv:  &http.Server{Handler: handler, ReadHeaderTimeout: 10 * time.Second},
		addr: l.Addr(),
	}

	s.closeWg.Add(1)
	go func() {
		defer s.closeWg.Done()
		log.Info("started", slog.String("addr", s.addr.String()))
		defer log.Warn("complete")
		defer l.Close()
		err := s.srv.Serve(l)
		if err != nil && err != http.ErrServerClosed {
			log.Error("serve error", slog.Any("err", err))
		}
	}()

	return s, nil
}

// Addr returns actual listen address, useful with port 0
func (s *WebServer) Addr() net.Addr {
	return s.addr
}

func (s *WebServer) Close() {
	s.log.Info("closing")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.srv.Shutdown(ctx); err != nil {
		s.log.Error("shutdown error", slog.Any("err", err))
	}
	s.closeWg.Wait()
	s.srv = nil
}
