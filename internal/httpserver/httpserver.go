package httpserver

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// Run maps handlers, starts the background services and the HTTP listener,
// then blocks until a shutdown signal arrives.
func (srv *HTTPServer) Run() error {
	ctx := context.Background()

	if err := srv.mapHandlers(); err != nil {
		srv.l.Errorf(ctx, "httpserver.Run.mapHandlers: %v", err)
		return err
	}

	// Hub loop.
	go srv.wsUC.Run()
	srv.l.Info(ctx, "websocket hub started")

	if srv.wsSubscriber != nil {
		if err := srv.wsSubscriber.Start(); err != nil {
			srv.l.Errorf(ctx, "httpserver.Run.wsSubscriber: %v", err)
			return err
		}
	}

	if srv.archiver != nil {
		if err := srv.archiver.Start(ctx); err != nil {
			srv.l.Errorf(ctx, "httpserver.Run.archiver: %v", err)
			return err
		}
	}

	httpSrv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", srv.host, srv.port),
		Handler: srv.gin,
	}

	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			srv.l.Errorf(ctx, "httpserver.Run.ListenAndServe: %v", err)
		}
	}()

	srv.l.Infof(ctx, "HTTP server started on %s:%d", srv.host, srv.port)

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	srv.l.Infof(ctx, "received signal %s, shutting down", sig)

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		srv.l.Errorf(ctx, "httpserver.Run.Shutdown: %v", err)
	}

	if srv.archiver != nil {
		if err := srv.archiver.Stop(shutdownCtx); err != nil {
			srv.l.Errorf(ctx, "httpserver.Run.archiver.Stop: %v", err)
		}
	}
	if srv.wsSubscriber != nil {
		if err := srv.wsSubscriber.Shutdown(shutdownCtx); err != nil {
			srv.l.Errorf(ctx, "httpserver.Run.wsSubscriber.Shutdown: %v", err)
		}
	}
	if err := srv.wsUC.Shutdown(shutdownCtx); err != nil {
		srv.l.Errorf(ctx, "httpserver.Run.wsUC.Shutdown: %v", err)
	}

	return nil
}
