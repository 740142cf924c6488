package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/campusdesk/registry-api/internal/config"
	"github.com/campusdesk/registry-api/internal/server"
	"github.com/campusdesk/registry-api/internal/store"
)

func main() {
	cfg := config.Load()

	if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(lvl)
	}

	// A broken database connection is not fatal: the server keeps
	// answering, persistence operations fail per-request.
	st, err := store.NewGormStore(cfg)
	if err != nil {
		logrus.WithError(err).Error("database unavailable, serving without persistence")
		st = store.NewDetached(cfg)
	}
	defer st.Close()

	srv := server.NewServer(cfg, st).NewHTTPServer()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-stop
		logrus.Info("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}()

	logrus.Infof("listening on %s", cfg.BindAddr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logrus.Fatalf("server failed: %v", err)
	}
}
