package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/codeninja55/rudicom/internal/httpapi"
)

// snapshotInterval is how often ServerCmd rewrites the --file snapshot
// while running, as a stand-in for the literal spec of snapshotting on
// every mutation's commit (see DESIGN.md).
const snapshotInterval = 30 * time.Second

// ServerCmd runs the HTTP catalog server until interrupted.
type ServerCmd struct {
	Addr string `arg:"" optional:"" default:"127.0.0.1:3000" help:"Address to listen on"`
}

func (c *ServerCmd) Run(svc *Services) error {
	server := &httpapi.Server{
		Catalog:              svc.Catalog,
		Pipeline:             svc.Pipeline,
		Log:                  svc.Log,
		UploadSizeLimitBytes: int64(svc.Config.UploadSizeLimitMB) * 1024 * 1024,
	}

	httpServer := &http.Server{
		Addr:    c.Addr,
		Handler: httpapi.NewRouter(server),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stopSnapshots := make(chan struct{})
	if svc.SnapshotPath != "" {
		go runSnapshotLoop(ctx, svc, stopSnapshots)
	} else {
		close(stopSnapshots)
	}

	serveErr := make(chan error, 1)
	go func() {
		svc.Log.Info("listening", zap.String("addr", c.Addr))
		serveErr <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: %w", err)
		}
	case <-ctx.Done():
		svc.Log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server: shutdown: %w", err)
		}
	}

	<-stopSnapshots
	if svc.SnapshotPath != "" {
		if err := writeSnapshot(svc); err != nil {
			svc.Log.Error("final snapshot write failed", zap.Error(err))
			return err
		}
	}
	return nil
}

func runSnapshotLoop(ctx context.Context, svc *Services, done chan<- struct{}) {
	defer close(done)
	ticker := time.NewTicker(snapshotInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := writeSnapshot(svc); err != nil {
				svc.Log.Error("periodic snapshot write failed", zap.Error(err))
			}
		}
	}
}

func writeSnapshot(svc *Services) error {
	tmp := svc.SnapshotPath + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("commands: create snapshot temp file: %w", err)
	}
	if err := svc.Catalog.WriteSnapshot(f); err != nil {
		f.Close()
		return fmt.Errorf("commands: write snapshot: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("commands: close snapshot temp file: %w", err)
	}
	if err := os.Rename(tmp, svc.SnapshotPath); err != nil {
		return fmt.Errorf("commands: install snapshot: %w", err)
	}
	return nil
}
