package commands

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/codeninja55/rudicom/internal/importer"
)

// ImportCmd bulk-registers files matched by one or more glob patterns.
type ImportCmd struct {
	Patterns     []string `arg:"" help:"Glob patterns naming DICOM files to import"`
	EchoExisting bool     `name:"echo-existing" help:"Include already-registered instances in the output"`
	EchoImported bool     `name:"echo-imported" help:"Include newly-registered instances in the output"`
	Store        bool     `name:"store" help:"Rewrite files at their pattern-derived path instead of leaving them in place"`
}

func (c *ImportCmd) Run(svc *Services) error {
	mode := importer.Import
	if c.Store {
		mode = importer.Store
	}

	results, err := importer.Run(svc.Pipeline, importer.Options{
		Patterns:     c.Patterns,
		Mode:         mode,
		Workers:      svc.Config.MaxThreads,
		EchoImported: c.EchoImported,
		EchoExisting: c.EchoExisting,
	})
	if err != nil {
		return err
	}

	var registered, existed, conflicts, failed int
	for res := range results {
		switch res.Kind {
		case importer.Registered:
			registered++
			svc.Log.Info("registered", zap.String("path", res.Path))
		case importer.Existed:
			existed++
			svc.Log.Debug("already registered", zap.String("path", res.Path))
		case importer.ExistedConflict:
			conflicts++
			svc.Log.Warn("md5 conflict on re-import", zap.String("path", res.Path), zap.String("incoming_md5", res.IncomingMD5))
		case importer.Err:
			failed++
			svc.Log.Error("import failed", zap.String("path", res.Path), zap.Error(res.Cause))
		}
	}

	svc.Log.Info("import complete",
		zap.Int("registered", registered), zap.Int("existed", existed),
		zap.Int("conflicts", conflicts), zap.Int("failed", failed))

	if svc.SnapshotPath != "" {
		if err := writeSnapshot(svc); err != nil {
			return fmt.Errorf("import: %w", err)
		}
	}
	if failed > 0 {
		return fmt.Errorf("import: %d file(s) failed", failed)
	}
	return nil
}
