// Package commands implements the rudicom subcommands (write-config,
// server, import) and the service bootstrap shared by server/import:
// config load, catalog construction (fresh, or restored from a snapshot
// file), file store, and registration pipeline.
package commands

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/codeninja55/rudicom/internal/catalog"
	"github.com/codeninja55/rudicom/internal/config"
	"github.com/codeninja55/rudicom/internal/filestore"
	"github.com/codeninja55/rudicom/internal/register"
)

// GlobalFlags carries the root CLI's global flags into Bootstrap, without
// cmd/rudicom/internal/commands depending on the cli package (which itself
// depends on commands).
type GlobalFlags struct {
	ConfigPath string
	Database   string
	File       string
}

// Services bundles the dependencies server and import subcommands share.
type Services struct {
	Config   *config.Config
	Catalog  *catalog.Catalog
	Store    *filestore.Store
	Pipeline *register.Pipeline
	Log      *zap.Logger

	// SnapshotPath is the --file path, or "" if no snapshot backend was
	// configured. Server periodically rewrites the snapshot here.
	SnapshotPath string
}

// Bootstrap loads the config file, constructs the catalog (restoring it
// from SnapshotPath if given and present), and wires the file store and
// registration pipeline. It does not itself start the HTTP server or any
// import run — both subcommands call this first and then use the
// resulting Services.
func Bootstrap(flags *GlobalFlags, logger *zap.Logger) (*Services, error) {
	if flags.Database != "" {
		return nil, fmt.Errorf("commands: --database is not implemented in this build; use --file or the in-memory default")
	}

	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		return nil, err
	}
	config.Set(cfg)

	store, err := filestore.New(cfg.StoragePath)
	if err != nil {
		return nil, err
	}

	cat, err := loadOrCreateCatalog(flags.File, logger)
	if err != nil {
		return nil, err
	}

	studyTags, err := cfg.StudyTagList()
	if err != nil {
		return nil, err
	}
	seriesTags, err := cfg.SeriesTagList()
	if err != nil {
		return nil, err
	}
	instanceTags, err := cfg.InstanceTagList()
	if err != nil {
		return nil, err
	}
	tags := register.TagSet{Study: studyTags, Series: seriesTags, Instance: instanceTags}

	pipeline := register.New(cat, store, tags, cfg.FilenamePattern)

	return &Services{
		Config:       cfg,
		Catalog:      cat,
		Store:        store,
		Pipeline:     pipeline,
		Log:          logger,
		SnapshotPath: flags.File,
	}, nil
}

func loadOrCreateCatalog(snapshotPath string, logger *zap.Logger) (*catalog.Catalog, error) {
	if snapshotPath == "" {
		return catalog.New()
	}

	f, err := os.Open(snapshotPath)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Info("no existing snapshot, starting with an empty catalog", zap.String("path", snapshotPath))
			return catalog.New()
		}
		return nil, fmt.Errorf("commands: open snapshot %s: %w", snapshotPath, err)
	}
	defer f.Close()

	cat, err := catalog.LoadSnapshot(f)
	if err != nil {
		return nil, fmt.Errorf("commands: restore snapshot %s: %w", snapshotPath, err)
	}
	logger.Info("restored catalog from snapshot", zap.String("path", snapshotPath))
	return cat, nil
}
