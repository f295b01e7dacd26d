// Package cli implements the rudicom root command: global flags shared by
// every subcommand, logger setup, and the service bootstrap (config load,
// catalog construction/snapshot restore, file store, registration
// pipeline) each subcommand needs.
//
// Grounded on the teacher's cmd/radx/internal/cli.CLI/Run shape (a Kong
// root struct embedding a GlobalConfig, parsed once in Run), generalized
// from radx's DICOM-utility command set to rudicom's server/import/
// write-config set.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"github.com/codeninja55/rudicom/cmd/rudicom/internal/build"
	"github.com/codeninja55/rudicom/cmd/rudicom/internal/commands"
)

const (
	appName        = "rudicom"
	appDescription = "DICOM study/series/instance catalog and ingestion service"
)

// GlobalConfig holds the flags every subcommand shares. ConfigPath isn't
// required at this level — write-config's whole purpose is to produce a
// file that doesn't exist yet — so server/import validate its presence
// themselves via commands.Bootstrap.
type GlobalConfig struct {
	ConfigPath string `name:"config" help:"Path to the TOML configuration file"`
	Database   string `name:"database" help:"Remote catalog database host (not implemented; accepted for CLI compatibility)" xor:"backend"`
	File       string `name:"file" help:"Path to a newline-delimited JSON catalog snapshot, loaded at startup and refreshed while running" xor:"backend"`
	LogLevel   string `name:"log-level" enum:"trace,debug,info,warn,error" default:"info" help:"Minimum log level"`
}

// CLI is the root command structure.
type CLI struct {
	GlobalConfig

	WriteConfig commands.WriteConfigCmd `cmd:"" name:"write-config" help:"Write a default configuration file"`
	Server      commands.ServerCmd      `cmd:"" name:"server" help:"Run the HTTP catalog server"`
	Import      commands.ImportCmd      `cmd:"" name:"import" help:"Bulk-import DICOM files matching one or more glob patterns"`
}

// Run parses os.Args and executes the selected subcommand.
func Run(version, commit, date string) error {
	build.SetBuildInfo(version, commit, date)

	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name(appName),
		kong.Description(appDescription),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{"version": version, "commit": commit, "date": date},
	)

	logger := setupLogger(&cli.GlobalConfig)
	defer logger.Sync() //nolint:errcheck

	logger.Debug("rudicom starting", zap.String("version", version), zap.String("commit", commit))

	// write-config writes the file the --config flag would otherwise
	// point at, so it runs without a bootstrapped Services.
	if strings.HasPrefix(ctx.Command(), "write-config") {
		if err := ctx.Run(logger); err != nil {
			logger.Error("command failed", zap.Error(err))
			return err
		}
		return nil
	}

	svc, err := commands.Bootstrap(&commands.GlobalFlags{
		ConfigPath: cli.ConfigPath,
		Database:   cli.Database,
		File:       cli.File,
	}, logger)
	if err != nil {
		logger.Error("bootstrap failed", zap.Error(err))
		return err
	}

	if err := ctx.Run(svc); err != nil {
		logger.Error("command failed", zap.Error(err))
		return err
	}
	return nil
}

func setupLogger(cfg *GlobalConfig) *zap.Logger {
	zapCfg := zap.NewProductionConfig()
	switch cfg.LogLevel {
	case "trace", "debug":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "warn":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		zapCfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	logger, err := zapCfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "rudicom: logger setup failed: %v\n", err)
		os.Exit(1)
	}
	if cfg.LogLevel == "trace" {
		logger = logger.With(zap.String("level_alias", "trace"))
	}
	return logger
}
