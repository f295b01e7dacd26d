package commands

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"

	"github.com/codeninja55/rudicom/internal/config"
)

// WriteConfigCmd writes config.Default() as TOML to Path, failing if Path
// already exists (callers edit the existing file directly rather than
// risk this command silently clobbering it).
type WriteConfigCmd struct {
	Path string `arg:"" help:"Destination path for the new configuration file"`
}

func (c *WriteConfigCmd) Run(logger *zap.Logger) error {
	if _, err := os.Stat(c.Path); err == nil {
		return fmt.Errorf("write-config: %s already exists", c.Path)
	}

	data, err := toml.Marshal(config.Default())
	if err != nil {
		return fmt.Errorf("write-config: marshal defaults: %w", err)
	}
	if err := os.WriteFile(c.Path, data, 0o644); err != nil {
		return fmt.Errorf("write-config: %w", err)
	}

	logger.Info("wrote default configuration", zap.String("path", c.Path))
	return nil
}
