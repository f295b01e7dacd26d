// Package config loads and validates the process-wide TOML configuration
// and exposes it behind a read-after-startup atomic singleton: initialized
// once at startup, read-only thereafter, per spec.md §5's configuration
// ordering guarantee.
//
// Grounded on spec.md §6's config file contract; the TOML-decode plus
// struct-tag validation shape pairs pelletier/go-toml/v2 with
// go-playground/validator/v10, both drawn from the pack's go.mod surface.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"

	"github.com/codeninja55/rudicom/dicom/tag"
)

// Config is the process-wide configuration loaded once at startup from a
// TOML file and never mutated afterward.
type Config struct {
	StudyTags    []string `toml:"study_tags"`
	SeriesTags   []string `toml:"series_tags"`
	InstanceTags []string `toml:"instance_tags"`

	FilenamePattern string `toml:"filename_pattern" validate:"required"`
	StoragePath     string `toml:"storage_path" validate:"required"`

	UploadSizeLimitMB int `toml:"upload_sizelimit_mb" validate:"gt=0"`
	MaxThreads        int `toml:"max_threads" validate:"gt=0"`

	// Database and File name the catalog's durability backend and are
	// mutually exclusive; leaving both empty selects the in-memory-only
	// default. Database is accepted for forward compatibility but is not
	// implemented by this build (see internal/catalog's snapshot-based
	// File backend).
	Database string `toml:"database" validate:"omitempty,excluded_with=File"`
	File     string `toml:"file" validate:"omitempty,excluded_with=Database"`
}

// Default returns a Config carrying spec.md §6's documented defaults for
// every key a file may omit.
func Default() *Config {
	return &Config{
		FilenamePattern:   "{PatientID}/{StudyInstanceUID}/{SeriesInstanceUID}/{SOPInstanceUID}.dcm",
		UploadSizeLimitMB: 100,
		MaxThreads:        32,
	}
}

var validate = validator.New()

// Load reads and validates the TOML file at path, overlaying its keys on
// Default's.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg := Default()
	if err := toml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the constraints struct tags can't express: storage_path
// must be an absolute, already-existing directory (spec.md §6), and every
// configured tag name must resolve to a known DICOM tag.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if !filepath.IsAbs(c.StoragePath) {
		return fmt.Errorf("config: storage_path %q must be absolute", c.StoragePath)
	}
	info, err := os.Stat(c.StoragePath)
	if err != nil {
		return fmt.Errorf("config: storage_path %q: %w", c.StoragePath, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("config: storage_path %q is not a directory", c.StoragePath)
	}
	for _, group := range [][]string{c.StudyTags, c.SeriesTags, c.InstanceTags} {
		for _, name := range group {
			if _, err := ParseTagName(name); err != nil {
				return fmt.Errorf("config: %w", err)
			}
		}
	}
	return nil
}

// StudyTagList, SeriesTagList, and InstanceTagList resolve the configured
// tag names, together with the tags spec.md §6 always extracts regardless
// of configuration, into deduplicated tag.Tag slices suitable for
// internal/register.TagSet.
func (c *Config) StudyTagList() ([]tag.Tag, error) {
	return resolveTags(append([]string{"PatientID", "StudyDate", "StudyTime"}, c.StudyTags...))
}

func (c *Config) SeriesTagList() ([]tag.Tag, error) {
	return resolveTags(append([]string{"SeriesDescription", "SeriesNumber"}, c.SeriesTags...))
}

func (c *Config) InstanceTagList() ([]tag.Tag, error) {
	return resolveTags(append([]string{"InstanceNumber"}, c.InstanceTags...))
}

func resolveTags(names []string) ([]tag.Tag, error) {
	seen := make(map[tag.Tag]struct{}, len(names))
	tags := make([]tag.Tag, 0, len(names))
	for _, name := range names {
		t, err := ParseTagName(name)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		tags = append(tags, t)
	}
	return tags, nil
}

// ParseTagName resolves a DICOM tag name as either a dictionary keyword
// ("PatientID") or a literal "(gggg,eeee)" group/element pair.
func ParseTagName(name string) (tag.Tag, error) {
	if strings.HasPrefix(strings.TrimSpace(name), "(") {
		return tag.Parse(name)
	}
	info, err := tag.FindByKeyword(name)
	if err != nil {
		return tag.Tag{}, fmt.Errorf("unknown tag %q: %w", name, err)
	}
	return info.Tag, nil
}

var current atomic.Pointer[Config]

// Set installs cfg as the process-wide configuration singleton. Intended
// to be called once at startup after Load succeeds.
func Set(cfg *Config) {
	current.Store(cfg)
}

// Current returns the installed configuration, or nil if Set has not been
// called yet.
func Current() *Config {
	return current.Load()
}
