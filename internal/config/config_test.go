package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/codeninja55/rudicom/dicom/tag"
	"github.com/codeninja55/rudicom/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, storagePath string, extra string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "rudicom.toml")
	body := "storage_path = \"" + storagePath + "\"\n" + extra
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_AppliesDefaultsForOmittedKeys(t *testing.T) {
	cfgPath := writeConfigFile(t, t.TempDir(), "")
	cfg, err := config.Load(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.UploadSizeLimitMB)
	assert.Equal(t, 32, cfg.MaxThreads)
	assert.NotEmpty(t, cfg.FilenamePattern)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	cfgPath := writeConfigFile(t, t.TempDir(), "max_threads = 8\nupload_sizelimit_mb = 50\n")
	cfg, err := config.Load(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.MaxThreads)
	assert.Equal(t, 50, cfg.UploadSizeLimitMB)
}

func TestLoad_RelativeStoragePath_Rejected(t *testing.T) {
	cfgPath := writeConfigFile(t, "relative/path", "")
	_, err := config.Load(cfgPath)
	assert.Error(t, err)
}

func TestLoad_MissingStorageDir_Rejected(t *testing.T) {
	cfgPath := writeConfigFile(t, filepath.Join(t.TempDir(), "does-not-exist"), "")
	_, err := config.Load(cfgPath)
	assert.Error(t, err)
}

func TestLoad_UnknownTagName_Rejected(t *testing.T) {
	cfgPath := writeConfigFile(t, t.TempDir(), "study_tags = [\"NotARealTagName\"]\n")
	_, err := config.Load(cfgPath)
	assert.Error(t, err)
}

func TestParseTagName_ResolvesKeywordAndLiteral(t *testing.T) {
	got, err := config.ParseTagName("PatientID")
	require.NoError(t, err)
	assert.Equal(t, tag.PatientID, got)

	got, err = config.ParseTagName("(0010,0020)")
	require.NoError(t, err)
	assert.Equal(t, tag.PatientID, got)
}

func TestStudyTagList_AlwaysIncludesMandatoryTags(t *testing.T) {
	cfg := config.Default()
	cfg.StudyTags = []string{"PatientID"} // deliberate duplicate of a mandatory tag
	tags, err := cfg.StudyTagList()
	require.NoError(t, err)
	assert.Contains(t, tags, tag.PatientID)
	assert.Contains(t, tags, tag.StudyDate)
	assert.Contains(t, tags, tag.StudyTime)
	// Deduplicated: PatientID must appear exactly once despite being both
	// mandatory and explicitly configured.
	count := 0
	for _, tg := range tags {
		if tg == tag.PatientID {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestCurrent_ReflectsLastSet(t *testing.T) {
	cfg := config.Default()
	cfg.StoragePath = t.TempDir()
	config.Set(cfg)
	assert.Same(t, cfg, config.Current())
}
