package importer_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/codeninja55/rudicom/dicom"
	"github.com/codeninja55/rudicom/dicom/element"
	"github.com/codeninja55/rudicom/dicom/tag"
	"github.com/codeninja55/rudicom/dicom/uid"
	"github.com/codeninja55/rudicom/dicom/value"
	"github.com/codeninja55/rudicom/dicom/vr"
	"github.com/codeninja55/rudicom/internal/catalog"
	"github.com/codeninja55/rudicom/internal/filestore"
	"github.com/codeninja55/rudicom/internal/importer"
	"github.com/codeninja55/rudicom/internal/register"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDataSet(t *testing.T, studyUID, seriesUID, instanceUID string) *dicom.DataSet {
	t.Helper()
	ds := dicom.NewDataSet()
	add := func(tg tag.Tag, v vr.VR, vals []string) {
		sv, err := value.NewStringValue(v, vals)
		require.NoError(t, err)
		elem, err := element.NewElement(tg, v, sv)
		require.NoError(t, err)
		require.NoError(t, ds.Add(elem))
	}
	add(tag.PatientID, vr.LongString, []string{"P1"})
	add(tag.StudyInstanceUID, vr.UniqueIdentifier, []string{studyUID})
	add(tag.SeriesInstanceUID, vr.UniqueIdentifier, []string{seriesUID})
	add(tag.SOPInstanceUID, vr.UniqueIdentifier, []string{instanceUID})
	add(tag.SOPClassUID, vr.UniqueIdentifier, []string{uid.SecondaryCaptureImageStorage.String()})
	return ds
}

func writeSourceFile(t *testing.T, dir string, ds *dicom.DataSet, name string) string {
	t.Helper()
	encoded, err := dicom.EncodeFile(ds, dicom.WriteOptions{})
	require.NoError(t, err)
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, encoded, 0o644))
	return path
}

func newPipeline(t *testing.T) *register.Pipeline {
	t.Helper()
	c, err := catalog.New()
	require.NoError(t, err)
	store, err := filestore.New(t.TempDir())
	require.NoError(t, err)
	tags := register.TagSet{Instance: []tag.Tag{tag.SOPClassUID}}
	return register.New(c, store, tags, "{PatientID}/{StudyInstanceUID}/{SeriesInstanceUID}/{SOPInstanceUID}.dcm")
}

func drain(ch <-chan importer.ImportResult) []importer.ImportResult {
	var out []importer.ImportResult
	for r := range ch {
		out = append(out, r)
	}
	return out
}

func TestRun_EmptyGlob_ReturnsNoMatchesError(t *testing.T) {
	p := newPipeline(t)
	_, err := importer.Run(p, importer.Options{Patterns: []string{filepath.Join(t.TempDir(), "*.dcm")}})
	var noMatches *importer.ErrNoMatches
	require.ErrorAs(t, err, &noMatches)
}

func TestRun_ImportMode_RegistersWithoutMovingFile(t *testing.T) {
	p := newPipeline(t)
	srcDir := t.TempDir()
	path := writeSourceFile(t, srcDir, sampleDataSet(t, "1.2.3", "1.2.3.1", "1.2.3.1.1"), "a.dcm")

	ch, err := importer.Run(p, importer.Options{
		Patterns:     []string{filepath.Join(srcDir, "*.dcm")},
		Mode:         importer.Import,
		EchoImported: true,
	})
	require.NoError(t, err)
	results := drain(ch)
	require.Len(t, results, 1)
	assert.Equal(t, importer.Registered, results[0].Kind)
	assert.Equal(t, path, results[0].Path)

	inst, err := p.Catalog.GetInstance(results[0].InstanceID)
	require.NoError(t, err)
	assert.False(t, inst.File.Owned)
	assert.Equal(t, path, inst.File.Path)
	assert.FileExists(t, path)
}

func TestRun_StoreMode_WritesBeneathFileStoreRoot(t *testing.T) {
	p := newPipeline(t)
	srcDir := t.TempDir()
	path := writeSourceFile(t, srcDir, sampleDataSet(t, "1.2.3", "1.2.3.1", "1.2.3.1.1"), "a.dcm")

	ch, err := importer.Run(p, importer.Options{
		Patterns:     []string{filepath.Join(srcDir, "*.dcm")},
		Mode:         importer.Store,
		EchoImported: true,
	})
	require.NoError(t, err)
	results := drain(ch)
	require.Len(t, results, 1)

	inst, err := p.Catalog.GetInstance(results[0].InstanceID)
	require.NoError(t, err)
	assert.True(t, inst.File.Owned)
	assert.NotEqual(t, path, inst.File.Path)
	assert.FileExists(t, inst.File.Path)
}

func TestRun_SecondImportOfSameFile_IsExisted(t *testing.T) {
	p := newPipeline(t)
	srcDir := t.TempDir()
	writeSourceFile(t, srcDir, sampleDataSet(t, "1.2.3", "1.2.3.1", "1.2.3.1.1"), "a.dcm")

	firstCh, err := importer.Run(p, importer.Options{Patterns: []string{filepath.Join(srcDir, "*.dcm")}, Mode: importer.Import})
	require.NoError(t, err)
	drain(firstCh)

	ch, err := importer.Run(p, importer.Options{
		Patterns:     []string{filepath.Join(srcDir, "*.dcm")},
		Mode:         importer.Import,
		EchoExisting: true,
	})
	require.NoError(t, err)
	results := drain(ch)
	require.Len(t, results, 1)
	assert.Equal(t, importer.Existed, results[0].Kind)
}

func TestRun_EchoFlags_SuppressRegisteredAndExisted(t *testing.T) {
	p := newPipeline(t)
	srcDir := t.TempDir()
	writeSourceFile(t, srcDir, sampleDataSet(t, "1.2.3", "1.2.3.1", "1.2.3.1.1"), "a.dcm")

	ch, err := importer.Run(p, importer.Options{
		Patterns: []string{filepath.Join(srcDir, "*.dcm")},
		Mode:     importer.Import,
		// EchoImported and EchoExisting both left false.
	})
	require.NoError(t, err)
	assert.Empty(t, drain(ch))
}

func TestRun_CorruptFile_EmitsErrRegardlessOfEchoFlags(t *testing.T) {
	p := newPipeline(t)
	srcDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "bad.dcm"), []byte("not a dicom file"), 0o644))

	ch, err := importer.Run(p, importer.Options{Patterns: []string{filepath.Join(srcDir, "*.dcm")}, Mode: importer.Import})
	require.NoError(t, err)
	results := drain(ch)
	require.Len(t, results, 1)
	assert.Equal(t, importer.Err, results[0].Kind)
	assert.Error(t, results[0].Cause)
}

func TestRun_CollidingPathsAcrossManyFiles_ReportExistedConflict(t *testing.T) {
	c, err := catalog.New()
	require.NoError(t, err)
	store, err := filestore.New(t.TempDir())
	require.NoError(t, err)
	tags := register.TagSet{Instance: []tag.Tag{tag.SOPClassUID}}
	// Pattern omits {SOPInstanceUID}: every instance in the series collides
	// on the same store path, forcing the path-conflict race.
	p := register.New(c, store, tags, "{PatientID}/{StudyInstanceUID}/{SeriesInstanceUID}.dcm")

	srcDir := t.TempDir()
	writeSourceFile(t, srcDir, sampleDataSet(t, "1.2.3", "1.2.3.1", "1.2.3.1.1"), "a.dcm")
	writeSourceFile(t, srcDir, sampleDataSet(t, "1.2.3", "1.2.3.1", "1.2.3.1.2"), "b.dcm")

	ch, err := importer.Run(p, importer.Options{
		Patterns:     []string{filepath.Join(srcDir, "*.dcm")},
		Mode:         importer.Store,
		Workers:      1, // serialize: deterministic winner/loser
		EchoImported: true,
	})
	require.NoError(t, err)
	results := drain(ch)
	require.Len(t, results, 2)

	var kinds []importer.Kind
	for _, r := range results {
		kinds = append(kinds, r.Kind)
	}
	assert.Contains(t, kinds, importer.Registered)
	assert.Contains(t, kinds, importer.ExistedConflict)
}
