package register_test

import (
	"errors"
	"testing"
	"time"

	"github.com/codeninja55/rudicom/dicom"
	"github.com/codeninja55/rudicom/dicom/element"
	"github.com/codeninja55/rudicom/dicom/tag"
	"github.com/codeninja55/rudicom/dicom/uid"
	"github.com/codeninja55/rudicom/dicom/value"
	"github.com/codeninja55/rudicom/dicom/vr"
	"github.com/codeninja55/rudicom/internal/catalog"
	"github.com/codeninja55/rudicom/internal/filestore"
	"github.com/codeninja55/rudicom/internal/identity"
	"github.com/codeninja55/rudicom/internal/register"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDataSet(t *testing.T, patientID, studyUID, seriesUID, instanceUID, seriesDescription string) *dicom.DataSet {
	t.Helper()
	ds := dicom.NewDataSet()

	add := func(tg tag.Tag, v vr.VR, vals []string) {
		sv, err := value.NewStringValue(v, vals)
		require.NoError(t, err)
		elem, err := element.NewElement(tg, v, sv)
		require.NoError(t, err)
		require.NoError(t, ds.Add(elem))
	}

	add(tag.PatientID, vr.LongString, []string{patientID})
	add(tag.StudyInstanceUID, vr.UniqueIdentifier, []string{studyUID})
	add(tag.SeriesInstanceUID, vr.UniqueIdentifier, []string{seriesUID})
	add(tag.SOPInstanceUID, vr.UniqueIdentifier, []string{instanceUID})
	add(tag.SOPClassUID, vr.UniqueIdentifier, []string{uid.SecondaryCaptureImageStorage.String()})
	add(tag.SeriesDescription, vr.LongString, []string{seriesDescription})
	return ds
}

func newPipeline(t *testing.T) *register.Pipeline {
	t.Helper()
	c, err := catalog.New()
	require.NoError(t, err)
	store, err := filestore.New(t.TempDir())
	require.NoError(t, err)

	tags := register.TagSet{
		Study:    []tag.Tag{tag.PatientID},
		Series:   []tag.Tag{tag.SeriesDescription},
		Instance: []tag.Tag{tag.SOPClassUID},
	}
	return register.New(c, store, tags, "{PatientID}/{StudyInstanceUID}/{SeriesInstanceUID}/{SOPInstanceUID}.dcm")
}

func TestRegister_NewInstance_Stores(t *testing.T) {
	p := newPipeline(t)
	ds := sampleDataSet(t, "P1", "1.2.3", "1.2.3.1", "1.2.3.1.1", "CT chest")

	res, err := p.Register(ds, []byte("raw-bytes"), nil)
	require.NoError(t, err)
	assert.Equal(t, register.Stored, res.Outcome)

	inst, err := p.Catalog.GetInstance(res.InstanceID)
	require.NoError(t, err)
	assert.Equal(t, "1.2.3.1.1", inst.UID)
	assert.NotEmpty(t, inst.File.Path)
	assert.NotEmpty(t, inst.File.MD5)
	assert.FileExists(t, inst.File.Path)
}

func TestRegister_SameObjectTwice_IsAlreadyStored(t *testing.T) {
	p := newPipeline(t)
	ds := sampleDataSet(t, "P1", "1.2.3", "1.2.3.1", "1.2.3.1.1", "CT chest")

	_, err := p.Register(ds, []byte("raw-bytes"), nil)
	require.NoError(t, err)

	res, err := p.Register(ds, []byte("raw-bytes"), nil)
	require.NoError(t, err)
	assert.Equal(t, register.AlreadyStored, res.Outcome)
}

func TestRegister_CollidingPatternDifferentContent_IsMd5Conflict(t *testing.T) {
	c, err := catalog.New()
	require.NoError(t, err)
	store, err := filestore.New(t.TempDir())
	require.NoError(t, err)
	tags := register.TagSet{
		Study:    []tag.Tag{tag.PatientID},
		Series:   []tag.Tag{tag.SeriesDescription},
		Instance: []tag.Tag{tag.SOPClassUID},
	}
	// Deliberately omits {SOPInstanceUID}: every instance in this series
	// derives the same path, forcing the exclusive-create race spec.md
	// §4.5's concurrency contract describes.
	p := register.New(c, store, tags, "{PatientID}/{StudyInstanceUID}/{SeriesInstanceUID}.dcm")

	ds1 := sampleDataSet(t, "P1", "1.2.3", "1.2.3.1", "1.2.3.1.1", "CT chest")
	_, err = p.Register(ds1, []byte("raw-1"), nil)
	require.NoError(t, err)

	ds2 := sampleDataSet(t, "P1", "1.2.3", "1.2.3.1", "1.2.3.1.2", "CT chest")
	_, err = p.Register(ds2, []byte("raw-2"), nil)
	var conflict *register.Md5ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.NotEqual(t, conflict.ExistingMD5, conflict.IncomingMD5)

	// The losing instance's row must not survive: the guard rolls it back
	// asynchronously (see Guard.Run), so poll rather than assert instantly.
	lostID, err := identity.FromInstance("1.2.3.1.2", "1.2.3.1", "1.2.3")
	require.NoError(t, err)
	assert.Eventually(t, func() bool {
		_, err := c.GetInstance(lostID)
		return errors.Is(err, catalog.ErrNotFound)
	}, time.Second, 5*time.Millisecond)
}

func TestRegister_SameInstanceDifferentTags_IsDataConflict(t *testing.T) {
	p := newPipeline(t)
	ds1 := sampleDataSet(t, "P1", "1.2.3", "1.2.3.1", "1.2.3.1.1", "CT chest")
	_, err := p.Register(ds1, []byte("raw-1"), nil)
	require.NoError(t, err)

	ds2 := sampleDataSet(t, "P1", "1.2.3", "1.2.3.1", "1.2.3.1.1", "CT chest")
	elem, err := ds2.GetByKeyword("SOPClassUID")
	require.NoError(t, err)
	sv, err := value.NewStringValue(vr.UniqueIdentifier, []string{uid.MRImageStorage.String()})
	require.NoError(t, err)
	conflicting, err := element.NewElement(elem.Tag(), elem.VR(), sv)
	require.NoError(t, err)
	require.NoError(t, ds2.Add(conflicting))

	_, err = p.Register(ds2, []byte("raw-2"), nil)
	var conflict *register.DataConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "instance", conflict.Level)
}

func TestRegister_SecondSeriesInSameStudy_InsertsBoth(t *testing.T) {
	p := newPipeline(t)
	ds1 := sampleDataSet(t, "P1", "1.2.3", "1.2.3.1", "1.2.3.1.1", "CT chest")
	_, err := p.Register(ds1, []byte("raw-1"), nil)
	require.NoError(t, err)

	ds2 := sampleDataSet(t, "P1", "1.2.3", "1.2.3.2", "1.2.3.2.1", "CT abdomen")
	res, err := p.Register(ds2, []byte("raw-2"), nil)
	require.NoError(t, err)
	assert.Equal(t, register.Stored, res.Outcome)

	study, err := p.Catalog.SeriesOfStudy("1.2.3")
	require.NoError(t, err)
	assert.Len(t, study, 2)

	studyID, err := identity.FromStudy("1.2.3")
	require.NoError(t, err)
	agg, err := p.Catalog.InstancesPerStudy(studyID)
	require.NoError(t, err)
	assert.Equal(t, 2, agg.Count)
}

func TestRegister_ConflictingSeriesDescription_IsDataConflict(t *testing.T) {
	p := newPipeline(t)
	ds1 := sampleDataSet(t, "P1", "1.2.3", "1.2.3.1", "1.2.3.1.1", "CT chest")
	_, err := p.Register(ds1, []byte("raw-1"), nil)
	require.NoError(t, err)

	ds2 := sampleDataSet(t, "P1", "1.2.3", "1.2.3.1", "1.2.3.1.2", "CT chest with contrast")
	_, err = p.Register(ds2, []byte("raw-2"), nil)
	var conflict *register.DataConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "series", conflict.Level)
}

func TestRegister_RequiredUIDMissing_Errors(t *testing.T) {
	p := newPipeline(t)
	ds := dicom.NewDataSet()

	_, err := p.Register(ds, []byte("raw"), nil)
	assert.Error(t, err)
	var conflict *register.DataConflictError
	assert.False(t, errors.As(err, &conflict))
}
