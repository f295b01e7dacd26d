package httpapi_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/codeninja55/rudicom/dicom"
	"github.com/codeninja55/rudicom/dicom/element"
	"github.com/codeninja55/rudicom/dicom/tag"
	"github.com/codeninja55/rudicom/dicom/uid"
	"github.com/codeninja55/rudicom/dicom/value"
	"github.com/codeninja55/rudicom/dicom/vr"
	"github.com/codeninja55/rudicom/internal/catalog"
	"github.com/codeninja55/rudicom/internal/filestore"
	"github.com/codeninja55/rudicom/internal/httpapi"
	"github.com/codeninja55/rudicom/internal/register"
)

func sampleFile(t *testing.T, patientID, studyUID, seriesUID, instanceUID, seriesDescription string) []byte {
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

	encoded, err := dicom.EncodeFile(ds, dicom.WriteOptions{})
	require.NoError(t, err)
	return encoded
}

func newTestServer(t *testing.T) (*httptest.Server, *httpapi.Server) {
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
	pipeline := register.New(c, store, tags, "{PatientID}/{StudyInstanceUID}/{SeriesInstanceUID}/{SOPInstanceUID}.dcm")

	s := &httpapi.Server{
		Catalog:  c,
		Pipeline: pipeline,
		Log:      zap.NewNop(),
	}
	return httptest.NewServer(httpapi.NewRouter(s)), s
}

func TestHTTPAPI_CreateGetDeleteRoundTrip(t *testing.T) {
	srv, _ := newTestServer(t)
	defer srv.Close()
	client := srv.Client()

	body := sampleFile(t, "P1", "1.2.3", "1.2.3.1", "1.2.3.1.1", "CT chest")

	resp, err := client.Post(srv.URL+"/instances", "application/dicom", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	id := created["id"]
	require.NotEmpty(t, id)

	// Re-posting the identical object is 302 AlreadyStored, not a new row.
	resp2, err := client.Post(srv.URL+"/instances", "application/dicom", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp2.Body.Close()
	require.Equal(t, http.StatusFound, resp2.StatusCode)

	getResp, err := client.Get(srv.URL + "/instances/" + id + "/")
	require.NoError(t, err)
	defer getResp.Body.Close()
	require.Equal(t, http.StatusOK, getResp.StatusCode)
	var view map[string]any
	require.NoError(t, json.NewDecoder(getResp.Body).Decode(&view))
	require.Equal(t, "1.2.3.1.1", view["uid"])

	statsResp, err := client.Get(srv.URL + "/statistics")
	require.NoError(t, err)
	defer statsResp.Body.Close()
	require.Equal(t, http.StatusOK, statsResp.StatusCode)
	var stats map[string]any
	require.NoError(t, json.NewDecoder(statsResp.Body).Decode(&stats))
	require.EqualValues(t, 1, stats["studies"])
	require.EqualValues(t, 1, stats["instances"])

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/instances/"+id+"/", nil)
	require.NoError(t, err)
	delResp, err := client.Do(req)
	require.NoError(t, err)
	defer delResp.Body.Close()
	require.Equal(t, http.StatusOK, delResp.StatusCode)

	notFoundResp, err := client.Get(srv.URL + "/instances/" + id + "/")
	require.NoError(t, err)
	defer notFoundResp.Body.Close()
	require.Equal(t, http.StatusNotFound, notFoundResp.StatusCode)
}

func TestHTTPAPI_Info_ReturnsEmptyWithoutConfig(t *testing.T) {
	srv, _ := newTestServer(t)
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL + "/info")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}
