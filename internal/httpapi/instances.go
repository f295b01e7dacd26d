package httpapi

import (
	"bytes"
	"encoding/hex"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/codeninja55/rudicom/dicom"
	"github.com/codeninja55/rudicom/internal/identity"
	"github.com/codeninja55/rudicom/internal/register"
	"github.com/codeninja55/rudicom/internal/render"
)

// handleCreateInstance serves POST /instances: the body is a single DICOM
// Part 10 file, registered through the pipeline. Outcome determines the
// status code per spec.md §6: 201 for a new instance, 302 for an
// already-identical one, 409 for either conflict shape.
func (s *Server) handleCreateInstance(w http.ResponseWriter, r *http.Request) {
	body := r.Body
	if s.UploadSizeLimitBytes > 0 {
		body = http.MaxBytesReader(w, body, s.UploadSizeLimitBytes)
	}
	raw, err := io.ReadAll(body)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	ds, err := dicom.ParseReader(bytes.NewReader(raw))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	res, err := s.Pipeline.Register(ds, raw, nil)
	if err != nil {
		var dataConflict *register.DataConflictError
		var md5Conflict *register.Md5ConflictError
		switch {
		case errors.As(err, &dataConflict):
			writeJSON(w, http.StatusConflict, map[string]any{
				"kind":  "conflicting_metadata",
				"level": dataConflict.Level,
			})
		case errors.As(err, &md5Conflict):
			writeJSON(w, http.StatusConflict, map[string]any{
				"kind":         "conflicting_md5",
				"id":           encodeID(md5Conflict.ExistingID),
				"existing_md5": md5Conflict.ExistingMD5,
				"incoming_md5": md5Conflict.IncomingMD5,
			})
		default:
			s.writeError(w, r, err)
		}
		return
	}

	status := http.StatusCreated
	if res.Outcome == register.AlreadyStored {
		status = http.StatusFound
	}
	writeJSON(w, status, map[string]any{"id": encodeID(res.InstanceID)})
}

// handleGetInstanceFile serves GET /instances/{id}/file: the instance's raw
// Part 10 bytes.
func (s *Server) handleGetInstanceFile(w http.ResponseWriter, r *http.Request) {
	id, err := idFromParam(r, identity.TableInstance)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	inst, err := s.Catalog.GetInstance(id)
	if err != nil {
		s.writeError(w, r, wrapNotFound(err, id))
		return
	}

	raw, err := os.ReadFile(inst.File.Path)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/dicom")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filepath.Base(inst.File.Path)+`"`)
	_, _ = w.Write(raw)
}

// handleGetInstancePNG serves GET /instances/{id}/png, optionally resized
// via ?width=&height= query parameters.
func (s *Server) handleGetInstancePNG(w http.ResponseWriter, r *http.Request) {
	id, err := idFromParam(r, identity.TableInstance)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	inst, err := s.Catalog.GetInstance(id)
	if err != nil {
		s.writeError(w, r, wrapNotFound(err, id))
		return
	}

	read, err := s.Pipeline.Store.Read(inst.File.Path)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	width, _ := strconv.Atoi(r.URL.Query().Get("width"))
	height, _ := strconv.Atoi(r.URL.Query().Get("height"))

	png, err := render.Thumbnail(read.DataSet, width, height)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(png)
}

// idFromParam parses the {id} path parameter (chi's single-segment routes
// for /instances/{id}/... don't carry a {table} segment) into a RecordID of
// the given table.
func idFromParam(r *http.Request, table identity.Table) (identity.RecordID, error) {
	key, err := hex.DecodeString(chi.URLParam(r, "id"))
	if err != nil {
		return identity.RecordID{}, err
	}
	return identity.RecordID{Table: table, Key: key}, nil
}
