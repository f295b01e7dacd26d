package httpapi

import (
	"errors"
	"net/http"

	"github.com/codeninja55/rudicom/internal/catalog"
	"github.com/codeninja55/rudicom/internal/catalogerr"
	"github.com/codeninja55/rudicom/internal/identity"
)

// handleGetEntry serves GET /{table}/{id}: the entity's own JSON view.
func (s *Server) handleGetEntry(w http.ResponseWriter, r *http.Request) {
	id, err := recordID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	view, err := s.entryView(id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// entryView loads id's row and renders it, regardless of table.
func (s *Server) entryView(id identity.RecordID) (map[string]any, error) {
	switch id.Table {
	case identity.TableStudy:
		study, err := s.Catalog.GetStudy(id)
		if err != nil {
			return nil, wrapNotFound(err, id)
		}
		return studyView(study), nil
	case identity.TableSeries:
		series, err := s.Catalog.GetSeries(id)
		if err != nil {
			return nil, wrapNotFound(err, id)
		}
		return seriesView(series), nil
	case identity.TableInstance:
		inst, err := s.Catalog.GetInstance(id)
		if err != nil {
			return nil, wrapNotFound(err, id)
		}
		return instanceView(inst), nil
	default:
		return nil, catalogerr.NotFound(id)
	}
}

func wrapNotFound(err error, id identity.RecordID) error {
	if errors.Is(err, catalog.ErrNotFound) {
		return catalogerr.NotFound(id)
	}
	return err
}

// handleGetParents serves GET /{table}/{id}/parents: the chain of ancestor
// entities, study-first, excluding id itself.
func (s *Server) handleGetParents(w http.ResponseWriter, r *http.Request) {
	id, err := recordID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var parents []map[string]any
	switch id.Table {
	case identity.TableInstance:
		inst, err := s.Catalog.GetInstance(id)
		if err != nil {
			s.writeError(w, r, wrapNotFound(err, id))
			return
		}
		seriesID := identity.RecordID{Table: identity.TableSeries, Key: []byte(inst.SeriesID)}
		series, err := s.Catalog.GetSeries(seriesID)
		if err != nil {
			s.writeError(w, r, wrapNotFound(err, seriesID))
			return
		}
		studyID := identity.RecordID{Table: identity.TableStudy, Key: []byte(series.StudyID)}
		study, err := s.Catalog.GetStudy(studyID)
		if err != nil {
			s.writeError(w, r, wrapNotFound(err, studyID))
			return
		}
		parents = []map[string]any{studyView(study), seriesView(series)}
	case identity.TableSeries:
		series, err := s.Catalog.GetSeries(id)
		if err != nil {
			s.writeError(w, r, wrapNotFound(err, id))
			return
		}
		studyID := identity.RecordID{Table: identity.TableStudy, Key: []byte(series.StudyID)}
		study, err := s.Catalog.GetStudy(studyID)
		if err != nil {
			s.writeError(w, r, wrapNotFound(err, studyID))
			return
		}
		parents = []map[string]any{studyView(study)}
	case identity.TableStudy:
		parents = []map[string]any{}
	default:
		s.writeError(w, r, catalogerr.NotFound(id))
		return
	}
	writeJSON(w, http.StatusOK, parents)
}

// handleGetInstances serves GET /{table}/{id}/instances: every instance
// beneath id (or id itself, if id already names an instance).
func (s *Server) handleGetInstances(w http.ResponseWriter, r *http.Request) {
	id, err := recordID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var instances []*catalog.Instance
	switch id.Table {
	case identity.TableInstance:
		inst, err := s.Catalog.GetInstance(id)
		if err != nil {
			s.writeError(w, r, wrapNotFound(err, id))
			return
		}
		instances = []*catalog.Instance{inst}
	case identity.TableSeries:
		series, err := s.Catalog.GetSeries(id)
		if err != nil {
			s.writeError(w, r, wrapNotFound(err, id))
			return
		}
		studyID := identity.RecordID{Table: identity.TableStudy, Key: []byte(series.StudyID)}
		study, err := s.Catalog.GetStudy(studyID)
		if err != nil {
			s.writeError(w, r, wrapNotFound(err, studyID))
			return
		}
		instances, err = s.Catalog.InstancesOfSeries(series.UID, study.UID)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
	case identity.TableStudy:
		study, err := s.Catalog.GetStudy(id)
		if err != nil {
			s.writeError(w, r, wrapNotFound(err, id))
			return
		}
		instances, err = s.Catalog.InstancesOfStudy(study.UID)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
	default:
		s.writeError(w, r, catalogerr.NotFound(id))
		return
	}

	views := make([]map[string]any, len(instances))
	for i, inst := range instances {
		views[i] = instanceView(inst)
	}
	writeJSON(w, http.StatusOK, views)
}

// handleGetSeries serves GET /{table}/{id}/series: every series beneath a
// study id.
func (s *Server) handleGetSeries(w http.ResponseWriter, r *http.Request) {
	id, err := recordID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if id.Table != identity.TableStudy {
		s.writeError(w, r, catalogerr.NotFound(id))
		return
	}

	study, err := s.Catalog.GetStudy(id)
	if err != nil {
		s.writeError(w, r, wrapNotFound(err, id))
		return
	}
	series, err := s.Catalog.SeriesOfStudy(study.UID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	views := make([]map[string]any, len(series))
	for i, sr := range series {
		views[i] = seriesView(sr)
	}
	writeJSON(w, http.StatusOK, views)
}
