package httpapi

import (
	"net/http"

	"github.com/dustin/go-humanize"

	"github.com/codeninja55/rudicom/internal/config"
	"github.com/codeninja55/rudicom/internal/identity"
)

// handleStatistics serves GET /statistics: total study/series/instance
// counts and total stored bytes, summed off the catalog's own aggregate
// tables rather than re-deriving them.
func (s *Server) handleStatistics(w http.ResponseWriter, r *http.Request) {
	studies, err := s.Catalog.AllStudies()
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var seriesCount, instanceCount int
	var totalBytes int64
	for _, study := range studies {
		studyID := identity.RecordID{Table: identity.TableStudy, Key: []byte(study.ID)}
		agg, err := s.Catalog.InstancesPerStudy(studyID)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		instanceCount += agg.Count
		totalBytes += agg.SizeBytes
		seriesCount += len(study.SeriesIDs)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"studies":        len(studies),
		"series":         seriesCount,
		"instances":      instanceCount,
		"total_bytes":    totalBytes,
		"total_bytes_hr": humanize.Bytes(uint64(totalBytes)),
	})
}

// handleInfo serves GET /info: the running config's non-sensitive fields.
func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	cfg := config.Current()
	if cfg == nil {
		writeJSON(w, http.StatusOK, map[string]any{})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"storage_path":      cfg.StoragePath,
		"study_tags":        cfg.StudyTags,
		"series_tags":       cfg.SeriesTags,
		"instance_tags":     cfg.InstanceTags,
		"filename_pattern":  cfg.FilenamePattern,
	})
}
