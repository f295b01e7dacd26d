package httpapi

import (
	"net/http"

	"github.com/codeninja55/rudicom/internal/remove"
)

// handleDeleteEntry serves DELETE /{table}/{id}: tears down every instance
// beneath id. A per-instance failure doesn't abort the others; if any
// failed, the response is a 500 listing them, otherwise 200 with the
// removed instance ids.
func (s *Server) handleDeleteEntry(w http.ResponseWriter, r *http.Request) {
	id, err := recordID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	results, err := remove.Remove(s.Catalog, s.Pipeline.Store, id, 0)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var failures []map[string]string
	removed := make([]string, 0, len(results))
	for _, res := range results {
		if res.Err != nil {
			failures = append(failures, map[string]string{
				"id":    encodeID(res.InstanceID),
				"error": res.Err.Error(),
			})
			continue
		}
		removed = append(removed, encodeID(res.InstanceID))
	}

	if len(failures) > 0 {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"failures": failures, "removed": removed})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"removed": removed})
}

// handleVerifyEntry serves GET /{table}/{id}/verify: re-hashes every
// instance beneath id and reports any whose on-disk md5 no longer matches
// the catalog's recorded one. A clean result is 200 with an empty list; any
// mismatch is a 500 listing them, since a checksum mismatch indicates
// corrupted or tampered storage, not a client error.
func (s *Server) handleVerifyEntry(w http.ResponseWriter, r *http.Request) {
	id, err := recordID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	mismatches, err := remove.Verify(s.Catalog, s.Pipeline.Store, id, 0)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if len(mismatches) > 0 {
		views := make([]map[string]string, len(mismatches))
		for i, m := range mismatches {
			views[i] = map[string]string{
				"id":       encodeID(m.InstanceID),
				"path":     m.Path,
				"expected": m.Expected,
				"actual":   m.Actual,
			}
		}
		writeJSON(w, http.StatusInternalServerError, map[string]any{"mismatches": views})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"mismatches": []string{}})
}
