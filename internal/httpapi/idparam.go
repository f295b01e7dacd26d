package httpapi

import (
	"encoding/hex"
	"fmt"

	"github.com/go-chi/chi/v5"
	"net/http"

	"github.com/codeninja55/rudicom/internal/identity"
)

// recordID recovers the identity.RecordID named by a request's {table} and
// {id} path parameters. id is the hex encoding of RecordID.Key — opaque to
// callers, but round-trippable: every entity view this package renders
// includes its own id in this same encoding, so a client never needs to
// reconstruct one from its constituent UIDs.
func recordID(r *http.Request) (identity.RecordID, error) {
	table := identity.Table(chi.URLParam(r, "table"))
	switch table {
	case identity.TableStudy, identity.TableSeries, identity.TableInstance:
	default:
		return identity.RecordID{}, fmt.Errorf("httpapi: unknown table %q", table)
	}

	key, err := hex.DecodeString(chi.URLParam(r, "id"))
	if err != nil {
		return identity.RecordID{}, fmt.Errorf("httpapi: invalid id: %w", err)
	}
	return identity.RecordID{Table: table, Key: key}, nil
}

func encodeID(id identity.RecordID) string {
	return hex.EncodeToString(id.Key)
}

// encodeIDString hex-encodes a catalog row's ID field (a raw composite key,
// as stored via identity.RecordID.StringKey) for embedding in a JSON view.
func encodeIDString(key string) string {
	return hex.EncodeToString([]byte(key))
}
