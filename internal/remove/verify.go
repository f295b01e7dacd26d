package remove

import (
	"runtime"
	"sync"

	"github.com/codeninja55/rudicom/internal/catalog"
	"github.com/codeninja55/rudicom/internal/filestore"
	"github.com/codeninja55/rudicom/internal/identity"
)

// Mismatch reports one instance whose on-disk md5 no longer matches the
// catalog's recorded md5.
type Mismatch struct {
	InstanceID identity.RecordID
	Path       string
	Expected   string
	Actual     string
}

// Verify resolves id to its instance set and re-hashes each file
// concurrently, reporting every instance whose stored md5 disagrees with
// what is actually on disk. Verify never modifies the catalog or the
// filesystem — a mismatch is surfaced, not repaired. workers bounds
// concurrency; 0 defaults to runtime.GOMAXPROCS(0).
func Verify(c *catalog.Catalog, store *filestore.Store, id identity.RecordID, workers int) ([]Mismatch, error) {
	instances, err := resolveInstances(c, id)
	if err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	jobs := make(chan *catalog.Instance, len(instances))
	results := make(chan *Mismatch, len(instances))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for inst := range jobs {
				results <- verifyOne(store, inst)
			}
		}()
	}

	for _, inst := range instances {
		jobs <- inst
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	var mismatches []Mismatch
	for r := range results {
		if r != nil {
			mismatches = append(mismatches, *r)
		}
	}
	return mismatches, nil
}

func verifyOne(store *filestore.Store, inst *catalog.Instance) *Mismatch {
	id := identity.RecordID{Table: identity.TableInstance, Key: []byte(inst.ID)}

	actual, err := store.MD5(inst.File.Path)
	if err != nil {
		return &Mismatch{InstanceID: id, Path: inst.File.Path, Expected: inst.File.MD5, Actual: "error: " + err.Error()}
	}
	if actual != inst.File.MD5 {
		return &Mismatch{InstanceID: id, Path: inst.File.Path, Expected: inst.File.MD5, Actual: actual}
	}
	return nil
}
