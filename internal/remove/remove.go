package remove

import (
	"runtime"
	"sync"

	"github.com/codeninja55/rudicom/internal/catalog"
	"github.com/codeninja55/rudicom/internal/filestore"
	"github.com/codeninja55/rudicom/internal/identity"
)

// ItemResult reports the outcome of tearing down a single instance.
type ItemResult struct {
	InstanceID identity.RecordID
	Err        error
}

// Remove resolves id (a study, series, or instance) to its instance set and
// tears each one down concurrently: the catalog row is deleted (cascading
// through empty parents per internal/catalog's own trigger semantics), and
// if the instance owns its file, the file is deleted and empty ancestor
// directories are pruned. workers bounds the number of concurrent
// teardowns; 0 defaults to runtime.GOMAXPROCS(0).
func Remove(c *catalog.Catalog, store *filestore.Store, id identity.RecordID, workers int) ([]ItemResult, error) {
	instances, err := resolveInstances(c, id)
	if err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	jobs := make(chan *catalog.Instance, len(instances))
	results := make(chan ItemResult, len(instances))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for inst := range jobs {
				results <- removeOne(c, store, inst)
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

	out := make([]ItemResult, 0, len(instances))
	for r := range results {
		out = append(out, r)
	}
	return out, nil
}

func removeOne(c *catalog.Catalog, store *filestore.Store, inst *catalog.Instance) ItemResult {
	id := identity.RecordID{Table: identity.TableInstance, Key: []byte(inst.ID)}

	if err := c.DeleteInstance(id); err != nil {
		return ItemResult{InstanceID: id, Err: err}
	}

	if inst.File.Owned && inst.File.Path != "" {
		if err := store.Remove(inst.File.Path); err != nil {
			return ItemResult{InstanceID: id, Err: err}
		}
	}

	return ItemResult{InstanceID: id}
}
