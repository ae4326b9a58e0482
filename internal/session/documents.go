// Package session holds the request-spanning mutable state of a navigation
// session: the document snapshot cache and the config cache. Both are
// explicit objects with lifecycle hooks rather than ambient globals, and
// both invalidate on filesystem change events.
package session

import (
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"globalnav/pkg/types"
)

// DocumentCache caches line-split document snapshots by path. A cached
// entry is invalidated when the underlying file changes on disk, standing
// in for the host editor's "visible editors changed" event.
type DocumentCache struct {
	mu      sync.Mutex
	docs    map[string]types.Snapshot
	watcher *fsnotify.Watcher
	done    chan struct{}
}

// NewDocumentCache creates an empty cache with a running change watcher.
func NewDocumentCache() (*DocumentCache, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	c := &DocumentCache{
		docs:    make(map[string]types.Snapshot),
		watcher: watcher,
		done:    make(chan struct{}),
	}
	go c.watch()
	return c, nil
}

// Snapshot returns the cached snapshot for path, loading it from disk on a
// cache miss. The returned snapshot is immutable; later file changes
// produce a new snapshot on the next call instead of mutating this one.
func (c *DocumentCache) Snapshot(path string) (types.Snapshot, error) {
	c.mu.Lock()
	if snap, ok := c.docs[path]; ok {
		c.mu.Unlock()
		return snap, nil
	}
	c.mu.Unlock()

	data, err := os.ReadFile(path)
	if err != nil {
		return types.Snapshot{}, err
	}
	snap := types.Snapshot{
		Path:  path,
		Lines: strings.Split(string(data), "\n"),
	}

	c.mu.Lock()
	c.docs[path] = snap
	c.mu.Unlock()

	if err := c.watcher.Add(path); err != nil {
		// The snapshot is still served; it just won't self-invalidate.
		slog.Debug("Failed to watch document", "path", path, "error", err)
	}

	return snap, nil
}

// Invalidate drops the cached snapshot for path.
func (c *DocumentCache) Invalidate(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.docs, path)
}

// Close stops the watcher. The cache must not be used afterwards.
func (c *DocumentCache) Close() error {
	close(c.done)
	return c.watcher.Close()
}

func (c *DocumentCache) watch() {
	for {
		select {
		case event, ok := <-c.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0 {
				slog.Debug("Document changed on disk, invalidating snapshot", "path", event.Name)
				c.Invalidate(event.Name)
			}
		case err, ok := <-c.watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("Document watcher error", "error", err)
		case <-c.done:
			return
		}
	}
}
