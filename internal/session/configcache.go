package session

import (
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"globalnav/internal/config"
)

// ConfigCache holds the loaded configuration for a workspace and reloads it
// lazily after the config file changes on disk.
type ConfigCache struct {
	mu      sync.Mutex
	rootDir string
	cfg     *config.Config
	last    *config.Config // last good config, fallback for failed reloads
	watcher *fsnotify.Watcher
	done    chan struct{}
}

// NewConfigCache loads the workspace configuration and starts watching the
// config directory for changes. The directory may not exist yet; the cache
// then serves defaults and never self-invalidates, which is fine for a
// workspace that has no config file.
func NewConfigCache(rootDir string) (*ConfigCache, error) {
	cfg, err := config.Load(rootDir)
	if err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	c := &ConfigCache{
		rootDir: rootDir,
		cfg:     cfg,
		watcher: watcher,
		done:    make(chan struct{}),
	}

	if err := watcher.Add(filepath.Dir(config.Path(rootDir))); err != nil {
		slog.Debug("Config directory not watchable", "root", rootDir, "error", err)
	}

	go c.watch()
	return c, nil
}

// Current returns the cached configuration, reloading it first if the
// cache was invalidated. A failed reload keeps serving the last good
// configuration rather than failing the navigation request.
func (c *ConfigCache) Current() *config.Config {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cfg == nil {
		cfg, err := config.Load(c.rootDir)
		if err != nil {
			slog.Warn("Config reload failed, keeping previous settings", "error", err)
			cfg = c.last
		}
		c.cfg = cfg
	}
	return c.cfg
}

// Invalidate forces a reload on the next Current call.
func (c *ConfigCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cfg != nil {
		c.last = c.cfg
	}
	c.cfg = nil
}

// Close stops the watcher. The cache must not be used afterwards.
func (c *ConfigCache) Close() error {
	close(c.done)
	return c.watcher.Close()
}

func (c *ConfigCache) watch() {
	configFile := config.Path(c.rootDir)
	for {
		select {
		case event, ok := <-c.watcher.Events:
			if !ok {
				return
			}
			if event.Name == configFile {
				slog.Debug("Config file changed, invalidating cache")
				c.Invalidate()
			}
		case err, ok := <-c.watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("Config watcher error", "error", err)
		case <-c.done:
			return
		}
	}
}
