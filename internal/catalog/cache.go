package catalog

import (
	"context"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/launchpath/canvas/internal/models"
)

// Cache holds loaded catalogs keyed by language. Catalogs are immutable after
// load, so concurrent readers are safe; the only writes are population on a
// miss and invalidation when a dataset file changes on disk.
type Cache struct {
	dir    string
	logger *zap.Logger

	mu       sync.RWMutex
	catalogs map[models.Language]*Catalog
}

// NewCache creates a catalog cache over the dataset directory.
func NewCache(dir string, logger *zap.Logger) *Cache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Cache{
		dir:      dir,
		logger:   logger,
		catalogs: make(map[models.Language]*Catalog),
	}
}

// Get returns the catalog for lang, loading and caching it on first use.
func (c *Cache) Get(ctx context.Context, lang models.Language) (*Catalog, error) {
	c.mu.RLock()
	cat, ok := c.catalogs[lang]
	c.mu.RUnlock()
	if ok {
		return cat, nil
	}

	cat, err := Load(ctx, c.dir, lang)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	// Another request may have loaded it meanwhile; both copies are
	// equivalent, keep the one already published.
	if existing, ok := c.catalogs[lang]; ok {
		cat = existing
	} else {
		c.catalogs[lang] = cat
	}
	c.mu.Unlock()

	c.logger.Info("catalog loaded",
		zap.String("language", string(lang)),
		zap.Int("records", cat.Size()))
	return cat, nil
}

// Invalidate drops the cached catalog for lang; the next Get reloads it.
func (c *Cache) Invalidate(lang models.Language) {
	c.mu.Lock()
	delete(c.catalogs, lang)
	c.mu.Unlock()
}

// Watch invalidates cached catalogs when their dataset files change on disk.
// Blocks until ctx is cancelled; run it in its own goroutine.
func (c *Cache) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(c.dir); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			lang, ok := languageFromDataset(filepath.Base(event.Name))
			if !ok {
				continue
			}
			c.logger.Info("catalog dataset changed, invalidating",
				zap.String("language", string(lang)),
				zap.String("file", event.Name))
			c.Invalidate(lang)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			c.logger.Warn("catalog watch error", zap.Error(err))
		}
	}
}

// languageFromDataset maps a dataset filename back to its language code.
func languageFromDataset(name string) (models.Language, bool) {
	if !strings.HasPrefix(name, "occupations_") || !strings.HasSuffix(name, ".db") {
		return "", false
	}
	code := strings.TrimSuffix(strings.TrimPrefix(name, "occupations_"), ".db")
	lang, err := models.ParseLanguage(code)
	if err != nil {
		return "", false
	}
	return lang, true
}
