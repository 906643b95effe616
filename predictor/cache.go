package predictor

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"love_fold_go/config"
	"love_fold_go/logger"
)

const cacheNamespace = "structures"

type cacheEntry struct {
	FetchedAt time.Time `json:"fetched_at"`
	Sequence  string    `json:"sequence"`
	PDB       string    `json:"pdb"`
}

// Cache stores predicted structures on disk keyed by sequence so repeated
// name pairs skip the predictor.
type Cache struct {
	next Folder
	dir  string
	ttl  time.Duration
	now  func() time.Time
	log  *slog.Logger

	mu sync.Mutex // serializes writes
}

// NewCache wraps next with a file cache under dir. A non-positive ttl keeps
// entries forever.
func NewCache(next Folder, dir string, ttl time.Duration) *Cache {
	return &Cache{
		next: next,
		dir:  dir,
		ttl:  ttl,
		now:  time.Now,
		log:  logger.L(),
	}
}

// Fold returns a fresh cached structure for sequence or asks the wrapped
// Folder and stores the answer. Failing to write the cache is logged, not
// returned.
func (c *Cache) Fold(ctx context.Context, sequence string) (string, error) {
	path := c.path(sequence)
	if pdb, ok := c.read(path, sequence); ok {
		c.log.Debug("cache.hit", "path", path)
		return pdb, nil
	}
	c.log.Debug("cache.miss", "path", path)

	pdb, err := c.next.Fold(ctx, sequence)
	if err != nil {
		return "", err
	}
	if err := c.write(path, sequence, pdb); err != nil {
		c.log.Warn("cache.write_failed", "path", path, "error", err)
	}
	return pdb, nil
}

func (c *Cache) path(sequence string) string {
	sum := sha256.Sum256([]byte(sequence))
	return filepath.Join(c.dir, cacheNamespace, hex.EncodeToString(sum[:])+".json")
}

func (c *Cache) read(path, sequence string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	var entry cacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return "", false
	}
	if entry.Sequence != sequence {
		return "", false
	}
	if c.ttl > 0 && c.now().Sub(entry.FetchedAt) > c.ttl {
		return "", false
	}
	return entry.PDB, true
}

func (c *Cache) write(path, sequence, pdb string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cacheEntry{
		FetchedAt: c.now(),
		Sequence:  sequence,
		PDB:       pdb,
	}, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// FromConfig builds the Folder the tools use: a Client, wrapped in a Cache
// when caching is enabled.
func FromConfig(cfg config.Config) Folder {
	client := New(cfg.Predictor)
	if !cfg.Cache.Enabled {
		return client
	}
	return NewCache(client, cfg.Cache.Dir, cfg.Cache.TTL)
}
