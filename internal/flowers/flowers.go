// Package flowers resolves the image asset shown for a design's birth month.
package flowers

import (
	"context"
	"os"
	"path"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/eko/gocache/lib/v4/cache"
	go_store "github.com/eko/gocache/store/go_cache/v4"
	gocache "github.com/patrickmn/go-cache"
	"github.com/samber/lo"
)

// DefaultImage is the asset served when no themed asset exists for a month.
const DefaultImage = "static/flowers/default.png"

// Months are the twelve accepted month labels, in calendar order.
var Months = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// ValidMonth reports whether month is one of the twelve calendar values.
func ValidMonth(month string) bool {
	return lo.Contains(Months, month)
}

// Catalog maps month labels to flower image paths by checking the static
// asset directory. Lookups are cached; the rescan job clears the cache so
// newly provisioned assets are picked up without a restart.
type Catalog struct {
	staticDir string
	cache     *cache.Cache[string]
}

// NewCatalog creates a catalog backed by the given static asset directory.
func NewCatalog(staticDir string) *Catalog {
	// never expire entries by ttl, the rescan job handles invalidation
	gocacheClient := gocache.New(gocache.NoExpiration, gocache.NoExpiration)
	gocacheStore := go_store.NewGoCache(gocacheClient)

	return &Catalog{
		staticDir: staticDir,
		cache:     cache.New[string](gocacheStore),
	}
}

// ImagePath returns the static path of the flower image for a month. If no
// themed asset exists the default image path is returned. The lookup never
// fails a request.
func (c *Catalog) ImagePath(ctx context.Context, month string) string {
	if cached, err := c.cache.Get(ctx, month); err == nil && cached != "" {
		return cached
	}

	resolved := DefaultImage
	asset := filepath.Join(c.staticDir, "flowers", month+".png")
	if _, err := os.Stat(asset); err == nil {
		resolved = path.Join("static", "flowers", month+".png")
	}

	if err := c.cache.Set(ctx, month, resolved); err != nil {
		log.Debug("failed to cache flower image path", "month", month, "error", err)
	}
	return resolved
}

// Refresh drops all cached lookups, forcing the next request per month to
// hit the filesystem again.
func (c *Catalog) Refresh(ctx context.Context) error {
	return c.cache.Clear(ctx)
}
