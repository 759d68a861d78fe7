package windlg

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// Font file lookups scan two registry hives value by value, which is slow
// enough to notice when the font picker is opened repeatedly. Results are
// cached per face-name substring.

const (
	prefixFontPath = "fontpath:"

	fontPathExpiration = 30 * time.Minute
	cacheCleanup       = 5 * time.Minute
)

var fontCache = cache.New(fontPathExpiration, cacheCleanup)

func cachedFontPath(name string) (string, bool) {
	if v, found := fontCache.Get(prefixFontPath + name); found {
		if path, ok := v.(string); ok {
			return path, true
		}
	}
	return "", false
}

func storeFontPath(name, path string) {
	fontCache.Set(prefixFontPath+name, path, fontPathExpiration)
}

// FlushFontCache drops all cached font path lookups. Useful after fonts
// are installed or removed while the process is running.
func FlushFontCache() {
	fontCache.Flush()
}
