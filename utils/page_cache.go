package utils

import (
	"bytes"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	cmap "github.com/orcaman/concurrent-map/v2"
)

type cachedPage struct {
	body        []byte
	contentType string
	expiresAt   time.Time
}

// PageCache keeps rendered responses for the routes it wraps and replays them
// until expiry. Writes elsewhere never invalidate an entry: a stale page is
// served as-is until the TTL runs out or Clear is called.
type PageCache struct {
	TTL time.Duration
	// Key derives the cache key for a request. Pages rendered with per-user
	// state must fold that state into the key, or one user's page would be
	// replayed to everyone. Defaults to the request URI.
	Key   func(c *gin.Context) string
	pages cmap.ConcurrentMap[string, cachedPage]
}

func NewPageCache(ttl time.Duration) *PageCache {
	return &PageCache{
		TTL:   ttl,
		pages: cmap.New[cachedPage](),
	}
}

func (pc *PageCache) Clear() {
	pc.pages.Clear()
}

func (pc *PageCache) keyFor(c *gin.Context) string {
	if pc.Key != nil {
		return pc.Key(c)
	}
	return c.Request.URL.RequestURI()
}

// sweep drops every expired entry so keys that are never requested again
// (stale query-string variants) do not pile up.
func (pc *PageCache) sweep(now time.Time) {
	for item := range pc.pages.IterBuffered() {
		if now.After(item.Val.expiresAt) {
			pc.pages.Remove(item.Key)
		}
	}
}

type pageRecorder struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *pageRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *pageRecorder) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// Handler wraps a single route with the cache
func (pc *PageCache) Handler(handler gin.HandlerFunc) gin.HandlerFunc {
	maxAge := "private, max-age=" + strconv.Itoa(int(pc.TTL.Seconds()))
	return func(c *gin.Context) {
		key := pc.keyFor(c)
		if page, ok := pc.pages.Get(key); ok {
			if time.Now().Before(page.expiresAt) {
				c.Header("cache-control", maxAge)
				c.Data(http.StatusOK, page.contentType, page.body)
				c.Abort()
				return
			}
			pc.pages.Remove(key)
		}
		recorder := &pageRecorder{ResponseWriter: c.Writer}
		c.Writer = recorder
		c.Header("cache-control", maxAge)
		handler(c)
		if recorder.Status() == http.StatusOK {
			now := time.Now()
			pc.sweep(now)
			pc.pages.Set(key, cachedPage{
				body:        recorder.body.Bytes(),
				contentType: recorder.Header().Get("Content-Type"),
				expiresAt:   now.Add(pc.TTL),
			})
		}
	}
}
