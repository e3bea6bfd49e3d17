package web

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/go-redis/redis/v8"

	redisadapter "github.com/8ubble8uddy/yatube-project/internal/adapters/redis"
)

// The global feed is cached as a rendered page: a new post does not appear
// until the cache entry expires or is cleared.
func TestIndexServedFromCache(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	cache := redisadapter.NewFeedCacheRedis(client)
	f := newWebFixture(t, cache, 20*time.Second)
	f.posts.feed = []string{"first post"}

	w := f.get("/")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "first post") {
		t.Fatalf("initial render: got %d %q", w.Code, w.Body.String())
	}
	cached := w.Body.String()

	// New content arrives, but the cached page is served byte for byte.
	f.posts.feed = append(f.posts.feed, "second post")
	w = f.get("/")
	if w.Body.String() != cached {
		t.Fatalf("expected cached page verbatim, got %q", w.Body.String())
	}

	// After the TTL the page is re-rendered with the new post.
	mr.FastForward(21 * time.Second)
	w = f.get("/")
	if !strings.Contains(w.Body.String(), "second post") {
		t.Fatalf("expected fresh render after expiry, got %q", w.Body.String())
	}

	// Each page number is cached under its own key.
	w = f.get("/?page=2")
	if !strings.Contains(w.Body.String(), "index p2") {
		t.Fatalf("expected page 2 render, got %q", w.Body.String())
	}
}

func TestClearForcesRerender(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	cache := redisadapter.NewFeedCacheRedis(client)
	f := newWebFixture(t, cache, time.Minute)
	f.posts.feed = []string{"first post"}

	if w := f.get("/"); !strings.Contains(w.Body.String(), "first post") {
		t.Fatalf("initial render: %q", w.Body.String())
	}

	f.posts.feed = append(f.posts.feed, "second post")
	if err := cache.Clear(context.Background()); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	if w := f.get("/"); !strings.Contains(w.Body.String(), "second post") {
		t.Fatalf("expected fresh render after Clear, got %q", w.Body.String())
	}
}
