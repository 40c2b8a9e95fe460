package session

import (
	"encoding/base64"
	"encoding/json"
	"time"
)

// Cache is a cookie-backed JSON blob cache with a fixed TTL. The expiry
// timestamp travels inside the blob so a stale value is rejected even when
// the cookie itself outlives it.
type Cache struct {
	jar  Jar
	name string
	ttl  time.Duration
	now  func() time.Time
}

type cacheEnvelope struct {
	ExpiresAt int64           `json:"expires_at"`
	Value     json.RawMessage `json:"value"`
}

func NewCache(jar Jar, name string, ttl time.Duration) *Cache {
	return &Cache{
		jar:  jar,
		name: name,
		ttl:  ttl,
		now:  time.Now,
	}
}

// Get loads the cached value into out. It reports a miss when the cookie is
// absent, expired or corrupt; a corrupt blob is dropped on the way out.
func (c *Cache) Get(out interface{}) bool {
	value, ok := c.jar.Get(c.name)
	if !ok {
		return false
	}
	data, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		c.Invalidate()
		return false
	}
	var envelope cacheEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		c.Invalidate()
		return false
	}
	if c.now().Unix() >= envelope.ExpiresAt {
		c.Invalidate()
		return false
	}
	if err := json.Unmarshal(envelope.Value, out); err != nil {
		c.Invalidate()
		return false
	}
	return true
}

func (c *Cache) Set(v interface{}) {
	value, err := json.Marshal(v)
	if err != nil {
		return
	}
	data, err := json.Marshal(cacheEnvelope{
		ExpiresAt: c.now().Add(c.ttl).Unix(),
		Value:     value,
	})
	if err != nil {
		return
	}
	// base64 keeps the blob cookie-safe
	c.jar.Set(c.name, base64.RawURLEncoding.EncodeToString(data), c.ttl)
}

func (c *Cache) Invalidate() {
	c.jar.Del(c.name)
}
