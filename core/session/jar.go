package session

import (
	"time"
)

// Jar abstracts the browser cookie surface: the portal backs it with the
// request/response cookies of the current navigation, the CLI with a file.
// A ttl of 0 means a session cookie (cleared when the browser closes).
type Jar interface {
	Get(name string) (string, bool)
	Set(name, value string, ttl time.Duration)
	Del(name string)
}

type memEntry struct {
	value     string
	expiresAt time.Time // zero = session cookie
}

// MemJar is an in-memory Jar used in tests and as the base of the CLI jar.
type MemJar struct {
	entries map[string]memEntry
	now     func() time.Time
}

var _ Jar = (*MemJar)(nil)

func NewMemJar() *MemJar {
	return &MemJar{
		entries: make(map[string]memEntry),
		now:     time.Now,
	}
}

func (j *MemJar) Get(name string) (string, bool) {
	entry, ok := j.entries[name]
	if !ok {
		return "", false
	}
	if !entry.expiresAt.IsZero() && j.now().After(entry.expiresAt) {
		delete(j.entries, name)
		return "", false
	}
	return entry.value, true
}

func (j *MemJar) Set(name, value string, ttl time.Duration) {
	entry := memEntry{value: value}
	if ttl > 0 {
		entry.expiresAt = j.now().Add(ttl)
	}
	j.entries[name] = entry
}

func (j *MemJar) Del(name string) {
	delete(j.entries, name)
}
