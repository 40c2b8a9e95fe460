package main

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"

	"github.com/ihsanems/portal/core/session"
)

type fileEntry struct {
	Value     string `json:"value"`
	ExpiresAt int64  `json:"expires_at,omitempty"` // unix; 0 = no expiry
}

// FileJar persists cookies across CLI invocations in a JSON file under the
// user config dir, standing in for the browser's cookie jar.
type FileJar struct {
	path    string
	entries map[string]fileEntry
	now     func() time.Time
}

var _ session.Jar = (*FileJar)(nil)

func OpenFileJar(path string) (*FileJar, error) {
	jar := &FileJar{
		path:    path,
		entries: make(map[string]fileEntry),
		now:     time.Now,
	}
	data, err := ioutil.ReadFile(path)
	if os.IsNotExist(err) {
		return jar, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "reading cookie jar %s", path)
	}
	if err := json.Unmarshal(data, &jar.entries); err != nil {
		// corrupt jar: start over rather than refuse to run
		jar.entries = make(map[string]fileEntry)
	}
	return jar, nil
}

func openDefaultJar() (*FileJar, error) {
	confDir, err := os.UserConfigDir()
	if err != nil {
		return nil, errors.Wrap(err, "locating user config dir")
	}
	dir := filepath.Join(confDir, "ihsan-ems")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, errors.Wrapf(err, "creating %s", dir)
	}
	return OpenFileJar(filepath.Join(dir, "cookies.json"))
}

func (j *FileJar) Get(name string) (string, bool) {
	entry, ok := j.entries[name]
	if !ok {
		return "", false
	}
	if entry.ExpiresAt > 0 && j.now().Unix() > entry.ExpiresAt {
		delete(j.entries, name)
		j.save()
		return "", false
	}
	return entry.Value, true
}

func (j *FileJar) Set(name, value string, ttl time.Duration) {
	entry := fileEntry{Value: value}
	if ttl > 0 {
		entry.ExpiresAt = j.now().Add(ttl).Unix()
	}
	j.entries[name] = entry
	j.save()
}

func (j *FileJar) Del(name string) {
	delete(j.entries, name)
	j.save()
}

func (j *FileJar) save() {
	data, err := json.Marshal(j.entries)
	if err != nil {
		return
	}
	// tokens live here; keep it owner-only
	_ = ioutil.WriteFile(j.path, data, 0o600)
}
