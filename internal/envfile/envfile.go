// Package envfile reads KEY=VALUE environment files such as .env.local.
package envfile

import (
	"bufio"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Map holds the variables of one loaded file. Treat it as read-only once
// Load returns.
type Map map[string]string

// Load parses the file at path. A missing file yields an empty map and no
// error. Any other failure yields an empty map together with the error.
func Load(path string) (Map, error) {
	env, _, err := LoadFound(path)
	return env, err
}

// LoadFound is Load that also reports whether the file was present, judged
// by the same open that reads it. found is true for a file that exists but
// could not be read.
func LoadFound(path string) (env Map, found bool, err error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Map{}, false, nil
		}
		return Map{}, true, errors.Wrapf(err, "open env file %s", path)
	}
	defer f.Close()

	env, err = Parse(f)
	if err != nil {
		return Map{}, true, errors.Wrapf(err, "read env file %s", path)
	}
	return env, true, nil
}

// Parse reads KEY=VALUE lines from r. Blank lines, # comments and lines
// without '=' are skipped; later keys overwrite earlier ones.
func Parse(r io.Reader) (Map, error) {
	env := Map{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		env[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	if err := scanner.Err(); err != nil {
		return Map{}, err
	}
	return env, nil
}

// LoadOrEmpty loads path and degrades any read failure to an empty map,
// logging it as a warning.
func LoadOrEmpty(path string, log *zap.Logger) Map {
	env, err := Load(path)
	if err != nil {
		if log != nil {
			log.Warn("env file unreadable, continuing without configuration",
				zap.String("path", path), zap.Error(err))
		}
		return Map{}
	}
	return env
}

// Exists reports whether path names a file that Load would read.
func Exists(path string) bool {
	st, err := os.Stat(path)
	return err == nil && !st.IsDir()
}

// Get returns the value for key, or fallback when it is unset or empty.
func (m Map) Get(key, fallback string) string {
	if v := m[key]; v != "" {
		return v
	}
	return fallback
}

// Has reports whether key is set to a non-empty value.
func (m Map) Has(key string) bool { return m[key] != "" }

// First returns the first non-empty value among keys.
func (m Map) First(keys ...string) string {
	for _, k := range keys {
		if v := m[k]; v != "" {
			return v
		}
	}
	return ""
}

// Keys returns the variable names in sorted order.
func (m Map) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
