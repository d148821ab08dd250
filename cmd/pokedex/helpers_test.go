package main

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
)

// isolateConfig points the default config location at an empty directory.
func isolateConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv("AppData", dir)
	return dir
}

type fakeCatalog struct {
	mu       sync.Mutex
	failures map[int]int
	hits     map[int]int
}

// newFakeCatalog serves creature documents; failures maps an id to how many
// times it should answer 500 before succeeding (-1 for always).
func newFakeCatalog(t *testing.T, failures map[int]int) (*fakeCatalog, string) {
	t.Helper()
	fc := &fakeCatalog{failures: failures, hits: map[int]int{}}
	if fc.failures == nil {
		fc.failures = map[int]int{}
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		fc.mu.Lock()
		fc.hits[id]++
		remaining := fc.failures[id]
		if remaining > 0 {
			fc.failures[id]--
		}
		fc.mu.Unlock()

		if remaining != 0 {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte("upstream unavailable"))
			return
		}

		category := "grass"
		if id%2 == 0 {
			category = "fire"
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{
  "id": %d,
  "name": "mon-%d",
  "sprites": {"front_default": "https://img.test/%d.png", "other": {"official-artwork": {"front_default": null}}},
  "types": [{"slot": 1, "type": {"name": %q}}],
  "stats": [
    {"base_stat": %d, "stat": {"name": "hp"}},
    {"base_stat": 50, "stat": {"name": "special-attack"}}
  ]
}`, id, id, id, category, 40+id)
	}))
	t.Cleanup(srv.Close)
	return fc, srv.URL
}

func (fc *fakeCatalog) hitsFor(id int) int {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.hits[id]
}

func executeCommand(args ...string) (string, string, error) {
	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}
