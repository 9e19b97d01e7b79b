package mock

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
)

// Data sets below the mock directory
const (
	DataOK     = "ok"
	DataLegacy = "legacy"
	DataBroken = "broken"
)

// GetMockData serves the mock data sets, e.g. <url>/ok/events.json
func GetMockData(tb testing.TB) *httptest.Server {
	tb.Helper()
	_, filename, _, _ := runtime.Caller(0)
	mockDir := path.Dir(filename)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		time.Sleep(time.Millisecond * 10)
		mockFilename := path.Join(mockDir, path.Clean(req.URL.Path))
		if path.Ext(mockFilename) != ".json" {
			http.NotFound(w, req)
			return
		}
		http.ServeFile(w, req, mockFilename)
	}))
	tb.Cleanup(server.Close)

	return server
}

// Source in memory source, names without a document fail
type Source struct {
	mu        sync.Mutex
	documents map[string][]byte
	fetches   map[string]int
}

func NewSource(documents map[string]string) *Source {
	s := &Source{
		documents: map[string][]byte{},
		fetches:   map[string]int{},
	}
	for name, doc := range documents {
		s.documents[name] = []byte(doc)
	}
	return s
}

func (s *Source) Fetch(ctx context.Context, name string) ([]byte, error) {
	s.mu.Lock()
	s.fetches[name]++
	doc, ok := s.documents[name]
	s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.Wrap(os.ErrNotExist, name)
	}
	return doc, nil
}

// Fetches returns how often a document was requested
func (s *Source) Fetches(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fetches[name]
}
