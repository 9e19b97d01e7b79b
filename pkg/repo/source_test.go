package repo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/foomo/contentadmin/pkg/repo/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPSource_Fetch(t *testing.T) {
	server := mock.GetMockData(t)
	source := NewHTTPSource(server.URL+"/ok/", HTTPSourceWithHTTPClient(server.Client()))

	data, err := source.Fetch(context.Background(), "timetable.json")
	require.NoError(t, err)
	assert.Contains(t, string(data), `"type": "pdf"`)

	_, err = source.Fetch(context.Background(), "calendar.json")
	require.Error(t, err)
}

func TestHTTPSource_StatusCodes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/events.json":
			w.WriteHeader(http.StatusNonAuthoritativeInfo)
			_, _ = w.Write([]byte(`[]`))
		case "/announcements.json":
			w.WriteHeader(http.StatusNotModified)
		default:
			http.Error(w, "boom", http.StatusInternalServerError)
		}
	}))
	t.Cleanup(server.Close)
	source := NewHTTPSource(server.URL, HTTPSourceWithHTTPClient(server.Client()))

	data, err := source.Fetch(context.Background(), "events.json")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(data))

	_, err = source.Fetch(context.Background(), "announcements.json")
	require.Error(t, err)

	_, err = source.Fetch(context.Background(), "resources.json")
	require.Error(t, err)
}

func TestHTTPSource_Canceled(t *testing.T) {
	server := mock.GetMockData(t)
	source := NewHTTPSource(server.URL + "/ok")

	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
	defer cancel()
	_, err := source.Fetch(ctx, "events.json")
	require.Error(t, err)
}

func TestStorageSource_Fetch(t *testing.T) {
	storage, err := NewFilesystemStorage(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, storage.Write(context.Background(), "events.json", []byte(`[]`)))

	source := NewStorageSource(storage)
	data, err := source.Fetch(context.Background(), "events.json")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(data))

	_, err = source.Fetch(context.Background(), "announcements.json")
	require.ErrorIs(t, err, os.ErrNotExist)
}
