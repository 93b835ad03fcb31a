package userapi

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

type recordedRequest struct {
	Method      string
	Path        string
	RawQuery    string
	ContentType string
	Body        string
}

// upstream is a fake users API that records every request it receives.
type upstream struct {
	server *httptest.Server

	lock     sync.Mutex
	requests []recordedRequest
}

func newUpstream(t testing.TB, handler http.HandlerFunc) *upstream {
	u := &upstream{}
	u.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		u.lock.Lock()
		u.requests = append(u.requests, recordedRequest{
			Method:      r.Method,
			Path:        r.URL.Path,
			RawQuery:    r.URL.RawQuery,
			ContentType: r.Header.Get("Content-Type"),
			Body:        string(body),
		})
		u.lock.Unlock()
		handler(w, r)
	}))
	t.Cleanup(u.server.Close)
	return u
}

func (u *upstream) Requests() []recordedRequest {
	u.lock.Lock()
	defer u.lock.Unlock()
	return append([]recordedRequest(nil), u.requests...)
}

// routes answers with a fixed status and body per path, anything else is 404.
func routes(table map[string]string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, ok := table[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, body)
	}
}

func status(code int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(code)
		io.WriteString(w, body)
	}
}

type testClient struct {
	*Client
	out *bytes.Buffer
	dir string
}

func newTestClient(t testing.TB, baseUrl string, attach bool) testClient {
	out := bytes.NewBuffer(nil)
	dir := t.TempDir()
	client, err := NewClient(Options{
		BaseUrl:           baseUrl,
		OutputDir:         dir,
		AttachRequestBody: attach,
		Stdout:            out,
	})
	if err != nil {
		t.Fatal(err)
	}
	return testClient{Client: client, out: out, dir: dir}
}
