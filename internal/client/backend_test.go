package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"sync"
	"testing"

	"retrolog/internal/models"
)

// fakeBackend is an in-memory stand-in for the document API: posts as whole
// documents with embedded comments, replaced wholesale on PUT.
type fakeBackend struct {
	mu     sync.Mutex
	posts  map[int64]models.Post
	nextID int64
	token  string // when set, mutating calls must present this bearer token
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{posts: make(map[int64]models.Post), nextID: 1}
}

func (f *fakeBackend) put(post models.Post) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := post.ID.Int64()
	if id >= f.nextID {
		f.nextID = id + 1
	}
	f.posts[id] = post
}

func (f *fakeBackend) get(id int64) (models.Post, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	post, ok := f.posts[id]
	return post, ok
}

func (f *fakeBackend) authorized(r *http.Request) bool {
	if f.token == "" {
		return true
	}
	return r.Header.Get("Authorization") == "Bearer "+f.token
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (f *fakeBackend) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /posts", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		posts := make([]models.Post, 0, len(f.posts))
		for _, p := range f.posts {
			posts = append(posts, p)
		}
		f.mu.Unlock()
		sort.Slice(posts, func(i, j int) bool { return posts[i].ID < posts[j].ID })
		writeJSON(w, http.StatusOK, posts)
	})

	mux.HandleFunc("GET /posts/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.ParseInt(r.PathValue("id"), 10, 64)
		post, ok := f.get(id)
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "Post not found"})
			return
		}
		writeJSON(w, http.StatusOK, post)
	})

	mux.HandleFunc("POST /posts", func(w http.ResponseWriter, r *http.Request) {
		if !f.authorized(r) {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
			return
		}
		var post models.Post
		if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
			return
		}
		f.mu.Lock()
		post.ID = models.FlexID(f.nextID)
		f.nextID++
		f.posts[post.ID.Int64()] = post
		f.mu.Unlock()
		writeJSON(w, http.StatusCreated, post)
	})

	mux.HandleFunc("PUT /posts/{id}", func(w http.ResponseWriter, r *http.Request) {
		if !f.authorized(r) {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
			return
		}
		id, _ := strconv.ParseInt(r.PathValue("id"), 10, 64)
		if _, ok := f.get(id); !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "Post not found"})
			return
		}
		var post models.Post
		if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
			return
		}
		post.ID = models.FlexID(id)
		f.mu.Lock()
		f.posts[id] = post
		f.mu.Unlock()
		writeJSON(w, http.StatusOK, post)
	})

	return mux
}

// newTestClient spins up the fake backend and returns a client against it.
func newTestClient(t *testing.T, f *fakeBackend) *Client {
	t.Helper()
	srv := httptest.NewServer(f.handler())
	t.Cleanup(srv.Close)
	return New(srv.URL)
}

// newFailingClient returns a client whose every request fails at the server.
func newFailingClient(t *testing.T) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "boom"})
	}))
	t.Cleanup(srv.Close)
	return New(srv.URL)
}
