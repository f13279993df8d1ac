// Package oramatest provides an in-memory fake of the OramaCore HTTP
// surface for integration tests and local development. The fake serves
// both API planes with their real authentication schemes, records every
// request it receives, and supports per-route failure injection.
package oramatest

import (
	"bytes"
	"encoding/json"
	"io"
	"maps"
	"net/http"
	"slices"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	oramacore "github.com/oramasearch/oramacore-client-go"
)

// Server is an in-memory OramaCore lookalike. The zero value is not
// usable; construct with New.
type Server struct {
	masterKey string
	router    chi.Router

	mu          sync.Mutex
	collections map[string]*Collection
	order       []string
	requests    []Request
	failures    map[string]failure
}

// Collection is the fake's record of one collection.
type Collection struct {
	ID          string
	Description string
	WriteAPIKey string
	ReadAPIKey  string
	Language    oramacore.Language
	Embeddings  *oramacore.EmbeddingsConfig
	Documents   map[string]oramacore.Document
	Fields      map[string]oramacore.FieldType
}

// Request is one recorded HTTP request. Requests are captured before
// authentication and failure injection run, so rejected calls appear too.
type Request struct {
	Method string
	Path   string
	Auth   string
	Body   []byte
}

type failure struct {
	status int
	body   string
}

// New creates a fake service guarded by masterAPIKey. An empty key
// disables admin authentication. Pass the *Server to httptest.NewServer
// to expose it over HTTP.
func New(masterAPIKey string) *Server {
	s := &Server{
		masterKey:   masterAPIKey,
		collections: make(map[string]*Collection),
		failures:    make(map[string]failure),
	}

	r := chi.NewRouter()
	r.Use(s.record)
	r.Use(s.inject)

	r.Route("/v1", func(r chi.Router) {
		r.Use(s.requireMaster)
		r.Post("/collections/create", s.handleCreateCollection)
		r.Get("/collections", s.handleListCollections)
		r.Get("/collections/{id}", s.handleGetCollection)
		r.Post("/collections/{id}/delete", s.handleDeleteCollection)
	})
	r.Route("/collections/{id}", func(r chi.Router) {
		r.Post("/insert", s.handleInsertDocuments)
		r.Post("/delete", s.handleDeleteDocuments)
	})

	s.router = r
	return s
}

// ServeHTTP dispatches to the fake's router.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Requests returns a copy of every request received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.requests)
}

// Collection returns a snapshot of a stored collection.
func (s *Server) Collection(id string) (Collection, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	col, ok := s.collections[id]
	if !ok {
		return Collection{}, false
	}
	out := *col
	out.Documents = maps.Clone(col.Documents)
	out.Fields = maps.Clone(col.Fields)
	return out, true
}

// Seed registers a collection directly, bypassing the HTTP surface.
func (s *Server) Seed(col Collection) {
	if col.Documents == nil {
		col.Documents = make(map[string]oramacore.Document)
	}
	if col.Fields == nil {
		col.Fields = make(map[string]oramacore.FieldType)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.collections[col.ID]; !ok {
		s.order = append(s.order, col.ID)
	}
	s.collections[col.ID] = &col
}

// Fail makes every subsequent request with the given method and path
// return status and body instead of being handled. The path is matched
// literally, e.g. "/collections/articles/insert".
func (s *Server) Fail(method, path string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[method+" "+path] = failure{status: status, body: body}
}

// ClearFailures removes all failure injections.
func (s *Server) ClearFailures() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures = make(map[string]failure)
}

// Reset drops all collections, recorded requests and failure injections.
func (s *Server) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections = make(map[string]*Collection)
	s.order = nil
	s.requests = nil
	s.failures = make(map[string]failure)
}

// record appends every incoming request to the request log and restores
// the body for downstream handlers.
func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body []byte
		if r.Body != nil {
			body, _ = io.ReadAll(r.Body)
			r.Body = io.NopCloser(bytes.NewReader(body))
		}
		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method: r.Method,
			Path:   r.URL.Path,
			Auth:   r.Header.Get("Authorization"),
			Body:   body,
		})
		s.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

// inject short-circuits routes that have a failure configured.
func (s *Server) inject(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		f, ok := s.failures[r.Method+" "+r.URL.Path]
		s.mu.Unlock()
		if ok {
			if f.body != "" {
				w.Header().Set("Content-Type", "application/json")
			}
			w.WriteHeader(f.status)
			_, _ = io.WriteString(w, f.body)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requireMaster validates the admin-plane Authorization header. The
// master key travels as a Bearer token.
func (s *Server) requireMaster(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.masterKey == "" {
			next.ServeHTTP(w, r)
			return
		}

		auth := r.Header.Get("Authorization")
		const bearerPrefix = "Bearer "
		switch {
		case auth == "":
			writeError(w, http.StatusUnauthorized, "missing authorization header")
		case !strings.HasPrefix(auth, bearerPrefix):
			writeError(w, http.StatusUnauthorized, "authorization header must use Bearer scheme")
		case auth[len(bearerPrefix):] != s.masterKey:
			writeError(w, http.StatusUnauthorized, "invalid master api key")
		default:
			next.ServeHTTP(w, r)
		}
	})
}

// authorizeWrite validates the data-plane Authorization header. The write
// key travels as the raw header value: a Bearer-prefixed key is rejected
// even when the token itself matches. An empty stored key disables the
// check.
func (s *Server) authorizeWrite(w http.ResponseWriter, r *http.Request, want string) bool {
	if want == "" {
		return true
	}

	auth := r.Header.Get("Authorization")
	switch {
	case auth == "":
		writeError(w, http.StatusUnauthorized, "missing authorization header")
	case strings.HasPrefix(auth, "Bearer "):
		writeError(w, http.StatusUnauthorized, "write api key must be the raw header value, not a Bearer token")
	case auth != want:
		writeError(w, http.StatusUnauthorized, "invalid write api key")
	default:
		return true
	}
	return false
}

func (s *Server) handleCreateCollection(w http.ResponseWriter, r *http.Request) {
	var params oramacore.NewCollectionParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if params.ID == "" {
		writeError(w, http.StatusBadRequest, "collection id is required")
		return
	}
	if params.Language == "" {
		params.Language = oramacore.DefaultLanguage
	}

	s.mu.Lock()
	if _, ok := s.collections[params.ID]; ok {
		s.mu.Unlock()
		writeError(w, http.StatusConflict, "collection already exists")
		return
	}
	s.collections[params.ID] = &Collection{
		ID:          params.ID,
		Description: params.Description,
		WriteAPIKey: params.WriteAPIKey,
		ReadAPIKey:  params.ReadAPIKey,
		Language:    params.Language,
		Embeddings:  params.Embeddings,
		Documents:   make(map[string]oramacore.Document),
		Fields:      make(map[string]oramacore.FieldType),
	}
	s.order = append(s.order, params.ID)
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, oramacore.NewCollectionResponse{
		ID:          params.ID,
		Description: params.Description,
		WriteAPIKey: params.WriteAPIKey,
		ReadAPIKey:  params.ReadAPIKey,
	})
}

func (s *Server) handleListCollections(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	out := make([]oramacore.ExistingCollection, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, existingLocked(s.collections[id]))
	}
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetCollection(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	col, ok := s.collections[id]
	if !ok {
		s.mu.Unlock()
		writeError(w, http.StatusNotFound, "collection not found")
		return
	}
	existing := existingLocked(col)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, existing)
}

func (s *Server) handleDeleteCollection(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	if _, ok := s.collections[id]; !ok {
		s.mu.Unlock()
		writeError(w, http.StatusNotFound, "collection not found")
		return
	}
	delete(s.collections, id)
	s.order = slices.DeleteFunc(s.order, func(v string) bool { return v == id })
	s.mu.Unlock()

	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleInsertDocuments(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	col, ok := s.collections[id]
	s.mu.Unlock()
	if !ok {
		writeError(w, http.StatusNotFound, "collection not found")
		return
	}
	if !s.authorizeWrite(w, r, col.WriteAPIKey) {
		return
	}

	var docs []oramacore.Document
	if err := json.NewDecoder(r.Body).Decode(&docs); err != nil {
		writeError(w, http.StatusBadRequest, "request body must be a JSON array of documents")
		return
	}

	s.mu.Lock()
	for _, doc := range docs {
		docID, _ := doc["id"].(string)
		if docID == "" {
			docID = uuid.NewString()
		}
		col.Documents[docID] = doc
		for name, value := range doc {
			if name == "id" {
				continue
			}
			if _, seen := col.Fields[name]; seen {
				continue
			}
			if ft, ok := inferFieldType(value); ok {
				col.Fields[name] = ft
			}
		}
	}
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, insertResult{Inserted: len(docs)})
}

func (s *Server) handleDeleteDocuments(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	col, ok := s.collections[id]
	s.mu.Unlock()
	if !ok {
		writeError(w, http.StatusNotFound, "collection not found")
		return
	}
	if !s.authorizeWrite(w, r, col.WriteAPIKey) {
		return
	}

	var ids []string
	if err := json.NewDecoder(r.Body).Decode(&ids); err != nil {
		writeError(w, http.StatusBadRequest, "request body must be a JSON array of document ids")
		return
	}

	deleted := 0
	s.mu.Lock()
	for _, docID := range ids {
		if _, ok := col.Documents[docID]; ok {
			delete(col.Documents, docID)
			deleted++
		}
	}
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, deleteResult{Deleted: deleted})
}

type insertResult struct {
	Inserted int `json:"inserted"`
}

type deleteResult struct {
	Deleted int `json:"deleted"`
}

type errorBody struct {
	Error string `json:"error"`
}

// existingLocked converts a stored collection to its wire representation.
// Callers must hold s.mu.
func existingLocked(col *Collection) oramacore.ExistingCollection {
	return oramacore.ExistingCollection{
		ID:            col.ID,
		Description:   col.Description,
		DocumentCount: len(col.Documents),
		Fields:        maps.Clone(col.Fields),
	}
}

// inferFieldType derives an indexed field type from a decoded JSON value.
// Strings and numbers map to scalar fields, arrays of numbers to embedding
// fields. Everything else is left unindexed.
func inferFieldType(v any) (oramacore.FieldType, bool) {
	switch v := v.(type) {
	case string:
		return oramacore.ScalarField(oramacore.ScalarString), true
	case float64:
		return oramacore.ScalarField(oramacore.ScalarNumber), true
	case []any:
		if len(v) == 0 {
			return oramacore.FieldType{}, false
		}
		for _, elem := range v {
			if _, ok := elem.(float64); !ok {
				return oramacore.FieldType{}, false
			}
		}
		return oramacore.ComplexField(oramacore.ComplexEmbedding), true
	}
	return oramacore.FieldType{}, false
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorBody{Error: message})
}
