/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package fake provides an in-process stand-in for the reqres demo service,
// serving the same fixed data set so the harness can be exercised offline.
package fake

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/unikorn-cloud/reqres/pkg/openapi"
)

const (
	// PerPage is the page size of user listings.
	PerPage = 6

	// RegisterToken is the token issued to every registered user.
	RegisterToken = "QpwL5tke4Pnpja7X4"

	apiKeyHeader = "X-Api-Key"
	timeLayout   = "2006-01-02T15:04:05.000Z"
)

// Users is the fixed data set, ordered by ID.
//
//nolint:gochecknoglobals
var Users = []openapi.UserRecord{
	{Id: 1, Email: "george.bluth@reqres.in", FirstName: "George", LastName: "Bluth"},
	{Id: 2, Email: "janet.weaver@reqres.in", FirstName: "Janet", LastName: "Weaver"},
	{Id: 3, Email: "emma.wong@reqres.in", FirstName: "Emma", LastName: "Wong"},
	{Id: 4, Email: "eve.holt@reqres.in", FirstName: "Eve", LastName: "Holt"},
	{Id: 5, Email: "charles.morris@reqres.in", FirstName: "Charles", LastName: "Morris"},
	{Id: 6, Email: "tracey.ramos@reqres.in", FirstName: "Tracey", LastName: "Ramos"},
	{Id: 7, Email: "michael.lawson@reqres.in", FirstName: "Michael", LastName: "Lawson"},
	{Id: 8, Email: "lindsay.ferguson@reqres.in", FirstName: "Lindsay", LastName: "Ferguson"},
	{Id: 9, Email: "tobias.funke@reqres.in", FirstName: "Tobias", LastName: "Funke"},
	{Id: 10, Email: "byron.fields@reqres.in", FirstName: "Byron", LastName: "Fields"},
	{Id: 11, Email: "george.edwards@reqres.in", FirstName: "George", LastName: "Edwards"},
	{Id: 12, Email: "rachel.howell@reqres.in", FirstName: "Rachel", LastName: "Howell"},
}

// support is the unmodelled trailer the service appends to reads.
//
//nolint:gochecknoglobals
var support = map[string]string{
	"url":  "https://reqres.in/#support-heading",
	"text": "To keep ReqRes free, contributions towards server costs are appreciated!",
}

// Server is a running stand-in.
type Server struct {
	*httptest.Server

	apiKey string

	lock    sync.Mutex
	headers []http.Header
}

// Option configures a Server.
type Option func(*Server)

// WithAPIKey rejects requests that do not carry the key.
func WithAPIKey(key string) Option {
	return func(s *Server) {
		s.apiKey = key
	}
}

// New starts a stand-in, close it when done.
func New(options ...Option) *Server {
	s := &Server{}

	for _, option := range options {
		option(s)
	}

	s.Server = httptest.NewServer(s.router())

	return s
}

// BaseURL is the URL to configure the client with.
func (s *Server) BaseURL() string {
	return s.URL + "/api"
}

// Headers returns the headers of every request received, in order.
func (s *Server) Headers() []http.Header {
	s.lock.Lock()
	defer s.lock.Unlock()

	out := make([]http.Header, len(s.headers))
	copy(out, s.headers)

	return out
}

func (s *Server) router() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(s.record)
	router.Use(s.authenticate)

	router.Route("/api", func(r chi.Router) {
		r.Get("/users", s.listUsers)
		r.Post("/users", s.createUser)
		r.Get("/users/{id}", s.getUser)
		r.Put("/users/{id}", s.updateUser)
		r.Post("/register", s.register)
	})

	return router
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.lock.Lock()
		s.headers = append(s.headers, r.Header.Clone())
		s.lock.Unlock()

		next.ServeHTTP(w, r)
	})
}

func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.apiKey != "" && r.Header.Get(apiKeyHeader) != s.apiKey {
			writeJSON(w, http.StatusUnauthorized, openapi.Error{Error: "Missing API key"})
			return
		}

		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(body)
}

func findUser(id string) (openapi.UserRecord, bool) {
	userID, err := strconv.Atoi(id)
	if err != nil || userID < 1 || userID > len(Users) {
		return openapi.UserRecord{}, false
	}

	return Users[userID-1], true
}

func (s *Server) listUsers(w http.ResponseWriter, r *http.Request) {
	page := 1

	if value := r.URL.Query().Get("page"); value != "" {
		if p, err := strconv.Atoi(value); err == nil && p > 0 {
			page = p
		}
	}

	totalPages := (len(Users) + PerPage - 1) / PerPage

	data := []openapi.UserRecord{}

	if start := (page - 1) * PerPage; start < len(Users) {
		data = Users[start:min(start+PerPage, len(Users))]
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"page":        page,
		"per_page":    PerPage,
		"total":       len(Users),
		"total_pages": totalPages,
		"data":        data,
		"support":     support,
	})
}

func (s *Server) getUser(w http.ResponseWriter, r *http.Request) {
	user, ok := findUser(chi.URLParam(r, "id"))
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]any{})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"data":    user,
		"support": support,
	})
}

// echo decodes an arbitrary JSON object, the service reflects whatever it is
// sent.  A body that is not an object is rejected with a 400.
func echo(w http.ResponseWriter, r *http.Request) (map[string]any, bool) {
	var body map[string]any

	if err := json.NewDecoder(r.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, openapi.Error{Error: fmt.Sprintf("Malformed request: %v", err)})
		return nil, false
	}

	if body == nil {
		body = map[string]any{}
	}

	return body, true
}

func (s *Server) createUser(w http.ResponseWriter, r *http.Request) {
	body, ok := echo(w, r)
	if !ok {
		return
	}

	body["id"] = strconv.Itoa(rand.IntN(1000) + 1)
	body["createdAt"] = time.Now().UTC().Format(timeLayout)

	writeJSON(w, http.StatusCreated, body)
}

func (s *Server) updateUser(w http.ResponseWriter, r *http.Request) {
	body, ok := echo(w, r)
	if !ok {
		return
	}

	body["updatedAt"] = time.Now().UTC().Format(timeLayout)

	writeJSON(w, http.StatusOK, body)
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var request openapi.RegisterUserRequest

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeJSON(w, http.StatusBadRequest, openapi.Error{Error: fmt.Sprintf("Malformed request: %v", err)})
		return
	}

	if request.Email == "" {
		writeJSON(w, http.StatusBadRequest, openapi.Error{Error: "Missing email or username"})
		return
	}

	if request.Password == "" {
		writeJSON(w, http.StatusBadRequest, openapi.Error{Error: "Missing password"})
		return
	}

	for _, user := range Users {
		if user.Email == request.Email {
			writeJSON(w, http.StatusOK, map[string]any{
				"id":    user.Id,
				"token": RegisterToken,
			})

			return
		}
	}

	writeJSON(w, http.StatusBadRequest, openapi.Error{Error: "Note: Only defined users succeed registration"})
}
