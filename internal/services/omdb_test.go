package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avelasco/reel/internal/shared"
	tu "github.com/avelasco/reel/internal/testing"
)

func inceptionPayload() map[string]string {
	return map[string]string{
		"Response":   "True",
		"imdbID":     "tt1375666",
		"Title":      "Inception",
		"Year":       "2010",
		"Director":   "Christopher Nolan",
		"Genre":      "Action, Adventure, Sci-Fi",
		"Poster":     "https://example.com/inception.jpg",
		"Plot":       "A thief who steals corporate secrets.",
		"Actors":     "Leonardo DiCaprio",
		"Runtime":    "148 min",
		"imdbRating": "8.8",
	}
}

func TestOMDBService(t *testing.T) {
	t.Run("New", func(t *testing.T) {
		t.Run("Defaults", func(t *testing.T) {
			srv := NewOMDBService(OMDBOpts{APIKey: "k"})

			if srv.baseURL != defaultOMDBBaseURL {
				t.Errorf("expected default base URL, got %s", srv.baseURL)
			}
			if srv.plot != "short" {
				t.Errorf("expected plot short, got %s", srv.plot)
			}
			if srv.httpClient != http.DefaultClient {
				t.Error("expected http.DefaultClient to be used")
			}
		})

		t.Run("With Custom BaseURL and Client", func(t *testing.T) {
			customClient := &http.Client{}
			srv := NewOMDBService(OMDBOpts{APIKey: "k", BaseURL: "http://example.com/", HTTPClient: customClient})

			if srv.baseURL != "http://example.com/" {
				t.Errorf("expected baseURL 'http://example.com/', got %s", srv.baseURL)
			}
			if srv.httpClient != customClient {
				t.Error("expected custom client to be used")
			}
		})
	})

	t.Run("Name", func(t *testing.T) {
		srv := NewOMDBService(OMDBOpts{APIKey: "k"})
		if srv.Name() != "OMDb" {
			t.Errorf("expected provider name OMDb, got %s", srv.Name())
		}
	})

	t.Run("Lookup", func(t *testing.T) {
		t.Run("Successful Lookup Normalizes Fields", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Query().Get("t") != "Inception" {
					t.Errorf("expected title param Inception, got %s", r.URL.Query().Get("t"))
				}
				if r.URL.Query().Get("apikey") != "test-key" {
					t.Errorf("expected apikey param test-key, got %s", r.URL.Query().Get("apikey"))
				}
				if r.URL.Query().Get("plot") != "short" {
					t.Errorf("expected plot param short, got %s", r.URL.Query().Get("plot"))
				}
				if r.URL.Query().Get("r") != "json" {
					t.Errorf("expected r param json, got %s", r.URL.Query().Get("r"))
				}

				w.Header().Set("Content-Type", "application/json")
				json.NewEncoder(w).Encode(inceptionPayload())
			}))
			defer server.Close()

			srv := NewOMDBService(OMDBOpts{APIKey: "test-key", BaseURL: server.URL, RateLimit: 1000})
			movie, err := srv.Lookup(context.Background(), "Inception")

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if movie.ImdbID != "tt1375666" {
				t.Errorf("expected imdb id tt1375666, got %s", movie.ImdbID)
			}
			if movie.Title != "Inception" {
				t.Errorf("expected title Inception, got %s", movie.Title)
			}
			if movie.Director != "Christopher Nolan" {
				t.Errorf("expected director Christopher Nolan, got %s", movie.Director)
			}
		})

		t.Run("Stable Identifier Across Lookups", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(inceptionPayload())
			}))
			defer server.Close()

			srv := NewOMDBService(OMDBOpts{APIKey: "test-key", BaseURL: server.URL, RateLimit: 1000})

			first, err := srv.Lookup(context.Background(), "Inception")
			if err != nil {
				t.Fatalf("first lookup failed: %v", err)
			}
			second, err := srv.Lookup(context.Background(), "Inception")
			if err != nil {
				t.Fatalf("second lookup failed: %v", err)
			}

			if first.ImdbID != second.ImdbID {
				t.Errorf("expected identical imdb ids, got %s and %s", first.ImdbID, second.ImdbID)
			}
		})

		t.Run("Provider Miss Returns ErrTitleNotFound", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				json.NewEncoder(w).Encode(map[string]string{
					"Response": "False",
					"Error":    "Movie not found!",
				})
			}))
			defer server.Close()

			srv := NewOMDBService(OMDBOpts{APIKey: "test-key", BaseURL: server.URL, RateLimit: 1000})
			_, err := srv.Lookup(context.Background(), "zzzzzz")

			if !errors.Is(err, shared.ErrTitleNotFound) {
				t.Errorf("expected ErrTitleNotFound, got %v", err)
			}
			if errors.Is(err, shared.ErrAPIRequest) {
				t.Error("a provider miss should not be reported as a request failure")
			}
		})

		t.Run("Non-2xx Returns ErrAPIRequest", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			}))
			defer server.Close()

			srv := NewOMDBService(OMDBOpts{APIKey: "bad-key", BaseURL: server.URL, RateLimit: 1000})
			_, err := srv.Lookup(context.Background(), "Inception")

			if !errors.Is(err, shared.ErrAPIRequest) {
				t.Errorf("expected ErrAPIRequest, got %v", err)
			}
		})

		t.Run("Transport Failure Returns ErrAPIRequest", func(t *testing.T) {
			client := &http.Client{Transport: tu.NewMockRoundTripper(nil, errors.New("connection refused"))}

			srv := NewOMDBService(OMDBOpts{APIKey: "test-key", RateLimit: 1000, HTTPClient: client})
			_, err := srv.Lookup(context.Background(), "Inception")

			if !errors.Is(err, shared.ErrAPIRequest) {
				t.Errorf("expected ErrAPIRequest, got %v", err)
			}
		})

		t.Run("Missing API Key Fails Before Any Request", func(t *testing.T) {
			requested := false
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				requested = true
			}))
			defer server.Close()

			srv := NewOMDBService(OMDBOpts{BaseURL: server.URL, RateLimit: 1000})
			_, err := srv.Lookup(context.Background(), "Inception")

			if !errors.Is(err, shared.ErrMissingAPIKey) {
				t.Errorf("expected ErrMissingAPIKey, got %v", err)
			}
			if requested {
				t.Error("no request should be issued without an API key")
			}
		})

		t.Run("Empty Title", func(t *testing.T) {
			srv := NewOMDBService(OMDBOpts{APIKey: "test-key"})
			_, err := srv.Lookup(context.Background(), "")

			if !errors.Is(err, shared.ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})
	})
}
