// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"net/http"
	"os"
	"testing"

	"github.com/avelasco/reel/internal/models"
)

// MockMovieService is a test double for [services.MovieService].
// Lookup returns Movie/Err as configured and records queried titles.
type MockMovieService struct {
	Movie   *models.Movie
	Err     error
	Queries []string
}

func (m *MockMovieService) Lookup(ctx context.Context, title string) (*models.Movie, error) {
	m.Queries = append(m.Queries, title)
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Movie, nil
}

func (m *MockMovieService) Name() string { return "mock" }

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// AssertValid fails the test when a persistent entity does not pass validation.
func AssertValid(t *testing.T, m models.Model) {
	t.Helper()
	if err := m.Validate(); err != nil {
		t.Errorf("expected %T %q to be valid: %v", m, m.ID(), err)
	}
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
