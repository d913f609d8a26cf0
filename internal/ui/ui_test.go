package ui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avelasco/reel/internal/models"
	"github.com/avelasco/reel/internal/tasks"
	tu "github.com/avelasco/reel/internal/testing"
)

// recordingStore captures Add calls so assertions can inspect the status an
// entry was created with.
type recordingStore struct {
	added []models.Status
}

func (s *recordingStore) Add(userID string, movie models.Movie, status models.Status) (*models.Entry, error) {
	s.added = append(s.added, status)
	entry := models.NewEntry(userID, movie, status)
	entry.SetID("entry-1")
	return entry, nil
}

func (s *recordingStore) List(userID string) ([]*models.Entry, error) { return nil, nil }

func (s *recordingStore) ListByStatus(userID string, status models.Status) ([]*models.Entry, error) {
	return nil, nil
}

func (s *recordingStore) UpdateStatus(entryID string, status models.Status) error { return nil }
func (s *recordingStore) UpdateRating(entryID string, rating *int) error          { return nil }
func (s *recordingStore) Delete(entryID string) error                             { return nil }
func (s *recordingStore) DeleteAll(userID string) (int, error)                    { return 0, nil }

func newAddViewModel(t *testing.T) (*Model, *recordingStore) {
	t.Helper()

	store := &recordingStore{}
	provider := &tu.MockMovieService{Movie: &models.Movie{ImdbID: "tt1375666", Title: "Inception", Year: "2010"}}
	engine := tasks.NewWatchlistEngine(provider, store)

	m := NewModel(context.Background(), nil, store, engine)
	user := models.NewUser("alice", "hash")
	user.SetID("user-1")
	m.user = user
	m.view = AddView

	return m, store
}

// runAdd drives the command chain started by an enter press until the add
// completes.
func runAdd(t *testing.T, model tea.Model, cmd tea.Cmd) {
	t.Helper()

	for i := 0; cmd != nil; i++ {
		if i > 50 {
			t.Fatal("add flow did not complete")
		}
		msg := cmd()
		model, cmd = model.Update(msg)
		if _, done := msg.(addDoneMsg); done {
			return
		}
	}
	t.Fatal("add flow ended without completing")
}

func TestAddViewStatusPick(t *testing.T) {
	tabMsg := tea.KeyMsg{Type: tea.KeyTab}
	enterMsg := tea.KeyMsg{Type: tea.KeyEnter}

	t.Run("Defaults To Want To Watch", func(t *testing.T) {
		m, _ := newAddViewModel(t)

		if m.addStatus != models.WantToWatch {
			t.Errorf("expected default status %q, got %q", models.WantToWatch, m.addStatus)
		}
		if !strings.Contains(m.View(), string(models.WantToWatch)) {
			t.Error("expected the add view to display the selected status")
		}
	})

	t.Run("Tab Cycles Status", func(t *testing.T) {
		m, _ := newAddViewModel(t)

		m.Update(tabMsg)
		if m.addStatus != models.Watched {
			t.Errorf("expected %q after tab, got %q", models.Watched, m.addStatus)
		}
		if !strings.Contains(m.View(), string(models.Watched)) {
			t.Error("expected the add view to display the toggled status")
		}

		m.Update(tabMsg)
		if m.addStatus != models.WantToWatch {
			t.Errorf("expected %q after second tab, got %q", models.WantToWatch, m.addStatus)
		}
	})

	t.Run("Enter Adds With Selected Status", func(t *testing.T) {
		m, store := newAddViewModel(t)
		m.titleInput.SetValue("Inception")

		m.Update(tabMsg)
		model, cmd := m.Update(enterMsg)
		runAdd(t, model, cmd)

		if len(store.added) != 1 {
			t.Fatalf("expected one add, got %d", len(store.added))
		}
		if store.added[0] != models.Watched {
			t.Errorf("expected entry added as %q, got %q", models.Watched, store.added[0])
		}
	})

	t.Run("Enter Adds Default Status Without Toggle", func(t *testing.T) {
		m, store := newAddViewModel(t)
		m.titleInput.SetValue("Inception")

		model, cmd := m.Update(enterMsg)
		runAdd(t, model, cmd)

		if len(store.added) != 1 {
			t.Fatalf("expected one add, got %d", len(store.added))
		}
		if store.added[0] != models.WantToWatch {
			t.Errorf("expected entry added as %q, got %q", models.WantToWatch, store.added[0])
		}
	})

	t.Run("Reopening Add View Resets Status", func(t *testing.T) {
		m, _ := newAddViewModel(t)
		m.addStatus = models.Watched
		m.view = WatchlistView

		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})

		if m.view != AddView {
			t.Fatalf("expected add view, got %v", m.view)
		}
		if m.addStatus != models.WantToWatch {
			t.Errorf("expected status reset to %q, got %q", models.WantToWatch, m.addStatus)
		}
	})
}
