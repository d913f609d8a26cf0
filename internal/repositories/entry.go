package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/avelasco/reel/internal/models"
	"github.com/avelasco/reel/internal/shared"
	"github.com/charmbracelet/log"
)

// EntryRepository handles watchlist persistence for [models.Entry].
type EntryRepository struct {
	db     *sql.DB
	logger *log.Logger
}

// NewEntryRepository creates a new [EntryRepository] with the given database connection
func NewEntryRepository(db *sql.DB, logger *log.Logger) *EntryRepository {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &EntryRepository{db: db, logger: logger}
}

// Add inserts a watchlist row for the given account and lookup record.
//
// The (user_id, imdb_id) pair is unique per account: a duplicate add is a
// no-op that returns [shared.ErrDuplicateEntry], leaving the original row
// and its status untouched.
func (r *EntryRepository) Add(userID string, movie models.Movie, status models.Status) (*models.Entry, error) {
	entry := models.NewEntry(userID, movie, status)
	if err := entry.Validate(); err != nil {
		r.logger.Error("entry rejected", "event", "MovieAddFailed", "user_id", userID, "title", movie.Title, "error", err)
		return nil, err
	}
	entry.SetID(shared.GenerateID())

	query := `
		INSERT OR IGNORE INTO movies (id, user_id, imdb_id, title, year, director, genre, poster_url, status, date_added)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		entry.ID(), userID, movie.ImdbID, movie.Title, movie.Year,
		movie.Director, movie.Genre, movie.Poster, string(status), entry.DateAdded(),
	)
	if err != nil {
		r.logger.Error("entry insert failed", "event", "MovieAddFailed", "user_id", userID, "imdb_id", movie.ImdbID, "error", err)
		return nil, fmt.Errorf("failed to insert entry: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		r.logger.Info("duplicate entry ignored", "event", "MovieIgnoredDuplicate", "user_id", userID, "imdb_id", movie.ImdbID)
		return nil, shared.ErrDuplicateEntry
	}

	r.logger.Info("entry added", "event", "MovieAdded", "user_id", userID, "imdb_id", movie.ImdbID, "title", movie.Title, "status", string(status))
	return entry, nil
}

const entryColumns = `id, user_id, imdb_id, title, year, director, genre, poster_url, status, user_rating, date_added`

// List retrieves every entry owned by the account, newest first.
// An empty account id is a caller error and yields an empty slice.
func (r *EntryRepository) List(userID string) ([]*models.Entry, error) {
	if userID == "" {
		r.logger.Error("list rejected", "event", "MoviesFetchFailed", "reason", "no account id")
		return []*models.Entry{}, fmt.Errorf("%w: account id cannot be empty", shared.ErrInvalidInput)
	}

	query := fmt.Sprintf(`SELECT %s FROM movies WHERE user_id = ? ORDER BY date_added DESC`, entryColumns)
	return r.queryEntries(query, userID)
}

// ListByStatus retrieves the account's entries in a single status bucket, newest first.
func (r *EntryRepository) ListByStatus(userID string, status models.Status) ([]*models.Entry, error) {
	if userID == "" {
		return []*models.Entry{}, fmt.Errorf("%w: account id cannot be empty", shared.ErrInvalidInput)
	}
	if !status.Valid() {
		return []*models.Entry{}, fmt.Errorf("%w: %q", shared.ErrInvalidStatus, status)
	}

	query := fmt.Sprintf(`SELECT %s FROM movies WHERE user_id = ? AND status = ? ORDER BY date_added DESC`, entryColumns)
	return r.queryEntries(query, userID, string(status))
}

func (r *EntryRepository) queryEntries(query string, args ...any) ([]*models.Entry, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	var entries []*models.Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return entries, nil
}

func scanEntry(rows *sql.Rows) (*models.Entry, error) {
	var (
		id        string
		userID    string
		imdbID    string
		title     sql.NullString
		year      sql.NullString
		director  sql.NullString
		genre     sql.NullString
		posterURL sql.NullString
		status    string
		rating    sql.NullInt64
		dateAdded time.Time
	)

	err := rows.Scan(&id, &userID, &imdbID, &title, &year, &director, &genre, &posterURL, &status, &rating, &dateAdded)
	if err != nil {
		return nil, fmt.Errorf("failed to scan entry: %w", err)
	}

	movie := models.Movie{
		ImdbID:   imdbID,
		Title:    title.String,
		Year:     year.String,
		Director: director.String,
		Genre:    genre.String,
		Poster:   posterURL.String,
	}

	entry := models.NewEntry(userID, movie, models.Status(status))
	entry.SetID(id)
	entry.SetDateAdded(dateAdded)
	if rating.Valid {
		v := int(rating.Int64)
		entry.SetRating(&v)
	}

	return entry, nil
}

// UpdateStatus moves an entry between the two watch states.
// Moving back to "Want to Watch" also clears any rating; rating only exists
// while an entry is watched.
func (r *EntryRepository) UpdateStatus(entryID string, status models.Status) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", shared.ErrInvalidStatus, status)
	}

	var result sql.Result
	var err error
	if status == models.WantToWatch {
		result, err = r.db.Exec(`UPDATE movies SET status = ?, user_rating = NULL WHERE id = ?`, string(status), entryID)
	} else {
		result, err = r.db.Exec(`UPDATE movies SET status = ? WHERE id = ?`, string(status), entryID)
	}
	if err != nil {
		r.logger.Error("status update failed", "event", "MovieStatusUpdateFailed", "entry_id", entryID, "error", err)
		return fmt.Errorf("failed to update status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: entry %s", shared.ErrNotFound, entryID)
	}

	r.logger.Info("status updated", "event", "MovieStatusUpdated", "entry_id", entryID, "status", string(status))
	return nil
}

// UpdateRating sets or clears an entry's rating.
//
// A nil rating clears unconditionally; a concrete rating must be 1-5 and
// only applies while the entry's status is "Watched".
func (r *EntryRepository) UpdateRating(entryID string, rating *int) error {
	if err := models.ValidateRating(rating); err != nil {
		return err
	}

	var result sql.Result
	var err error
	if rating == nil {
		result, err = r.db.Exec(`UPDATE movies SET user_rating = NULL WHERE id = ?`, entryID)
	} else {
		result, err = r.db.Exec(
			`UPDATE movies SET user_rating = ? WHERE id = ? AND status = ?`,
			*rating, entryID, string(models.Watched),
		)
	}
	if err != nil {
		r.logger.Error("rating update failed", "event", "MovieRatingUpdateFailed", "entry_id", entryID, "error", err)
		return fmt.Errorf("failed to update rating: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: no watched entry %s", shared.ErrNotFound, entryID)
	}

	r.logger.Info("rating updated", "event", "MovieRatingUpdated", "entry_id", entryID)
	return nil
}

// Delete removes a single entry by its id.
func (r *EntryRepository) Delete(entryID string) error {
	result, err := r.db.Exec(`DELETE FROM movies WHERE id = ?`, entryID)
	if err != nil {
		r.logger.Error("delete failed", "event", "MovieDeleteFailed", "entry_id", entryID, "error", err)
		return fmt.Errorf("failed to delete entry: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: entry %s", shared.ErrNotFound, entryID)
	}

	r.logger.Info("entry deleted", "event", "MovieDeleted", "entry_id", entryID)
	return nil
}

// DeleteAll removes every entry owned by the account and returns the count.
// A storage failure is reported as an explicit error, never as a zero count.
func (r *EntryRepository) DeleteAll(userID string) (int, error) {
	if userID == "" {
		return 0, fmt.Errorf("%w: account id cannot be empty", shared.ErrInvalidInput)
	}

	result, err := r.db.Exec(`DELETE FROM movies WHERE user_id = ?`, userID)
	if err != nil {
		r.logger.Error("clear failed", "event", "MoviesClearFailed", "user_id", userID, "error", err)
		return 0, fmt.Errorf("failed to delete entries: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}

	r.logger.Info("watchlist cleared", "event", "MoviesCleared", "user_id", userID, "count", rows)
	return int(rows), nil
}
