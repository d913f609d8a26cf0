package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/avelasco/reel/internal/models"
	"github.com/avelasco/reel/internal/shared"
	"github.com/charmbracelet/log"
	"golang.org/x/crypto/bcrypt"
)

// UserRepository handles account persistence for [models.User].
type UserRepository struct {
	db     *sql.DB
	logger *log.Logger
}

// NewUserRepository creates a new [UserRepository] with the given database connection
func NewUserRepository(db *sql.DB, logger *log.Logger) *UserRepository {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &UserRepository{db: db, logger: logger}
}

// Create registers a new account: hashes the raw password with bcrypt and
// inserts the row. A duplicate username returns [shared.ErrUserExists]
// without mutating state.
func (r *UserRepository) Create(username, password string) (*models.User, error) {
	if err := models.ValidatePassword(password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.NewUser(username, string(hash))
	if err := user.Validate(); err != nil {
		return nil, err
	}
	user.SetID(shared.GenerateID())

	query := `INSERT INTO users (id, username, hashed_password, created_at) VALUES (?, ?, ?, ?)`

	_, err = r.db.Exec(query, user.ID(), user.Username(), user.HashedPassword(), user.CreatedAt())
	if isUniqueViolation(err) {
		r.logger.Warn("account creation rejected", "event", "UserCreationFailed", "username", username, "reason", "AlreadyExists")
		return nil, shared.ErrUserExists
	}
	if err != nil {
		r.logger.Error("account creation failed", "event", "UserCreationFailed", "username", username, "error", err)
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	r.logger.Info("account created", "event", "UserCreated", "username", username, "user_id", user.ID())
	return user, nil
}

// FindByUsername retrieves an account, including its credential hash.
// A miss returns [shared.ErrNotFound].
func (r *UserRepository) FindByUsername(username string) (*models.User, error) {
	query := `SELECT id, username, hashed_password, created_at FROM users WHERE username = ?`

	var (
		id        string
		name      string
		hash      string
		createdAt time.Time
	)

	err := r.db.QueryRow(query, username).Scan(&id, &name, &hash, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: user %q", shared.ErrNotFound, username)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	user := models.NewUser(name, hash)
	user.SetID(id)
	user.SetCreatedAt(createdAt)
	return user, nil
}

// Authenticate verifies a username/password pair against the stored hash.
// Both an unknown name and a wrong password return [shared.ErrInvalidCredentials].
func (r *UserRepository) Authenticate(username, password string) (*models.User, error) {
	user, err := r.FindByUsername(username)
	if errors.Is(err, shared.ErrNotFound) {
		return nil, shared.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword()), []byte(password)); err != nil {
		r.logger.Warn("login rejected", "event", "LoginFailed", "username", username)
		return nil, shared.ErrInvalidCredentials
	}

	r.logger.Info("login succeeded", "event", "LoginSucceeded", "username", username, "user_id", user.ID())
	return user, nil
}
