package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")
	ErrMissingAPIKey = fmt.Errorf("missing OMDb API key")

	// Lookup and transport errors
	ErrAPIRequest    = fmt.Errorf("API request failed")
	ErrTitleNotFound = fmt.Errorf("title not found")

	// Persistence outcomes
	ErrNotFound       = fmt.Errorf("record not found")
	ErrUserExists     = fmt.Errorf("username already taken")
	ErrDuplicateEntry = fmt.Errorf("entry already in watchlist")

	// Authentication errors
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrInvalidRating   = fmt.Errorf("rating must be between 1 and 5")
	ErrInvalidStatus   = fmt.Errorf("unknown watch status")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
)
