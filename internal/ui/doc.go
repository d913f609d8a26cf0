// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a multi-view workflow for watchlist management:
//  1. [LoginView] : Authenticate an account (or register a new one)
//  2. [WatchlistView] : Browse entries, toggle status, rate, and delete
//  3. [AddView] : Look up a title and add it under a chosen status
//  4. [ConfirmClearView] : Confirm wholesale deletion
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern, receiving messages via small struct message types.
// Progress updates flow through a channel from the WatchlistEngine, providing non-blocking status reporting during lookups.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, y/n, q) with contextual help displayed via charmbracelet/bubbles/help.
package ui
