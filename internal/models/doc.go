// Package models defines domain entities and persistence interfaces for the reel movie tracker.
//
// The package contains two categories of types:
//
// 1. Data Transfer Objects (DTOs): Lightweight structs representing external provider data
//   - [Movie] : Normalized metadata record returned by a title lookup
//
// 2. Persistent Entities: Database-backed models with full lifecycle management
//   - [User] : Accounts with a bcrypt credential hash
//   - [Entry] : Watchlist rows binding an account to a catalog item, with status and rating
//
// Persistent entities implement the [Model] interface providing identity, timestamps, and validation.
package models
