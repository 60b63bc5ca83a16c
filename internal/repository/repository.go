package repository

// Package repository contains data access layer abstractions.
// Implementations live in subpackages (postgres, memory) inside this directory.
//
// Not-found conditions are reported as sql.ErrNoRows by every implementation so callers can
// translate them the same way regardless of the backend.

import "errors"

// ErrDuplicateID is returned by Create when the supplied id is already taken.
var ErrDuplicateID = errors.New("duplicate id")
