package domain

import "errors"

// ErrNotFound is returned when a requested notebook or image does not exist in
// the document store, or when its name does not qualify (wrong extension,
// path components).
var ErrNotFound = errors.New("not found")

// ErrInvalidNotebook is returned when a file cannot be decoded as a notebook.
var ErrInvalidNotebook = errors.New("invalid notebook")

// ErrCommandNotRegistered is returned when an invocation names a command that
// is not in the process runner allow-list.
var ErrCommandNotRegistered = errors.New("command not registered")
