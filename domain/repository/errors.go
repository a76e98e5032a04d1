package repository

import "errors"

// ErrNotFound is returned by repositories when a query matches no document.
// Usecases translate it into the appropriate AppError.
var ErrNotFound = errors.New("repository: document not found")
