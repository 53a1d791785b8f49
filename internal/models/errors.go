package models

import "errors"

// ErrAccountNotFound is returned by storage when no account matches the key.
var ErrAccountNotFound = errors.New("account not found")
