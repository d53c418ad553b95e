package catalog

import "errors"

var ErrNotFound = errors.New("room not found")
