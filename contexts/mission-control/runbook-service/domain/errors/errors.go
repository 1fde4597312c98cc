package errors

import "errors"

var ErrRunbookNotFound = errors.New("unknown reason code")
