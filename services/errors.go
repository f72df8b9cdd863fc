package services

import (
	"errors"
	"fmt"
)

var (
	ErrRecipeNotFound  = errors.New("recipe not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrNotOwner        = errors.New("not authorized")
)

// FetchError reports a failed call to the openFDA enforcement feed.
// Status is the upstream HTTP status, 0 on transport errors.
type FetchError struct {
	Status int
	Msg    string
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("openFDA API error %d: %s", e.Status, e.Msg)
	}
	return fmt.Sprintf("openFDA fetch failed: %s", e.Msg)
}

func (e *FetchError) Unwrap() error { return e.Err }

// StorageError wraps a database failure on the recall cache path.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("recall storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
