package repository

import "errors"

var (
	ErrFailedToGet    = errors.New("failed to get record")
	ErrFailedToList   = errors.New("failed to list records")
	ErrFailedToSearch = errors.New("failed to search records")
	ErrFailedToIndex  = errors.New("failed to index record")
	ErrFailedToDelete = errors.New("failed to delete record")
)
