package item

import "errors"

var (
	ErrItemNotFound  = errors.New("item not found")
	ErrOwnerNotFound = errors.New("owner not found")
)
