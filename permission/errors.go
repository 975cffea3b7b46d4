package permission

import "errors"

// Fixed-text signature errors, preserved verbatim per spec.md §7 — these
// strings are part of the observable consensus surface.
var (
	ErrDuplicateSignature  = errors.New("duplicate signature")
	ErrInvalidSignature    = errors.New("invalid signature")
	ErrInsufficientWeight  = errors.New("insufficient weight")
	ErrOwnerAccountMissing = errors.New("owner account not exists")
	ErrInvalidOwnerAddress = errors.New("invalid owner_address")
)
