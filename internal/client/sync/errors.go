package sync

import (
	"errors"
	"fmt"

	"github.com/iudanet/oneclickcopy/internal/client/backup"
)

var (
	// ErrNotSignedIn indicates that no session exists, nothing was sent to the remote
	ErrNotSignedIn = errors.New("not signed in")

	// ErrNoBackupFound indicates that the remote holds no backup object
	ErrNoBackupFound = errors.New("no backup found")

	// ErrMalformedBackup indicates that the backup object could not be decoded
	ErrMalformedBackup = backup.ErrMalformedBackup
)

// TransportError wraps any failure reported by the remote store
type TransportError struct {
	Err error
	Op  string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("remote %s failed: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ErrorKind classifies sync failures for callers
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindNotSignedIn
	KindNoBackupFound
	KindMalformedBackup
	KindTransport
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotSignedIn:
		return "not_signed_in"
	case KindNoBackupFound:
		return "no_backup_found"
	case KindMalformedBackup:
		return "malformed_backup"
	case KindTransport:
		return "transport"
	default:
		return "unknown"
	}
}

// KindOf returns the kind of a sync error, KindUnknown for nil or foreign errors
func KindOf(err error) ErrorKind {
	var transportErr *TransportError
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrNotSignedIn):
		return KindNotSignedIn
	case errors.Is(err, ErrNoBackupFound):
		return KindNoBackupFound
	case errors.Is(err, ErrMalformedBackup):
		return KindMalformedBackup
	case errors.As(err, &transportErr):
		return KindTransport
	default:
		return KindUnknown
	}
}
