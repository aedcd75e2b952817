package storage

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PattemChaitanya/custom-gateway/pkg/model"
)

var (
	// ErrConnectionFailed marks an unreachable backend or a failed probe.
	ErrConnectionFailed = errors.New("storage: connection failed")

	// ErrSchemaMissing marks an absent table. Adapters recover by creating
	// the schema and retrying once.
	ErrSchemaMissing = errors.New("storage: schema missing")

	// ErrInitializationTimeout marks a tier attempt that exceeded its
	// sub-timeout or the overall initialization deadline.
	ErrInitializationTimeout = errors.New("storage: initialization timed out")

	// ErrQueryUnsupported marks a predicate shape the emulation layer
	// cannot express (anything other than eq/ne).
	ErrQueryUnsupported = errors.New("storage: unsupported query")

	// ErrNoResult is returned by Result.One for an empty result.
	ErrNoResult = errors.New("storage: no result found")

	// ErrMultipleResults is returned by Result.One and Result.OneOrNone
	// when more than one row matched.
	ErrMultipleResults = errors.New("storage: multiple results found")

	// ErrTierTransition rejects session acquisition while the manager is
	// switching tiers.
	ErrTierTransition = errors.New("storage: tier transition in progress")

	// ErrClosed marks an operation on a released session or adapter.
	ErrClosed = errors.New("storage: closed")
)

// IntegrityError reports a breached uniqueness constraint. The write is
// rejected and not retried; the caller decides what to do with the conflict.
type IntegrityError struct {
	Kind    model.Kind
	Columns []string
	Err     error
}

func (e *IntegrityError) Error() string {
	msg := fmt.Sprintf("storage: %s violates unique key (%s)", e.Kind, strings.Join(e.Columns, ", "))
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *IntegrityError) Unwrap() error { return e.Err }
