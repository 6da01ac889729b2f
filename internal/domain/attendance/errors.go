package attendance

import "errors"

var (
	// ErrProviderNotOwned rejects a batch naming a provider that does not
	// exist or belongs to another owner.
	ErrProviderNotOwned = errors.New("service provider does not belong to this owner")
	// ErrStorage wraps any persistence failure while writing a batch.
	ErrStorage = errors.New("attendance storage failure")
)
