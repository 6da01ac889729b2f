package salary

import "errors"

// ErrProviderNotFound is returned for unknown providers and for providers of
// another owner alike.
var ErrProviderNotFound = errors.New("service provider not found")
