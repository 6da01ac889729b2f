package provider

import "errors"

// ErrServiceProviderNotFound also covers providers that belong to another owner.
var ErrServiceProviderNotFound = errors.New("service provider not found")
