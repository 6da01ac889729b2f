package owner

import "errors"

var ErrOwnerNotFound = errors.New("owner not found")
