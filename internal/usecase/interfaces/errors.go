package interfaces

import "errors"

// ErrConcurrentUpdate is returned by versioned writes when the stored version
// moved since the entity was read. Callers reload and retry.
var ErrConcurrentUpdate = errors.New("concurrent update")
