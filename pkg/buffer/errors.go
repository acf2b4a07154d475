package buffer

import "errors"

// ErrNotLoaded is returned by operations that need content when none is loaded.
var ErrNotLoaded = errors.New("no content loaded")
