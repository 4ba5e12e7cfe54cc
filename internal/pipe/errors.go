package pipe

import "errors"

// ErrMalformedRecord is returned by ParseRecord for lines that lack a level
// or a tag.
var ErrMalformedRecord = errors.New("logshim: malformed record")
