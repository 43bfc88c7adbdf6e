package contentmap

import "errors"

// ErrMalformed is returned when text is not a JSON object of string values.
var ErrMalformed = errors.New("contentmap: malformed content")
