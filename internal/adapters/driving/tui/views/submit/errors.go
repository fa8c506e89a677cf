package submit

import "errors"

// ErrNoParseService is returned when no parse service is configured.
var ErrNoParseService = errors.New("parse service not available")
