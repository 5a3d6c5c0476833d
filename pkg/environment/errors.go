package environment

import "errors"

// ErrUnknownEnvironment is returned by Parse for unrecognized values.
var ErrUnknownEnvironment = errors.New("unknown application environment")
