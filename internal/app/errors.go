package app

import "errors"

// ErrQuit signals a clean shutdown requested by the user. Run returns
// it; main treats it as success.
var ErrQuit = errors.New("quit requested")
