package service

import "errors"

// ErrNoProvider indicates the Enhancer was built without a text generator.
var ErrNoProvider = errors.New("sponsorlink: no text provider configured")
