package userservice

import "errors"

// ErrInvalidCredentials covers both an unknown name and a wrong password.
var ErrInvalidCredentials = errors.New("invalid username or password")
