package constants

import "errors"

// Token handling errors.
var (
	ErrNoAccessToken = errors.New("token response contained no access token")
)
