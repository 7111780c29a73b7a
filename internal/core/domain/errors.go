package domain

import "errors"

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrMissingToken = errors.New("missing authentication token")
var ErrInvalidToken = errors.New("invalid authentication token")
var ErrAdminNotFound = errors.New("administrator not found")
var ErrClientNotFound = errors.New("client not found")
var ErrAssetNotFound = errors.New("asset not found")
var ErrUnsupportedMedia = errors.New("unsupported file type")
var ErrPasswordTooShort = errors.New("password must be at least 8 characters")
