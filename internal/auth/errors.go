package auth

import "errors"

var (
	ErrorHashEncodingInvalid    = errors.New("hash_encoding_invalid")
	ErrorHashVersionUnsupported = errors.New("hash_version_unsupported")
)
