package bitcoin

import "errors"

var (
	ErrMalformedHex             = errors.New("malformed hex")
	ErrMalformedJSON            = errors.New("malformed json")
	ErrInvalidOutpointID        = errors.New("invalid outpoint txid")
	ErrInvalidKey               = errors.New("invalid secret key")
	ErrInvalidPublicKey         = errors.New("invalid public key")
	ErrMissingSigningParameter  = errors.New("missing signing parameter")
	ErrUnsupportedSigningScheme = errors.New("unsupported signing scheme")
	ErrTruncatedTransaction     = errors.New("truncated transaction")
	ErrInvalidTransaction       = errors.New("invalid transaction encoding")
	ErrInputIndexOutOfRange     = errors.New("input index out of range")
	ErrScriptMismatch           = errors.New("script does not match signing scheme")
	ErrInvalidDigest            = errors.New("digest must be 32 bytes")
	ErrUnsupportedDigest        = errors.New("unsupported digest type")
	ErrInvalidAddress           = errors.New("invalid address")
	ErrScriptTooLarge           = errors.New("script too large")
)
