package binarycodec

import "errors"

var (
	// ErrUnsupportedTransactionType is returned when no serializer is registered for a type.
	ErrUnsupportedTransactionType = errors.New("unsupported transaction type")
	// ErrDuplicateSerializer is returned when a second serializer is registered for a type.
	ErrDuplicateSerializer = errors.New("serializer already registered")
	// ErrTransactionModelMismatch is returned when a model's Go type does not match its declared type.
	ErrTransactionModelMismatch = errors.New("transaction model does not match serializer")
	// ErrNonZeroPadding is returned when padding or reserved bytes are not zero.
	ErrNonZeroPadding = errors.New("non-zero padding")
	// ErrTrailingBytes is returned when bytes remain after a complete transaction.
	ErrTrailingBytes = errors.New("trailing bytes after transaction")
	// ErrMissingSigner is returned when an embedded transaction has no signer.
	ErrMissingSigner = errors.New("embedded transaction has no signer")
	// ErrPayloadTooShort is returned when a payload is too short to hash or sign.
	ErrPayloadTooShort = errors.New("payload too short")
)
