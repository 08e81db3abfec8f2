package v1alpha1

import "errors"

// ErrInvalidPort is returned when the port cannot be coerced to a TCP port number.
var ErrInvalidPort = errors.New("invalid port")

// ErrUnknownField is returned when a field key is not one of Fields().
var ErrUnknownField = errors.New("unknown connection field")
