package flagparser

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidFlagDefinition   = errors.New("invalid flag definition")
	ErrUnexpectedToken         = errors.New("unexpected token")
	ErrMissingRequiredArgument = errors.New("missing required argument")
	ErrInvalidArgument         = errors.New("invalid argument")
)

// InvalidFlagDefinitionError is returned by Flag.AddArgument when a
// required argument is added after an optional one.
type InvalidFlagDefinitionError struct {
	Flag     string
	Previous string // the optional argument already in place
	Argument string
}

func (e *InvalidFlagDefinitionError) Error() string {
	return fmt.Sprintf("flag %q: required argument %q follows an optional one (%s is optional)",
		e.Flag, e.Argument, e.Previous)
}

func (e *InvalidFlagDefinitionError) Unwrap() error { return ErrInvalidFlagDefinition }

// UnexpectedTokenError is returned by Parse for a stray token when stray
// tokens are not allowed.
type UnexpectedTokenError struct {
	Token string
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("encountered unexpected argument %q", e.Token)
}

func (e *UnexpectedTokenError) Unwrap() error { return ErrUnexpectedToken }

// MissingRequiredArgumentError is returned by Parse when the input ends
// before all required arguments of the last flag were supplied.
type MissingRequiredArgumentError struct {
	Flag     string
	Argument string
}

func (e *MissingRequiredArgumentError) Error() string {
	return fmt.Sprintf("flag %q is missing required argument %q", e.Flag, e.Argument)
}

func (e *MissingRequiredArgumentError) Unwrap() error { return ErrMissingRequiredArgument }

// InvalidArgumentError is returned by Parse when a token cannot fill the
// argument slot it was meant for.
type InvalidArgumentError struct {
	Flag     string
	Argument *Argument
	Value    string
	Observed DataType
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %q (of flag %q), got %s (value=%s), expected %s",
		e.Argument.Name(), e.Flag, e.Observed, e.Value, e.Argument.Type())
}

func (e *InvalidArgumentError) Unwrap() error { return ErrInvalidArgument }
