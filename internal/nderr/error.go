// Package nderr defines the flat error sum used across the proof engine.
//
// A single concrete type carries a discriminating Kind plus whatever
// payload that kind needs (a formula, a term, a bare name). Every
// constructor mirrors a clause of the error handling design: callers
// compare Kind, never the message text, when they need to branch.
package nderr

import "fmt"

// Kind discriminates the error variants. The set is closed: adding a
// case here is a deliberate design event, same as adding a rule.
type Kind int

const (
	CommandError Kind = iota
	InvalidArguments
	InvalidFormula
	InvalidTerm
	InvalidCommand
	UnknownCommand
	ArgumentsRequired
	TooMuchArguments
	AlreadyExists
	UnfinishedProof
	UnexpectedEOF
	EmptyFile
	UnableToRead
)

func (k Kind) String() string {
	switch k {
	case CommandError:
		return "CommandError"
	case InvalidArguments:
		return "InvalidArguments"
	case InvalidFormula:
		return "InvalidFormula"
	case InvalidTerm:
		return "InvalidTerm"
	case InvalidCommand:
		return "InvalidCommand"
	case UnknownCommand:
		return "UnknownCommand"
	case ArgumentsRequired:
		return "ArgumentsRequired"
	case TooMuchArguments:
		return "TooMuchArguments"
	case AlreadyExists:
		return "AlreadyExists"
	case UnfinishedProof:
		return "UnfinishedProof"
	case UnexpectedEOF:
		return "UnexpectedEOF"
	case EmptyFile:
		return "EmptyFile"
	case UnableToRead:
		return "UnableToRead"
	default:
		return "Unknown"
	}
}

// Error is the single error type returned anywhere in the proof engine.
// Name carries the offending identifier for the name-keyed kinds
// (InvalidCommand, UnknownCommand, TooMuchArguments, EmptyFile);
// AlreadyExists carries a formatted Msg instead. Subject carries the
// Stringer payload for InvalidFormula and InvalidTerm.
type Error struct {
	Kind    Kind
	Msg     string
	Name    string
	Subject fmt.Stringer
}

func (e *Error) Error() string {
	switch e.Kind {
	case CommandError, InvalidArguments, ArgumentsRequired:
		return e.Msg
	case InvalidFormula, InvalidTerm:
		return e.Msg
	case InvalidCommand:
		return fmt.Sprintf("Command '%s' exists but is not valid in this context", e.Name)
	case UnknownCommand:
		return fmt.Sprintf("Command %s does not exist", e.Name)
	case TooMuchArguments:
		return fmt.Sprintf("Command '%s' does not expect arguments", e.Name)
	case AlreadyExists:
		return e.Msg
	case UnfinishedProof:
		return "proof is unfinished at end of file"
	case UnexpectedEOF:
		return "unexpected end of input"
	case EmptyFile:
		return fmt.Sprintf("file '%s' is empty", e.Name)
	case UnableToRead:
		return "unable to read input"
	default:
		return e.Msg
	}
}

func NewCommandError(format string, args ...any) *Error {
	return &Error{Kind: CommandError, Msg: fmt.Sprintf(format, args...)}
}

func NewInvalidArguments(format string, args ...any) *Error {
	return &Error{Kind: InvalidArguments, Msg: fmt.Sprintf(format, args...)}
}

func NewInvalidFormula(f fmt.Stringer, format string, args ...any) *Error {
	return &Error{Kind: InvalidFormula, Subject: f, Msg: fmt.Sprintf(format, args...)}
}

func NewInvalidTerm(t fmt.Stringer, format string, args ...any) *Error {
	return &Error{Kind: InvalidTerm, Subject: t, Msg: fmt.Sprintf(format, args...)}
}

func NewInvalidCommand(name string) *Error {
	return &Error{Kind: InvalidCommand, Name: name}
}

func NewUnknownCommand(name string) *Error {
	return &Error{Kind: UnknownCommand, Name: name}
}

func NewArgumentsRequired(format string, args ...any) *Error {
	return &Error{Kind: ArgumentsRequired, Msg: fmt.Sprintf(format, args...)}
}

func NewTooMuchArguments(name string) *Error {
	return &Error{Kind: TooMuchArguments, Name: name}
}

func NewAlreadyExists(format string, args ...any) *Error {
	return &Error{Kind: AlreadyExists, Msg: fmt.Sprintf(format, args...)}
}

func NewUnfinishedProof() *Error {
	return &Error{Kind: UnfinishedProof}
}

func NewUnexpectedEOF() *Error {
	return &Error{Kind: UnexpectedEOF}
}

func NewEmptyFile(name string) *Error {
	return &Error{Kind: EmptyFile, Name: name}
}

func NewUnableToRead() *Error {
	return &Error{Kind: UnableToRead}
}
