package errorx

import (
	"net/http"

	"github.com/pkg/errors"
)

const (
	MsgMissingFields = "Missing required fields"
	MsgCreateFailed  = "Failed to create transaction"
	MsgBadRequest    = "Bad request"
)

// Kind tags where in the build pipeline a request failed.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindRequest
	KindKeyDecode
	KindInstruction
	KindNetwork
	KindSerialization
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindRequest:
		return "request"
	case KindKeyDecode:
		return "key_decode"
	case KindInstruction:
		return "instruction"
	case KindNetwork:
		return "network"
	case KindSerialization:
		return "serialization"
	default:
		return "unknown"
	}
}

type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return e.Kind.String() + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ErrorResponse is the body written for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

func New(kind Kind, err error) error {
	return &Error{Kind: kind, Err: err}
}

// Wrap tags err with kind and annotates it with msg. A nil err stays nil.
func Wrap(kind Kind, err error, msg string) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Err: errors.Wrap(err, msg)}
}

func Validation(msg string) error {
	return &Error{Kind: KindValidation, Err: errors.New(msg)}
}

// KindOf reports the kind of the outermost tagged error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// Status maps a kind to the HTTP status returned to callers.
func Status(kind Kind) int {
	if kind == KindValidation {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// Response converts err into the status code and fixed, non-diagnostic body
// sent to the client. It matches httpx.SetErrorHandlerCtx's handler shape.
func Response(err error) (int, any) {
	kind := KindOf(err)
	if kind == KindValidation {
		return Status(kind), &ErrorResponse{Error: MsgMissingFields}
	}
	return Status(kind), &ErrorResponse{Error: MsgCreateFailed}
}
