package errors

import "net/http"

// Messages carried in the uniform error body.
const (
	MsgNotFound         = "resource not found"
	MsgUnprocessable    = "unprocessable"
	MsgInternalError    = "internal server error"
	MsgMethodNotAllowed = "method not allowed"
	MsgUpstreamError    = "upstream error"
)

// Kind classifies an application error. The zero value is KindInternal so an
// unclassified error never leaks as a client error.
type Kind uint8

const (
	KindInternal Kind = iota
	KindNotFound
	KindValidation
	KindStorage
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation"
	case KindStorage:
		return "storage"
	default:
		return "internal"
	}
}

// Status maps a kind onto its HTTP status code.
func (k Kind) Status() int {
	switch k {
	case KindNotFound:
		return http.StatusNotFound
	case KindValidation, KindStorage:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// MessageFor returns the body message used for a status code.
func MessageFor(status int) string {
	switch status {
	case http.StatusNotFound:
		return MsgNotFound
	case http.StatusUnprocessableEntity:
		return MsgUnprocessable
	case http.StatusMethodNotAllowed:
		return MsgMethodNotAllowed
	case http.StatusBadGateway:
		return MsgUpstreamError
	default:
		return MsgInternalError
	}
}
