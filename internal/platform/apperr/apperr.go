// Package apperr define los tipos de error de negocio que los services devuelven
// y su traducción a status HTTP.
package apperr

import (
	"errors"
	"net/http"
)

type Kind string

const (
	KindNotFound     Kind = "not_found"
	KindInvalidData  Kind = "invalid_data"
	KindAccessDenied Kind = "access_denied"
)

// Error lleva un Kind para decidir y un Msg que es lo único que ve el cliente.
// Error() devuelve solo Msg: un AccessDenied y un NotFound con el mismo mensaje
// son indistinguibles desde afuera.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

// Is compara por Kind, así errors.Is(err, ErrNotFound) funciona con cualquier mensaje.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Msg == "" || t.Msg == e.Msg)
}

var (
	ErrNotFound     = &Error{Kind: KindNotFound}
	ErrInvalidData  = &Error{Kind: KindInvalidData}
	ErrAccessDenied = &Error{Kind: KindAccessDenied}
)

func NotFound(msg string) error     { return &Error{Kind: KindNotFound, Msg: msg} }
func InvalidData(msg string) error  { return &Error{Kind: KindInvalidData, Msg: msg} }
func AccessDenied(msg string) error { return &Error{Kind: KindAccessDenied, Msg: msg} }

// Status mapea el error al status HTTP. AccessDenied sale como 404 a propósito.
func Status(err error) int {
	var e *Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError
	}
	switch e.Kind {
	case KindNotFound, KindAccessDenied:
		return http.StatusNotFound
	case KindInvalidData:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Message es el texto seguro para devolver al cliente.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Msg != "" {
		return e.Msg
	}
	return "internal error"
}

// Write escribe el error como text/plain, igual que http.Error.
func Write(w http.ResponseWriter, err error) {
	http.Error(w, Message(err), Status(err))
}
