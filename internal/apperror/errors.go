// Package apperror описывает типизированные ошибки уровня приложения.
// Репозитории и сервисы возвращают *Error, а HTTP слой выбирает статус по Kind.
package apperror

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindInternal Kind = iota
	KindUnauthenticated
	KindUnauthorized
	KindInvalidAccountState
	KindNotFound
	KindConflict
	KindInvalid
)

// Сентинелы для errors.Is
var (
	ErrInternal            = &Error{Kind: KindInternal, Message: "internal error"}
	ErrUnauthenticated     = &Error{Kind: KindUnauthenticated, Message: "could not validate credentials"}
	ErrUnauthorized        = &Error{Kind: KindUnauthorized, Message: "not enough permissions"}
	ErrInvalidAccountState = &Error{Kind: KindInvalidAccountState, Message: "invalid account state"}
	ErrNotFound            = &Error{Kind: KindNotFound, Message: "not found"}
	ErrConflict            = &Error{Kind: KindConflict, Message: "already exists"}
	ErrInvalid             = &Error{Kind: KindInvalid, Message: "invalid request"}
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is : две ошибки равны, если совпадает Kind
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf возвращает KindInternal для любых нетипизированных ошибок
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// PublicMessage : текст для клиента, внутренние ошибки не раскрываются
func PublicMessage(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Kind != KindInternal {
		return e.Message
	}
	return "internal server error"
}

func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindUnauthenticated, KindUnauthorized:
		return http.StatusUnauthorized
	case KindInvalidAccountState, KindInvalid, KindConflict:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
