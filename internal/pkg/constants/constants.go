package constants

import (
	"fmt"
	"net/http"
)

// CodedError — ошибка с HTTP-кодом для центрального error handler'а.
// Операции репозитория сводят любой отказ ровно к одному из четырёх
// таксономических значений ниже, заворачивая исходную причину.
type CodedError struct {
	code  int
	msg   string
	cause error
}

func NewCodedError(code int, msg string) *CodedError {
	return &CodedError{code: code, msg: msg}
}

func (e *CodedError) Error() string {
	if e.cause != nil {
		return e.msg + ": " + e.cause.Error()
	}
	return e.msg
}

func (e *CodedError) Code() int { return e.code }

func (e *CodedError) Unwrap() error { return e.cause }

// Is matches any wrapped copy against its taxonomy sentinel.
func (e *CodedError) Is(target error) bool {
	t, ok := target.(*CodedError)
	return ok && t.code == e.code && t.msg == e.msg
}

// Wrapf returns a copy of the sentinel carrying the attempted operation's
// description as its cause.
func (e *CodedError) Wrapf(format string, args ...any) *CodedError {
	return &CodedError{code: e.code, msg: e.msg, cause: fmt.Errorf(format, args...)}
}

// Таксономия ошибок репозитория.
var (
	ErrConflict   = NewCodedError(http.StatusConflict, "запись уже существует")
	ErrForeignKey = NewCodedError(http.StatusUnprocessableEntity, "ссылка на несуществующую запись")
	ErrDBNotFound = NewCodedError(http.StatusNotFound, "запись не найдена")
	ErrStorage    = NewCodedError(http.StatusInternalServerError, "ошибка хранилища")
)

// Ошибки внешней оболочки: аутентификация, доступ, разбор входа.
var (
	ErrBadRequest       = NewCodedError(http.StatusBadRequest, "некорректный запрос")
	ErrUnauthorized     = NewCodedError(http.StatusUnauthorized, "неверный логин или пароль")
	ErrForbidden        = NewCodedError(http.StatusForbidden, "недостаточно прав")
	ErrMissingAuthToken = NewCodedError(http.StatusUnauthorized, "отсутствует токен авторизации")
	ErrInvalidAuthToken = NewCodedError(http.StatusUnauthorized, "некорректный токен авторизации")
)

// RoleAdminUK — единственная привилегированная роль, открывает экраны
// администрирования (ДЗО, пользователи).
const RoleAdminUK = "Администратор УК"

const (
	CookieKeyAuthToken = "auth_token"

	CtxKeyUserID    = "user_id"
	CtxKeyUserRole  = "user_role"
	CtxKeyRequestID = "request_id"
)

// Ключи конфигурации viper.
const (
	ViperKeyListenAddr  = "server.addr"
	ViperKeyCORSOrigin  = "server.cors_origin"
	ViperKeyDatabaseDSN = "database.dsn"
	ViperSecretKey      = "auth.secret"
	ViperKeyTokenTTL    = "auth.token_ttl"
)
