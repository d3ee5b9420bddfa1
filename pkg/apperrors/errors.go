package apperrors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// AppError - основная структура ошибки приложения
type AppError struct {
	Code     ErrorCode
	Domain   string
	Message  string
	Err      error
	HTTPCode int
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s:%s] %s (%v)", e.Domain, e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s:%s] %s", e.Domain, e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New - базовый конструктор
func New(code ErrorCode, domain, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Domain:   domain,
		Message:  message,
		HTTPCode: httpCode,
	}
}

// Wrap - оборачивает существующую ошибку в AppError
func Wrap(err error, code ErrorCode, domain, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Domain:   domain,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

// Is - обертка над стандартной функцией errors.Is
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As - обертка над стандартной функцией errors.As
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Предопределенные ошибки
var (
	// Аутентификация и сессия
	ErrInvalidCredentials = New(CodeInvalidCredentials, "auth", "Invalid username or password", http.StatusUnauthorized)
	ErrWeakPassword       = New(CodeValidationFailed, "auth", "Password must be at least 6 characters", http.StatusBadRequest)

	// Пользователи
	ErrUsernameTaken = New(CodeAlreadyExists, "users", "Username is already taken", http.StatusConflict)
	ErrUserNotFound  = New(CodeNotFound, "users", "User not found", http.StatusNotFound)

	// Отклики
	ErrJobNotFound = New(CodeNotFound, "jobs", "Job application not found", http.StatusNotFound)
)

// InternalError оборачивает неизвестную системную ошибку
func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "system", "Internal server error", http.StatusInternalServerError)
}

// StoreUnavailable оборачивает ошибку транспорта или не-2xx ответ
// внешнего хранилища данных. Таких ошибок не ретраим: вызывающий
// обязан считать операцию проваленной без изменения состояния.
func StoreUnavailable(err error) *AppError {
	return Wrap(err, CodeExternalServiceError, "store", "Data store is unavailable", http.StatusBadGateway)
}
