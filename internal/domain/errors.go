package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode - код ошибки для API
type ErrorCode string

const (
	ErrorCodeNotFound          ErrorCode = "NOT_FOUND"
	ErrorCodeRepositoryExists  ErrorCode = "REPOSITORY_EXISTS"
	ErrorCodeValidation        ErrorCode = "VALIDATION"
	ErrorCodeGitHubFetchFailed ErrorCode = "GITHUB_FETCH_FAILED"
	ErrorCodeEvaluationFailed  ErrorCode = "EVALUATION_FAILED"
	ErrorCodeInternalError     ErrorCode = "INTERNAL_ERROR"
	ErrorCodeInvalidInput      ErrorCode = "INVALID_INPUT"
)

// Error - доменная ошибка с HTTP статусом и кодом
type Error struct {
	Status  int       // HTTP status code
	Code    ErrorCode // Код ошибки для API
	Message string    // Сообщение об ошибке
	Err     error     // Wrapped error для контекста
}

// Error реализует интерфейс error
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap позволяет использовать errors.Is и errors.As
func (e *Error) Unwrap() error {
	return e.Err
}

// Is сравнивает доменные ошибки по коду, чтобы errors.Is работал
// для обёрнутых вариантов предопределённых ошибок
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// NewError создаёт новую доменную ошибку
func NewError(status int, code ErrorCode, message string, err error) *Error {
	return &Error{
		Status:  status,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Предопределённые доменные ошибки
var (
	// ErrRepositoryNotFound - репозиторий не найден
	ErrRepositoryNotFound = NewError(
		http.StatusNotFound,
		ErrorCodeNotFound,
		"repository not found",
		nil,
	)

	// ErrIssueNotFound - issue не найден
	ErrIssueNotFound = NewError(
		http.StatusNotFound,
		ErrorCodeNotFound,
		"issue not found",
		nil,
	)

	// ErrEvaluationNotFound - для issue ещё нет ни одной оценки
	ErrEvaluationNotFound = NewError(
		http.StatusNotFound,
		ErrorCodeNotFound,
		"evaluation not found",
		nil,
	)

	// ErrRepositoryExists - репозиторий с такими owner и name уже зарегистрирован
	ErrRepositoryExists = NewError(
		http.StatusConflict,
		ErrorCodeRepositoryExists,
		"repository already registered",
		nil,
	)

	// ErrGitHubFetch - запрос к GitHub не удался
	ErrGitHubFetch = NewError(
		http.StatusBadGateway,
		ErrorCodeGitHubFetchFailed,
		"GitHub fetch failed",
		nil,
	)

	// ErrEvaluationFailed - обращение к scoring-сервису или разбор его ответа не удались
	ErrEvaluationFailed = NewError(
		http.StatusBadGateway,
		ErrorCodeEvaluationFailed,
		"evaluation failed",
		nil,
	)

	// ErrInternal - внутренняя ошибка сервера
	ErrInternal = NewError(
		http.StatusInternalServerError,
		ErrorCodeInternalError,
		"internal server error",
		nil,
	)

	// ErrInvalidInput - невалидные входные данные
	ErrInvalidInput = NewError(
		http.StatusBadRequest,
		ErrorCodeInvalidInput,
		"invalid input data",
		nil,
	)
)

// NewValidationError создаёт ошибку валидации с причиной
func NewValidationError(err error) *Error {
	return NewError(http.StatusBadRequest, ErrorCodeValidation, "validation failed", err)
}

// IsDomainError проверяет, является ли ошибка доменной
func IsDomainError(err error) bool {
	var e *Error
	return errors.As(err, &e)
}

// WrapError оборачивает обычную ошибку в доменную с контекстом
func WrapError(err error, status int, code ErrorCode, message string) *Error {
	return NewError(status, code, message, err)
}
