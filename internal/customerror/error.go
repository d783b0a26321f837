package customerror

import (
	"fmt"
	"net/http"
	"strings"
)

type CustomError interface {
	Error() string
	GetHTTPCode() int
}

type ValidationError struct {
	httpCode int
	Messages []string
}

func NewValidationError(messages []string) *ValidationError {
	return &ValidationError{httpCode: http.StatusUnprocessableEntity, Messages: messages}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Messages, " "))
}

func (e *ValidationError) GetHTTPCode() int {
	return e.httpCode
}

// InvalidCredentialsError never says whether the role or the password was wrong.
type InvalidCredentialsError struct {
	httpCode int
}

func NewInvalidCredentialsError() *InvalidCredentialsError {
	return &InvalidCredentialsError{httpCode: http.StatusUnauthorized}
}

func (e *InvalidCredentialsError) Error() string {
	return "invalid role or password"
}

func (e *InvalidCredentialsError) GetHTTPCode() int {
	return e.httpCode
}

type ForbiddenError struct {
	httpCode int
	message  string
}

func NewForbiddenError(msg string) *ForbiddenError {
	return &ForbiddenError{httpCode: http.StatusForbidden, message: msg}
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("forbidden: %s", e.message)
}

func (e *ForbiddenError) GetHTTPCode() int {
	return e.httpCode
}

type NotFoundError struct {
	httpCode int
	message  string
}

func NewNotFoundError(msg string) *NotFoundError {
	return &NotFoundError{httpCode: http.StatusNotFound, message: msg}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("not found: %s", e.message)
}

func (e *NotFoundError) GetHTTPCode() int {
	return e.httpCode
}

type TransitionError struct {
	httpCode int
	From     string
	To       string
}

func NewTransitionError(from, to string) *TransitionError {
	return &TransitionError{httpCode: http.StatusConflict, From: from, To: to}
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("shipment can not move from %s to %s", e.From, e.To)
}

func (e *TransitionError) GetHTTPCode() int {
	return e.httpCode
}

type UniqueViolationError struct {
	httpCode int
	message  string
}

func NewUniqueViolationError(msg string) *UniqueViolationError {
	return &UniqueViolationError{httpCode: http.StatusUnprocessableEntity, message: msg}
}

func (e *UniqueViolationError) Error() string {
	return fmt.Sprintf("unique violation: %s", e.message)
}

func (e *UniqueViolationError) GetHTTPCode() int {
	return e.httpCode
}

type CommonStorageError struct {
	httpCode int
	message  string
}

func NewCommonStorageError(msg string) *CommonStorageError {
	return &CommonStorageError{httpCode: http.StatusInternalServerError, message: msg}
}

func (e *CommonStorageError) Error() string {
	return e.message
}

func (e *CommonStorageError) GetHTTPCode() int {
	return e.httpCode
}
