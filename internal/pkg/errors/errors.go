package errors

import "errors"

// Общие ошибки приложения
var (
	// ErrNotFound используется, когда запись или ресурс не найдены.
	ErrNotFound = errors.New("record not found")

	// ErrBadRequest используется для некорректных запросов (пустое тело, неверная категория).
	ErrBadRequest = errors.New("bad request")

	// ErrMethodNotAllowed используется, когда маршрут существует, но метод не поддерживается.
	ErrMethodNotAllowed = errors.New("method not allowed")

	// ErrUnprocessable используется, когда тело запроса корректно как JSON,
	// но не соответствует ни одной из ожидаемых форм.
	ErrUnprocessable = errors.New("unprocessable entity")
)
