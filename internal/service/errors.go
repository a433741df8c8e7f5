package service

import "errors"

// Ошибки сервисного слоя, не входящие в общую таксономию apperrors
var (
	// ErrDeleteFailed возвращается, когда хранилище не смогло удалить существующий вопрос
	ErrDeleteFailed = errors.New("error deleting the question")
)
