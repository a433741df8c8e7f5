package handler

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-questions-api/internal/handler/dto"
	apperrors "github.com/yourusername/trivia-questions-api/internal/pkg/errors"
	"github.com/yourusername/trivia-questions-api/internal/service"
)

// handleError переводит ошибку сервисного слоя в HTTP-ответ единого формата
func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrBadRequest):
		respondError(c, http.StatusBadRequest, http.StatusBadRequest, errorMessage("Bad request", err, apperrors.ErrBadRequest))
	case errors.Is(err, apperrors.ErrNotFound):
		respondError(c, http.StatusNotFound, http.StatusNotFound, errorMessage("Not found", err, apperrors.ErrNotFound))
	case errors.Is(err, apperrors.ErrMethodNotAllowed):
		respondError(c, http.StatusMethodNotAllowed, http.StatusMethodNotAllowed, errorMessage("Method not allowed", err, apperrors.ErrMethodNotAllowed))
	case errors.Is(err, apperrors.ErrUnprocessable):
		// Исторически клиент получает на 422 код 500; фронтенд ориентируется на него
		respondError(c, http.StatusInternalServerError, http.StatusInternalServerError, errorMessage("Unprocessable", err, apperrors.ErrUnprocessable))
	case errors.Is(err, service.ErrDeleteFailed):
		respondError(c, http.StatusInternalServerError, http.StatusInternalServerError, "Internal server error. Error deleting the question.")
	default:
		log.Printf("ERROR: Internal server error: %v", err)
		respondError(c, http.StatusInternalServerError, http.StatusInternalServerError, "Internal server error.")
	}
}

// errorMessage собирает текст ошибки вида "<title>. <подробности>".
// Текст самой sentinel-ошибки в подробности не попадает.
func errorMessage(title string, err, sentinel error) string {
	detail := err.Error()
	if i := strings.Index(detail, sentinel.Error()); i >= 0 {
		detail = strings.TrimPrefix(detail[i+len(sentinel.Error()):], ":")
	}
	detail = strings.TrimSpace(detail)
	if detail == "" {
		return title + "."
	}
	return title + ". " + detail
}

// respondError прерывает обработку и пишет тело {success: false, error, message}
func respondError(c *gin.Context, status, code int, message string) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(code, message))
}

// NoRoute отвечает на запросы к неизвестным маршрутам
func NoRoute(c *gin.Context) {
	handleError(c, fmt.Errorf("%w: %s", apperrors.ErrNotFound, c.Request.URL.Path))
}

// NoMethod отвечает на запросы с неподдерживаемым методом
func NoMethod(c *gin.Context) {
	handleError(c, fmt.Errorf("%w: %s %s", apperrors.ErrMethodNotAllowed, c.Request.Method, c.Request.URL.Path))
}
