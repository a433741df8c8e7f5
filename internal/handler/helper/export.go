package helper

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/yourusername/trivia-questions-api/internal/domain/entity"
)

// QuestionExportHeaders - заголовки столбцов выгрузки вопросов
var QuestionExportHeaders = []string{"ID", "Question", "Answer", "Category", "Difficulty"}

// QuestionExportRow преобразует вопрос в строку выгрузки.
// categories - словарь id -> тип; для неизвестной категории пишется её id.
func QuestionExportRow(q entity.Question, categories map[uint]string) []string {
	category, ok := categories[q.CategoryID]
	if !ok {
		category = strconv.FormatUint(uint64(q.CategoryID), 10)
	}
	return []string{
		strconv.FormatUint(uint64(q.ID), 10),
		SanitizeForExcel(q.Question),
		SanitizeForExcel(q.Answer),
		SanitizeForExcel(category),
		strconv.Itoa(q.Difficulty),
	}
}

// SanitizeForExcel экранирует данные для защиты от formula injection в Excel/CSV
func SanitizeForExcel(s string) string {
	if len(s) == 0 {
		return s
	}
	// Символы, начинающие формулу в Excel/LibreOffice: = + - @ \t \r
	if s[0] == '=' || s[0] == '+' || s[0] == '-' || s[0] == '@' || s[0] == '\t' || s[0] == '\r' {
		return "'" + s
	}
	return s
}

// WriteQuestionsCSV пишет заголовок и строки вопросов в w.
// Возвращает первую ошибку записи, включая ошибку сброса буфера.
func WriteQuestionsCSV(w io.Writer, questions []entity.Question, categories map[uint]string) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(QuestionExportHeaders); err != nil {
		return fmt.Errorf("write csv headers: %w", err)
	}
	for _, q := range questions {
		if err := writer.Write(QuestionExportRow(q, categories)); err != nil {
			return fmt.Errorf("write csv row for question #%d: %w", q.ID, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
