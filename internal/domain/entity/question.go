package entity

// DefaultDifficulty используется, если сложность не передана при создании вопроса
const DefaultDifficulty = 1

// Question представляет вопрос викторины
type Question struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Question   string `gorm:"not null" json:"question"`
	Answer     string `gorm:"not null" json:"answer"`
	CategoryID uint   `gorm:"column:category;not null;index" json:"category"`
	Difficulty int    `gorm:"not null;default:1" json:"difficulty"`
}

// TableName определяет имя таблицы для GORM
func (Question) TableName() string {
	return "questions"
}

// FormattedQuestion - представление вопроса, которое уходит клиенту
type FormattedQuestion struct {
	ID         uint   `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   uint   `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// Format возвращает клиентское представление вопроса
func (q *Question) Format() FormattedQuestion {
	return FormattedQuestion{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Category:   q.CategoryID,
		Difficulty: q.Difficulty,
	}
}

// FormatQuestions форматирует список вопросов с сохранением порядка
func FormatQuestions(questions []Question) []FormattedQuestion {
	formatted := make([]FormattedQuestion, len(questions))
	for i := range questions {
		formatted[i] = questions[i].Format()
	}
	return formatted
}
