// Package quizpicker выбирает случайный ещё не показанный вопрос для режима игры.
package quizpicker

import (
	"math/rand/v2"

	"github.com/yourusername/trivia-questions-api/internal/domain/entity"
)

// Picker выбирает случайный вопрос из кандидатов, исключая уже показанные.
// Состояния между запросами не хранит.
type Picker struct {
	intn func(n int) int
}

// New создаёт Picker на общем несидированном источнике случайности
func New() *Picker {
	return &Picker{intn: rand.IntN}
}

// NewWithSource создаёт Picker с заданным источником (для воспроизводимых тестов)
func NewWithSource(src rand.Source) *Picker {
	r := rand.New(src)
	return &Picker{intn: r.IntN}
}

// Pick возвращает равновероятно выбранный вопрос из candidates, id которого нет в previous.
// previous == nil означает, что исключать нечего.
// Если кандидатов не осталось, возвращает nil.
func (p *Picker) Pick(candidates []entity.Question, previous []uint) *entity.Question {
	remaining := Exclude(candidates, previous)
	if len(remaining) == 0 {
		return nil
	}
	chosen := remaining[p.intn(len(remaining))]
	return &chosen
}

// Exclude возвращает кандидатов, чьих id нет в previous. Порядок сохраняется.
func Exclude(candidates []entity.Question, previous []uint) []entity.Question {
	if previous == nil {
		return candidates
	}

	seen := make(map[uint]struct{}, len(previous))
	for _, id := range previous {
		seen[id] = struct{}{}
	}

	remaining := make([]entity.Question, 0, len(candidates))
	for _, q := range candidates {
		if _, ok := seen[q.ID]; ok {
			continue
		}
		remaining = append(remaining, q)
	}
	return remaining
}
