package service

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/trivia-questions-api/internal/domain/entity"
	"github.com/yourusername/trivia-questions-api/internal/service/quizpicker"
)

func TestQuizService_NextQuestion_ExcludesPrevious(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	questionRepo.On("ListByCategory", mock.Anything, uint(4)).Return(makeQuestions(3), nil)
	svc := NewQuizService(questionRepo, quizpicker.NewWithSource(rand.NewPCG(1, 1)))

	question, err := svc.NextQuestion(context.Background(), 4, []uint{1, 2})

	require.NoError(t, err)
	require.NotNil(t, question)
	assert.Equal(t, uint(3), question.ID)
}

func TestQuizService_NextQuestion_AllCategories(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	questionRepo.On("ListByCategory", mock.Anything, uint(0)).Return(makeQuestions(2), nil)
	svc := NewQuizService(questionRepo, quizpicker.New())

	question, err := svc.NextQuestion(context.Background(), 0, []uint{})

	require.NoError(t, err)
	require.NotNil(t, question)
	questionRepo.AssertExpectations(t)
}

func TestQuizService_NextQuestion_NoneLeft(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	questionRepo.On("ListByCategory", mock.Anything, uint(1)).Return(makeQuestions(2), nil)
	svc := NewQuizService(questionRepo, quizpicker.New())

	question, err := svc.NextQuestion(context.Background(), 1, []uint{1, 2})

	require.NoError(t, err)
	assert.Nil(t, question)
}

func TestQuizService_NextQuestion_EmptyCategory(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	questionRepo.On("ListByCategory", mock.Anything, uint(9)).Return([]entity.Question{}, nil)
	svc := NewQuizService(questionRepo, quizpicker.New())

	question, err := svc.NextQuestion(context.Background(), 9, nil)

	require.NoError(t, err)
	assert.Nil(t, question)
}

func TestQuizService_NextQuestion_RepoError(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	dbErr := errors.New("db down")
	questionRepo.On("ListByCategory", mock.Anything, uint(1)).Return(nil, dbErr)
	svc := NewQuizService(questionRepo, quizpicker.New())

	_, err := svc.NextQuestion(context.Background(), 1, nil)

	assert.True(t, errors.Is(err, dbErr))
}
