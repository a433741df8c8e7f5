package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCategories(t *testing.T) {
	router := newTestRouter(newMemoryStore().seed(0))

	w := doRequest(router, http.MethodGet, "/categories", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"categories": {
		"1": "Science", "2": "Art", "3": "Geography",
		"4": "History", "5": "Entertainment", "6": "Sports"
	}}`, w.Body.String())
}

func TestGetCategories_NoneIsNotFound(t *testing.T) {
	router := newTestRouter(newMemoryStore())

	w := doRequest(router, http.MethodGet, "/categories", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	requireErrorBody(t, w, http.StatusNotFound)
}

func TestCategories_MethodNotAllowed(t *testing.T) {
	router := newTestRouter(newMemoryStore().seed(0))

	w := doRequest(router, http.MethodPost, "/categories", nil)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	requireErrorBody(t, w, http.StatusMethodNotAllowed)
}

func TestGetCategoryQuestions(t *testing.T) {
	// 24 вопроса по кругу в 6 категориях - по 4 в каждой
	router := newTestRouter(newMemoryStore().seed(24))

	w := doRequest(router, http.MethodGet, "/categories/4/questions", nil)

	require.Equal(t, http.StatusOK, w.Code)
	resp := parseJSONResponse(t, w)
	assert.Equal(t, "History", resp["currentCategory"])
	assert.Equal(t, float64(4), resp["totalQuestions"])
	assert.NotContains(t, resp, "categories")

	questions := resp["questions"].([]interface{})
	require.Len(t, questions, 4)
	for _, q := range questions {
		assert.Equal(t, float64(4), q.(map[string]interface{})["category"])
	}
}

func TestGetCategoryQuestions_Pagination(t *testing.T) {
	store := newMemoryStore().seed(0)
	for i := 0; i < 12; i++ {
		store.add(questionInCategory(2))
	}
	router := newTestRouter(store)

	w := doRequest(router, http.MethodGet, "/categories/2/questions?page=2", nil)

	require.Equal(t, http.StatusOK, w.Code)
	resp := parseJSONResponse(t, w)
	assert.Len(t, resp["questions"], 2)
	assert.Equal(t, float64(12), resp["totalQuestions"])
}

func TestGetCategoryQuestions_Errors(t *testing.T) {
	router := newTestRouter(newMemoryStore().seed(6))

	tests := []struct {
		name string
		path string
	}{
		{"non-numeric id", "/categories/a/questions"},
		{"missing category", "/categories/1000/questions"},
		{"page out of range", "/categories/1/questions?page=5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, http.MethodGet, tt.path, nil)

			assert.Equal(t, http.StatusNotFound, w.Code)
			requireErrorBody(t, w, http.StatusNotFound)
		})
	}
}

func TestGetCategoryQuestions_EmptyCategory(t *testing.T) {
	store := newMemoryStore().seed(0)
	store.add(questionInCategory(1))
	router := newTestRouter(store)

	w := doRequest(router, http.MethodGet, "/categories/3/questions", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	requireErrorBody(t, w, http.StatusNotFound)
}
