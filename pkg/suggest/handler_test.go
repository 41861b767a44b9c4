// Copyright (c) 2026, Larder Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package suggest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/larderhq/larder/pkg/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	store, err := catalog.NewStore()
	require.NoError(t, err)
	return NewHandler(store)
}

func TestHandleSuggestionsGet(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet,
		"/v1/suggestions?ingredients=egg,salt&ingredients=oil", nil)
	w := httptest.NewRecorder()

	h.HandleSuggestions(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")

	var resp struct {
		NewRecipes     []string          `json:"newRecipes"`
		NearlyPossible map[string]string `json:"nearlyPossible"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.NewRecipes, "ScrambledEggs")
}

func TestHandleSuggestionsPost(t *testing.T) {
	h := newTestHandler(t)

	body := `{"ingredients": ["egg", "salt", "oil", "milk", "cheese"], "time": 20}`
	req := httptest.NewRequest(http.MethodPost, "/v1/suggestions", strings.NewReader(body))
	w := httptest.NewRecorder()

	h.HandleSuggestions(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		NewRecipes []string `json:"newRecipes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.NewRecipes, "ScrambledEggs")
	assert.Contains(t, resp.NewRecipes, "Omelette")
}

func TestHandleSuggestionsBadRequest(t *testing.T) {
	h := newTestHandler(t)

	tests := []struct {
		name   string
		method string
		target string
		body   string
	}{
		{"bad time param", http.MethodGet, "/v1/suggestions?time=soon", ""},
		{"negative time param", http.MethodGet, "/v1/suggestions?time=-5", ""},
		{"bad json body", http.MethodPost, "/v1/suggestions", `{not json`},
		{"negative time body", http.MethodPost, "/v1/suggestions", `{"time": -1}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var body *strings.Reader
			if tc.body != "" {
				body = strings.NewReader(tc.body)
			} else {
				body = strings.NewReader("")
			}
			req := httptest.NewRequest(tc.method, tc.target, body)
			w := httptest.NewRecorder()

			h.HandleSuggestions(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestHandleSuggestionsMethodNotAllowed(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodDelete, "/v1/suggestions", nil)
	w := httptest.NewRecorder()

	h.HandleSuggestions(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, "GET, POST", w.Header().Get("Allow"))
}

func TestHandleRecipeDetails(t *testing.T) {
	h := newTestHandler(t)

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/recipes/{name}", h.HandleRecipeDetails)

	req := httptest.NewRequest(http.MethodGet, "/v1/recipes/Pizza", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var details catalog.RecipeDetails
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &details))
	assert.NotEmpty(t, details.Description)
	assert.NotEmpty(t, details.Instructions)
}

func TestHandleRecipeDetailsNotFound(t *testing.T) {
	h := newTestHandler(t)

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/recipes/{name}", h.HandleRecipeDetails)

	req := httptest.NewRequest(http.MethodGet, "/v1/recipes/NoSuchRecipe", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleIngredients(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/ingredients", nil)
	w := httptest.NewRecorder()
	h.HandleIngredients(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var inventory map[string][]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &inventory))
	assert.NotEmpty(t, inventory)
}

func TestParseRequestFromQuery(t *testing.T) {
	values := url.Values{
		"ingredients": {"egg, butter", "salt"},
		"made":        {"Dough"},
		"category":    {"dessert"},
		"time":        {"30"},
	}

	req, err := ParseRequestFromQuery(values)
	require.NoError(t, err)

	assert.Equal(t, []string{"egg", "butter", "salt"}, req.Ingredients)
	assert.Equal(t, []string{"Dough"}, req.AlreadyPrepared)
	assert.Equal(t, "dessert", req.Category)
	assert.Equal(t, 30, req.Time)
}

func TestParseRequestFromQueryEmpty(t *testing.T) {
	req, err := ParseRequestFromQuery(url.Values{})
	require.NoError(t, err)

	assert.Empty(t, req.Ingredients)
	assert.Empty(t, req.AlreadyPrepared)
	assert.Empty(t, req.Category)
	assert.Zero(t, req.Time)
}
