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
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/larderhq/larder/pkg/catalog"
	larderrors "github.com/larderhq/larder/pkg/errors"
	"github.com/larderhq/larder/pkg/serializer"
	"github.com/larderhq/larder/pkg/server"
)

// Query parameter names accepted by the suggestions endpoint.
const (
	queryParamIngredients = "ingredients"
	queryParamMade        = "made"
	queryParamCategory    = "category"
	queryParamTime        = "time"
)

// maxRequestBody bounds POST bodies on the suggestions endpoint.
const maxRequestBody = 1 << 20 // 1MB

// Handler serves suggestion queries against a shared catalog store.
type Handler struct {
	Store *catalog.Store
}

// NewHandler creates a suggestion handler backed by the given store.
func NewHandler(store *catalog.Store) *Handler {
	return &Handler{Store: store}
}

// HandleSuggestions processes a suggestion query. GET requests carry the
// query in URL parameters, POST requests in a JSON body.
func (h *Handler) HandleSuggestions(w http.ResponseWriter, r *http.Request) {
	var req *Request
	var err error

	switch r.Method {
	case http.MethodGet:
		req, err = ParseRequestFromQuery(r.URL.Query())
	case http.MethodPost:
		req, err = ParseRequestFromBody(r.Body)
		defer func() {
			if r.Body != nil {
				r.Body.Close()
			}
		}()
	default:
		w.Header().Set("Allow", "GET, POST")
		server.WriteError(w, r, http.StatusMethodNotAllowed, larderrors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{
				"method":  r.Method,
				"allowed": []string{"GET", "POST"},
			})
		return
	}

	if err != nil {
		server.WriteError(w, r, http.StatusBadRequest, larderrors.ErrCodeInvalidRequest,
			"Invalid suggestion request", false, map[string]any{
				"error": err.Error(),
			})
		return
	}

	slog.Debug("suggestion query",
		"ingredients", len(req.Ingredients),
		"alreadyPrepared", len(req.AlreadyPrepared),
		"category", req.Category,
		"time", req.Time,
	)

	resp := FindRecipes(h.Store.Definitions(), *req)
	suggestionQueries.Inc()

	serializer.RespondJSON(w, http.StatusOK, resp)
}

// HandleRecipeDetails serves GET /v1/recipes/{name}.
func (h *Handler) HandleRecipeDetails(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		server.WriteError(w, r, http.StatusMethodNotAllowed, larderrors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, nil)
		return
	}

	name := r.PathValue("name")
	if name == "" {
		server.WriteError(w, r, http.StatusBadRequest, larderrors.ErrCodeInvalidRequest,
			"Recipe name is required", false, nil)
		return
	}

	details, err := h.Store.Details(name)
	if err != nil {
		server.WriteError(w, r, http.StatusNotFound, larderrors.CodeOf(err),
			"Recipe not found", false, map[string]any{"name": name})
		return
	}

	serializer.RespondJSON(w, http.StatusOK, details)
}

// HandleIngredients serves GET /v1/ingredients, the grouped inventory used
// by ingredient pickers.
func (h *Handler) HandleIngredients(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		server.WriteError(w, r, http.StatusMethodNotAllowed, larderrors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, nil)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, h.Store.Ingredients())
}

// ParseRequestFromQuery builds a Request from URL query parameters. List
// parameters accept both repeated keys and comma-separated values.
func ParseRequestFromQuery(values url.Values) (*Request, error) {
	req := &Request{
		Ingredients:     splitListParam(values[queryParamIngredients]),
		AlreadyPrepared: splitListParam(values[queryParamMade]),
		Category:        strings.TrimSpace(values.Get(queryParamCategory)),
	}

	if timeStr := values.Get(queryParamTime); timeStr != "" {
		minutes, err := strconv.Atoi(timeStr)
		if err != nil {
			return nil, fmt.Errorf("invalid time %q: %w", timeStr, err)
		}
		if minutes < 0 {
			return nil, fmt.Errorf("time cannot be negative: %d", minutes)
		}
		req.Time = minutes
	}

	return req, nil
}

// ParseRequestFromBody decodes a JSON request body.
func ParseRequestFromBody(body io.Reader) (*Request, error) {
	data, err := io.ReadAll(io.LimitReader(body, maxRequestBody))
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}

	req := &Request{}
	if err := json.Unmarshal(data, req); err != nil {
		return nil, fmt.Errorf("invalid JSON body: %w", err)
	}
	if req.Time < 0 {
		return nil, fmt.Errorf("time cannot be negative: %d", req.Time)
	}
	return req, nil
}

// splitListParam flattens repeated query values and comma-separated entries
// into one trimmed list.
func splitListParam(values []string) []string {
	var out []string
	for _, v := range values {
		for _, item := range strings.Split(v, ",") {
			item = strings.TrimSpace(item)
			if item != "" {
				out = append(out, item)
			}
		}
	}
	return out
}
