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

package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	larderrors "github.com/larderhq/larder/pkg/errors"
)

//go:embed data/*.json
var dataFS embed.FS

const (
	embeddedCatalogPath     = "data/catalog.json"
	embeddedIngredientsPath = "data/ingredients.json"
	embeddedDetailsPath     = "data/recipe_details.json"
)

// RecipeDetails holds the free-text presentation data for a single recipe.
// It is unrelated to satisfiability and only served by lookup endpoints.
type RecipeDetails struct {
	Description  string   `json:"description" yaml:"description"`
	Instructions []string `json:"instructions" yaml:"instructions"`
	Servings     int      `json:"servings,omitempty" yaml:"servings,omitempty"`
}

// Store holds the parsed recipe catalog plus the read-only lookup data
// (ingredient inventory, recipe details). A Store may be shared across
// concurrent queries; Definitions returns data that callers must treat
// as read-only for that sharing to be safe.
type Store struct {
	mu          sync.RWMutex
	defs        []RecipeDefinition
	details     map[string]RecipeDetails
	ingredients map[string][]string
	generation  int

	// externalPath overrides the embedded catalog when set.
	externalPath string
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithCatalogPath overrides the embedded catalog with an external JSON or
// YAML file. Lookup data (details, ingredient inventory) stays embedded.
func WithCatalogPath(path string) StoreOption {
	return func(s *Store) {
		s.externalPath = path
	}
}

// NewStore loads the catalog and lookup data, returning an error when any
// of it is malformed. The embedded data is the default source.
func NewStore(opts ...StoreOption) (*Store, error) {
	s := &Store{}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.load(); err != nil {
		return nil, err
	}

	slog.Info("catalog store loaded",
		"recipes", len(s.defs),
		"source", s.source(),
		"generation", s.generation)

	return s, nil
}

func (s *Store) source() string {
	if s.externalPath != "" {
		return s.externalPath
	}
	return "embedded"
}

// load reads and parses all store data. Called at construction and on Reload.
func (s *Store) load() error {
	defs, err := s.loadCatalog()
	if err != nil {
		return err
	}

	details, err := loadDetails()
	if err != nil {
		return err
	}

	ingredients, err := loadIngredients()
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.defs = defs
	s.details = details
	s.ingredients = ingredients
	s.generation++
	s.mu.Unlock()

	catalogLoads.Inc()
	catalogRecipes.Set(float64(len(defs)))
	return nil
}

func (s *Store) loadCatalog() ([]RecipeDefinition, error) {
	if s.externalPath == "" {
		data, err := dataFS.ReadFile(embeddedCatalogPath)
		if err != nil {
			return nil, larderrors.Wrap(larderrors.ErrCodeInternal,
				"failed to read embedded catalog", err)
		}
		return ParseCatalog(data)
	}

	data, err := os.ReadFile(s.externalPath)
	if err != nil {
		return nil, larderrors.Wrap(larderrors.ErrCodeNotFound,
			fmt.Sprintf("failed to read catalog file %s", s.externalPath), err)
	}

	lower := strings.ToLower(s.externalPath)
	if strings.HasSuffix(lower, ".yaml") || strings.HasSuffix(lower, ".yml") {
		return ParseCatalogYAML(data)
	}
	return ParseCatalog(data)
}

func loadDetails() (map[string]RecipeDetails, error) {
	data, err := dataFS.ReadFile(embeddedDetailsPath)
	if err != nil {
		return nil, larderrors.Wrap(larderrors.ErrCodeInternal,
			"failed to read embedded recipe details", err)
	}
	details := make(map[string]RecipeDetails)
	if err := json.Unmarshal(data, &details); err != nil {
		return nil, larderrors.Wrap(larderrors.ErrCodeInternal,
			"failed to parse embedded recipe details", err)
	}
	return details, nil
}

func loadIngredients() (map[string][]string, error) {
	data, err := dataFS.ReadFile(embeddedIngredientsPath)
	if err != nil {
		return nil, larderrors.Wrap(larderrors.ErrCodeInternal,
			"failed to read embedded ingredient inventory", err)
	}
	inventory := make(map[string][]string)
	if err := json.Unmarshal(data, &inventory); err != nil {
		return nil, larderrors.Wrap(larderrors.ErrCodeInternal,
			"failed to parse embedded ingredient inventory", err)
	}
	return inventory, nil
}

// Reload re-reads the catalog source and swaps it in atomically, bumping the
// store generation. Queries in flight keep the definitions slice they already
// hold.
func (s *Store) Reload() error {
	if err := s.load(); err != nil {
		catalogReloadFailures.Inc()
		return err
	}

	s.mu.RLock()
	gen := s.generation
	count := len(s.defs)
	s.mu.RUnlock()

	slog.Info("catalog reloaded", "recipes", count, "generation", gen)
	return nil
}

// Definitions returns the parsed catalog in input order. The returned slice
// is shared and must be treated as read-only.
func (s *Store) Definitions() []RecipeDefinition {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.defs
}

// Generation returns the current load generation, incremented on every
// successful load or reload. Callers can use it to detect catalog swaps.
func (s *Store) Generation() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generation
}

// RecipeNames returns the names of all cataloged recipes in catalog order.
func (s *Store) RecipeNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.defs))
	for _, def := range s.defs {
		names = append(names, def.Name)
	}
	return names
}

// Details returns the free-text details for a recipe, or a NOT_FOUND error
// when the recipe has no detail entry.
func (s *Store) Details(name string) (RecipeDetails, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.details[name]
	if !ok {
		return RecipeDetails{}, larderrors.NewWithContext(larderrors.ErrCodeNotFound,
			"recipe not found", map[string]any{"name": name})
	}
	return d, nil
}

// Ingredients returns the ingredient inventory grouped by section, used by
// pickers. The returned map is shared and must be treated as read-only.
func (s *Store) Ingredients() map[string][]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ingredients
}
