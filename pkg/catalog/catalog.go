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
	"encoding/json"
	"fmt"
	"log/slog"
	"math"

	larderrors "github.com/larderhq/larder/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Condition keys recognized in catalog entries.
const (
	conditionIngredients = "ingredients"
	conditionRecipes     = "recipes"
	conditionTime        = "time"
	conditionCategory    = "category"
)

// RecipeDefinition is a single normalized catalog entry. Instances are
// immutable after parsing and safe to share across concurrent queries as
// long as callers treat them as read-only.
type RecipeDefinition struct {
	// Name uniquely identifies the recipe within the catalog. Catalog order
	// is significant and preserved by ParseCatalog.
	Name string `json:"name" yaml:"name"`

	// Ingredients the recipe requires, deduplicated, first occurrence wins.
	Ingredients []string `json:"ingredients,omitempty" yaml:"ingredients,omitempty"`

	// SubRecipes that must already be preparable or prepared. May reference
	// recipes that do not exist in the catalog; such references simply never
	// become satisfiable.
	SubRecipes []string `json:"recipes,omitempty" yaml:"recipes,omitempty"`

	// MaxTime is the preparation time in minutes. Nil means no time constraint.
	MaxTime *int `json:"time,omitempty" yaml:"time,omitempty"`

	// Category the recipe belongs to. Empty means it matches any requested category.
	Category string `json:"category,omitempty" yaml:"category,omitempty"`
}

// rawEntry is the on-disk shape of a catalog entry before normalization.
type rawEntry struct {
	Name       string         `json:"name" yaml:"name"`
	Conditions map[string]any `json:"conditions" yaml:"conditions"`
}

// ParseCatalog parses a JSON catalog document into normalized recipe
// definitions, preserving input order. It fails with a MALFORMED_CATALOG
// error when an entry lacks a name or a condition value has an unexpected
// shape. Referential integrity of sub-recipe names is not checked here,
// see Validate for that.
func ParseCatalog(data []byte) ([]RecipeDefinition, error) {
	var entries []rawEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, larderrors.Wrap(larderrors.ErrCodeMalformedCatalog,
			"catalog is not a valid JSON recipe list", err)
	}
	return normalizeEntries(entries)
}

// ParseCatalogYAML parses a YAML catalog document with the same shape and
// normalization rules as ParseCatalog.
func ParseCatalogYAML(data []byte) ([]RecipeDefinition, error) {
	var entries []rawEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, larderrors.Wrap(larderrors.ErrCodeMalformedCatalog,
			"catalog is not a valid YAML recipe list", err)
	}
	return normalizeEntries(entries)
}

func normalizeEntries(entries []rawEntry) ([]RecipeDefinition, error) {
	defs := make([]RecipeDefinition, 0, len(entries))
	for i, entry := range entries {
		def, err := normalizeEntry(entry)
		if err != nil {
			return nil, larderrors.WrapWithContext(larderrors.ErrCodeMalformedCatalog,
				fmt.Sprintf("invalid catalog entry at index %d", i), err,
				map[string]any{"index": i, "name": entry.Name})
		}
		defs = append(defs, def)
	}
	return defs, nil
}

func normalizeEntry(entry rawEntry) (RecipeDefinition, error) {
	def := RecipeDefinition{Name: entry.Name}
	if def.Name == "" {
		return def, fmt.Errorf("recipe entry has no name")
	}

	for key, value := range entry.Conditions {
		switch key {
		case conditionIngredients:
			list, err := stringList(key, value)
			if err != nil {
				return def, err
			}
			def.Ingredients = dedup(list)
		case conditionRecipes:
			list, err := stringList(key, value)
			if err != nil {
				return def, err
			}
			def.SubRecipes = dedup(list)
		case conditionTime:
			minutes, err := intScalar(key, value)
			if err != nil {
				return def, err
			}
			def.MaxTime = &minutes
		case conditionCategory:
			s, ok := value.(string)
			if !ok {
				return def, fmt.Errorf("condition %q must be a string, got %T", key, value)
			}
			def.Category = s
		default:
			slog.Warn("ignoring unknown condition", "recipe", entry.Name, "condition", key)
		}
	}

	return def, nil
}

// stringList coerces a decoded condition value into a list of strings.
// Both JSON and YAML decode lists as []any.
func stringList(key string, value any) ([]string, error) {
	items, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("condition %q must be a list, got %T", key, value)
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("condition %q must contain only strings, got %T", key, item)
		}
		out = append(out, s)
	}
	return out, nil
}

// intScalar coerces a decoded condition value into an integer. JSON decodes
// numbers as float64, YAML as int.
func intScalar(key string, value any) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("condition %q must be an integer, got %v", key, v)
		}
		return int(v), nil
	default:
		return 0, fmt.Errorf("condition %q must be an integer, got %T", key, value)
	}
}

// dedup collapses duplicates silently, keeping first-occurrence order. The
// order is what explanation rendering and tests rely on.
func dedup(list []string) []string {
	if len(list) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(list))
	out := make([]string, 0, len(list))
	for _, s := range list {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
