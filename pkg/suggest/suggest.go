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
	"bytes"
	"encoding/json"
	"strings"

	"github.com/larderhq/larder/pkg/catalog"
	"github.com/larderhq/larder/pkg/solver"
)

const (
	// Near misses are only worth showing when the gap is small: at least one
	// and at most two missing ingredients.
	minMissingIngredients = 1
	maxMissingIngredients = 2

	// maxNearMisses bounds the rendered near-miss list.
	maxNearMisses = 4
)

// Request is a single suggestion query.
type Request struct {
	// Ingredients the user has available.
	Ingredients []string `json:"ingredients"`

	// AlreadyPrepared recipes the user asserts are done.
	AlreadyPrepared []string `json:"alreadyPrepared,omitempty"`

	// Category filters results to one category. Empty matches all.
	Category string `json:"category,omitempty"`

	// Time is the available preparation time in minutes. Zero means unlimited.
	Time int `json:"time,omitempty"`
}

// Explanation pairs a recipe name with a rendered reason it is nearly possible.
type Explanation struct {
	Name   string `json:"name" yaml:"name"`
	Reason string `json:"reason" yaml:"reason"`
}

// Explanations is an insertion-ordered name-to-reason mapping. It marshals to
// a JSON object so clients see a mapping, while the truncation order stays
// deterministic.
type Explanations []Explanation

// MarshalJSON renders the explanations as an object preserving entry order.
func (e Explanations) MarshalJSON() ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.WriteByte('{')
	for i, exp := range e {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(exp.Name)
		if err != nil {
			return nil, err
		}
		reason, err := json.Marshal(exp.Reason)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(reason)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON accepts the object form. Entry order follows Go's map
// iteration and is therefore unspecified; only tests that care about content
// rather than order should rely on this.
func (e *Explanations) UnmarshalJSON(data []byte) error {
	m := map[string]string{}
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	out := make(Explanations, 0, len(m))
	for name, reason := range m {
		out = append(out, Explanation{Name: name, Reason: reason})
	}
	*e = out
	return nil
}

// Response is the stable result shape the CLI and web layer consume.
type Response struct {
	// NewRecipes lists newly preparable recipe names in discovery order.
	NewRecipes []string `json:"newRecipes"`

	// NearlyPossible maps recipe names to rendered explanations, at most
	// four entries, in near-miss order.
	NearlyPossible Explanations `json:"nearlyPossible"`
}

// FindRecipes runs the closure solver for one query and applies the
// presentation filter to its near misses. It is a pure function of the
// catalog and the request.
func FindRecipes(defs []catalog.RecipeDefinition, req Request) Response {
	facts := solver.NewKnownFacts(req.Ingredients, req.AlreadyPrepared, req.Category, req.Time)
	result := solver.Solve(defs, facts)

	return Response{
		NewRecipes:     result.NewlyPreparable,
		NearlyPossible: FilterNearMisses(result.NearMisses),
	}
}

// FilterNearMisses applies the caller-facing ranking rules: keep entries
// missing one or two ingredients, render a human-readable reason, and
// truncate to the first four entries in near-miss order.
func FilterNearMisses(misses []solver.NearMiss) Explanations {
	kept := make(Explanations, 0, maxNearMisses)
	for _, nm := range misses {
		if len(kept) == maxNearMisses {
			break
		}
		n := len(nm.Missing.MissingIngredients)
		if n < minMissingIngredients || n > maxMissingIngredients {
			continue
		}
		kept = append(kept, Explanation{
			Name:   nm.Name,
			Reason: renderReason(nm.Missing),
		})
	}
	return kept
}

func renderReason(miss solver.MissingSet) string {
	var parts []string
	if len(miss.MissingIngredients) > 0 {
		parts = append(parts, "missing: "+strings.Join(miss.MissingIngredients, ", "))
	}
	if len(miss.MissingSubRecipes) > 0 {
		parts = append(parts, "need to prepare: "+strings.Join(miss.MissingSubRecipes, ", "))
	}
	return strings.Join(parts, " and ")
}
