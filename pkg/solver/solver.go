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

package solver

import (
	"time"

	"github.com/larderhq/larder/pkg/catalog"
)

// KnownFacts is the caller-supplied snapshot a closure computation runs
// against. The solver treats it as read-only.
type KnownFacts struct {
	// AvailableIngredients the user has on hand.
	AvailableIngredients map[string]bool

	// AlreadyPrepared recipes satisfy sub-recipe requirements but are never
	// reported as newly preparable.
	AlreadyPrepared map[string]bool

	// TimeBudget in minutes. Zero means no time constraint is applied.
	TimeBudget int

	// Category restricts results to recipes of that category. Empty means
	// category constraints are ignored.
	Category string
}

// NewKnownFacts builds a facts snapshot from plain slices. Duplicates
// collapse, zero time and empty category mean unconstrained.
func NewKnownFacts(ingredients, alreadyPrepared []string, category string, timeBudget int) KnownFacts {
	return KnownFacts{
		AvailableIngredients: toSet(ingredients),
		AlreadyPrepared:      toSet(alreadyPrepared),
		TimeBudget:           timeBudget,
		Category:             category,
	}
}

func toSet(list []string) map[string]bool {
	set := make(map[string]bool, len(list))
	for _, s := range list {
		set[s] = true
	}
	return set
}

// MissingSet explains why a recipe is not yet preparable in terms of concrete
// missing items. Element order follows the recipe definition's condition order.
type MissingSet struct {
	MissingIngredients []string `json:"missingIngredients,omitempty"`
	MissingSubRecipes  []string `json:"missingSubRecipes,omitempty"`
}

// IsEmpty reports whether the set names no concrete missing item.
func (m MissingSet) IsEmpty() bool {
	return len(m.MissingIngredients) == 0 && len(m.MissingSubRecipes) == 0
}

// NearMiss pairs a recipe name with its most recent missing-item evaluation.
type NearMiss struct {
	Name    string     `json:"name"`
	Missing MissingSet `json:"missing"`
}

// ClosureResult is the outcome of one closure computation. The caller owns it
// after return.
type ClosureResult struct {
	// NewlyPreparable lists recipe names in discovery order, excluding
	// anything the facts already marked prepared.
	NewlyPreparable []string `json:"newlyPreparable"`

	// NearMisses holds the recipes that remained unsatisfied with concrete
	// missing items, in first-failure order. Each entry reflects the final
	// evaluation (last write wins).
	NearMisses []NearMiss `json:"nearMisses"`
}

// Missing returns the MissingSet recorded for name, if any.
func (r ClosureResult) Missing(name string) (MissingSet, bool) {
	for _, nm := range r.NearMisses {
		if nm.Name == name {
			return nm.Missing, true
		}
	}
	return MissingSet{}, false
}

// Solve computes the preparability closure of the catalog under the given
// facts: repeated passes in catalog order until a pass proves nothing new.
// A recipe is satisfied when all required ingredients are available, all
// required sub-recipes are preparable or already prepared, and its time and
// category constraints pass against the facts.
//
// The working set only grows, so the loop is a least fixpoint and terminates
// in at most len(defs) passes. Solve is a pure function: it never mutates
// defs or facts and shares no state between invocations, so a parsed catalog
// can back any number of concurrent calls.
func Solve(defs []catalog.RecipeDefinition, facts KnownFacts) ClosureResult {
	start := time.Now()

	possible := make(map[string]bool, len(defs))
	discovered := make([]string, 0, len(defs))

	// Near-miss bookkeeping: insertion-order-stable, overwritten in place on
	// every re-evaluation, entries dropped once satisfied or once the only
	// remaining failures are time/category. The recorded order drives the
	// presentation layer's truncation, so it must not be disturbed by
	// overwrites.
	missing := make(map[string]MissingSet, len(defs))
	missingOrder := make([]string, 0, len(defs))
	recorded := make(map[string]bool, len(defs))

	passes := 0
	for changed := true; changed; {
		changed = false
		passes++

		for i := range defs {
			def := &defs[i]
			if possible[def.Name] {
				continue
			}

			miss := evaluate(def, possible, facts)
			satisfied := miss.IsEmpty() &&
				timeSatisfied(def, facts) &&
				categorySatisfied(def, facts)

			switch {
			case satisfied:
				possible[def.Name] = true
				discovered = append(discovered, def.Name)
				delete(missing, def.Name)
				changed = true
			case !miss.IsEmpty():
				if !recorded[def.Name] {
					recorded[def.Name] = true
					missingOrder = append(missingOrder, def.Name)
				}
				missing[def.Name] = miss
			default:
				// Failing purely on time or category is not a near-miss.
				delete(missing, def.Name)
			}
		}
	}

	result := ClosureResult{
		NewlyPreparable: make([]string, 0, len(discovered)),
		NearMisses:      make([]NearMiss, 0, len(missing)),
	}

	for _, name := range discovered {
		if facts.AlreadyPrepared[name] {
			continue
		}
		result.NewlyPreparable = append(result.NewlyPreparable, name)
	}

	for _, name := range missingOrder {
		miss, ok := missing[name]
		if !ok || possible[name] || facts.AlreadyPrepared[name] {
			continue
		}
		result.NearMisses = append(result.NearMisses, NearMiss{Name: name, Missing: miss})
	}

	solveDuration.Observe(time.Since(start).Seconds())
	solvePasses.Observe(float64(passes))

	return result
}

// evaluate computes the missing ingredients and sub-recipes for one recipe
// against the current working set.
func evaluate(def *catalog.RecipeDefinition, possible map[string]bool, facts KnownFacts) MissingSet {
	var miss MissingSet
	for _, ing := range def.Ingredients {
		if !facts.AvailableIngredients[ing] {
			miss.MissingIngredients = append(miss.MissingIngredients, ing)
		}
	}
	for _, sub := range def.SubRecipes {
		if !possible[sub] && !facts.AlreadyPrepared[sub] {
			miss.MissingSubRecipes = append(miss.MissingSubRecipes, sub)
		}
	}
	return miss
}

func timeSatisfied(def *catalog.RecipeDefinition, facts KnownFacts) bool {
	return facts.TimeBudget == 0 || def.MaxTime == nil || *def.MaxTime <= facts.TimeBudget
}

func categorySatisfied(def *catalog.RecipeDefinition, facts KnownFacts) bool {
	return facts.Category == "" || def.Category == "" || def.Category == facts.Category
}
