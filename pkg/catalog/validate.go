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
	"fmt"
	"strings"
)

// IssueKind classifies a catalog validation finding.
type IssueKind string

const (
	// IssueCycle marks recipes whose sub-recipe requirements form a cycle.
	// The solver terminates on cyclic catalogs but leaves every member of
	// the cycle permanently unsatisfiable, so authors should know.
	IssueCycle IssueKind = "cycle"

	// IssueDanglingSubRecipe marks a sub-recipe reference that names no
	// cataloged recipe. Such a requirement can never be satisfied.
	IssueDanglingSubRecipe IssueKind = "dangling-sub-recipe"

	// IssueDuplicateName marks a recipe name that appears more than once.
	IssueDuplicateName IssueKind = "duplicate-name"
)

// Issue is a single validation finding. Issues are advisory: a catalog with
// issues still loads and solves, the affected recipes just never resolve.
type Issue struct {
	Kind   IssueKind `json:"kind" yaml:"kind"`
	Recipe string    `json:"recipe" yaml:"recipe"`
	Detail string    `json:"detail" yaml:"detail"`
}

// String returns a human-readable form of the issue.
func (i Issue) String() string {
	return fmt.Sprintf("%s: %s (%s)", i.Kind, i.Recipe, i.Detail)
}

// Validate inspects a parsed catalog for structural problems the parser
// deliberately does not reject: dependency cycles, dangling sub-recipe
// references, and duplicate names. Findings are reported in catalog order.
func Validate(defs []RecipeDefinition) []Issue {
	var issues []Issue

	byName := make(map[string]*RecipeDefinition, len(defs))
	for i := range defs {
		def := &defs[i]
		if _, dup := byName[def.Name]; dup {
			issues = append(issues, Issue{
				Kind:   IssueDuplicateName,
				Recipe: def.Name,
				Detail: "name defined more than once",
			})
			continue
		}
		byName[def.Name] = def
	}

	for _, def := range defs {
		for _, sub := range def.SubRecipes {
			if _, ok := byName[sub]; !ok {
				issues = append(issues, Issue{
					Kind:   IssueDanglingSubRecipe,
					Recipe: def.Name,
					Detail: fmt.Sprintf("requires unknown recipe %q", sub),
				})
			}
		}
	}

	issues = append(issues, findCycles(defs, byName)...)
	return issues
}

// findCycles runs an iterative depth-first search over the sub-recipe graph,
// reporting each cycle once, attributed to its first member in catalog order.
func findCycles(defs []RecipeDefinition, byName map[string]*RecipeDefinition) []Issue {
	const (
		unvisited = iota
		inProgress
		done
	)

	state := make(map[string]int, len(defs))
	var issues []Issue

	var visit func(name string, path []string)
	visit = func(name string, path []string) {
		def, ok := byName[name]
		if !ok {
			return
		}
		state[name] = inProgress
		path = append(path, name)

		for _, sub := range def.SubRecipes {
			switch state[sub] {
			case unvisited:
				visit(sub, path)
			case inProgress:
				// Found a back edge; report the cycle members in path order.
				start := 0
				for i, p := range path {
					if p == sub {
						start = i
						break
					}
				}
				cycle := append(append([]string{}, path[start:]...), sub)
				issues = append(issues, Issue{
					Kind:   IssueCycle,
					Recipe: sub,
					Detail: "dependency cycle: " + strings.Join(cycle, " -> "),
				})
			}
		}
		state[name] = done
	}

	for _, def := range defs {
		if state[def.Name] == unvisited {
			visit(def.Name, nil)
		}
	}
	return issues
}
