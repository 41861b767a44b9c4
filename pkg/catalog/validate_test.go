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
	"strings"
	"testing"
)

func TestValidateCleanCatalog(t *testing.T) {
	defs := []RecipeDefinition{
		{Name: "Dough", Ingredients: []string{"flour", "water"}},
		{Name: "Pizza", SubRecipes: []string{"Dough"}},
	}
	if issues := Validate(defs); len(issues) != 0 {
		t.Errorf("expected no issues, got %v", issues)
	}
}

func TestValidateEmbeddedCatalog(t *testing.T) {
	store, err := NewStore()
	if err != nil {
		t.Fatal(err)
	}
	if issues := Validate(store.Definitions()); len(issues) != 0 {
		t.Errorf("embedded catalog has issues: %v", issues)
	}
}

func TestValidateDanglingSubRecipe(t *testing.T) {
	defs := []RecipeDefinition{
		{Name: "Pizza", SubRecipes: []string{"Dough"}},
	}

	issues := Validate(defs)
	if len(issues) != 1 {
		t.Fatalf("expected 1 issue, got %d: %v", len(issues), issues)
	}
	if issues[0].Kind != IssueDanglingSubRecipe {
		t.Errorf("expected %s, got %s", IssueDanglingSubRecipe, issues[0].Kind)
	}
	if issues[0].Recipe != "Pizza" {
		t.Errorf("expected issue on Pizza, got %s", issues[0].Recipe)
	}
	if !strings.Contains(issues[0].Detail, "Dough") {
		t.Errorf("detail should name the missing recipe: %s", issues[0].Detail)
	}
}

func TestValidateDuplicateName(t *testing.T) {
	defs := []RecipeDefinition{
		{Name: "Toast"},
		{Name: "Toast"},
	}

	issues := Validate(defs)
	if len(issues) != 1 {
		t.Fatalf("expected 1 issue, got %d: %v", len(issues), issues)
	}
	if issues[0].Kind != IssueDuplicateName {
		t.Errorf("expected %s, got %s", IssueDuplicateName, issues[0].Kind)
	}
}

func TestValidateCycle(t *testing.T) {
	defs := []RecipeDefinition{
		{Name: "A", SubRecipes: []string{"B"}},
		{Name: "B", SubRecipes: []string{"A"}},
	}

	issues := Validate(defs)
	if len(issues) != 1 {
		t.Fatalf("expected 1 issue, got %d: %v", len(issues), issues)
	}
	if issues[0].Kind != IssueCycle {
		t.Errorf("expected %s, got %s", IssueCycle, issues[0].Kind)
	}
	if !strings.Contains(issues[0].Detail, "->") {
		t.Errorf("detail should render the cycle path: %s", issues[0].Detail)
	}
}

func TestValidateSelfCycle(t *testing.T) {
	defs := []RecipeDefinition{
		{Name: "Ouroboros", SubRecipes: []string{"Ouroboros"}},
	}

	issues := Validate(defs)
	if len(issues) != 1 {
		t.Fatalf("expected 1 issue, got %d: %v", len(issues), issues)
	}
	if issues[0].Kind != IssueCycle {
		t.Errorf("expected %s, got %s", IssueCycle, issues[0].Kind)
	}
}

func TestValidateCycleReportedOnce(t *testing.T) {
	// Two entry points into the same cycle must not double-report it.
	defs := []RecipeDefinition{
		{Name: "Entry", SubRecipes: []string{"A"}},
		{Name: "A", SubRecipes: []string{"B"}},
		{Name: "B", SubRecipes: []string{"A"}},
	}

	issues := Validate(defs)
	cycles := 0
	for _, i := range issues {
		if i.Kind == IssueCycle {
			cycles++
		}
	}
	if cycles != 1 {
		t.Errorf("expected 1 cycle issue, got %d: %v", cycles, issues)
	}
}
