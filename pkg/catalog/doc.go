// Package catalog implements the recipe rule model: parsing raw catalog
// documents into normalized, order-preserving recipe definitions, plus the
// read-only stores the rest of the system queries (recipe details, ingredient
// inventory).
//
// Parsing and validation are deliberately split. ParseCatalog rejects only
// structural problems (missing names, wrongly shaped condition values);
// referential problems like dependency cycles or sub-recipe references to
// nonexistent recipes are accepted, because the solver handles them safely
// (they are simply never satisfiable). Validate reports those problems
// separately so catalog authors can distinguish a broken catalog from an
// honest missing-ingredient near-miss.
//
// A Store is loaded once and shared read-only across concurrent queries.
// When built from an external file it can be hot-reloaded via Watch.
package catalog
