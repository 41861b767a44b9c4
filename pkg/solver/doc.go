// Package solver computes the recipe preparability closure: given a parsed
// catalog and a snapshot of known facts, which recipes can now be prepared
// (accounting for transitive sub-recipe dependencies), and which are near
// misses with concrete missing items.
//
// The computation is a monotone fixpoint over catalog order. Recipes unlock
// other recipes across passes, so a linear dependency chain of n recipes
// resolves in n passes; cyclic dependencies simply never unlock and fall out
// as permanent near-misses. Solve is pure and deterministic: same inputs,
// same result, no shared state, safe under any level of concurrency as long
// as the catalog is treated as read-only.
package solver
