// Package legs reassembles multi-leg entities from a flat result set.
//
// Each row of a pair order (or pair-order template) is one leg. Rows sharing a
// correlation key belong to the same entity, and a side-code column decides
// which role the leg plays. The side code is classified through an alias table
// supplied by the caller, so "B", "bc" and "BUY" can all mean RoleBuy without
// any code change.
//
// Reconstruct is strict: a side code with no alias or a row without a
// correlation key fails the whole call. Dropping such a row would silently lose
// one leg of a pair.
//
// When two rows resolve to the same key and role, the later row in input order
// wins. Callers that need a deterministic result must supply rows in a
// deterministic order (for example with an ORDER BY).
package legs
