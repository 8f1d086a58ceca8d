// Package reconcile compares the records of a dataset feed with the records
// already stored in the dataset's target table.
//
// Both sides are indexed by an entity key, the union of keys is walked once and
// every key is reported as added, removed, changed or unchanged. Changed keys
// carry one mismatch line per differing field, rendered as SQL literals:
//
//	exposure: feed=1.25 store=1.1
//
// A Plan is read-only. Applying it is the staging loader's job; the plan exists
// so a destructive replace can be previewed first.
package reconcile
