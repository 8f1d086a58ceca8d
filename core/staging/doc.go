// Package staging implements the staged bulk-replace loader.
//
// The target stores offer no native "replace the whole table" operation, so a
// full dataset is replaced in three round trips:
//
//  1. ClearStaging empties the dataset's staging table.
//  2. StageAll renders every record through the row codec into one multi-row
//     INSERT and executes it once.
//  3. Promote triggers the store-side move from staging into the target, which
//     the store executes atomically from its own perspective.
//
// ReplaceAll composes the three and fails fast: promote never runs after a
// failed clear or stage, so readers keep seeing the previous dataset. An empty
// record set still clears and promotes, leaving the target empty.
//
// # Cycle state
//
// A Loader moves Idle -> Staging -> Promoted. ClearStaging starts a new cycle
// from any state; StageAll and Promote are only valid while Staging. Any
// failure returns the loader to Idle.
//
// # Concurrency
//
// A Loader is not safe for concurrent use and takes no locks in the store.
// Two loaders replacing the same dataset at once race destructively; callers
// with more than one writer must serialise whole cycles themselves.
//
// # Promote
//
// A Dataset promotes through one of:
//   - a stored procedure, invoked as CALL <procedure>()
//   - an explicit list of statements, run in one transaction
//   - by default, DELETE FROM target followed by INSERT INTO target SELECT
//     FROM staging, run in one transaction
package staging
