// Package pairorders serves pair orders and pair-order templates.
//
// Both datasets store one row per leg. Reads select the whole target table
// (or one key) and regroup the rows with legs.Reconstruct, resolving each
// row's side code through SideAliases. Writes flatten the submitted entities
// back into one record per leg and replace the dataset through a
// staging.Loader, so a reader sees either the old set or the new one.
//
// # Side codes
//
//	B, BC, BUY, BUY TO COVER   -> Buy
//	S, SS, SELL, SELL SHORT    -> Sell
//
// Matching is case-insensitive. A stored row with any other code fails the
// whole read instead of dropping the leg.
//
// # Routes
//
//	GET /pair-orders              GET /pair-order-templates
//	GET /pair-orders/:id          GET /pair-order-templates/:id
//	PUT /pair-orders              PUT /pair-order-templates
package pairorders
