// Package feeds refreshes datasets from JSON feed objects in object storage.
//
// Every dataset is registered under its name with a ReplaceFunc, usually
// built with JSON around a feature's typed replace operation:
//
//	svc.Register("pair_orders", feeds.JSON(orders.ReplaceOrders))
//
// The feed of a dataset lives at <prefix><dataset><extension> in the
// configured bucket. Refresh downloads it and runs the replace; concurrent
// refreshes of the same dataset are coalesced with singleflight.
//
// Failures always surface. RefreshAll is the one place that may log a failed
// dataset and move on, and only when the caller asks for it.
package feeds
