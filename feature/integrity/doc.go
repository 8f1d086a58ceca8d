// Package integrity provides health checks for the replaceable datasets.
//
// # Checks Provided
//
//   - Schema: Verifies that the target and staging table of every dataset carry
//     every column a replace writes.
//   - Feeds: Reports registered datasets that have no feed object in the bucket.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/schema : Runs the schema check.
//   - GET /integrity/feeds : Runs the feed presence check.
package integrity
