// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: API key validation (X-API-Key header or api_key query parameter).
//   - rayid: assigns every request a RayID, stored in locals for
//     logger.WithRayID and echoed in the X-Ray-ID response header.
//
// Register rayid first so that rejected requests are traced too.
package middleware
