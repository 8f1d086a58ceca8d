// Package securities serves the security reference datasets: risk factors,
// master extensions, alerts and filings.
//
// Each dataset is one flat table replaced as a whole through a
// staging.Loader. A binding pairs the dataset with the encode and decode
// functions of its transfer object, and the generic list and replace helpers
// do the rest.
//
// The master extension's tradable column is a tri-state YES/NO/NULL flag
// (models.Flag).
package securities
