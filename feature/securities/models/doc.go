// Package models contains the transfer objects of the securities feature.
//
// Flag replaces the YES/NO string columns. The zero value is FlagUnset and
// is stored as NULL, so the three states survive a round trip.
package models
