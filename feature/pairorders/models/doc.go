// Package models contains the transfer objects of the pair order feature.
package models
