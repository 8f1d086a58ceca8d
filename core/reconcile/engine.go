package reconcile

import (
	"context"
	"fmt"
	"slices"

	"backoffice/core/database"
	"backoffice/core/legs"
	"backoffice/core/rowcodec"
	"backoffice/core/staging"

	"gorm.io/gorm"
)

// ByFields keys records by the named fields, joined with legs.JoinKey.
// A record with an absent key field has no key.
func ByFields(names ...string) KeyFunc {
	return func(rec rowcodec.Record) (string, error) {
		parts := make([]string, len(names))
		for i, n := range names {
			v := rec.Get(n)
			if !v.Valid() {
				return "", fmt.Errorf("key field %s is absent", n)
			}
			parts[i] = keyText(v)
		}
		return legs.JoinKey(parts...), nil
	}
}

// Diff compares feed records against stored records. Within one side a later
// record replaces an earlier one with the same key.
func Diff(spec Spec, feed, store []rowcodec.Record) (*Plan, error) {
	feedIdx, err := index(spec.Key, feed)
	if err != nil {
		return nil, fmt.Errorf("%s feed: %w", spec.Dataset, err)
	}
	storeIdx, err := index(spec.Key, store)
	if err != nil {
		return nil, fmt.Errorf("%s store: %w", spec.Dataset, err)
	}

	union := make([]string, 0, len(feedIdx)+len(storeIdx))
	for k := range feedIdx {
		union = append(union, k)
	}
	for k := range storeIdx {
		if _, ok := feedIdx[k]; !ok {
			union = append(union, k)
		}
	}
	slices.Sort(union)

	plan := &Plan{Dataset: spec.Dataset, Results: []Result{}}
	for _, k := range union {
		r := compare(k, feedIdx, storeIdx, spec.Fields)
		plan.Summary.count(r.Status)
		if r.Status != StatusUnchanged {
			plan.Results = append(plan.Results, r)
		}
	}
	return plan, nil
}

// Preview loads the stored records of ds and compares feed against them.
func Preview(ctx context.Context, db *gorm.DB, ds staging.Dataset, key KeyFunc, feed []rowcodec.Record) (*Plan, error) {
	store, err := Load(ctx, db, ds)
	if err != nil {
		return nil, err
	}
	return Diff(Spec{Dataset: ds.Name, Fields: ds.Fields, Key: key}, feed, store)
}

// Load reads every record of the dataset's target table.
func Load(ctx context.Context, db *gorm.DB, ds staging.Dataset) ([]rowcodec.Record, error) {
	if db == nil {
		return nil, fmt.Errorf("%s: database not configured", ds.Name)
	}
	rows, err := database.QueryRows(ctx, db, database.SelectColumns(db, ds.Target, ds.Columns()))
	if err != nil {
		return nil, err
	}
	recs, err := rowcodec.DecodeAll(rows, ds.Fields)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ds.Name, err)
	}
	return recs, nil
}

func index(key KeyFunc, recs []rowcodec.Record) (map[string]rowcodec.Record, error) {
	idx := make(map[string]rowcodec.Record, len(recs))
	for i, rec := range recs {
		k, err := key(rec)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		idx[k] = rec
	}
	return idx, nil
}

func compare(key string, feed, store map[string]rowcodec.Record, fields []rowcodec.FieldSpec) Result {
	f, inFeed := feed[key]
	s, inStore := store[key]
	r := Result{Key: key, FeedPresent: inFeed, StorePresent: inStore}

	switch {
	case !inStore:
		r.Status = StatusAdded
	case !inFeed:
		r.Status = StatusRemoved
	default:
		r.Mismatch = mismatches(f, s, fields)
		r.Status = StatusUnchanged
		if len(r.Mismatch) > 0 {
			r.Status = StatusChanged
		}
	}
	return r
}

func mismatches(feed, store rowcodec.Record, fields []rowcodec.FieldSpec) []string {
	var out []string
	for _, f := range fields {
		fv, sv := field(feed, f), field(store, f)
		if fv.Equal(sv) {
			continue
		}
		out = append(out, fmt.Sprintf("%s: feed=%s store=%s",
			f.Name, rowcodec.EncodeLiteral(fv), rowcodec.EncodeLiteral(sv)))
	}
	return out
}

// field returns the named value with a missing key read as absent.
func field(rec rowcodec.Record, f rowcodec.FieldSpec) rowcodec.Value {
	v := rec.Get(f.Name)
	if !v.Valid() {
		return rowcodec.Null(f.Kind)
	}
	return v
}
