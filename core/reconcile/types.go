package reconcile

import (
	"strings"

	"backoffice/core/rowcodec"
)

// Status classifies one key of a plan.
type Status string

const (
	// StatusAdded keys exist only in the feed.
	StatusAdded Status = "added"
	// StatusRemoved keys exist only in the store.
	StatusRemoved Status = "removed"
	// StatusChanged keys exist on both sides with differing fields.
	StatusChanged Status = "changed"
	// StatusUnchanged keys match field for field.
	StatusUnchanged Status = "unchanged"
)

// KeyFunc derives the entity key of a record.
type KeyFunc func(rowcodec.Record) (string, error)

// Spec describes how records of one dataset are keyed and compared.
type Spec struct {
	// Dataset names the plan.
	Dataset string
	// Fields are compared in declared order.
	Fields []rowcodec.FieldSpec
	Key    KeyFunc
}

// Result is the comparison of one key.
type Result struct {
	Key          string   `json:"key"`
	Status       Status   `json:"status"`
	FeedPresent  bool     `json:"feed_present"`
	StorePresent bool     `json:"store_present"`
	Mismatch     []string `json:"mismatch,omitempty"`
}

// Summary counts the keys of a plan by status.
type Summary struct {
	Total     int `json:"total"`
	Added     int `json:"added"`
	Removed   int `json:"removed"`
	Changed   int `json:"changed"`
	Unchanged int `json:"unchanged"`
}

// Plan lists what replacing a dataset with a feed would change.
// Unchanged keys are only counted.
type Plan struct {
	Dataset string   `json:"dataset"`
	Results []Result `json:"results"`
	Summary Summary  `json:"summary"`
}

// Empty reports whether the replace would leave the dataset as it is.
func (p *Plan) Empty() bool {
	return p.Summary.Added == 0 && p.Summary.Removed == 0 && p.Summary.Changed == 0
}

func (s *Summary) count(st Status) {
	s.Total++
	switch st {
	case StatusAdded:
		s.Added++
	case StatusRemoved:
		s.Removed++
	case StatusChanged:
		s.Changed++
	default:
		s.Unchanged++
	}
}

// keyText renders one key component. Strings are used as is.
func keyText(v rowcodec.Value) string {
	if s, ok := v.Str(); ok {
		return strings.TrimSpace(s)
	}
	return rowcodec.EncodeLiteral(v)
}
