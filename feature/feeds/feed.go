package feeds

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"backoffice/core/reconcile"
	"backoffice/core/server"
	"backoffice/core/staging"
)

// ReplaceFunc decodes a feed payload and replaces its dataset with it.
type ReplaceFunc func(ctx context.Context, payload io.Reader) (*staging.Result, error)

// PreviewFunc decodes a feed payload and compares it with the stored dataset.
type PreviewFunc func(ctx context.Context, payload io.Reader) (*reconcile.Plan, error)

// JSON adapts a typed replace operation to a ReplaceFunc reading a JSON array.
// An empty array empties the dataset.
func JSON[T any](replace func(context.Context, []T) (*staging.Result, error)) ReplaceFunc {
	return func(ctx context.Context, payload io.Reader) (*staging.Result, error) {
		items, err := decode[T](payload)
		if err != nil {
			return nil, err
		}
		return replace(ctx, items)
	}
}

// JSONPreview adapts a typed preview operation to a PreviewFunc.
func JSONPreview[T any](preview func(context.Context, []T) (*reconcile.Plan, error)) PreviewFunc {
	return func(ctx context.Context, payload io.Reader) (*reconcile.Plan, error) {
		items, err := decode[T](payload)
		if err != nil {
			return nil, err
		}
		return preview(ctx, items)
	}
}

func decode[T any](payload io.Reader) ([]T, error) {
	var items []T
	if err := json.NewDecoder(payload).Decode(&items); err != nil {
		return nil, fmt.Errorf("%w: decode feed: %v", server.ErrInvalidInput, err)
	}
	return items, nil
}

// Object describes a feed present in the bucket.
type Object struct {
	Dataset      string    `json:"dataset"`
	Key          string    `json:"key"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"last_modified"`
}

// Outcome is the result of refreshing one dataset in RefreshAll.
type Outcome struct {
	Dataset string `json:"dataset"`
	Rows    int    `json:"rows"`
	Error   string `json:"error,omitempty"`
}
