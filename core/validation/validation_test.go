package validation

import (
	"testing"

	"backoffice/core/server"

	"github.com/stretchr/testify/assert"
)

type leg struct {
	Quantity *int64 `json:"quantity,omitempty" validate:"omitempty,gte=0"`
}

type order struct {
	ID   string `json:"parent_order_id" validate:"required"`
	Link string `json:"link,omitempty" validate:"omitempty,url"`
	Buy  *leg   `json:"buy,omitempty"`
}

func TestStruct(t *testing.T) {
	neg := int64(-1)
	tests := []struct {
		name    string
		in      order
		wantErr string
	}{
		{name: "valid", in: order{ID: "P1", Link: "https://example.test/p1"}},
		{name: "nil leg skipped", in: order{ID: "P1"}},
		{name: "missing id", in: order{}, wantErr: "invalid input: parent_order_id is required"},
		{name: "bad url", in: order{ID: "P1", Link: "not a url"}, wantErr: "invalid input: link must be a valid URL"},
		{
			name:    "nested and multiple",
			in:      order{Buy: &leg{Quantity: &neg}},
			wantErr: "invalid input: parent_order_id is required; buy.quantity must be at least 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.in)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, server.ErrInvalidInput)
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestStruct_NotAStruct(t *testing.T) {
	err := Struct("nope")
	assert.ErrorIs(t, err, server.ErrInvalidInput)
}
