package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderLeg is one side of a pair order.
type OrderLeg struct {
	// Side is the side code as stored (e.g. "BUY TO COVER").
	Side       string           `json:"side"`
	Symbol     string           `json:"symbol"`
	Quantity   *int64           `json:"quantity,omitempty" validate:"omitempty,gte=0"`
	LimitPrice *decimal.Decimal `json:"limit_price,omitempty" swaggertype:"string"`
	OrderType  *string          `json:"order_type,omitempty"`
	TradeDate  *time.Time       `json:"trade_date,omitempty"`
	Status     *string          `json:"status,omitempty"`
	Broker     *string          `json:"broker,omitempty"`
	FilledQty  *int64           `json:"filled_qty,omitempty" validate:"omitempty,gte=0"`
}

// PairOrder is a parent order with at most one buy and one sell leg.
type PairOrder struct {
	ParentOrderID string    `json:"parent_order_id" validate:"required"`
	Buy           *OrderLeg `json:"buy,omitempty"`
	Sell          *OrderLeg `json:"sell,omitempty"`
}

// TemplateLeg is one side of a pair-order template.
type TemplateLeg struct {
	Side      string     `json:"side"`
	Symbol    string     `json:"symbol"`
	Ratio     *float64   `json:"ratio,omitempty"`
	Quantity  *int64     `json:"quantity,omitempty" validate:"omitempty,gte=0"`
	Account   *string    `json:"account,omitempty"`
	Strategy  *string    `json:"strategy,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// PairOrderTemplate is a reusable pair definition. Either leg may be missing.
type PairOrderTemplate struct {
	TemplateID string       `json:"template_id" validate:"required"`
	Buy        *TemplateLeg `json:"buy,omitempty"`
	Sell       *TemplateLeg `json:"sell,omitempty"`
}
