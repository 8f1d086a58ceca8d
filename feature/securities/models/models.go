package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RiskFactor is one factor exposure of a security.
type RiskFactor struct {
	SecurityID string     `json:"security_id" validate:"required"`
	FactorName string     `json:"factor_name" validate:"required"`
	Exposure   *float64   `json:"exposure,omitempty"`
	AsOfDate   *time.Time `json:"as_of_date,omitempty"`
}

// MasterExt extends the security master with trading attributes.
type MasterExt struct {
	SecurityID string           `json:"security_id" validate:"required"`
	Ticker     *string          `json:"ticker,omitempty"`
	Sector     *string          `json:"sector,omitempty"`
	LotSize    *int64           `json:"lot_size,omitempty" validate:"omitempty,gt=0"`
	Tradable   Flag             `json:"tradable" swaggertype:"string" enums:"YES,NO"`
	BorrowRate *decimal.Decimal `json:"borrow_rate,omitempty" swaggertype:"string"`
	UpdatedAt  *time.Time       `json:"updated_at,omitempty"`
}

// Alert is an operational alert raised against a security.
type Alert struct {
	AlertID      string     `json:"alert_id" validate:"required"`
	SecurityID   *string    `json:"security_id,omitempty"`
	AlertType    *string    `json:"alert_type,omitempty"`
	Message      *string    `json:"message,omitempty"`
	Severity     *int64     `json:"severity,omitempty" validate:"omitempty,gte=0"`
	RaisedAt     *time.Time `json:"raised_at,omitempty"`
	Acknowledged *bool      `json:"acknowledged,omitempty"`
}

// Filing is a regulatory filing of a security's issuer.
type Filing struct {
	FilingID   string     `json:"filing_id" validate:"required"`
	SecurityID *string    `json:"security_id,omitempty"`
	FormType   *string    `json:"form_type,omitempty"`
	FiledDate  *time.Time `json:"filed_date,omitempty"`
	URL        *string    `json:"url,omitempty" validate:"omitempty,url"`
	Summary    *string    `json:"summary,omitempty"`
}
