package securities

import (
	"fmt"

	"backoffice/core/reconcile"
	"backoffice/core/rowcodec"
	"backoffice/core/staging"
	"backoffice/feature/securities/models"
)

const securityKey = "security_id"

// binding ties a transfer object to its dataset.
type binding[T any] struct {
	ds staging.Dataset
	// order is the ORDER BY column of List.
	order string
	// key identifies an encoded item. Duplicates are rejected before
	// staging and previews match feed and store by it.
	key    reconcile.KeyFunc
	encode func(T) (rowcodec.Record, error)
	decode func(rowcodec.Record) (T, error)
}

// RiskFactorsDataset holds factor exposures by security and factor.
var RiskFactorsDataset = staging.Dataset{
	Name:    "security_risk_factors",
	Target:  "security_risk_factor",
	Staging: "security_risk_factor_stage",
	Fields: []rowcodec.FieldSpec{
		{Name: securityKey, Kind: rowcodec.KindString},
		{Name: "factor_name", Kind: rowcodec.KindString},
		{Name: "exposure", Kind: rowcodec.KindFloat},
		{Name: "as_of_date", Kind: rowcodec.KindDate},
	},
}

// MasterExtDataset holds the security master extension.
var MasterExtDataset = staging.Dataset{
	Name:    "security_master_ext",
	Target:  "security_master_ext",
	Staging: "security_master_ext_stage",
	Fields: []rowcodec.FieldSpec{
		{Name: securityKey, Kind: rowcodec.KindString},
		{Name: "ticker", Kind: rowcodec.KindString},
		{Name: "sector", Kind: rowcodec.KindString},
		{Name: "lot_size", Kind: rowcodec.KindInt},
		{Name: "tradable", Kind: rowcodec.KindString},
		{Name: "borrow_rate", Kind: rowcodec.KindDecimal},
		{Name: "updated_at", Kind: rowcodec.KindTime},
	},
}

// AlertsDataset holds security alerts.
var AlertsDataset = staging.Dataset{
	Name:    "security_alerts",
	Target:  "security_alert",
	Staging: "security_alert_stage",
	Fields: []rowcodec.FieldSpec{
		{Name: "alert_id", Kind: rowcodec.KindString},
		{Name: securityKey, Kind: rowcodec.KindString},
		{Name: "alert_type", Kind: rowcodec.KindString},
		{Name: "message", Kind: rowcodec.KindString},
		{Name: "severity", Kind: rowcodec.KindInt},
		{Name: "raised_at", Kind: rowcodec.KindTime},
		{Name: "acknowledged", Kind: rowcodec.KindBool},
	},
}

// FilingsDataset holds issuer filings.
var FilingsDataset = staging.Dataset{
	Name:    "security_filings",
	Target:  "security_filing",
	Staging: "security_filing_stage",
	Fields: []rowcodec.FieldSpec{
		{Name: "filing_id", Kind: rowcodec.KindString},
		{Name: securityKey, Kind: rowcodec.KindString},
		{Name: "form_type", Kind: rowcodec.KindString},
		{Name: "filed_date", Kind: rowcodec.KindDate},
		{Name: "url", Kind: rowcodec.KindString},
		{Name: "summary", Kind: rowcodec.KindString},
	},
}

func riskFactors(ds staging.Dataset) binding[models.RiskFactor] {
	return binding[models.RiskFactor]{
		ds:     ds,
		order:  securityKey,
		key:    reconcile.ByFields(securityKey, "factor_name"),
		encode: func(r models.RiskFactor) (rowcodec.Record, error) {
			return rowcodec.Record{
				securityKey:   rowcodec.String(r.SecurityID),
				"factor_name": rowcodec.String(r.FactorName),
				"exposure":    rowcodec.NullableFloat(r.Exposure),
				"as_of_date":  rowcodec.NullableDate(r.AsOfDate),
			}, nil
		},
		decode: func(rec rowcodec.Record) (models.RiskFactor, error) {
			return models.RiskFactor{
				SecurityID: rec.StringOr(securityKey, ""),
				FactorName: rec.StringOr("factor_name", ""),
				Exposure:   rec.Float("exposure"),
				AsOfDate:   rec.Time("as_of_date"),
			}, nil
		},
	}
}

func masterExt(ds staging.Dataset) binding[models.MasterExt] {
	return binding[models.MasterExt]{
		ds:     ds,
		order:  securityKey,
		key:    reconcile.ByFields(securityKey),
		encode: func(m models.MasterExt) (rowcodec.Record, error) {
			tradable := rowcodec.Null(rowcodec.KindString)
			if m.Tradable.Set() {
				tradable = rowcodec.String(m.Tradable.String())
			}
			return rowcodec.Record{
				securityKey:   rowcodec.String(m.SecurityID),
				"ticker":      rowcodec.NullableString(m.Ticker),
				"sector":      rowcodec.NullableString(m.Sector),
				"lot_size":    rowcodec.NullableInt(m.LotSize),
				"tradable":    tradable,
				"borrow_rate": rowcodec.NullableDecimal(m.BorrowRate),
				"updated_at":  rowcodec.NullableTime(m.UpdatedAt),
			}, nil
		},
		decode: func(rec rowcodec.Record) (models.MasterExt, error) {
			id := rec.StringOr(securityKey, "")
			tradable, err := models.ParseFlag(rec.StringOr("tradable", ""))
			if err != nil {
				return models.MasterExt{}, fmt.Errorf("security %s: tradable: %w", id, err)
			}
			return models.MasterExt{
				SecurityID: id,
				Ticker:     rec.String("ticker"),
				Sector:     rec.String("sector"),
				LotSize:    rec.Int("lot_size"),
				Tradable:   tradable,
				BorrowRate: rec.Decimal("borrow_rate"),
				UpdatedAt:  rec.Time("updated_at"),
			}, nil
		},
	}
}

func alerts(ds staging.Dataset) binding[models.Alert] {
	return binding[models.Alert]{
		ds:     ds,
		order:  "alert_id",
		key:    reconcile.ByFields("alert_id"),
		encode: func(a models.Alert) (rowcodec.Record, error) {
			return rowcodec.Record{
				"alert_id":     rowcodec.String(a.AlertID),
				securityKey:    rowcodec.NullableString(a.SecurityID),
				"alert_type":   rowcodec.NullableString(a.AlertType),
				"message":      rowcodec.NullableString(a.Message),
				"severity":     rowcodec.NullableInt(a.Severity),
				"raised_at":    rowcodec.NullableTime(a.RaisedAt),
				"acknowledged": rowcodec.NullableBool(a.Acknowledged),
			}, nil
		},
		decode: func(rec rowcodec.Record) (models.Alert, error) {
			return models.Alert{
				AlertID:      rec.StringOr("alert_id", ""),
				SecurityID:   rec.String(securityKey),
				AlertType:    rec.String("alert_type"),
				Message:      rec.String("message"),
				Severity:     rec.Int("severity"),
				RaisedAt:     rec.Time("raised_at"),
				Acknowledged: rec.Bool("acknowledged"),
			}, nil
		},
	}
}

func filings(ds staging.Dataset) binding[models.Filing] {
	return binding[models.Filing]{
		ds:     ds,
		order:  "filing_id",
		key:    reconcile.ByFields("filing_id"),
		encode: func(f models.Filing) (rowcodec.Record, error) {
			return rowcodec.Record{
				"filing_id":  rowcodec.String(f.FilingID),
				securityKey:  rowcodec.NullableString(f.SecurityID),
				"form_type":  rowcodec.NullableString(f.FormType),
				"filed_date": rowcodec.NullableDate(f.FiledDate),
				"url":        rowcodec.NullableString(f.URL),
				"summary":    rowcodec.NullableString(f.Summary),
			}, nil
		},
		decode: func(rec rowcodec.Record) (models.Filing, error) {
			return models.Filing{
				FilingID:   rec.StringOr("filing_id", ""),
				SecurityID: rec.String(securityKey),
				FormType:   rec.String("form_type"),
				FiledDate:  rec.Time("filed_date"),
				URL:        rec.String("url"),
				Summary:    rec.String("summary"),
			}, nil
		},
	}
}
