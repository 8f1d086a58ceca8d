package pairorders

import (
	"fmt"
	"strings"

	"backoffice/core/legs"
	"backoffice/core/rowcodec"
	"backoffice/core/server"
	"backoffice/core/validation"
	"backoffice/feature/pairorders/models"
)

func orderFromEntity(id string, e legs.Entity) models.PairOrder {
	return models.PairOrder{
		ParentOrderID: id,
		Buy:           orderLeg(e.Leg(legs.RoleBuy)),
		Sell:          orderLeg(e.Leg(legs.RoleSell)),
	}
}

func orderLeg(r rowcodec.Record) *models.OrderLeg {
	if r == nil {
		return nil
	}
	return &models.OrderLeg{
		Side:       r.StringOr(sideField, ""),
		Symbol:     r.StringOr("symbol", ""),
		Quantity:   r.Int("quantity"),
		LimitPrice: r.Decimal("limit_price"),
		OrderType:  r.String("order_type"),
		TradeDate:  r.Time("trade_date"),
		Status:     r.String("status"),
		Broker:     r.String("broker"),
		FilledQty:  r.Int("filled_qty"),
	}
}

func templateFromEntity(id string, e legs.Entity) models.PairOrderTemplate {
	return models.PairOrderTemplate{
		TemplateID: id,
		Buy:        templateLeg(e.Leg(legs.RoleBuy)),
		Sell:       templateLeg(e.Leg(legs.RoleSell)),
	}
}

func templateLeg(r rowcodec.Record) *models.TemplateLeg {
	if r == nil {
		return nil
	}
	return &models.TemplateLeg{
		Side:      r.StringOr(sideField, ""),
		Symbol:    r.StringOr("symbol", ""),
		Ratio:     r.Float("ratio"),
		Quantity:  r.Int("quantity"),
		Account:   r.String("account"),
		Strategy:  r.String("strategy"),
		CreatedAt: r.Time("created_at"),
	}
}

// legSide returns the side code to store for a leg placed in the role slot.
// A supplied code must resolve to that role.
func legSide(id string, role legs.Role, code string) (string, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return canonicalSide[role], nil
	}
	got, err := SideAliases.Resolve(code)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", server.ErrInvalidInput, id, err)
	}
	if got != role {
		return "", fmt.Errorf("%w: %s: side %q is a %s code on the %s leg", server.ErrInvalidInput, id, code, got, role)
	}
	return code, nil
}

func nonEmpty(s string) rowcodec.Value {
	if s == "" {
		return rowcodec.Null(rowcodec.KindString)
	}
	return rowcodec.String(s)
}

func orderRecords(orders []models.PairOrder) ([]rowcodec.Record, error) {
	recs := make([]rowcodec.Record, 0, 2*len(orders))
	seen := make(map[string]struct{}, len(orders))
	for _, o := range orders {
		if err := validation.Struct(o); err != nil {
			return nil, err
		}
		if _, dup := seen[o.ParentOrderID]; dup {
			return nil, fmt.Errorf("%w: duplicate %s %q", server.ErrInvalidInput, orderKey, o.ParentOrderID)
		}
		seen[o.ParentOrderID] = struct{}{}
		for _, slot := range []struct {
			role legs.Role
			leg  *models.OrderLeg
		}{{legs.RoleBuy, o.Buy}, {legs.RoleSell, o.Sell}} {
			if slot.leg == nil {
				continue
			}
			side, err := legSide(o.ParentOrderID, slot.role, slot.leg.Side)
			if err != nil {
				return nil, err
			}
			recs = append(recs, rowcodec.Record{
				orderKey:      rowcodec.String(o.ParentOrderID),
				sideField:     rowcodec.String(side),
				"symbol":      nonEmpty(slot.leg.Symbol),
				"quantity":    rowcodec.NullableInt(slot.leg.Quantity),
				"limit_price": rowcodec.NullableDecimal(slot.leg.LimitPrice),
				"order_type":  rowcodec.NullableString(slot.leg.OrderType),
				"trade_date":  rowcodec.NullableDate(slot.leg.TradeDate),
				"status":      rowcodec.NullableString(slot.leg.Status),
				"broker":      rowcodec.NullableString(slot.leg.Broker),
				"filled_qty":  rowcodec.NullableInt(slot.leg.FilledQty),
			})
		}
	}
	return recs, nil
}

func templateRecords(templates []models.PairOrderTemplate) ([]rowcodec.Record, error) {
	recs := make([]rowcodec.Record, 0, 2*len(templates))
	seen := make(map[string]struct{}, len(templates))
	for _, t := range templates {
		if err := validation.Struct(t); err != nil {
			return nil, err
		}
		if _, dup := seen[t.TemplateID]; dup {
			return nil, fmt.Errorf("%w: duplicate %s %q", server.ErrInvalidInput, templateKey, t.TemplateID)
		}
		seen[t.TemplateID] = struct{}{}
		for _, slot := range []struct {
			role legs.Role
			leg  *models.TemplateLeg
		}{{legs.RoleBuy, t.Buy}, {legs.RoleSell, t.Sell}} {
			if slot.leg == nil {
				continue
			}
			side, err := legSide(t.TemplateID, slot.role, slot.leg.Side)
			if err != nil {
				return nil, err
			}
			recs = append(recs, rowcodec.Record{
				templateKey:  rowcodec.String(t.TemplateID),
				sideField:    rowcodec.String(side),
				"symbol":     nonEmpty(slot.leg.Symbol),
				"ratio":      rowcodec.NullableFloat(slot.leg.Ratio),
				"quantity":   rowcodec.NullableInt(slot.leg.Quantity),
				"account":    rowcodec.NullableString(slot.leg.Account),
				"strategy":   rowcodec.NullableString(slot.leg.Strategy),
				"created_at": rowcodec.NullableTime(slot.leg.CreatedAt),
			})
		}
	}
	return recs, nil
}
