package pairorders

import (
	"fmt"

	"backoffice/core/legs"
	"backoffice/core/reconcile"
	"backoffice/core/rowcodec"
	"backoffice/core/staging"
)

// SideAliases maps the side codes accepted by both pair datasets to roles.
var SideAliases = legs.MustAliasTable(map[legs.Role][]string{
	legs.RoleBuy:  {"B", "BC", "BUY", "BUY TO COVER"},
	legs.RoleSell: {"S", "SS", "SELL", "SELL SHORT"},
})

// canonicalSide is written when a leg is submitted without a side code.
var canonicalSide = map[legs.Role]string{
	legs.RoleBuy:  "BUY",
	legs.RoleSell: "SELL",
}

const (
	orderKey    = "parent_order_id"
	templateKey = "template_id"
	sideField   = "side"
)

var orderFields = []rowcodec.FieldSpec{
	{Name: orderKey, Kind: rowcodec.KindString},
	{Name: sideField, Kind: rowcodec.KindString},
	{Name: "symbol", Kind: rowcodec.KindString},
	{Name: "quantity", Kind: rowcodec.KindInt},
	{Name: "limit_price", Kind: rowcodec.KindDecimal},
	{Name: "order_type", Kind: rowcodec.KindString},
	{Name: "trade_date", Kind: rowcodec.KindDate},
	{Name: "status", Kind: rowcodec.KindString},
	{Name: "broker", Kind: rowcodec.KindString},
	{Name: "filled_qty", Kind: rowcodec.KindInt},
}

var templateFields = []rowcodec.FieldSpec{
	{Name: templateKey, Kind: rowcodec.KindString},
	{Name: sideField, Kind: rowcodec.KindString},
	{Name: "symbol", Kind: rowcodec.KindString},
	{Name: "ratio", Kind: rowcodec.KindFloat},
	{Name: "quantity", Kind: rowcodec.KindInt},
	{Name: "account", Kind: rowcodec.KindString},
	{Name: "strategy", Kind: rowcodec.KindString},
	{Name: "created_at", Kind: rowcodec.KindTime},
}

// OrdersDataset is the pair_order table and its staging twin.
var OrdersDataset = staging.Dataset{
	Name:    "pair_orders",
	Target:  "pair_order",
	Staging: "pair_order_stage",
	Fields:  orderFields,
}

// TemplatesDataset is the pair_order_template table and its staging twin.
var TemplatesDataset = staging.Dataset{
	Name:    "pair_order_templates",
	Target:  "pair_order_template",
	Staging: "pair_order_template_stage",
	Fields:  templateFields,
}

func reconstructOptions(key string, fields []rowcodec.FieldSpec) legs.Options {
	return legs.Options{
		KeyFields: []string{key},
		SideField: sideField,
		Aliases:   SideAliases,
		Fields:    fields,
	}
}

// legKey keys a leg record by its entity id and resolved role, so a feed that
// spells a side differently still lines up with the stored leg.
func legKey(key string) reconcile.KeyFunc {
	byID := reconcile.ByFields(key)
	return func(rec rowcodec.Record) (string, error) {
		id, err := byID(rec)
		if err != nil {
			return "", err
		}
		role, err := SideAliases.Resolve(rec.StringOr(sideField, ""))
		if err != nil {
			return "", fmt.Errorf("%s %s: %w", key, id, err)
		}
		// id is already an escaped key part
		return id + legs.KeySeparator + string(role), nil
	}
}
