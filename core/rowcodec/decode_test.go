package rowcodec

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var riskFields = []FieldSpec{
	{Name: "security_id", Kind: KindString},
	{Name: "exposure", Kind: KindFloat},
	{Name: "as_of_date", Kind: KindDate},
	{Name: "lot_size", Kind: KindInt},
}

func TestDecode_ByName(t *testing.T) {
	asOf := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	row := Row{
		"lot_size":    int64(100),
		"AS_OF_DATE":  asOf,
		"exposure":    []byte("0.75"),
		"security_id": []byte("IBM"),
		"extra":       "ignored",
	}

	rec, err := Decode(row, riskFields)
	require.NoError(t, err)

	assert.Equal(t, "IBM", *rec.String("security_id"))
	assert.Equal(t, 0.75, *rec.Float("exposure"))
	assert.True(t, asOf.Equal(*rec.Time("as_of_date")))
	assert.Equal(t, int64(100), *rec.Int("lot_size"))
	assert.Len(t, rec, len(riskFields))
}

func TestDecode_NullIsAbsent(t *testing.T) {
	row := Row{"security_id": "IBM", "exposure": nil, "as_of_date": nil, "lot_size": nil}

	rec, err := Decode(row, riskFields)
	require.NoError(t, err)

	assert.False(t, rec["exposure"].Valid())
	assert.Equal(t, KindFloat, rec["exposure"].Kind())
	assert.Nil(t, rec.Float("exposure"))
	assert.Nil(t, rec.Int("lot_size"))
	assert.Nil(t, rec.Time("as_of_date"))
}

func TestDecode_FieldTypeError(t *testing.T) {
	row := Row{"security_id": "IBM", "exposure": "high", "as_of_date": nil, "lot_size": nil}

	_, err := Decode(row, riskFields)
	require.Error(t, err)

	var fte *FieldTypeError
	require.True(t, errors.As(err, &fte))
	assert.Equal(t, "exposure", fte.Field)
	assert.Equal(t, KindFloat, fte.Kind)
	assert.Equal(t, "high", fte.Value)
}

func TestDecode_MissingColumn(t *testing.T) {
	row := Row{"security_id": "IBM"}

	_, err := Decode(row, riskFields)
	var mce *MissingColumnError
	require.True(t, errors.As(err, &mce))
	assert.Equal(t, "exposure", mce.Field)
}

func TestDecodeAll_ReportsRowIndex(t *testing.T) {
	rows := []Row{
		{"security_id": "A", "exposure": 1.0, "as_of_date": nil, "lot_size": int64(1)},
		{"security_id": "B", "exposure": 1.0, "as_of_date": nil, "lot_size": 1.5},
	}

	_, err := DecodeAll(rows, riskFields)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 1")

	var fte *FieldTypeError
	assert.True(t, errors.As(err, &fte))
}
