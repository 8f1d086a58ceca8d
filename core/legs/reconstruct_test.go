package legs

import (
	"errors"
	"testing"

	"backoffice/core/rowcodec"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testAliases = MustAliasTable(map[Role][]string{
	RoleBuy:  {"B", "BUY"},
	RoleSell: {"SS"},
})

var legFields = []rowcodec.FieldSpec{
	{Name: "key", Kind: rowcodec.KindString},
	{Name: "side", Kind: rowcodec.KindString},
	{Name: "qty", Kind: rowcodec.KindInt},
}

func opts() Options {
	return Options{KeyFields: []string{"key"}, SideField: "side", Aliases: testAliases, Fields: legFields}
}

func TestReconstruct_GroupsLegs(t *testing.T) {
	rows := []rowcodec.Row{
		{"key": "A", "side": "B", "qty": int64(1)},
		{"key": "A", "side": "SS", "qty": int64(2)},
		{"key": "B", "side": "BUY", "qty": int64(3)},
	}

	got, err := Reconstruct(rows, opts())
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, int64(1), *got["A"].Leg(RoleBuy).Int("qty"))
	assert.Equal(t, int64(2), *got["A"].Leg(RoleSell).Int("qty"))
	assert.Equal(t, int64(3), *got["B"].Leg(RoleBuy).Int("qty"))
	assert.Nil(t, got["B"].Leg(RoleSell))
	assert.Len(t, got["B"], 1)
}

func TestReconstruct_UnknownSideFailsWholeCall(t *testing.T) {
	rows := []rowcodec.Row{
		{"key": "A", "side": "B", "qty": int64(1)},
		{"key": "A", "side": "XYZ", "qty": int64(2)},
	}

	got, err := Reconstruct(rows, opts())
	assert.Nil(t, got)

	var use *UnknownSideCodeError
	require.True(t, errors.As(err, &use))
	assert.Equal(t, "XYZ", use.Code)
	assert.Equal(t, "A", use.Key)
	assert.Equal(t, 1, use.Row)
}

func TestReconstruct_NullSideIsUnknown(t *testing.T) {
	rows := []rowcodec.Row{{"key": "A", "side": nil, "qty": nil}}

	_, err := Reconstruct(rows, opts())
	var use *UnknownSideCodeError
	assert.True(t, errors.As(err, &use))
}

func TestReconstruct_LastWriteWins(t *testing.T) {
	rows := []rowcodec.Row{
		{"key": "A", "side": "B", "qty": int64(1)},
		{"key": "A", "side": "buy", "qty": int64(9)},
	}

	got, err := Reconstruct(rows, opts())
	require.NoError(t, err)
	assert.Equal(t, int64(9), *got["A"].Leg(RoleBuy).Int("qty"))
}

func TestReconstruct_CaseInsensitiveAliases(t *testing.T) {
	rows := []rowcodec.Row{
		{"key": "A", "side": " b ", "qty": nil},
		{"key": "A", "side": []byte("ss"), "qty": nil},
	}

	got, err := Reconstruct(rows, opts())
	require.NoError(t, err)
	assert.NotNil(t, got["A"].Leg(RoleBuy))
	assert.NotNil(t, got["A"].Leg(RoleSell))
	assert.Nil(t, got["A"].Leg(RoleBuy).Int("qty"))
}

func TestReconstruct_CompositeKey(t *testing.T) {
	o := opts()
	o.KeyFields = []string{"key", "book"}
	rows := []rowcodec.Row{
		{"key": "A", "book": int64(7), "side": "B", "qty": nil},
		{"key": "A", "book": int64(8), "side": "B", "qty": nil},
	}

	got, err := Reconstruct(rows, o)
	require.NoError(t, err)
	assert.Contains(t, got, "A|7")
	assert.Contains(t, got, "A|8")
}

func TestReconstruct_SeparatorInsideKeyPart(t *testing.T) {
	o := opts()
	o.KeyFields = []string{"key", "book"}
	rows := []rowcodec.Row{
		{"key": "X|Y", "book": "Z", "side": "B", "qty": int64(1)},
		{"key": "X", "book": "Y|Z", "side": "B", "qty": int64(2)},
	}

	got, err := Reconstruct(rows, o)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), *got[`X\|Y|Z`].Leg(RoleBuy).Int("qty"))
	assert.Equal(t, int64(2), *got[`X|Y\|Z`].Leg(RoleBuy).Int("qty"))
}

func TestJoinKey(t *testing.T) {
	tests := []struct {
		parts []string
		want  string
	}{
		{parts: []string{"P1"}, want: "P1"},
		{parts: []string{"A", "7"}, want: "A|7"},
		{parts: []string{"X|Y", "Z"}, want: `X\|Y|Z`},
		{parts: []string{`a\`, "b"}, want: `a\\|b`},
		{parts: []string{"a", `\b`}, want: `a|\\b`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, JoinKey(tt.parts...), "%q", tt.parts)
	}
	assert.NotEqual(t, JoinKey(`a\`, "b"), JoinKey("a", `\b`))
}

func TestReconstruct_MissingKey(t *testing.T) {
	rows := []rowcodec.Row{{"key": nil, "side": "B", "qty": nil}}

	_, err := Reconstruct(rows, opts())
	var mke *MissingKeyError
	require.True(t, errors.As(err, &mke))
	assert.Equal(t, "key", mke.Field)
}

func TestReconstruct_DecodeErrorPropagates(t *testing.T) {
	rows := []rowcodec.Row{{"key": "A", "side": "B", "qty": "lots"}}

	_, err := Reconstruct(rows, opts())
	var fte *rowcodec.FieldTypeError
	assert.True(t, errors.As(err, &fte))
}

func TestReconstruct_EmptyInput(t *testing.T) {
	got, err := Reconstruct(nil, opts())
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = Reconstruct(nil, Options{})
	assert.Error(t, err)
}

func TestNewAliasTable(t *testing.T) {
	_, err := NewAliasTable(map[Role][]string{RoleBuy: {"X"}, RoleSell: {"x"}})
	assert.ErrorContains(t, err, "maps to both")

	_, err = NewAliasTable(map[Role][]string{"Hold": {"H"}})
	assert.ErrorContains(t, err, "unknown role")

	tbl, err := NewAliasTable(map[Role][]string{RoleSell: {"S", "SELL"}})
	require.NoError(t, err)
	role, err := tbl.Resolve("sell")
	require.NoError(t, err)
	assert.Equal(t, RoleSell, role)
	assert.ElementsMatch(t, []string{"s", "sell"}, tbl.Codes(RoleSell))
}
