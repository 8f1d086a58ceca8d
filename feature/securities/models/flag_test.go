package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlag(t *testing.T) {
	tests := []struct {
		in   string
		want Flag
	}{
		{"YES", FlagYes},
		{"yes", FlagYes},
		{"Y", FlagYes},
		{"NO", FlagNo},
		{" no ", FlagNo},
		{"N", FlagNo},
		{"", FlagUnset},
	}
	for _, tt := range tests {
		got, err := ParseFlag(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseFlag("MAYBE")
	assert.Error(t, err)
}

// YES and NO must stay distinct values.
func TestFlag_YesAndNoDiffer(t *testing.T) {
	yes, _ := ParseFlag("YES")
	no, _ := ParseFlag("NO")
	assert.NotEqual(t, yes, no)
	assert.Equal(t, "YES", yes.String())
	assert.Equal(t, "NO", no.String())
	assert.True(t, yes.Set())
	assert.True(t, no.Set())
	assert.False(t, FlagUnset.Set())
}

func TestFlag_JSON(t *testing.T) {
	type wrap struct {
		Tradable Flag `json:"tradable"`
	}

	for flag, want := range map[Flag]string{
		FlagYes:   `{"tradable":"YES"}`,
		FlagNo:    `{"tradable":"NO"}`,
		FlagUnset: `{"tradable":null}`,
	} {
		b, err := json.Marshal(wrap{Tradable: flag})
		require.NoError(t, err)
		assert.JSONEq(t, want, string(b))

		var back wrap
		require.NoError(t, json.Unmarshal(b, &back))
		assert.Equal(t, flag, back.Tradable)
	}

	var w wrap
	require.NoError(t, json.Unmarshal([]byte(`{"tradable":false}`), &w))
	assert.Equal(t, FlagNo, w.Tradable)
	assert.Error(t, json.Unmarshal([]byte(`{"tradable":3}`), &w))
}
