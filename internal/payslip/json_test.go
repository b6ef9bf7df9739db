package payslip

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_CompactsLineItems(t *testing.T) {
	record, err := ExtractFragments(buildSlip(defaultSlip()))
	require.NoError(t, err)

	out, err := Encode(record)
	require.NoError(t, err)
	text := string(out)

	// Each table row sits on a single line.
	assert.Contains(t, text,
		`{"units_x_100": 7600, "rate_x_100": 3947, "description": "Ordinary Hours", "amount": 300000}`)
	assert.Contains(t, text,
		`{"bank": "CBA", "account": "XXXXXX1234", "amount": 225000}`)
	assert.Contains(t, text,
		`{"type": "Annual Leave", "balance_x_100": 15200, "calculated": "24-06-2022"}`)

	// Blank cells serialize as nulls, not omissions.
	assert.Contains(t, text, `"units_x_100": null`)

	// The containers stay indented.
	assert.Contains(t, text, "\"head\": {\n")
	assert.Contains(t, text, `"warnings": []`)
	assert.NotContains(t, text, `"head": {"payer"`)
}

func TestEncode_Deterministic(t *testing.T) {
	record, err := ExtractFragments(buildSlip(defaultSlip()))
	require.NoError(t, err)

	first, err := Encode(record)
	require.NoError(t, err)
	second, err := Encode(record)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestEncode_RemainsValidJSON(t *testing.T) {
	record, err := ExtractFragments(buildSlip(defaultSlip()))
	require.NoError(t, err)

	out, err := Encode(record)
	require.NoError(t, err)

	var decoded Record
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, *record, decoded)

	// Compaction rearranges whitespace only.
	plain, err := json.Marshal(record)
	require.NoError(t, err)
	stripped := strings.NewReplacer("\n", "", " ", "").Replace(string(out))
	assert.Equal(t, strings.NewReplacer(" ", "").Replace(string(plain)), stripped)
}
