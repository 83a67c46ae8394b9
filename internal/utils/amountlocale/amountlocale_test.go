package amountlocale_test

import (
	"testing"

	"github.com/SscSPs/ledger_entry_app/internal/utils/amountlocale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain integer", input: "100", expected: "100"},
		{name: "dot decimal", input: "100.50", expected: "100.50"},
		{name: "comma decimal", input: "100,50", expected: "100.50"},
		{name: "thousands dot with comma decimal", input: "1.234,56", expected: "1234.56"},
		{name: "multiple thousands dots", input: "1.234.567,89", expected: "1234567.89"},
		{name: "empty string", input: "", expected: ""},
		{name: "trailing comma", input: "100,", expected: "100."},
		{name: "idempotent on normalized", input: "1234.56", expected: "1234.56"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, amountlocale.Normalize(tc.input))
		})
	}
}

func TestParse(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
		ok       bool
	}{
		{name: "comma decimal", input: "100,50", expected: "100.5", ok: true},
		{name: "dot decimal", input: "100.50", expected: "100.5", ok: true},
		{name: "thousands separators", input: "1.234,56", expected: "1234.56", ok: true},
		{name: "surrounding whitespace", input: "  42,00 ", expected: "42", ok: true},
		{name: "zero", input: "0", expected: "0", ok: true},
		{name: "negative", input: "-5,25", expected: "-5.25", ok: true},
		{name: "empty", input: "", ok: false},
		{name: "letters", input: "abc", ok: false},
		{name: "two decimal commas", input: "1,2,3", ok: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d, ok := amountlocale.Parse(tc.input)
			require.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.expected, d.String())
			} else {
				assert.True(t, d.IsZero())
			}
		})
	}
}

func TestParseOrZero(t *testing.T) {
	assert.Equal(t, "12.5", amountlocale.ParseOrZero("12,50").String())
	assert.True(t, amountlocale.ParseOrZero("not a number").IsZero())
	assert.True(t, amountlocale.ParseOrZero("").IsZero())
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "valid comma amount", input: "100,50", expected: ""},
		{name: "valid dot amount", input: "100.50", expected: ""},
		{name: "empty", input: "", expected: amountlocale.MsgEnterAmount},
		{name: "whitespace only", input: "   ", expected: amountlocale.MsgEnterAmount},
		{name: "malformed", input: "12x", expected: amountlocale.MsgInvalid},
		{name: "zero is invalid", input: "0", expected: amountlocale.MsgInvalid},
		{name: "zero with decimals is invalid", input: "0,00", expected: amountlocale.MsgInvalid},
		{name: "negative is invalid", input: "-10", expected: amountlocale.MsgInvalid},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, amountlocale.Validate(tc.input))
		})
	}
}
