package token

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

var tokenShape = regexp.MustCompile(`^SS-[0-9A-F]{24}$`)

func TestDeriveShape(t *testing.T) {
	tok := Derive("PROD001", "Vitamin C Supplement", "BATCH1234")
	require.Regexp(t, tokenShape, tok)
}

func TestDeriveDeterministic(t *testing.T) {
	a := Derive("P1", "Widget", "BATCH5500")
	b := Derive("P1", "Widget", "BATCH5500")
	require.Equal(t, a, b)
}

func TestDeriveEmptyInputsStillValid(t *testing.T) {
	tok := Derive("", "", "")
	require.Regexp(t, tokenShape, tok)
	require.Equal(t, tok, Derive("", "", ""))
}

func TestMatches(t *testing.T) {
	tok := Derive("P1", "Widget", "BATCH5500")
	require.True(t, Matches(tok, "P1", "Widget", "BATCH5500"))
	require.False(t, Matches(tok, "P2", "Widget", "BATCH5500"))
	require.False(t, Matches("garbage-token", "P1", "Widget", "BATCH5500"))
}

func TestProperty_DeriveDeterministic(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		id := rapid.String().Draw(rt, "id")
		name := rapid.String().Draw(rt, "name")
		batch := rapid.String().Draw(rt, "batch")

		first := Derive(id, name, batch)
		second := Derive(id, name, batch)

		require.Equal(t, first, second, "same inputs must yield identical tokens")
		require.Regexp(t, tokenShape, first)
	})
}

func TestProperty_FieldSensitivity(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		id := rapid.String().Draw(rt, "id")
		name := rapid.String().Draw(rt, "name")
		batch := rapid.String().Draw(rt, "batch")

		base := Derive(id, name, batch)

		require.NotEqual(t, base, Derive(id+"x", name, batch), "id change must change token")
		require.NotEqual(t, base, Derive(id, name+"x", batch), "name change must change token")
		require.NotEqual(t, base, Derive(id, name, batch+"x"), "batch change must change token")
	})
}
