package fips

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samecodec/sameeas/pkg/dictionary"
	"github.com/samecodec/sameeas/pkg/samerr"
)

func testDict(t *testing.T) *dictionary.Dictionary {
	t.Helper()
	d, err := dictionary.Load([]byte(`{
		"SAME": {"30013": "Cascade, MT", "41000": "Montana, MT"},
		"SUBDIV": {"1": "Northern"}
	}`))
	require.NoError(t, err)
	return d
}

func TestTranslate(t *testing.T) {
	d := testDict(t)

	loc, err := Translate(d, "030013")
	require.NoError(t, err)
	assert.Equal(t, "All", loc.Subdivision)
	assert.Equal(t, "Cascade", loc.County)
	assert.Equal(t, "MT", loc.Region)
	assert.Equal(t, "All Cascade, MT", loc.Formatted)
	assert.Equal(t, "Cascade, MT", loc.Text)
}

func TestTranslateStatewide(t *testing.T) {
	d := testDict(t)

	loc, err := Translate(d, "141000")
	require.NoError(t, err)
	assert.Equal(t, "Northern", loc.Subdivision)
	assert.Equal(t, "Montana", loc.County)
	assert.Equal(t, "Montana", loc.Region)
	assert.Equal(t, "Northern of Montana", loc.Formatted)
	assert.Equal(t, "Montana", loc.Text)
}

func TestTranslateErrors(t *testing.T) {
	d := testDict(t)

	cases := []struct {
		name string
		in   string
		kind samerr.Kind
	}{
		{"empty", "", samerr.NoData},
		{"wrong length", "12345", samerr.FipsInvalid},
		{"non digit", "A30013", samerr.InvalidCharacters},
		{"unknown county", "099999", samerr.FipsInvalid},
		{"unknown subdivision", "930013", samerr.SubdivisionInvalid},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Translate(d, tc.in)
			require.Error(t, err)
			kind, ok := samerr.KindOf(err)
			require.True(t, ok)
			assert.Equal(t, tc.kind, kind)
		})
	}
}
