// File: jsonx_test.go
// Title: JSON Serialization Tests
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12

package jsonx

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tkerror "github.com/msto63/textkit/core/error"
)

type address struct {
	StreetName string
	ZIPCode    string
}

type customer struct {
	ID        int
	FirstName string
	Nickname  *string
	Address   *address
	Tags      []string
	Scores    map[string]int
	Notes     []*string
}

func TestToJSONDefaults(t *testing.T) {
	c := customer{
		ID:        7,
		FirstName: "Ada",
		Address:   &address{StreetName: "Main", ZIPCode: "12345"},
		Scores:    map[string]int{"MathScore": 3},
		Notes:     []*string{nil},
	}

	got, err := ToJSON(c)
	require.NoError(t, err)

	want := `{
  "id": 7,
  "firstName": "Ada",
  "address": {
    "streetName": "Main",
    "zipCode": "12345"
  },
  "scores": {
    "mathScore": 3
  },
  "notes": [
    null
  ]
}`
	assert.Equal(t, want, got)
}

func TestToJSONOptions(t *testing.T) {
	c := customer{ID: 1, FirstName: "Bo", Tags: []string{}}

	tests := []struct {
		name string
		opts []Option
		want string
	}{
		{
			name: "compact",
			opts: []Option{WithIndent("")},
			want: `{"id":1,"firstName":"Bo","tags":[]}`,
		},
		{
			name: "keep nulls",
			opts: []Option{WithIndent(""), WithIgnoreNull(true), WithIgnoreNull(false)},
			want: `{"id":1,"firstName":"Bo","nickname":null,"address":null,"tags":[],"scores":null,"notes":null}`,
		},
		{
			name: "keep names",
			opts: []Option{WithIndent(""), WithNaming(nil)},
			want: `{"ID":1,"FirstName":"Bo","Tags":[]}`,
		},
		{
			name: "tab indent",
			opts: []Option{WithIndent("\t"), WithNaming(nil)},
			want: "{\n\t\"ID\": 1,\n\t\"FirstName\": \"Bo\",\n\t\"Tags\": []\n}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToJSON(c, tt.opts...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMarshalScalars(t *testing.T) {
	tests := []struct {
		in   interface{}
		want string
	}{
		{nil, "null"},
		{"a<b", `"a\u003cb"`},
		{12.5, "12.5"},
		{true, "true"},
		{[]int{}, "[]"},
		{map[string]int{}, "{}"},
	}
	for _, tt := range tests {
		got, err := Marshal(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, string(got))
	}
}

func TestMarshalUnsupported(t *testing.T) {
	_, err := Marshal(math.Inf(1))
	require.Error(t, err)
	assert.True(t, tkerror.HasCode(err, tkerror.CodeInternal))

	_, err = ToJSON(make(chan int))
	require.Error(t, err)
}

func TestReformat(t *testing.T) {
	got, err := Reformat([]byte(`{"UserName":"x","Big":12345678901234567890,"Gone":null}`))
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"userName\": \"x\",\n  \"big\": 12345678901234567890\n}", string(got))

	for _, bad := range []string{`{"a":`, `{} {}`, ``, `nope`} {
		_, err := Reformat([]byte(bad))
		require.Error(t, err, bad)
		assert.True(t, tkerror.HasCode(err, tkerror.CodeInvalidFormat), bad)
	}
}

func TestUnmarshalCaseInsensitive(t *testing.T) {
	c, err := FromJSON[customer](`{"firstname":"Ada","ADDRESS":{"streetName":"Main"},"tags":["x"]}`)
	require.NoError(t, err)
	assert.Equal(t, "Ada", c.FirstName)
	require.NotNil(t, c.Address)
	assert.Equal(t, "Main", c.Address.StreetName)
	assert.Equal(t, []string{"x"}, c.Tags)

	_, err = FromJSON[customer](`{"id":"seven"}`)
	require.Error(t, err)
	assert.True(t, tkerror.HasCode(err, tkerror.CodeInvalidFormat))

	var n int
	require.Error(t, Unmarshal([]byte("{"), &n))
}

func TestRoundTrip(t *testing.T) {
	nick := "A"
	in := customer{ID: 3, FirstName: "Ada", Nickname: &nick, Tags: []string{"x", "y"}}

	text, err := ToJSON(in)
	require.NoError(t, err)
	out, err := FromJSON[customer](text)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
