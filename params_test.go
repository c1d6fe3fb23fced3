package accept

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadParams(t *testing.T) {
	testcases := []struct {
		desc     string
		input    string
		weighted bool
		params   Params
		q        float64
		ok       bool
		rest     string
	}{
		{
			desc:     "no parameters",
			input:    ", next",
			weighted: true,
			q:        1,
			ok:       true,
			rest:     ", next",
		},
		{
			desc:     "parameters in order",
			input:    ";b=2; a=\"x y\" ,",
			weighted: true,
			params:   Params{{Name: "b", Value: "2"}, {Name: "a", Value: "x y"}},
			q:        1,
			ok:       true,
			rest:     " ,",
		},
		{
			desc:     "weight extracted",
			input:    " ; level=1 ; Q=0.5;x=y",
			weighted: true,
			params:   Params{{Name: "level", Value: "1"}, {Name: "x", Value: "y"}},
			q:        0.5,
			ok:       true,
			rest:     "",
		},
		{
			desc:   "weight kept as parameter",
			input:  ";q=0.5",
			params: Params{{Name: "q", Value: "0.5"}},
			ok:     true,
			rest:   "",
		},
		{
			desc:     "missing equals",
			input:    ";level",
			weighted: true,
			ok:       false,
		},
		{
			desc:     "missing value",
			input:    ";level=",
			weighted: true,
			ok:       false,
		},
		{
			desc:     "missing name",
			input:    ";=1",
			weighted: true,
			ok:       false,
		},
		{
			desc:     "weight out of range",
			input:    ";q=2",
			weighted: true,
			ok:       false,
		},
		{
			desc:     "negative weight",
			input:    ";q=-1",
			weighted: true,
			ok:       false,
		},
		{
			desc:     "too many fractional digits",
			input:    ";q=0.1234",
			weighted: true,
			ok:       false,
		},
	}
	for _, tc := range testcases {
		t.Run(tc.desc, func(t *testing.T) {
			sc := NewScanner(tc.input)
			var params Params
			q := 1.0
			var weight *float64
			if tc.weighted {
				weight = &q
			}

			ok := ReadParams(sc, &params, weight)
			require.Equal(t, tc.ok, ok)
			if !ok {
				return
			}
			assert.Equal(t, tc.params, params)
			if tc.weighted {
				assert.Equal(t, tc.q, q)
			}
			assert.Equal(t, tc.rest, sc.Rest())
		})
	}
}

func TestReadWeight(t *testing.T) {
	testcases := []struct {
		desc  string
		input string
		q     float64
		ok    bool
		rest  string
	}{
		{desc: "absent", input: " , x", q: 1, ok: true, rest: " , x"},
		{desc: "present", input: " ;q=0.25,", q: 0.25, ok: true, rest: ","},
		{desc: "upper case name", input: ";Q=0", q: 0, ok: true, rest: ""},
		{desc: "one with zeros", input: ";q=1.000", q: 1, ok: true, rest: ""},
		{desc: "other parameter", input: ";level=1", ok: false},
		{desc: "above one", input: ";q=1.001", ok: false},
		{desc: "missing value", input: ";q=", ok: false},
		{desc: "dangling separator", input: ";", ok: false},
	}
	for _, tc := range testcases {
		t.Run(tc.desc, func(t *testing.T) {
			sc := NewScanner(tc.input)
			q, ok := ReadWeight(sc)
			require.Equal(t, tc.ok, ok)
			if !ok {
				return
			}
			assert.Equal(t, tc.q, q)
			assert.Equal(t, tc.rest, sc.Rest())
		})
	}
}

func TestParseQValue(t *testing.T) {
	testcases := []struct {
		input string
		q     float64
		ok    bool
	}{
		{input: "0", q: 0, ok: true},
		{input: "1", q: 1, ok: true},
		{input: "1.", q: 1, ok: true},
		{input: "0.5", q: 0.5, ok: true},
		{input: "0.001", q: 0.001, ok: true},
		{input: "0.999", q: 0.999, ok: true},
		{input: "00.5", q: 0.5, ok: true},
		{input: "1.000", q: 1, ok: true},
		{input: "1.5", ok: false},
		{input: "2", ok: false},
		{input: "10", ok: false},
		{input: "0.1234", ok: false},
		{input: ".5", ok: false},
		{input: "", ok: false},
		{input: "0.5x", ok: false},
	}
	for _, tc := range testcases {
		t.Run(tc.input, func(t *testing.T) {
			q, ok := ParseQValue(tc.input)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.q, q)
		})
	}
}

func TestFormatQ(t *testing.T) {
	assert.Equal(t, "0", FormatQ(0))
	assert.Equal(t, "1", FormatQ(1))
	assert.Equal(t, "0.5", FormatQ(0.5))
	assert.Equal(t, "0.125", FormatQ(0.125))
	assert.Equal(t, "0.333", FormatQ(1.0/3))
}

func TestCheckWeight(t *testing.T) {
	q, err := checkWeight(0.12345)
	require.NoError(t, err)
	assert.Equal(t, 0.123, q)

	for _, bad := range []float64{-0.1, 1.1, math.NaN(), math.Inf(1)} {
		_, err := checkWeight(bad)
		assert.ErrorIs(t, err, ErrInvalidWeight)
	}
}

func TestParamsString(t *testing.T) {
	params := Params{{Name: "level", Value: "1"}, {Name: "title", Value: `a "b"`}}
	assert.Equal(t, `;level=1;title="a \"b\""`, params.String())

	v, ok := params.Get("LEVEL")
	assert.True(t, ok)
	assert.Equal(t, "1", v)

	_, ok = params.Get("charset")
	assert.False(t, ok)
}
