package hash

import (
	"hash/fnv"
	"testing"

	"github.com/stretchr/testify/require"
)

type field struct {
	Name    string
	Min     *int
	Default any
	private int
}

type form struct {
	Fields []field
	Labels map[string]string
}

func intPtr(i int) *int { return &i }

func TestDeepHashObject(t *testing.T) {
	testCases := [][]any{
		{
			map[string]string{"url": "URL", "token": "Token"},
			map[string]string{"url": "URL"},
		},
		{
			[]string{"url", "token"},
			[]string{"token", "url"},
		},
		{
			field{Name: "priority", Min: intPtr(1)},
			field{Name: "priority", Min: intPtr(2)},
		},
		{
			field{Name: "priority", Default: 4},
			field{Name: "priority", Default: float64(4)},
		},
		{
			field{Name: "priority", private: 1},
			field{Name: "priority", private: 2},
		},
		{
			form{Fields: []field{{Name: "url"}}, Labels: map[string]string{"url": "URL"}},
			form{Fields: []field{{Name: "url"}}, Labels: map[string]string{"url": "Url"}},
		},
		{
			nil,
			[]any{},
		},
		{
			"CheckMK",
			"CheckMK ",
		},
	}

	for idx, tc := range testCases {
		h := fnv.New64a()
		DeepHashObject(h, tc[0])
		hash11 := h.Sum64()
		DeepHashObject(h, tc[0])
		hash12 := h.Sum64()

		if hash12 != hash11 {
			t.Log(configForHash.Sprintf("%#v", tc[0]))
			require.Failf(t, "DeepHashObject returned different result for the same object.", "test case %d", idx)
		}

		DeepHashObject(h, tc[1])
		hash21 := h.Sum64()
		if hash21 == hash11 {
			t.Log("Object 1")
			t.Log(configForHash.Sprintf("%#v", tc[0]))
			t.Log("Object 2")
			t.Log(configForHash.Sprintf("%#v", tc[1]))
			require.Failf(t, "DeepHashObject returned same result for different objects.", "test case %d", idx)
		}
	}
}

func TestFingerprint(t *testing.T) {
	a := form{Fields: []field{{Name: "priority", Min: intPtr(1), Default: 4}}, Labels: map[string]string{"b": "2", "a": "1"}}
	b := form{Fields: []field{{Name: "priority", Min: intPtr(1), Default: 4}}, Labels: map[string]string{"a": "1", "b": "2"}}

	require.Equal(t, Fingerprint(a), Fingerprint(b), "pointer identity and map order must not matter")
	require.Len(t, Fingerprint(a), 16)

	b.Fields[0].Min = intPtr(2)
	require.NotEqual(t, Fingerprint(a), Fingerprint(b))
}
