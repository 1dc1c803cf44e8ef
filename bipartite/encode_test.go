package bipartite_test

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bimatch/bipartite"
)

func TestEncodeJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, bipartite.EncodeJSON(&buf, teams))
	require.Equal(t, "{\n  \"alice\": {\"db\": 3, \"web\": 1},\n  \"bob\": {\"db\": 2, \"web\": 4}\n}\n", buf.String())

	buf.Reset()
	require.NoError(t, bipartite.EncodeJSON(&buf, bipartite.Input{}))
	require.Equal(t, "{}\n", buf.String())
}

func TestEncode_RoundTrip(t *testing.T) {
	in := bipartite.Input{Nodes: []bipartite.Node{
		{ID: `quote"d`, Edges: []bipartite.Edge{{To: "true", Weight: -0.25}, {To: "7", Weight: 1e6}}},
		{ID: "empty"},
		{ID: "b", Edges: []bipartite.Edge{{To: "z", Weight: 12}}},
	}}
	for _, f := range []bipartite.Format{bipartite.FormatJSON, bipartite.FormatYAML} {
		t.Run(string(f), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, bipartite.Encode(&buf, in, f))
			got, err := bipartite.Decode(&buf, f)
			require.NoError(t, err)
			if diff := cmp.Diff(in, got, cmpopts.EquateEmpty()); diff != "" {
				t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}

	require.ErrorIs(t, bipartite.Encode(&bytes.Buffer{}, in, bipartite.FormatText), bipartite.ErrUnknownFormat)
	require.ErrorIs(t, bipartite.EncodeJSON(&bytes.Buffer{}, bipartite.Input{Nodes: []bipartite.Node{{}}}), bipartite.ErrMalformedInput)
}
