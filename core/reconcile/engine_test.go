package reconcile

import (
	"encoding/json"
	"testing"

	"translation-manager/core/tree"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parse builds a tree from a JSON object literal.
func parse(t *testing.T, doc string) *tree.Value {
	t.Helper()
	var raw any
	require.NoError(t, json.Unmarshal([]byte(doc), &raw))
	v, err := tree.FromAny(raw)
	require.NoError(t, err)
	return v
}

func assertTree(t *testing.T, want string, got *tree.Value) {
	t.Helper()
	expected := parse(t, want)
	if !expected.Equal(got) {
		gotJSON, _ := json.Marshal(got.ToAny())
		t.Fatalf("tree mismatch\nwant: %s\ngot:  %s", want, gotJSON)
	}
}

func changedPaths(s Summary) []string {
	out := make([]string, 0, len(s.Changes))
	for _, c := range s.Changes {
		out = append(out, c.Path.String())
	}
	return out
}

// TestPropagateMissing_Scenarios covers the reference cases for key propagation.
func TestPropagateMissing_Scenarios(t *testing.T) {
	tests := []struct {
		name     string
		ref      string
		dep      string
		expected string
	}{
		{
			name: "VaryingStructure",
			ref: `{"one":{"whatever":{"foo":"bar"},"okay":{"hoge":"hoge"}},"two":"top level",
				"three":{"rhubarb":{"eh":"eeeh"},"teeth":"yes"}}`,
			dep: `{"one":{"okay":{"hoge":"ほげ"}},"three":{"teeth":"はい"}}`,
			expected: `{"one":{"whatever":{"foo":"bar"},"okay":{"hoge":"ほげ"}},"two":"top level",
				"three":{"rhubarb":{"eh":"eeeh"},"teeth":"はい"}}`,
		},
		{
			name:     "StringToObject",
			ref:      `{"one":{"hoge":"hoge"}}`,
			dep:      `{"one":"was a string"}`,
			expected: `{"one":{"hoge":"hoge"}}`,
		},
		{
			name:     "ObjectToString",
			ref:      `{"one":"is a string"}`,
			dep:      `{"one":{"hoge":"hoge"}}`,
			expected: `{"one":"is a string"}`,
		},
		{
			name:     "ExpandChild",
			ref:      `{"one":{"hoge":"hoge","naruhodo":"naruhodo"}}`,
			dep:      `{"one":{"hoge":"ほげ"}}`,
			expected: `{"one":{"hoge":"ほげ","naruhodo":"naruhodo"}}`,
		},
		{
			name:     "NoChanges",
			ref:      `{"one":{"hoge":"hoge","naruhodo":"naruhodo"}}`,
			dep:      `{"one":{"hoge":"ほげ","naruhodo":"なるほど"}}`,
			expected: `{"one":{"hoge":"ほげ","naruhodo":"なるほど"}}`,
		},
		{
			name:     "ExtraKeysSurvive",
			ref:      `{"a":"x"}`,
			dep:      `{"a":"y","stale":{"k":"v"}}`,
			expected: `{"a":"y","stale":{"k":"v"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dep := parse(t, tt.dep)
			_, err := PropagateMissing(parse(t, tt.ref), dep)
			require.NoError(t, err)
			assertTree(t, tt.expected, dep)
		})
	}
}

func TestPropagateMissing_Summary(t *testing.T) {
	ref := parse(t, `{"a":{"b":"x"},"c":"y","d":{"e":"z"}}`)
	dep := parse(t, `{"a":"flat","d":{"e":"kept"}}`)

	summary, err := PropagateMissing(ref, dep)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Added)
	assert.Equal(t, 1, summary.Replaced)
	assert.Equal(t, 0, summary.Removed)
	assert.Equal(t, []string{"a", "c"}, changedPaths(summary))
	assert.Equal(t, ChangeReplace, summary.Changes[0].Type)
	assert.Equal(t, "leaf replaced by node", summary.Changes[0].Reason)
}

// TestPropagateMissing_BreadthFirst checks that a whole level is handled before descending.
func TestPropagateMissing_BreadthFirst(t *testing.T) {
	ref := parse(t, `{"a":{"x":{"deep":"1"}},"b":"2","c":{"y":"3"}}`)
	dep := parse(t, `{"a":{"x":{}},"c":{}}`)

	summary, err := PropagateMissing(ref, dep)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c.y", "a.x.deep"}, changedPaths(summary))
}

func TestPropagateMissing_Idempotent(t *testing.T) {
	ref := parse(t, `{"one":{"whatever":{"foo":"bar"},"okay":{"hoge":"hoge"}},"two":"top level",
		"three":{"rhubarb":{"eh":"eeeh"},"teeth":"yes"},"four":{"x":"y"}}`)
	dep := parse(t, `{"one":{"okay":"flat"},"three":{"teeth":"はい"},"four":"leaf"}`)

	_, err := PropagateMissing(ref, dep)
	require.NoError(t, err)
	once := dep.Clone()

	summary, err := PropagateMissing(ref, dep)
	require.NoError(t, err)
	assert.True(t, summary.Empty())
	assert.True(t, once.Equal(dep))
}

func TestPropagateMissing_PreservesExistingLeaves(t *testing.T) {
	ref := parse(t, `{"a":{"b":"en-b","c":"en-c"},"d":"en-d","e":{"f":{"g":"en-g"}}}`)
	dep := parse(t, `{"a":{"b":"fr-b"},"d":"fr-d","e":{"f":{"g":"fr-g"}}}`)

	before := map[string]string{}
	for p, text := range tree.Flatten(dep) {
		if tree.IsLeafAt(ref, p) {
			before[p.String()] = text
		}
	}

	_, err := PropagateMissing(ref, dep)
	require.NoError(t, err)

	for key, text := range before {
		p, err := tree.ParsePath(key)
		require.NoError(t, err)
		v, err := tree.Get(dep, p)
		require.NoError(t, err)
		assert.Equal(t, text, v.Text(), key)
	}
}

func TestPropagateMissing_NoAliasing(t *testing.T) {
	ref := parse(t, `{"sub":{"k":"v"},"leaf":"x"}`)
	dep := parse(t, `{}`)

	_, err := PropagateMissing(ref, dep)
	require.NoError(t, err)

	require.NoError(t, tree.Set(dep, tree.Path{"sub", "k"}, tree.Leaf("changed")))
	require.NoError(t, tree.Set(dep, tree.Path{"sub", "new"}, tree.Leaf("added")))

	assertTree(t, `{"sub":{"k":"v"},"leaf":"x"}`, ref)
}

func TestPropagateMissing_SourceUntouched(t *testing.T) {
	ref := parse(t, `{"a":{"b":"x"},"c":"y"}`)
	snapshot := ref.Clone()
	dep := parse(t, `{"a":"flat","c":{"z":"q"},"extra":"e"}`)

	_, err := PropagateMissing(ref, dep)
	require.NoError(t, err)
	assert.True(t, snapshot.Equal(ref))
}

func TestPropagateMissing_Malformed(t *testing.T) {
	_, err := PropagateMissing(tree.Leaf("x"), tree.NewNode())
	assert.ErrorIs(t, err, tree.ErrMalformedTree)

	_, err = PropagateMissing(tree.NewNode(), tree.Leaf("x"))
	assert.ErrorIs(t, err, tree.ErrMalformedTree)

	ref := tree.NewNode()
	ref.SetChild("broken", &tree.Value{})
	_, err = PropagateMissing(ref, tree.NewNode())
	assert.ErrorIs(t, err, tree.ErrMalformedTree)
	assert.Contains(t, err.Error(), "broken")
}

func TestPruneExtraneous(t *testing.T) {
	tests := []struct {
		name     string
		ref      string
		dep      string
		expected string
		removed  []string
	}{
		{
			name:     "NestedAndTopLevel",
			ref:      `{"a":{"b":"x"}}`,
			dep:      `{"a":{"b":"y","c":"z"},"d":"w"}`,
			expected: `{"a":{"b":"y"}}`,
			removed:  []string{"d", "a.c"},
		},
		{
			name:     "KindMismatchKeepsKeyDropsChildren",
			ref:      `{"a":{"b":"x"},"c":"y"}`,
			dep:      `{"a":"flat","c":{"nested":"gone","more":{"deep":"gone"}}}`,
			expected: `{"a":"flat","c":{}}`,
			removed:  []string{"c.more", "c.nested"},
		},
		{
			name:     "WholeSubtree",
			ref:      `{"keep":"x"}`,
			dep:      `{"keep":"y","gone":{"deep":{"er":"z"}}}`,
			expected: `{"keep":"y"}`,
			removed:  []string{"gone"},
		},
		{
			name:     "EverythingGone",
			ref:      `{}`,
			dep:      `{"a":"1","b":{"c":"2"}}`,
			expected: `{}`,
			removed:  []string{"a", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dep := parse(t, tt.dep)
			summary, err := PruneExtraneous(parse(t, tt.ref), dep)
			require.NoError(t, err)
			assertTree(t, tt.expected, dep)
			assert.Equal(t, tt.removed, changedPaths(summary))
			assert.Equal(t, len(tt.removed), summary.Removed)
		})
	}
}

func TestPruneExtraneous_SubsetOfReference(t *testing.T) {
	ref := parse(t, `{"a":{"b":"x","c":{"d":"y"}},"e":"z"}`)
	dep := parse(t, `{"a":{"b":{"n":"1"},"c":{"d":"2","x":"3"},"q":{"r":"4"}},"e":{"nested":"5"},"f":"6"}`)

	_, err := PruneExtraneous(ref, dep)
	require.NoError(t, err)

	for p := range tree.Flatten(dep) {
		assert.True(t, tree.Exists(ref, p), p.String())
	}
	assertTree(t, `{"a":{"b":{},"c":{"d":"2"}},"e":{}}`, dep)
}

func TestAlignedTreesAreUnchanged(t *testing.T) {
	ref := parse(t, `{"a":{"b":"x","c":{"d":"y"}},"e":"z"}`)
	dep := parse(t, `{"a":{"b":"1","c":{"d":"2"}},"e":"3"}`)
	snapshot := dep.Clone()

	propagated, err := PropagateMissing(ref, dep)
	require.NoError(t, err)
	pruned, err := PruneExtraneous(ref, dep)
	require.NoError(t, err)

	assert.True(t, propagated.Empty())
	assert.True(t, pruned.Empty())
	assert.True(t, snapshot.Equal(dep))
}

func TestDeleteByPath(t *testing.T) {
	first := parse(t, `{"a":{"b":{"c":"1"},"d":"2"}}`)
	second := parse(t, `{"a":{"b":"flat","d":"3"}}`)
	third := parse(t, `{"x":"y"}`)

	summary := DeleteByPath(tree.Path{"a", "b"}, first, second, third)

	assert.Equal(t, 2, summary.Removed)
	assertTree(t, `{"a":{"d":"2"}}`, first)
	assertTree(t, `{"a":{"d":"3"}}`, second)
	assertTree(t, `{"x":"y"}`, third)
}

func TestDeleteByPath_Missing(t *testing.T) {
	dep := parse(t, `{"a":{"b":"1"}}`)
	summary := DeleteByPath(tree.Path{"a", "nope", "deeper"}, dep)
	assert.True(t, summary.Empty())
	assertTree(t, `{"a":{"b":"1"}}`, dep)
}
