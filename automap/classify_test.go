package automap

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/LubyRuffy/easymaas/openaiapi"
)

func TestClassify_CommonKinds(t *testing.T) {
	require.Equal(t, ReturnNil, Classify(nil).Kind)
	require.Equal(t, ReturnText, Classify("hi").Kind)
	require.Equal(t, ReturnList, Classify([]any{1}).Kind)
	require.Equal(t, ReturnStream, Classify(StreamOf("a")).Kind)

	ret := Classify(openaiapi.Keyv[any]{"content": "x"})
	require.Equal(t, ReturnMapping, ret.Kind)
	require.Equal(t, "x", ret.Mapping["content"])
}

func TestClassify_NormalizesViaJSON(t *testing.T) {
	ret := Classify([]string{"a", "b"})
	require.Equal(t, ReturnList, ret.Kind)
	require.Equal(t, []any{"a", "b"}, ret.List)

	ret = Classify(struct {
		Content string `json:"content"`
	}{Content: "x"})
	require.Equal(t, ReturnMapping, ret.Kind)
	require.Equal(t, "x", ret.Mapping["content"])

	ret = Classify(int64(42))
	require.Equal(t, ReturnOther, ret.Kind)
	require.Equal(t, "42", ret.Text)
}

func TestClassify_UnmarshalableFallsBackToString(t *testing.T) {
	ret := Classify(func() {})
	require.Equal(t, ReturnOther, ret.Kind)
	require.NotEmpty(t, ret.Text)
}
