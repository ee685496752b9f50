package openaiapi

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeyv_Accessors(t *testing.T) {
	var kv Keyv[any]
	require.NoError(t, json.Unmarshal([]byte(`{
		"model": "m",
		"stream": true,
		"messages": [{"role": "user", "content": "hi"}],
		"options": {"depth": 1}
	}`), &kv))

	require.Equal(t, "m", kv.GetString("model"))
	require.True(t, kv.GetBool("stream"))
	require.Len(t, kv.GetSlice("messages"), 1)
	require.Equal(t, float64(1), kv.GetKeyv("options")["depth"])

	require.True(t, kv.Has("model"))
	require.False(t, kv.Has("missing"))
	require.True(t, kv.IsString("model"))
	require.False(t, kv.IsString("stream"))
	require.True(t, kv.IsSlice("messages"))
}

func TestKeyv_GetKeyvHandlesNestedKeyv(t *testing.T) {
	kv := Keyv[any]{
		"usage": Keyv[any]{"total_tokens": 3},
	}
	require.Equal(t, 3, kv.GetKeyv("usage")["total_tokens"])
}

func TestKeyv_WrongTypesYieldZeroValues(t *testing.T) {
	kv := Keyv[any]{"model": 42}
	require.Equal(t, "", kv.GetString("model"))
	require.False(t, kv.GetBool("model"))
	require.Nil(t, kv.GetSlice("model"))
	require.Nil(t, kv.GetKeyv("model"))
}

func TestKeyv_SetGetClone(t *testing.T) {
	kv := Keyv[any]{}
	kv.Set("k", "v")

	v, ok := kv.Get("k")
	require.True(t, ok)
	require.Equal(t, "v", v)

	clone := kv.Clone()
	clone.Set("k", "patched")
	require.Equal(t, "v", kv.GetString("k"))
	require.JSONEq(t, `{"k":"v"}`, kv.String())
}
