package easymaas

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/LubyRuffy/easymaas/openaiapi"
)

func textService(model, reply string) Service {
	return Service{
		Model:       model,
		Params:      []string{"content"},
		MapRequest:  true,
		MapResponse: true,
		Func: func(ctx context.Context, args openaiapi.Keyv[any]) (any, error) {
			return reply, nil
		},
	}
}

func TestRegister_Validation(t *testing.T) {
	reg := NewRegistry()

	require.Error(t, reg.Register(Service{Model: " "}))

	require.Error(t, reg.Register(Service{Model: "m", Func: nil}))

	noop := func(ctx context.Context, args openaiapi.Keyv[any]) (any, error) { return nil, nil }
	require.Error(t, reg.Register(Service{Model: "m", MapRequest: false, Func: noop}))

	// 开启映射时允许零参数。
	require.NoError(t, reg.Register(Service{Model: "m", MapRequest: true, Func: noop}))
}

func TestRegister_OverwriteSameName(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(textService("m", "first")))
	require.NoError(t, reg.Register(textService("m", "second")))

	require.Equal(t, []string{"m"}, reg.Models())

	h, ok := reg.Handler("m")
	require.True(t, ok)
	result, err := h(context.Background(), openaiapi.Keyv[any]{"model": "m"})
	require.NoError(t, err)

	envelope := result.(openaiapi.Keyv[any])
	choice := envelope.GetSlice("choices")[0].(openaiapi.Keyv[any])
	require.Equal(t, "second", choice.GetKeyv("message").GetString("content"))
}

func TestRegistry_LookupAndModels(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(textService("b-model", "x")))
	require.NoError(t, reg.Register(textService("a-model", "y")))

	require.Equal(t, []string{"a-model", "b-model"}, reg.Models())

	def, ok := reg.Lookup("a-model")
	require.True(t, ok)
	require.Equal(t, "a-model", def.Model)

	_, ok = reg.Lookup("missing")
	require.False(t, ok)

	_, ok = reg.Handler("missing")
	require.False(t, ok)
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	reg := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			model := fmt.Sprintf("model-%d", i%4)
			require.NoError(t, reg.Register(textService(model, "r")))
			reg.Models()
			reg.Lookup(model)
		}(i)
	}
	wg.Wait()

	require.Len(t, reg.Models(), 4)
}
