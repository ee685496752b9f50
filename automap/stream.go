package automap

import (
	"errors"
	"io"

	"github.com/cloudwego/eino/schema"

	"github.com/LubyRuffy/easymaas/logger"
	"github.com/LubyRuffy/easymaas/openaiapi"
)

const streamBuffer = 8

// StreamOf 把给定的值包装成流式返回值,服务函数可以直接返回它。
func StreamOf(values ...any) *schema.StreamReader[any] {
	sr, sw := schema.Pipe[any](len(values) + 1)
	for _, v := range values {
		sw.Send(v, nil)
	}
	sw.Close()
	return sr
}

// ComposeStream 把服务函数的返回值合成为流式响应帧序列。
//
// 所有帧共享同一个响应 ID,每一帧都基于全新的块模板合成并立即下发。
// 返回值不是流时仍然给出单帧序列,并记录一条提示。
// 源流中途失败时,以 finish_reason 为 "error" 的终止帧结束整个序列,
// 该层不追加任何结束哨兵,由传输层自行决定。
func ComposeStream(result any, body openaiapi.Keyv[any], model string) *schema.StreamReader[openaiapi.Keyv[any]] {
	id := openaiapi.NewChatCompletionID()
	source := Classify(result)

	sr, sw := schema.Pipe[openaiapi.Keyv[any]](streamBuffer)
	go func() {
		defer sw.Close()

		if source.Kind != ReturnStream {
			logger.Warnf("model %s did not return a stream, emitting a single chunk", model)
			sw.Send(mergeChunk(id, model, result), nil)
			return
		}

		defer source.Stream.Close()
		for {
			chunk, err := source.Stream.Recv()
			if err != nil {
				if !errors.Is(err, io.EOF) {
					logger.Errorf("model %s stream failed: %v", model, err)
					sw.Send(errorChunk(id, model, err), nil)
				}
				return
			}
			sw.Send(mergeChunk(id, model, chunk), nil)
		}
	}()
	return sr
}

// mergeChunk 在全新的块模板上合成单帧,id 统一替换为本次响应的共享 ID。
func mergeChunk(id, model string, chunk any) openaiapi.Keyv[any] {
	tpl := openaiapi.DefaultChunk(model)
	tpl.Set("id", id)

	ret := Classify(chunk)
	switch ret.Kind {
	case ReturnNil:
	case ReturnText, ReturnOther:
		Update(tpl, "content", ret.Text)
	case ReturnMapping:
		for _, k := range sortedKeys(ret.Mapping) {
			if !Update(tpl, k, ret.Mapping[k]) {
				logger.Warnf("chunk field %q does not exist in the stream shape, dropped", k)
			}
		}
	case ReturnList:
		logger.Warnf("model %s produced a list chunk, emitting the default chunk", model)
	case ReturnStream:
		logger.Warnf("model %s produced a nested stream chunk, emitting the default chunk", model)
	}
	return tpl
}

// errorChunk 构建流式序列的终止帧。
func errorChunk(id, model string, err error) openaiapi.Keyv[any] {
	tpl := openaiapi.DefaultChunk(model)
	tpl.Set("id", id)
	Update(tpl, "content", err.Error())
	Update(tpl, "finish_reason", "error")
	return tpl
}
