package easymaas

import (
	"context"
	"fmt"

	"github.com/LubyRuffy/easymaas/automap"
	"github.com/LubyRuffy/easymaas/logger"
	"github.com/LubyRuffy/easymaas/openaiapi"
)

// buildHandler 把服务定义编译为调度入口。
// 调度按固定阶段推进:校验、参数解析、函数调用、响应合成。
func buildHandler(def Service) Handler {
	return func(ctx context.Context, body openaiapi.Keyv[any]) (any, error) {
		stream := body.GetBool("stream")

		// 流式请求打到不支持流式的服务上时直接拒绝,函数不会被调用。
		if stream && def.MapResponse && !def.SupportStream {
			return openaiapi.NewOpenAIError(
				fmt.Sprintf("The model %s does not support streaming responses", def.Model),
				"invalid_request_error", "stream", "streaming_not_supported",
			), nil
		}

		args := openaiapi.Keyv[any]{}
		if def.MapRequest {
			var missing []string
			args, missing = automap.Params(def.Params, body)
			for _, name := range missing {
				logger.Warnf("service %s: parameter %q not found in the request", def.Model, name)
			}
		} else {
			// 不做映射时,唯一声明的参数承接整个请求体。
			args.Set(def.Params[0], map[string]any(body))
		}

		result, err := def.Func(ctx, args)
		if err != nil {
			logger.Errorf("service %s failed: %v", def.Model, err)
			return nil, err
		}

		if !def.MapResponse {
			return result, nil
		}
		if stream {
			return automap.ComposeStream(result, body, def.Model), nil
		}
		envelope, warnings := automap.Compose(result, body, def.Model)
		for _, w := range warnings {
			logger.Warnf("service %s: %s", def.Model, w)
		}
		return envelope, nil
	}
}
