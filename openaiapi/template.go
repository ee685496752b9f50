package openaiapi

import (
	"time"
)

// DefaultContent 服务函数没有给出可用内容时的兜底回复。
const DefaultContent = "Hello from EasyMaaS"

// DefaultCompletion 构建非流式响应模板。
// 每次调用都生成全新的 id、created 与子结构,调用方可以放心原地改写。
func DefaultCompletion(model string) Keyv[any] {
	return Keyv[any]{
		"id":      NewChatCompletionID(),
		"object":  "chat.completion",
		"created": time.Now().Unix(),
		"model":   model,
		"choices": []any{
			Keyv[any]{
				"index": 0,
				"message": Keyv[any]{
					"role":    "assistant",
					"content": DefaultContent,
				},
				"finish_reason": "stop",
			},
		},
		"usage": Keyv[any]{
			"prompt_tokens":     0,
			"completion_tokens": 0,
			"total_tokens":      0,
		},
	}
}

// DefaultChunk 构建流式响应块模板。finish_reason 初始为 null。
func DefaultChunk(model string) Keyv[any] {
	return Keyv[any]{
		"id":      NewChatCompletionID(),
		"object":  "chat.completion.chunk",
		"created": time.Now().Unix(),
		"model":   model,
		"choices": []any{
			Keyv[any]{
				"index": 0,
				"delta": Keyv[any]{
					"role":    "assistant",
					"content": "",
				},
				"finish_reason": nil,
			},
		},
	}
}
