package openaiapi

import (
	"strings"
)

// CountTokens 按空白分词统计 token 数。这是刻意选择的近似算法,
// 响应里的 usage 字段以它为准。
func CountTokens(s string) int {
	return len(strings.Fields(s))
}

// PromptTokens 累加请求 messages 中所有 content 的 token 数。
// 缺失或非字符串的 content 直接跳过。
func PromptTokens(body Keyv[any]) (total int) {
	for _, item := range body.GetSlice("messages") {
		var msg map[string]any
		switch v := item.(type) {
		case map[string]any:
			msg = v
		case Keyv[any]:
			msg = map[string]any(v)
		default:
			continue
		}
		if content, ok := msg["content"].(string); ok {
			total += CountTokens(content)
		}
	}
	return total
}
