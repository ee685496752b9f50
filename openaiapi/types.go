package openaiapi

import (
	"github.com/google/uuid"
)

// ==================== OpenAI 兼容数据结构 ====================

// OpenAIModel OpenAI 模型信息。
type OpenAIModel struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Created int64  `json:"created"`
	OwnedBy string `json:"owned_by"`
}

// OpenAIModelList OpenAI 模型列表响应。
type OpenAIModelList struct {
	Object string        `json:"object"`
	Data   []OpenAIModel `json:"data"`
}

// OpenAIError OpenAI 错误响应。
type OpenAIError struct {
	Error struct {
		Message string  `json:"message"`
		Type    string  `json:"type"`
		Param   any     `json:"param"`
		Code    *string `json:"code"`
	} `json:"error"`
}

// ==================== 辅助函数 ====================

// NewOpenAIError 创建错误响应。param 和 code 为空时保留 null。
func NewOpenAIError(message, errType string, param any, code string) *OpenAIError {
	e := &OpenAIError{}
	e.Error.Message = message
	e.Error.Type = errType
	e.Error.Param = param
	if code != "" {
		e.Error.Code = &code
	}
	return e
}

// NewChatCompletionID 生成聊天完成 ID。
func NewChatCompletionID() string {
	return "chatcmpl-" + uuid.New().String()[:8]
}

// NewModel 以注册表里的模型名构建列表项。
func NewModel(id string) OpenAIModel {
	return OpenAIModel{
		ID:      id,
		Object:  "model",
		Created: 0,
		OwnedBy: "organization",
	}
}
