package easymaas

import (
	"context"

	"github.com/LubyRuffy/easymaas/openaiapi"
)

// Func 是用户提供的服务函数。args 携带解析好的参数,
// 返回值交由响应合成器处理:字符串进入消息内容,映射逐键改写响应,
// *schema.StreamReader[any] 在流式请求下逐块下发。
type Func func(ctx context.Context, args openaiapi.Keyv[any]) (any, error)

// Handler 是注册时生成的调度入口:输入原始请求体,输出响应数据。
// 输出可能是合成好的响应树、流式帧序列,或透传的原始返回值。
type Handler func(ctx context.Context, body openaiapi.Keyv[any]) (any, error)

// Service 描述一个以 OpenAI 模型形式暴露的服务。
type Service struct {
	Model         string   // 客户端寻址用的模型名
	Description   string   // 展示用说明
	Params        []string // 预先声明的参数名列表
	MapRequest    bool     // 自动把请求字段映射为参数
	MapResponse   bool     // 自动把返回值合成为响应
	SupportStream bool     // 函数支持流式输出
	Func          Func
}
