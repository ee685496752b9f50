// Package openaihttp 提供把注册表里的服务发布为 OpenAI v1 兼容 HTTP 接口的处理器。
//
// 该包对外只暴露：
// - Gin 路由注册方法（/v1/models、/v1/chat/completions、/metrics）
// - 带优雅退出的 Server 包装
//
// 服务查找、参数映射与响应合成都发生在注册表的调度入口里，
// 这里只负责解码请求、按 model 寻址以及 SSE 转发。
//
// 使用示例：
//
//	reg := easymaas.NewRegistry()
//	// ... reg.Register(...)
//
//	r := gin.New()
//	_ = openaihttp.RegisterGinRoutes(r, openaihttp.Config{
//		BasePath: "/v1",
//		Registry: reg,
//	})
package openaihttp
