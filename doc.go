// Package easymaas 提供把任意函数发布为 OpenAI 兼容模型服务的能力：
// 请求字段自动映射为函数参数，函数返回值自动合成为 chat.completion 响应，
// 任何程序逻辑都能以 OpenAI SDK 的方式被调用。
//
// 该仓库主要包含两类能力：
//  1. SDK：根包的 Registry 负责服务注册与调度，automap 包完成字段解析与响应合成
//  2. HTTP 兼容层：openaihttp 包导出 /v1/models、/v1/chat/completions handlers，
//     cmd/easymaas 提供加载脚本服务的部署 CLI
package easymaas
