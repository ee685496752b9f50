package openaihttp

import (
	"github.com/LubyRuffy/easymaas"
)

type Config struct {
	// BasePath 仅用于注册路由时拼接路径,默认 "/v1"。
	BasePath string
	// Registry 必填:请求按 model 字段在这里找到调度入口。
	Registry *easymaas.Registry
}
