package automap

import (
	"github.com/LubyRuffy/easymaas/openaiapi"
)

// RequestParam 是绑定整个请求体的保留参数名。
const RequestParam = "request"

// Params 把声明的参数名逐个解析为请求体中的值。
// 未命中的参数绑定为 null 并记入 missing 交由调用方记录,
// 解析失败不会中断调用,函数自行决定如何处理缺失数据。
func Params(names []string, body openaiapi.Keyv[any]) (args openaiapi.Keyv[any], missing []string) {
	args = openaiapi.Keyv[any]{}
	for _, name := range names {
		if name == RequestParam {
			args.Set(name, map[string]any(body))
			continue
		}
		if v, ok := Find(body, name); ok {
			args.Set(name, v)
			continue
		}
		args.Set(name, nil)
		missing = append(missing, name)
	}
	return args, missing
}
