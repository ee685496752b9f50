package automap

import (
	"fmt"
	"strings"

	"github.com/cloudwego/eino/schema"

	"github.com/LubyRuffy/easymaas/openaiapi"
)

// Compose 把服务函数的返回值合成为一个完整的非流式响应。
//
// 合成始终从全新的响应模板出发:先写入请求侧的 prompt_tokens,
// 再按返回值类别改写模板。warnings 是合成过程中的提示,
// 由调用方负责记录,永远不会改变响应的结构。
func Compose(result any, body openaiapi.Keyv[any], model string) (openaiapi.Keyv[any], []string) {
	tpl := openaiapi.DefaultCompletion(model)
	prompt := openaiapi.PromptTokens(body)
	Update(tpl, "prompt_tokens", prompt)

	var warnings []string
	ret := Classify(result)
	switch ret.Kind {
	case ReturnNil:
		warnings = append(warnings, "returned no value, responding with the default content")
	case ReturnText, ReturnOther:
		composeText(tpl, ret.Text, prompt)
	case ReturnList:
		warnings = append(warnings, "list return values are not supported, responding with the default content")
	case ReturnMapping:
		warnings = append(warnings, applyMapping(tpl, ret.Mapping)...)
	case ReturnStream:
		warnings = append(warnings, "returned a stream for a non-stream request, concatenating the chunks")
		composeText(tpl, drainStream(ret.Stream), prompt)
	}
	return tpl, warnings
}

// composeText 写入文本内容并补全 token 统计。
func composeText(tpl openaiapi.Keyv[any], text string, prompt int) {
	Update(tpl, "content", text)
	completion := openaiapi.CountTokens(text)
	Update(tpl, "completion_tokens", completion)
	Update(tpl, "total_tokens", prompt+completion)
}

// applyMapping 把映射返回值逐键写回模板。
// 模板里不存在的键丢弃并产生一条提示;token 统计保持请求侧的值,不做重算。
func applyMapping(tpl openaiapi.Keyv[any], mapping map[string]any) (warnings []string) {
	for _, k := range sortedKeys(mapping) {
		if !Update(tpl, k, mapping[k]) {
			warnings = append(warnings, fmt.Sprintf("field %q does not exist in the response shape, dropped", k))
		}
	}
	return warnings
}

// drainStream 耗尽一个流式返回值并拼接成完整文本。
func drainStream(sr *schema.StreamReader[any]) string {
	defer sr.Close()
	var sb strings.Builder
	for {
		chunk, err := sr.Recv()
		if err != nil {
			break
		}
		sb.WriteString(chunkText(chunk))
	}
	return sb.String()
}

func chunkText(chunk any) string {
	switch v := chunk.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}
