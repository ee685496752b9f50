package automap

import (
	"encoding/json"
	"fmt"

	"github.com/cloudwego/eino/schema"

	"github.com/LubyRuffy/easymaas/openaiapi"
)

// ReturnKind 标记服务函数返回值的类别。
type ReturnKind uint8

const (
	ReturnNil ReturnKind = iota
	ReturnText
	ReturnMapping
	ReturnList
	ReturnStream
	ReturnOther // 其他标量,以字符串形式进入文本分支
)

// Return 是分类后的返回值。Kind 决定哪个载荷字段有效。
type Return struct {
	Kind    ReturnKind
	Text    string
	Mapping map[string]any
	List    []any
	Stream  *schema.StreamReader[any]
}

// Classify 把任意返回值规整为固定的几类。
// 常见类型直接落位;其余类型先做一次 JSON 规整,
// 结构体因此变成映射、具名切片变成列表、数字布尔变成标量,
// 连 JSON 都序列化不了的值退化为 fmt 字符串。
func Classify(v any) Return {
	switch val := v.(type) {
	case nil:
		return Return{Kind: ReturnNil}
	case *schema.StreamReader[any]:
		return Return{Kind: ReturnStream, Stream: val}
	case string:
		return Return{Kind: ReturnText, Text: val}
	case openaiapi.Keyv[any]:
		return Return{Kind: ReturnMapping, Mapping: map[string]any(val)}
	case map[string]any:
		return Return{Kind: ReturnMapping, Mapping: val}
	case []any:
		return Return{Kind: ReturnList, List: val}
	}

	data, err := json.Marshal(v)
	if err != nil {
		return Return{Kind: ReturnOther, Text: fmt.Sprintf("%v", v)}
	}
	var normalized any
	if err := json.Unmarshal(data, &normalized); err != nil {
		return Return{Kind: ReturnOther, Text: fmt.Sprintf("%v", v)}
	}
	switch val := normalized.(type) {
	case nil:
		return Return{Kind: ReturnNil}
	case string:
		return Return{Kind: ReturnText, Text: val}
	case map[string]any:
		return Return{Kind: ReturnMapping, Mapping: val}
	case []any:
		return Return{Kind: ReturnList, List: val}
	default:
		return Return{Kind: ReturnOther, Text: fmt.Sprintf("%v", v)}
	}
}
