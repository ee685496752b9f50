// Package openaiapi 提供 OpenAI v1 兼容接口的通用数据结构与辅助函数。
//
// 该包只关注协议层：泛型 JSON 对象（Keyv）、响应模板、模型列表与错误结构,
// 以及 token 统计等少量构建函数。字段映射与响应合成应在其他包中实现。
//
// 响应模板以 Keyv 树而不是固定结构体的形式给出,
// 这样字段解析器既能从请求里读值,也能把返回值写回模板的任意位置。
//
// 示例：构建一个非流式响应模板并序列化输出
//
//	tpl := openaiapi.DefaultCompletion("my-model")
//	_ = json.NewEncoder(w).Encode(tpl)
package openaiapi
