// Package automap 实现字段自动映射:请求体到函数参数的解析,
// 以及函数返回值到响应模板的合成。
//
// 核心是一对递归解析函数 Find/Update:在 JSON 树上深度优先定位字段,
// 同层直接命中优先,数组只看最后一个元素。请求侧用它取参数,
// 响应侧用它把返回值写回模板,读写共用同一套遍历规则。
//
// 合成函数分两种形态:Compose 产出完整的 chat.completion 响应,
// ComposeStream 产出共享同一响应 ID 的 chat.completion.chunk 帧流。
package automap
