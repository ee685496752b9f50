package automap

import (
	"slices"

	"golang.org/x/exp/maps"

	"github.com/LubyRuffy/easymaas/openaiapi"
)

// asObject 把 JSON 树中的对象节点统一成 map 视图。
// 视图与原节点共享存储,对视图的写入就是对树的写入。
func asObject(value any) (map[string]any, bool) {
	switch v := value.(type) {
	case openaiapi.Keyv[any]:
		return map[string]any(v), true
	case map[string]any:
		return v, true
	}
	return nil, false
}

// sortedKeys 返回对象键的升序排列。Go 的 map 没有稳定顺序,
// 升序遍历让查找结果完全可预测。
func sortedKeys(obj map[string]any) []string {
	keys := maps.Keys(obj)
	slices.Sort(keys)
	return keys
}

// Find 在 JSON 树中深度优先查找 key 对应的值。
//
// 规则:
//  1. 当前对象直接含有 key 时立即返回,同层命中后不再深入;
//  2. 否则按键升序逐个递归子值,先命中者胜;
//  3. 数组只递归最后一个元素,且仅当该元素本身是对象;
//  4. 标量、null 与空数组视为未命中。
func Find(value any, key string) (any, bool) {
	if obj, ok := asObject(value); ok {
		if v, ok := obj[key]; ok {
			return v, true
		}
		for _, k := range sortedKeys(obj) {
			if v, ok := Find(obj[k], key); ok {
				return v, true
			}
		}
		return nil, false
	}
	if list, ok := value.([]any); ok && len(list) > 0 {
		last := list[len(list)-1]
		if _, ok := asObject(last); ok {
			return Find(last, key)
		}
	}
	return nil, false
}

// Update 按 Find 的遍历顺序定位 key,并原地替换第一个命中位置的值。
// 返回是否发生替换;未命中时树保持原样。
func Update(value any, key string, newValue any) bool {
	if obj, ok := asObject(value); ok {
		if _, ok := obj[key]; ok {
			obj[key] = newValue
			return true
		}
		for _, k := range sortedKeys(obj) {
			if Update(obj[k], key, newValue) {
				return true
			}
		}
		return false
	}
	if list, ok := value.([]any); ok && len(list) > 0 {
		last := list[len(list)-1]
		if _, ok := asObject(last); ok {
			return Update(last, key, newValue)
		}
	}
	return false
}
