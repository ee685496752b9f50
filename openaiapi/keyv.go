package openaiapi

import (
	"encoding/json"
	"maps"
)

// Keyv 泛型 JSON 对象。请求体与响应模板都以它为底层结构,
// 字段解析器的读写都发生在这棵树上。
type Keyv[V any] map[string]V

func (kv Keyv[V]) Set(key string, value V)  { kv[key] = value }
func (kv Keyv[V]) Get(key string) (V, bool) { value, ok := kv[key]; return value, ok }
func (kv Keyv[V]) Has(key string) bool      { _, ok := kv.Get(key); return ok }
func (kv Keyv[V]) String() string           { bytes, _ := json.Marshal(kv); return string(bytes) }
func (kv Keyv[V]) Clone() Keyv[V]           { return maps.Clone(kv) }

func (kv Keyv[V]) GetKeyv(key string) (value Keyv[interface{}]) {
	if val, ok := kv[key]; ok {
		var v interface{} = val
		switch n := v.(type) {
		case map[string]interface{}:
			value = n
		case Keyv[interface{}]:
			value = n
		}
	}
	return
}

func (kv Keyv[V]) GetSlice(key string) (values []interface{}) {
	if value, ok := kv[key]; ok {
		var v interface{} = value
		values, _ = v.([]interface{})
	}
	return
}

func (kv Keyv[V]) GetString(key string) (value string) {
	if val, ok := kv[key]; ok {
		var v interface{} = val
		value, _ = v.(string)
	}
	return
}

func (kv Keyv[V]) GetBool(key string) (value bool) {
	if val, ok := kv[key]; ok {
		var v interface{} = val
		value, _ = v.(bool)
	}
	return
}

func (kv Keyv[V]) IsString(key string) bool {
	if value, ok := kv[key]; ok {
		var v interface{} = value
		if _, ok = v.(string); ok {
			return true
		}
	}
	return false
}

func (kv Keyv[V]) IsSlice(key string) bool {
	if value, ok := kv[key]; ok {
		var v interface{} = value
		if _, ok = v.([]interface{}); ok {
			return true
		}
	}
	return false
}
