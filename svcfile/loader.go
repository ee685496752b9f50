// Package svcfile 从脚本文件加载服务定义。
//
// 每个 *.js 文件运行在独立的 goja 虚拟机里,文件内通过全局函数
// service(opts, fn) 把自己注册进注册表,opts 的键与服务定义一一对应:
//
//	service({
//	    model_name: "echo-v1",
//	    description: "echo the latest user message",
//	    params: ["content"],
//	    map_request: true,
//	    map_response: true,
//	}, function echo(args) {
//	    return "echo: " + (args.content || "");
//	});
//
// 虚拟机不是并发安全的,包装后的服务函数用互斥锁串行化调用。
package svcfile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/dop251/goja"

	"github.com/LubyRuffy/easymaas"
	"github.com/LubyRuffy/easymaas/logger"
	"github.com/LubyRuffy/easymaas/openaiapi"
)

// ServiceInfo 描述一个从脚本文件加载出来的服务。
type ServiceInfo struct {
	Model       string
	Description string
	Function    string
	File        string
}

// Load 扫描 dir 下的 *.js 服务文件并注册到 reg。
// 下划线开头的文件跳过,文件按名称升序加载,任何一个文件失败都会中断加载。
func Load(dir string, reg *easymaas.Registry) ([]ServiceInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read services dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".js") || strings.HasPrefix(name, "_") {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	var loaded []ServiceInfo
	for _, name := range names {
		file := filepath.Join(dir, name)
		infos, err := loadFile(file, reg)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", file, err)
		}
		loaded = append(loaded, infos...)
	}
	return loaded, nil
}

func loadFile(file string, reg *easymaas.Registry) ([]ServiceInfo, error) {
	src, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	vm := goja.New()
	var mu sync.Mutex
	var infos []ServiceInfo
	var regErr error

	_ = vm.Set("console", consoleMap())
	_ = vm.Set("service", func(call goja.FunctionCall) goja.Value {
		opts, _ := call.Argument(0).Export().(map[string]any)
		fn, ok := goja.AssertFunction(call.Argument(1))
		if !ok {
			regErr = errors.Join(regErr, fmt.Errorf("service() needs a function as the second argument"))
			return goja.Undefined()
		}

		def := serviceFromOpts(opts)
		def.Func = func(ctx context.Context, args openaiapi.Keyv[any]) (any, error) {
			mu.Lock()
			defer mu.Unlock()
			value, err := fn(goja.Undefined(), vm.ToValue(map[string]any(args)))
			if err != nil {
				return nil, fmt.Errorf("script %s: %w", filepath.Base(file), err)
			}
			return value.Export(), nil
		}

		if err := reg.Register(def); err != nil {
			regErr = errors.Join(regErr, err)
			return goja.Undefined()
		}
		infos = append(infos, ServiceInfo{
			Model:       def.Model,
			Description: def.Description,
			Function:    functionName(vm, call.Argument(1)),
			File:        file,
		})
		return goja.Undefined()
	})

	if _, err := vm.RunString(string(src)); err != nil {
		return nil, err
	}
	if regErr != nil {
		return nil, regErr
	}
	return infos, nil
}

// serviceFromOpts 把脚本侧的选项对象翻译成服务定义。
// map_request/map_response 缺省开启,support_stream 缺省关闭。
func serviceFromOpts(opts map[string]any) easymaas.Service {
	kv := openaiapi.Keyv[any](opts)
	def := easymaas.Service{
		Model:       kv.GetString("model_name"),
		Description: kv.GetString("description"),
		MapRequest:  true,
		MapResponse: true,
	}
	if kv.Has("map_request") {
		def.MapRequest = kv.GetBool("map_request")
	}
	if kv.Has("map_response") {
		def.MapResponse = kv.GetBool("map_response")
	}
	if kv.Has("support_stream") {
		def.SupportStream = kv.GetBool("support_stream")
	}
	for _, p := range kv.GetSlice("params") {
		if s, ok := p.(string); ok {
			def.Params = append(def.Params, s)
		}
	}
	return def
}

func consoleMap() map[string]any {
	return map[string]any{
		"log":   func(args ...any) { logger.Info(args...) },
		"warn":  func(args ...any) { logger.Warn(args...) },
		"error": func(args ...any) { logger.Error(args...) },
	}
}

func functionName(vm *goja.Runtime, v goja.Value) string {
	obj := v.ToObject(vm)
	if obj == nil {
		return "anonymous"
	}
	name := obj.Get("name")
	if name == nil {
		return "anonymous"
	}
	if s := name.String(); s != "" && s != "undefined" {
		return s
	}
	return "anonymous"
}
