package easymaas

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/LubyRuffy/easymaas/logger"
)

// Registry 保存已注册的服务。读操作并发安全,写操作互斥。
// 注册表通过依赖注入传递,不提供全局单例。
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*entry
}

type entry struct {
	def     Service
	handler Handler
}

// NewRegistry 创建空注册表。
func NewRegistry() *Registry {
	return &Registry{entries: map[string]*entry{}}
}

// Register 校验服务定义并生成调度入口。同名服务会被覆盖,后注册者生效。
func (r *Registry) Register(def Service) error {
	if strings.TrimSpace(def.Model) == "" {
		return fmt.Errorf("model name is required")
	}
	if def.Func == nil {
		return fmt.Errorf("service %s: function is required", def.Model)
	}
	if !def.MapRequest && len(def.Params) == 0 {
		return fmt.Errorf("service %s: at least one declared parameter is required to receive the request body when request mapping is disabled", def.Model)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[def.Model]; ok {
		logger.Warnf("service %s is already registered, overwriting", def.Model)
	}
	r.entries[def.Model] = &entry{def: def, handler: buildHandler(def)}
	return nil
}

// Handler 返回模型对应的调度入口。
func (r *Registry) Handler(model string) (Handler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[model]
	if !ok {
		return nil, false
	}
	return e.handler, true
}

// Lookup 返回模型的注册信息。
func (r *Registry) Lookup(model string) (Service, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[model]
	if !ok {
		return Service{}, false
	}
	return e.def, true
}

// Models 返回所有已注册的模型名,升序。
func (r *Registry) Models() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	models := make([]string, 0, len(r.entries))
	for model := range r.entries {
		models = append(models, model)
	}
	sort.Strings(models)
	return models
}

// Services 返回所有注册信息,按模型名升序。
func (r *Registry) Services() []Service {
	r.mu.RLock()
	defer r.mu.RUnlock()
	defs := make([]Service, 0, len(r.entries))
	for _, e := range r.entries {
		defs = append(defs, e.def)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Model < defs[j].Model })
	return defs
}
