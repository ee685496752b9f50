package openaihttp

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/cloudwego/eino/schema"
	"github.com/gin-gonic/gin"

	"github.com/LubyRuffy/easymaas"
	"github.com/LubyRuffy/easymaas/logger"
	"github.com/LubyRuffy/easymaas/openaiapi"
)

type handler struct {
	registry *easymaas.Registry
}

func newHandler(cfg Config) (*handler, error) {
	if cfg.Registry == nil {
		return nil, fmt.Errorf("Registry is required")
	}
	return &handler{registry: cfg.Registry}, nil
}

// handleModels 实现 GET /v1/models,列出注册表里的全部服务。
func (h *handler) handleModels(c *gin.Context) {
	list := openaiapi.OpenAIModelList{
		Object: "list",
		Data:   []openaiapi.OpenAIModel{},
	}
	for _, model := range h.registry.Models() {
		list.Data = append(list.Data, openaiapi.NewModel(model))
	}
	c.JSON(http.StatusOK, list)
}

// handleChatCompletions 实现 POST /v1/chat/completions。
// 请求体按原始 JSON 树解码,字段映射全部交给服务自己的调度入口。
func (h *handler) handleChatCompletions(c *gin.Context) {
	var body openaiapi.Keyv[any]
	if err := c.ShouldBindJSON(&body); err != nil {
		writeOpenAIError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	model := body.GetString("model")
	dispatch, ok := h.registry.Handler(model)
	if !ok {
		writeOpenAIError(c, http.StatusNotFound,
			fmt.Sprintf("Model %s not found. Available models: %s", model, strings.Join(h.registry.Models(), ", ")))
		return
	}

	result, err := dispatch(c.Request.Context(), body)
	if err != nil {
		writeOpenAIError(c, http.StatusInternalServerError, err.Error())
		return
	}

	switch res := result.(type) {
	case *openaiapi.OpenAIError:
		c.JSON(http.StatusBadRequest, res)
	case *schema.StreamReader[openaiapi.Keyv[any]]:
		h.relayStream(c, res)
	default:
		c.JSON(http.StatusOK, result)
	}
}

// relayStream 把帧序列以 SSE 转发给客户端,每一帧立即 flush,
// 序列结束后补一条 [DONE] 哨兵。
func (h *handler) relayStream(c *gin.Context, sr *schema.StreamReader[openaiapi.Keyv[any]]) {
	defer sr.Close()

	w := c.Writer
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	w.Flush()

	for {
		frame, err := sr.Recv()
		if err != nil {
			break
		}
		data, err := json.Marshal(frame)
		if err != nil {
			logger.Errorf("marshal stream frame failed: %v", err)
			continue
		}
		fmt.Fprintf(w, "data: %s\n\n", data)
		w.Flush()
	}

	fmt.Fprint(w, "data: [DONE]\n\n")
	w.Flush()
}
