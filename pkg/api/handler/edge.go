package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LENAX/dag-manager/pkg/core/dag"
	"github.com/LENAX/dag-manager/pkg/core/events"
	"github.com/LENAX/dag-manager/pkg/storage"
)

// EdgeHandler Edge API处理器
type EdgeHandler struct {
	repo   storage.EdgeRepository
	events EventPublisher
}

// NewEdgeHandler 创建EdgeHandler
func NewEdgeHandler(repo storage.EdgeRepository, pub EventPublisher) *EdgeHandler {
	return &EdgeHandler{repo: repo, events: pub}
}

// Create 创建Edge
// 自环、重复边以及指向不存在节点的边都会被原样写入
// POST /edges
func (h *EdgeHandler) Create(c *gin.Context) {
	var payload dag.CreateEdgePayload
	if err := bindJSON(c, &payload); err != nil {
		writeBadRequest(c, err)
		return
	}

	e := dag.NewEdge(payload)
	if err := h.repo.Create(c.Request.Context(), e); err != nil {
		writeStorageError(c, err)
		return
	}

	publish(c, h.events, events.EventEdgeCreated, e)
	c.JSON(http.StatusOK, e)
}

// List 列出所有Edge
// GET /edges
func (h *EdgeHandler) List(c *gin.Context) {
	edges, err := h.repo.ListAll(c.Request.Context())
	if err != nil {
		writeStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, edges)
}
