package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LENAX/dag-manager/pkg/core/dag"
	"github.com/LENAX/dag-manager/pkg/core/events"
	"github.com/LENAX/dag-manager/pkg/storage"
)

// NodeHandler Node API处理器
type NodeHandler struct {
	repo   storage.NodeRepository
	events EventPublisher
}

// NewNodeHandler 创建NodeHandler
func NewNodeHandler(repo storage.NodeRepository, pub EventPublisher) *NodeHandler {
	return &NodeHandler{repo: repo, events: pub}
}

// Create 创建Node，不检查dag_id是否存在
// POST /nodes
func (h *NodeHandler) Create(c *gin.Context) {
	var payload dag.CreateNodePayload
	if err := bindJSON(c, &payload); err != nil {
		writeBadRequest(c, err)
		return
	}

	n := dag.NewNode(payload)
	if err := h.repo.Create(c.Request.Context(), n); err != nil {
		writeStorageError(c, err)
		return
	}

	publish(c, h.events, events.EventNodeCreated, n)
	c.JSON(http.StatusOK, n)
}

// List 列出所有Node
// GET /nodes
func (h *NodeHandler) List(c *gin.Context) {
	nodes, err := h.repo.ListAll(c.Request.Context())
	if err != nil {
		writeStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, nodes)
}
