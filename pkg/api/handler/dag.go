package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LENAX/dag-manager/pkg/core/dag"
	"github.com/LENAX/dag-manager/pkg/core/events"
	"github.com/LENAX/dag-manager/pkg/storage"
)

// DAGHandler DAG API处理器
type DAGHandler struct {
	repo   storage.DAGRepository
	events EventPublisher
}

// NewDAGHandler 创建DAGHandler
func NewDAGHandler(repo storage.DAGRepository, pub EventPublisher) *DAGHandler {
	return &DAGHandler{repo: repo, events: pub}
}

// Create 创建DAG
// POST /dags
func (h *DAGHandler) Create(c *gin.Context) {
	var payload dag.CreateDAGPayload
	if err := bindJSON(c, &payload); err != nil {
		writeBadRequest(c, err)
		return
	}

	d := dag.NewDAG(payload)
	if err := h.repo.Create(c.Request.Context(), d); err != nil {
		writeStorageError(c, err)
		return
	}

	publish(c, h.events, events.EventDAGCreated, d)
	c.JSON(http.StatusOK, d)
}

// List 列出所有DAG
// GET /dags
func (h *DAGHandler) List(c *gin.Context) {
	dags, err := h.repo.ListAll(c.Request.Context())
	if err != nil {
		writeStorageError(c, err)
		return
	}
	c.JSON(http.StatusOK, dags)
}
