package api

import (
	"github.com/gin-gonic/gin"

	"github.com/LENAX/dag-manager/pkg/api/handler"
	"github.com/LENAX/dag-manager/pkg/api/middleware"
	"github.com/LENAX/dag-manager/pkg/core/events"
	"github.com/LENAX/dag-manager/pkg/storage"
)

// Dependencies 路由依赖，由启动流程构造后显式传入
type Dependencies struct {
	DAGs   storage.DAGRepository
	Nodes  storage.NodeRepository
	Edges  storage.EdgeRepository
	DB     handler.Pinger
	Events *events.Bus // 为nil时不发布事件，也不注册/events/ws
}

// SetGinMode 设置gin运行模式，只在进程入口调用一次
// 日志级别为debug时使用gin的调试模式，否则使用发布模式
func SetGinMode(debug bool) {
	if debug {
		gin.SetMode(gin.DebugMode)
		return
	}
	gin.SetMode(gin.ReleaseMode)
}

// SetupRouter 设置路由，gin模式由调用方通过SetGinMode决定
func SetupRouter(deps Dependencies, version string) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true

	// 全局中间件
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())

	var pub handler.EventPublisher
	if deps.Events != nil {
		pub = deps.Events
	}

	dagHandler := handler.NewDAGHandler(deps.DAGs, pub)
	nodeHandler := handler.NewNodeHandler(deps.Nodes, pub)
	edgeHandler := handler.NewEdgeHandler(deps.Edges, pub)
	healthHandler := handler.NewHealthHandler(version, deps.DB)

	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)

	router.POST("/dags", dagHandler.Create)
	router.GET("/dags", dagHandler.List)
	router.POST("/nodes", nodeHandler.Create)
	router.GET("/nodes", nodeHandler.List)
	router.POST("/edges", edgeHandler.Create)
	router.GET("/edges", edgeHandler.List)

	if deps.Events != nil {
		router.GET("/events/ws", handler.NewEventsHandler(deps.Events).Stream)
	}

	return router
}
