package api

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"

	"github.com/LENAX/dag-manager/pkg/config"
)

// ListenAddr 固定监听地址，不可通过环境变量或命令行修改
const ListenAddr = "127.0.0.1:3000"

// APIServer HTTP API服务器
type APIServer struct {
	httpServer *http.Server
	addr       string
}

// NewAPIServer 创建API服务器
func NewAPIServer(handler http.Handler, cfg config.ServerConfig) *APIServer {
	return &APIServer{
		addr: ListenAddr,
		httpServer: &http.Server{
			Addr:         ListenAddr,
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
	}
}

// Start 在固定地址上启动服务器，阻塞直到服务器关闭
func (s *APIServer) Start() error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("server listen failed: %w", err)
	}
	return s.Serve(ln)
}

// Serve 在给定的listener上提供服务
func (s *APIServer) Serve(ln net.Listener) error {
	log.Printf("🚀 DAG Manager API Server running at http://%s", ln.Addr())

	if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server serve failed: %w", err)
	}
	return nil
}

// Shutdown 优雅关闭服务器
func (s *APIServer) Shutdown(ctx context.Context) error {
	log.Println("🛑 Shutting down API Server...")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Println("✅ API Server stopped")
	return nil
}

// Addr 获取服务器地址
func (s *APIServer) Addr() string {
	return s.addr
}
