package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/LENAX/dag-manager/pkg/cli/dagclient"
)

var (
	// 全局变量
	serverURL  string
	outputJSON bool
)

// rootCmd 根命令
var rootCmd = &cobra.Command{
	Use:   "dagctl",
	Short: "DAG Manager CLI - DAG/Node/Edge管理命令行工具",
	Long: `dagctl 是DAG Manager HTTP API的命令行客户端。

支持的功能：
  - 创建、列出DAG
  - 创建、列出Node和Edge
  - 订阅创建事件
  - 启动HTTP API服务

使用示例：
  # 创建DAG
  dagctl dag create build

  # 在DAG中创建Node
  dagctl node create --dag-id <dag-id> --label extract

  # 列出所有Edge（JSON格式）
  dagctl edge list --json

  # 启动HTTP服务
  dagctl server start`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute 执行根命令
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newClient() *dagclient.Client {
	return dagclient.New(serverURL)
}

func init() {
	// 全局参数
	rootCmd.PersistentFlags().StringVarP(&serverURL, "server", "s", dagclient.DefaultServerURL, "DAG Manager服务器地址")
	rootCmd.PersistentFlags().BoolVarP(&outputJSON, "json", "j", false, "使用JSON格式输出")

	// 添加子命令
	rootCmd.AddCommand(dagCmd)
	rootCmd.AddCommand(nodeCmd)
	rootCmd.AddCommand(edgeCmd)
	rootCmd.AddCommand(eventsCmd)
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(versionCmd)
}
