package cmd

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/LENAX/dag-manager/pkg/cli/output"
	"github.com/LENAX/dag-manager/pkg/core/dag"
)

var (
	nodeDagID string
	nodeLabel string
)

// nodeCmd node子命令
var nodeCmd = &cobra.Command{
	Use:   "node",
	Short: "Node管理命令",
}

// nodeCreateCmd 创建Node
var nodeCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "创建Node（服务端不校验dag-id是否存在）",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dagID, err := uuid.Parse(nodeDagID)
		if err != nil {
			output.Error("dag-id无效: %v", err)
			return err
		}

		n, err := newClient().CreateNode(cmd.Context(), dag.CreateNodePayload{DagID: dagID, Label: nodeLabel})
		if err != nil {
			output.Error("创建Node失败: %v", err)
			return err
		}

		if outputJSON {
			return output.PrintJSON(n)
		}
		output.Success("Node已创建: %s", n.ID)
		return nil
	},
}

// nodeListCmd 列出Node
var nodeListCmd = &cobra.Command{
	Use:   "list",
	Short: "列出所有Node",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		nodes, err := newClient().ListNodes(cmd.Context())
		if err != nil {
			output.Error("查询失败: %v", err)
			return err
		}

		if outputJSON {
			return output.PrintJSON(nodes)
		}

		if len(nodes) == 0 {
			output.Info("暂无Node")
			return nil
		}

		table := output.NewTable("ID", "DAG_ID", "LABEL")
		for _, n := range nodes {
			table.AddRow(n.ID.String(), n.DagID.String(), n.Label)
		}
		table.Render()
		return nil
	},
}

func init() {
	nodeCreateCmd.Flags().StringVar(&nodeDagID, "dag-id", "", "所属DAG ID")
	nodeCreateCmd.Flags().StringVar(&nodeLabel, "label", "", "Node标签")
	nodeCreateCmd.MarkFlagRequired("dag-id")

	nodeCmd.AddCommand(nodeCreateCmd)
	nodeCmd.AddCommand(nodeListCmd)
}
