package cmd

import (
	"github.com/spf13/cobra"

	"github.com/LENAX/dag-manager/pkg/cli/output"
)

// dagCmd dag子命令
var dagCmd = &cobra.Command{
	Use:   "dag",
	Short: "DAG管理命令",
}

// dagCreateCmd 创建DAG
var dagCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "创建DAG（名称可为空）",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var name string
		if len(args) == 1 {
			name = args[0]
		}

		d, err := newClient().CreateDAG(cmd.Context(), name)
		if err != nil {
			output.Error("创建DAG失败: %v", err)
			return err
		}

		if outputJSON {
			return output.PrintJSON(d)
		}
		output.Success("DAG已创建: %s", d.ID)
		return nil
	},
}

// dagListCmd 列出DAG
var dagListCmd = &cobra.Command{
	Use:   "list",
	Short: "列出所有DAG",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dags, err := newClient().ListDAGs(cmd.Context())
		if err != nil {
			output.Error("查询失败: %v", err)
			return err
		}

		if outputJSON {
			return output.PrintJSON(dags)
		}

		if len(dags) == 0 {
			output.Info("暂无DAG")
			return nil
		}

		table := output.NewTable("ID", "NAME")
		for _, d := range dags {
			table.AddRow(d.ID.String(), d.Name)
		}
		table.Render()
		return nil
	},
}

func init() {
	dagCmd.AddCommand(dagCreateCmd)
	dagCmd.AddCommand(dagListCmd)
}
