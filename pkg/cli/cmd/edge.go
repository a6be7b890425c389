package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/LENAX/dag-manager/pkg/cli/output"
	"github.com/LENAX/dag-manager/pkg/core/dag"
)

var (
	edgeSource string
	edgeTarget string
	edgeDagID  string
)

// edgeCmd edge子命令
var edgeCmd = &cobra.Command{
	Use:   "edge",
	Short: "Edge管理命令",
}

// edgeCreateCmd 创建Edge
var edgeCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "创建Edge（允许自环和重复边）",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		payload, err := parseEdgePayload()
		if err != nil {
			output.Error("%v", err)
			return err
		}

		e, err := newClient().CreateEdge(cmd.Context(), payload)
		if err != nil {
			output.Error("创建Edge失败: %v", err)
			return err
		}

		if outputJSON {
			return output.PrintJSON(e)
		}
		output.Success("Edge已创建: %s (%s -> %s)", e.ID, e.Source, e.Target)
		return nil
	},
}

// edgeListCmd 列出Edge
var edgeListCmd = &cobra.Command{
	Use:   "list",
	Short: "列出所有Edge",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		edges, err := newClient().ListEdges(cmd.Context())
		if err != nil {
			output.Error("查询失败: %v", err)
			return err
		}

		if outputJSON {
			return output.PrintJSON(edges)
		}

		if len(edges) == 0 {
			output.Info("暂无Edge")
			return nil
		}

		table := output.NewTable("ID", "SOURCE", "TARGET", "DAG_ID")
		for _, e := range edges {
			table.AddRow(e.ID.String(), e.Source.String(), e.Target.String(), e.DagID.String())
		}
		table.Render()
		return nil
	},
}

func parseEdgePayload() (dag.CreateEdgePayload, error) {
	var p dag.CreateEdgePayload
	for _, f := range []struct {
		name  string
		value string
		dst   *uuid.UUID
	}{
		{"source", edgeSource, &p.Source},
		{"target", edgeTarget, &p.Target},
		{"dag-id", edgeDagID, &p.DagID},
	} {
		id, err := uuid.Parse(f.value)
		if err != nil {
			return p, fmt.Errorf("%s无效: %w", f.name, err)
		}
		*f.dst = id
	}
	return p, nil
}

func init() {
	edgeCreateCmd.Flags().StringVar(&edgeSource, "source", "", "起点Node ID")
	edgeCreateCmd.Flags().StringVar(&edgeTarget, "target", "", "终点Node ID")
	edgeCreateCmd.Flags().StringVar(&edgeDagID, "dag-id", "", "所属DAG ID")
	edgeCreateCmd.MarkFlagRequired("source")
	edgeCreateCmd.MarkFlagRequired("target")
	edgeCreateCmd.MarkFlagRequired("dag-id")

	edgeCmd.AddCommand(edgeCreateCmd)
	edgeCmd.AddCommand(edgeListCmd)
}
