package cmd

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/LENAX/dag-manager/pkg/cli/output"
	"github.com/LENAX/dag-manager/pkg/core/events"
)

var eventTypes []string

// eventsCmd events子命令
var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "创建事件命令",
}

// eventsWatchCmd 持续输出创建事件，Ctrl+C退出
var eventsWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "订阅并输出创建事件",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		types := make([]events.EventType, 0, len(eventTypes))
		for _, t := range eventTypes {
			types = append(types, events.EventType(t))
		}

		output.Info("正在订阅事件，按Ctrl+C退出")
		err := newClient().WatchEvents(ctx, types, func(evt *events.Event) error {
			if outputJSON {
				return output.PrintJSON(evt)
			}
			fmt.Fprintf(output.Out, "%s  %-13s %s\n",
				evt.Timestamp.Format("2006-01-02 15:04:05"), evt.Type, evt.Payload)
			return nil
		})
		if err != nil {
			output.Error("订阅失败: %v", err)
		}
		return err
	},
}

func init() {
	eventsWatchCmd.Flags().StringSliceVarP(&eventTypes, "type", "t", nil, "事件类型过滤 (dag.created/node.created/edge.created)")
	eventsCmd.AddCommand(eventsWatchCmd)
}
