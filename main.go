package main

import (
	"fmt"
	"os"

	"dam-workspace-server/internal/consts"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configDir string

	root := &cobra.Command{
		Use:           "dam-workspace-server",
		Short:         consts.ApplicationName,
		Version:       consts.ApplicationVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		// 不带子命令时直接启动服务
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(configDir)
		},
	}
	root.PersistentFlags().StringVar(&configDir, "config", "config", "配置文件所在目录")

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "启动 HTTP 服务",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(configDir)
		},
	})

	var output string
	routesCmd := &cobra.Command{
		Use:   "routes",
		Short: "导出路由表到 JSON 文件并退出",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExportRoutes(configDir, output)
		},
	}
	routesCmd.Flags().StringVarP(&output, "output", "o", "routes.json", "输出文件路径")
	root.AddCommand(routesCmd)

	return root
}
