package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/LubyRuffy/easymaas/deploy"
)

var initExample bool

const exampleService = `// 示例服务：原样返回最近一条用户消息。
service({
    model_name: "echo-v1",
    description: "Echo the latest user message",
    params: ["content"],
    map_request: true,
    map_response: true,
}, function echo(args) {
    return "echo: " + (args.content || "");
});
`

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the record dir and the services dir",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := deploy.NewManager("."); err != nil {
			return err
		}
		if err := os.MkdirAll(servicesDir, 0o755); err != nil {
			return fmt.Errorf("create services dir: %w", err)
		}
		fmt.Printf("initialized %s and %s\n", deploy.RecordDirName, servicesDir)

		if !initExample {
			return nil
		}
		path := filepath.Join(servicesDir, "example.js")
		if _, err := os.Stat(path); err == nil {
			fmt.Printf("%s already exists, skipped\n", path)
			return nil
		}
		if err := os.WriteFile(path, []byte(exampleService), 0o644); err != nil {
			return fmt.Errorf("write example service: %w", err)
		}
		fmt.Printf("created %s\n", path)
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&initExample, "example", false, "create an example service file")
	rootCmd.AddCommand(initCmd)
}
