// Package cmd 提供 mywc 的命令行入口。
package cmd

import (
	"github.com/spf13/cobra"
)

// Execute 组装根命令并执行。
// version 参数由 main 包注入，便于在 CI/CD 中打包不同版本。
func Execute(version string) error {
	rootCmd := newRootCmd(version)
	return rootCmd.Execute()
}

// newRootCmd 创建根命令。
//
// 这里关闭了 Cobra 的参数解析：mywc 的选项是可捆绑的单字符
// （如 -lc），未识别字符要求静默忽略，并且选项只对其后出现的
// 文件参数生效，这些语义必须由驱动层按原始参数顺序自行处理。
func newRootCmd(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mywc [-clwC]... [file]...",
		Short: "统计行/词/字节数，可排除 // 单行注释",
		Long: "mywc 统计每个输入文件（或标准输入）的行数、单词数和字节数，\n" +
			"并支持 -C 选项把 // 单行注释的单词与字节从统计中排除。",
		Version:            version,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		RunE:               run,
	}

	return rootCmd
}
