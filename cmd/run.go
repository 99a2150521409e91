package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"mywc/internal/counter"
	"mywc/internal/model"
	"mywc/internal/report"

	"github.com/spf13/cobra"
)

// runOptions 存放参数遍历过程中累积的选项状态。
// 选项按出现顺序生效，因此同一次调用里，
// 排在某个选项之前的文件不受该选项影响。
type runOptions struct {
	excludeComments bool
	selection       report.Selection
}

// run 是根命令的驱动逻辑：从左到右遍历原始参数，
// 选项参数更新状态，文件参数立即触发一次完整流水线。
//
// 示例：
//
//	mywc file1.txt file2.txt
//	mywc -C -lw file.c
//	cat file.txt | mywc
func run(cmd *cobra.Command, args []string) error {
	options := runOptions{}

	// 默认展示规则：完全没有参数、首个参数不是选项、
	// 或者首个参数恰好是 -C 时，三列全部展示。
	if len(args) == 0 || !strings.HasPrefix(args[0], "-") || args[0] == "-C" {
		options.selection = report.Selection{Lines: true, Words: true, Bytes: true}
	}

	writer := cmd.OutOrStdout()
	aggregator := model.NewAggregator()
	fileCount := 0

	for _, argument := range args {
		if strings.HasPrefix(argument, "-") {
			applyFlags(&options, argument[1:])
			continue
		}

		fileCount++
		if err := processFile(writer, argument, &options, aggregator); err != nil {
			return err
		}
	}

	if fileCount > 1 {
		return report.PrintTotal(writer, options.selection, aggregator.Totals())
	}

	if fileCount == 0 {
		return processStdin(cmd.InOrStdin(), writer, &options, aggregator)
	}

	return nil
}

// applyFlags 逐字符解析一段捆绑选项，未识别的字符静默忽略。
func applyFlags(options *runOptions, flags string) {
	for _, flagChar := range flags {
		switch flagChar {
		case 'C':
			options.excludeComments = true
		case 'l':
			options.selection.Lines = true
		case 'w':
			options.selection.Words = true
		case 'c':
			options.selection.Bytes = true
		}
	}
}

// processFile 处理单个文件参数。
// 打不开文件属于致命错误，错误向上抛出后整个运行立即终止，
// 已经输出的前序文件结果保持原样，总计行不再输出。
func processFile(writer io.Writer, name string, options *runOptions, aggregator *model.Aggregator) error {
	file, err := os.Open(name)
	if err != nil {
		return fmt.Errorf("open %s: %w", name, err)
	}
	defer file.Close()

	return processSource(writer, file, name, options, aggregator)
}

// processStdin 把标准输入一次性读入内存缓冲后按匿名输入处理。
// 预扫描需要两趟、计数扫描还需要一趟，内存缓冲天然满足可重读要求，
// 不需要落地任何临时文件。
func processStdin(input io.Reader, writer io.Writer, options *runOptions, aggregator *model.Aggregator) error {
	content, err := io.ReadAll(input)
	if err != nil {
		return fmt.Errorf("read standard input: %w", err)
	}
	return processSource(writer, bytes.NewReader(content), "", options, aggregator)
}

// processSource 对一个可重读输入执行完整流水线：
// 可选的注释排除预扫描 → 计数扫描 → 折算 → 输出一行。
func processSource(writer io.Writer, source io.ReadSeeker, name string, options *runOptions, aggregator *model.Aggregator) error {
	if options.excludeComments {
		exclusions, err := counter.Exclude(source)
		if err != nil {
			return err
		}
		aggregator.Stage(exclusions)
	}

	if _, err := source.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("rewind for counting: %w", err)
	}
	raw, err := counter.Count(source)
	if err != nil {
		return err
	}

	adjusted := aggregator.Apply(raw)
	return report.PrintFile(writer, options.selection, adjusted, name)
}
