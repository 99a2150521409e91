// Package report 提供 mywc 的输出能力。
// 输出格式与经典 wc 工具保持一致：每个选中的计数前置六个空格。
package report

import (
	"fmt"
	"io"

	"mywc/internal/model"
)

// Selection 描述本次调用要展示哪些计数列。
// 无论选项顺序如何，输出固定按 行/词/字节 排列。
type Selection struct {
	Lines bool
	Words bool
	Bytes bool
}

// PrintFile 输出单个输入的统计行。
// name 为空时（标准输入场景）只输出计数和换行，不带名字。
func PrintFile(writer io.Writer, selection Selection, counts model.Counts, name string) error {
	if err := printCounts(writer, selection, counts); err != nil {
		return err
	}

	if name == "" {
		_, err := fmt.Fprintln(writer)
		return err
	}
	_, err := fmt.Fprintf(writer, " %s\n", name)
	return err
}

// PrintTotal 输出多文件场景下的总计行，行尾固定为 " total"。
func PrintTotal(writer io.Writer, selection Selection, totals model.Counts) error {
	if err := printCounts(writer, selection, totals); err != nil {
		return err
	}
	_, err := fmt.Fprintln(writer, " total")
	return err
}

// printCounts 按固定列序输出选中的计数值。
func printCounts(writer io.Writer, selection Selection, counts model.Counts) error {
	if selection.Lines {
		if _, err := fmt.Fprintf(writer, "      %d", counts.Lines); err != nil {
			return err
		}
	}
	if selection.Words {
		if _, err := fmt.Fprintf(writer, "      %d", counts.Words); err != nil {
			return err
		}
	}
	if selection.Bytes {
		if _, err := fmt.Fprintf(writer, "      %d", counts.Bytes); err != nil {
			return err
		}
	}
	return nil
}
