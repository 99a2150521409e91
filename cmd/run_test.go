package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeFixtureFile 是测试辅助函数，用于在临时目录快速落地测试文件。
func writeFixtureFile(t *testing.T, name string, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture file failed: %v", err)
	}
	return path
}

// executeCommand 是测试辅助函数，
// 用内存缓冲替换标准输入输出后执行根命令。
func executeCommand(t *testing.T, input string, args []string) (string, error) {
	t.Helper()

	rootCmd := newRootCmd("test")
	output := &bytes.Buffer{}
	rootCmd.SetOut(output)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetIn(strings.NewReader(input))
	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return output.String(), err
}

// TestRunSingleFileDefault 验证无选项时三列全部展示并带文件名。
func TestRunSingleFileDefault(t *testing.T) {
	path := writeFixtureFile(t, "hello.txt", "hello world\n")

	output, err := executeCommand(t, "", []string{path})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}

	expected := fmt.Sprintf("      1      2      12 %s\n", path)
	if output != expected {
		t.Fatalf("unexpected output: %q, expected %q", output, expected)
	}
}

// TestRunLinesOnly 验证 -l 只输出行数列。
func TestRunLinesOnly(t *testing.T) {
	path := writeFixtureFile(t, "two.txt", "a\nb\n")

	output, err := executeCommand(t, "", []string{"-l", path})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}

	expected := fmt.Sprintf("      2 %s\n", path)
	if output != expected {
		t.Fatalf("unexpected output: %q, expected %q", output, expected)
	}
}

// TestRunBundledFlags 验证捆绑选项 -lc 等价于 -l -c。
func TestRunBundledFlags(t *testing.T) {
	path := writeFixtureFile(t, "bundle.txt", "hello world\n")

	bundled, err := executeCommand(t, "", []string{"-lc", path})
	if err != nil {
		t.Fatalf("execute bundled failed: %v", err)
	}
	separate, err := executeCommand(t, "", []string{"-l", "-c", path})
	if err != nil {
		t.Fatalf("execute separate failed: %v", err)
	}

	expected := fmt.Sprintf("      1      12 %s\n", path)
	if bundled != expected || separate != expected {
		t.Fatalf("unexpected output: bundled %q, separate %q, expected %q", bundled, separate, expected)
	}
}

// TestRunUnknownFlagCharsIgnored 验证未识别的选项字符被静默忽略。
func TestRunUnknownFlagCharsIgnored(t *testing.T) {
	path := writeFixtureFile(t, "ignore.txt", "a\nb\n")

	output, err := executeCommand(t, "", []string{"-lxz", path})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}

	expected := fmt.Sprintf("      2 %s\n", path)
	if output != expected {
		t.Fatalf("unexpected output: %q, expected %q", output, expected)
	}
}

// TestRunCommentExclusionDefault 验证首个参数恰为 -C 时
// 三列仍全部展示，且注释的单词与字节被扣除。
func TestRunCommentExclusionDefault(t *testing.T) {
	path := writeFixtureFile(t, "comment.c", "foo // bar baz\n")

	output, err := executeCommand(t, "", []string{"-C", path})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}

	expected := fmt.Sprintf("      1      2      5 %s\n", path)
	if output != expected {
		t.Fatalf("unexpected output: %q, expected %q", output, expected)
	}
}

// TestRunGluedCommentMarker 验证粘连标记的边界：
// "foo//bar baz" 中 foo 保持计为一个真实单词。
func TestRunGluedCommentMarker(t *testing.T) {
	path := writeFixtureFile(t, "glued.c", "foo//bar baz\n")

	output, err := executeCommand(t, "", []string{"-C", path})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}

	expected := fmt.Sprintf("      1      1      4 %s\n", path)
	if output != expected {
		t.Fatalf("unexpected output: %q, expected %q", output, expected)
	}
}

// TestRunMultipleFilesTotal 验证多文件时的总计行：
// 总计等于各文件调整后数值的逐列求和。
func TestRunMultipleFilesTotal(t *testing.T) {
	first := writeFixtureFile(t, "first.txt", "hello world\n")
	second := writeFixtureFile(t, "second.txt", "a b c\n")

	output, err := executeCommand(t, "", []string{first, second})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}

	expected := fmt.Sprintf("      1      2      12 %s\n", first) +
		fmt.Sprintf("      1      3      6 %s\n", second) +
		"      2      5      18 total\n"
	if output != expected {
		t.Fatalf("unexpected output: %q, expected %q", output, expected)
	}
}

// TestRunFlagAffectsOnlyLaterFiles 验证选项按出现顺序生效：
// 排在 -C 之前的文件不做注释排除，之后的文件做。
func TestRunFlagAffectsOnlyLaterFiles(t *testing.T) {
	first := writeFixtureFile(t, "before.c", "x // y\n")
	second := writeFixtureFile(t, "after.c", "x // y\n")

	output, err := executeCommand(t, "", []string{first, "-C", second})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}

	expected := fmt.Sprintf("      1      3      7 %s\n", first) +
		fmt.Sprintf("      1      2      3 %s\n", second) +
		"      2      5      10 total\n"
	if output != expected {
		t.Fatalf("unexpected output: %q, expected %q", output, expected)
	}
}

// TestRunStdin 验证零文件参数时读取标准输入且不输出名字。
func TestRunStdin(t *testing.T) {
	output, err := executeCommand(t, "hello world\n", nil)
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}

	expected := "      1      2      12\n"
	if output != expected {
		t.Fatalf("unexpected output: %q, expected %q", output, expected)
	}
}

// TestRunStdinWithExclusion 验证标准输入同样支持注释排除。
func TestRunStdinWithExclusion(t *testing.T) {
	output, err := executeCommand(t, "foo // bar baz\n", []string{"-C"})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}

	expected := "      1      2      5\n"
	if output != expected {
		t.Fatalf("unexpected output: %q, expected %q", output, expected)
	}
}

// TestRunMissingFile 验证打不开文件时立即报错终止，不输出总计。
func TestRunMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.txt")

	output, err := executeCommand(t, "", []string{missing})
	if err == nil {
		t.Fatalf("expected error for missing file, got nil")
	}
	if !strings.Contains(err.Error(), missing) {
		t.Fatalf("unexpected error: %v", err)
	}
	if output != "" {
		t.Fatalf("expected no output, got %q", output)
	}
}

// TestRunMissingFileAfterSuccess 验证中途失败时：
// 前序文件的输出保留，总计行不再输出。
func TestRunMissingFileAfterSuccess(t *testing.T) {
	first := writeFixtureFile(t, "ok.txt", "hello world\n")
	missing := filepath.Join(t.TempDir(), "missing.txt")

	output, err := executeCommand(t, "", []string{first, missing})
	if err == nil {
		t.Fatalf("expected error for missing file, got nil")
	}

	expected := fmt.Sprintf("      1      2      12 %s\n", first)
	if output != expected {
		t.Fatalf("unexpected output: %q, expected %q", output, expected)
	}
	if strings.Contains(output, "total") {
		t.Fatalf("total line must not appear after a failure: %q", output)
	}
}
