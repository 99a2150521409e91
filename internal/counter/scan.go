package counter

import (
	"bufio"
	"errors"
	"io"

	"mywc/internal/model"
)

// Count 对输入流做一次前向扫描并返回原始统计值。
//
// 算法约束：
// - 只扫描一趟，不回退
// - 每读到一个字节 Bytes +1，每读到一个换行符 Lines +1
// - 从空白进入非空白的瞬间 Words +1（分词使用宽空白集）
// - 流结束即使没有收尾分隔符，最后一个单词也已被计入
func Count(reader io.Reader) (model.Counts, error) {
	var counts model.Counts

	bufferedReader := bufio.NewReader(reader)
	inWord := false

	for {
		current, err := bufferedReader.ReadByte()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return counts, err
		}

		counts.Bytes++
		if current == '\n' {
			counts.Lines++
		}

		if isBroadSpace(current) {
			inWord = false
			continue
		}
		if !inWord {
			inWord = true
			counts.Words++
		}
	}

	return counts, nil
}
