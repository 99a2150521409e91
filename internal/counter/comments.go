package counter

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"mywc/internal/model"
)

// Exclude 对同一份输入做两趟独立扫描，
// 计算 // 单行注释贡献的字节数与单词数。
//
// 两趟扫描各自从头读取，因此入参要求可 Seek；
// 文件句柄和内存缓冲走同一条代码路径，预扫描本身绝不修改输入。
func Exclude(source io.ReadSeeker) (model.Exclusions, error) {
	var exclusions model.Exclusions

	if _, err := source.Seek(0, io.SeekStart); err != nil {
		return exclusions, fmt.Errorf("rewind for char pass: %w", err)
	}
	chars, err := excludedChars(bufio.NewReader(source))
	if err != nil {
		return exclusions, fmt.Errorf("char exclusion pass: %w", err)
	}

	if _, err := source.Seek(0, io.SeekStart); err != nil {
		return exclusions, fmt.Errorf("rewind for word pass: %w", err)
	}
	words, err := excludedWords(bufio.NewReader(source))
	if err != nil {
		return exclusions, fmt.Errorf("word exclusion pass: %w", err)
	}

	exclusions.Chars = chars
	exclusions.Words = words
	return exclusions, nil
}

// excludedChars 是第一趟扫描：统计注释占用的字节数。
// 一旦出现连续两个 '/'，这两个字节连同到行尾（不含换行符）
// 的全部字节都计入排除量。
func excludedChars(bufferedReader *bufio.Reader) (int64, error) {
	var excluded int64

	previous := byte(0)
	havePrevious := false

	for {
		current, err := bufferedReader.ReadByte()
		if errors.Is(err, io.EOF) {
			return excluded, nil
		}
		if err != nil {
			return excluded, err
		}

		if current == '/' && havePrevious && previous == '/' {
			excluded += 2
			for {
				rest, restErr := bufferedReader.ReadByte()
				if errors.Is(restErr, io.EOF) {
					return excluded, nil
				}
				if restErr != nil {
					return excluded, restErr
				}
				if rest == '\n' {
					break
				}
				excluded++
			}
			// 注释已消费到行尾，下一轮配对从换行符之后重新开始。
			previous = '\n'
			havePrevious = true
			continue
		}

		previous = current
		havePrevious = true
	}
}

// excludedWords 是第二趟扫描：统计注释占用的单词数。
// 按窄空白集切分 token 前进；当 token 内部出现连续两个 '/'，
// 该行剩余部分即为注释区域：
// - 计入注释区域内按窄空白集切分出的全部单词
// - 如果注释标记前面粘着非空白内容（token 不是以 // 开头），
//   额外减一，避免已经计为一个单词的粘连 token 被重复扣除
// - 单条注释的贡献不允许为负
func excludedWords(bufferedReader *bufio.Reader) (int64, error) {
	var excluded int64

	for {
		current, err := bufferedReader.ReadByte()
		if errors.Is(err, io.EOF) {
			return excluded, nil
		}
		if err != nil {
			return excluded, err
		}
		if isDelimiter(current) {
			continue
		}

		// 进入一个 token，previous/position 只在 token 内部维护。
		previous := current
		position := int64(1)

		for {
			next, nextErr := bufferedReader.ReadByte()
			if errors.Is(nextErr, io.EOF) {
				return excluded, nil
			}
			if nextErr != nil {
				return excluded, nextErr
			}
			if isDelimiter(next) {
				break
			}
			position++

			if next == '/' && previous == '/' {
				glued := position > 2
				words, wordErr := commentWordCount(bufferedReader)
				if wordErr != nil {
					return excluded, wordErr
				}
				if glued {
					words--
				}
				if words > 0 {
					excluded += words
				}
				// 注释连同结尾换行符已被消费，直接回到 token 外层。
				break
			}

			previous = next
		}
	}
}

// commentWordCount 从注释标记之后读到行尾（或流结束），
// 返回注释区域内完整单词的数量。结尾换行符会被消费但不计入。
func commentWordCount(bufferedReader *bufio.Reader) (int64, error) {
	var words int64
	inWord := false

	for {
		current, err := bufferedReader.ReadByte()
		if errors.Is(err, io.EOF) {
			return words, nil
		}
		if err != nil {
			return words, err
		}
		if current == '\n' {
			return words, nil
		}

		if isDelimiter(current) {
			inWord = false
			continue
		}
		if !inWord {
			inWord = true
			words++
		}
	}
}
