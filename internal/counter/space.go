// Package counter 实现 mywc 的核心计数逻辑：
// 单趟行/词/字节扫描，以及 // 单行注释的排除预扫描。
package counter

// isDelimiter 判断一个字节是否属于“窄空白集”。
// 该集合固定为 {tab, newline, vtab, formfeed, cr, space} 六个字节，
// 注释排除逻辑必须使用这个定义来切分单词。
func isDelimiter(b byte) bool {
	return b == '\t' || b == '\n' || b == '\v' || b == '\f' || b == '\r' || b == ' '
}

// isBroadSpace 判断一个字节是否属于“宽空白集”。
// 在窄空白集基础上额外包含 0x85（NEL）和 0xA0（NBSP），
// 只有原始计数扫描的分词使用它。
//
// 注意：两个判定函数刻意不统一。上游对宽集多出的两个字节
// 是否有意为之并无定论，这里保持两套判定并由测试钉住差异。
func isBroadSpace(b byte) bool {
	return isDelimiter(b) || b == 0x85 || b == 0xA0
}
