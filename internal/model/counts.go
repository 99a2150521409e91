// Package model 定义 mywc 的核心数据模型。
// 这些结构会被计数器、输出层和命令层共同使用。
package model

// Counts 表示单个输入的行/词/字节统计值。
//
// 注意：
// - Lines 只统计换行符数量，末尾无换行的内容不会多算一行
// - Words 由扫描器按“非空白字节连续段”计数
// - Bytes 表示原始字节数，不做多字节字符处理
type Counts struct {
	Lines int64
	Words int64
	Bytes int64
}

// Add 将另一个统计结果叠加到当前对象。
func (c *Counts) Add(other Counts) {
	c.Lines += other.Lines
	c.Words += other.Words
	c.Bytes += other.Bytes
}

// Exclusions 表示注释排除预扫描的产物：
// 应当从原始统计值中扣除的字节数与单词数。
// 它是一个单槽暂存值，必须在下一个输入处理前被消费并清零。
type Exclusions struct {
	Chars int64
	Words int64
}

// Aggregator 负责把每个输入的原始统计值折算成最终值并累计总计。
//
// 约束说明：
// - Stage 暂存的 Exclusions 只作用于紧随其后的一次 Apply
// - Apply 内部执行“消费并清零”，排除量绝不会泄漏到下一个输入
// - 因为暂存槽只有一个，输入必须严格串行处理，这里不做任何并发保护
type Aggregator struct {
	pending Exclusions
	totals  Counts
	files   int64
}

// NewAggregator 创建一个空的聚合器。
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// Stage 暂存一次预扫描得到的排除量，等待下一次 Apply 消费。
func (a *Aggregator) Stage(exclusions Exclusions) {
	a.pending = exclusions
}

// Apply 消费暂存的排除量，返回调整后的单输入统计值，
// 同时把调整结果折算进总计并把暂存槽清零。
func (a *Aggregator) Apply(raw Counts) Counts {
	exclusions := a.consume()

	adjusted := Counts{
		Lines: raw.Lines,
		Words: raw.Words - exclusions.Words,
		Bytes: raw.Bytes - exclusions.Chars,
	}

	a.totals.Add(adjusted)
	a.files++
	return adjusted
}

// consume 取出暂存的排除量并清零暂存槽。
func (a *Aggregator) consume() Exclusions {
	exclusions := a.pending
	a.pending = Exclusions{}
	return exclusions
}

// Totals 返回累计总计。三项始终全部累计，展示层再决定输出哪些列。
func (a *Aggregator) Totals() Counts {
	return a.totals
}

// Files 返回已经折算过的输入数量。
func (a *Aggregator) Files() int64 {
	return a.files
}
