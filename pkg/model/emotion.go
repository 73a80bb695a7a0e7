package model

// 情感分析的三类标签
const (
	LabelPositive = "Positive"
	LabelNegative = "Negative"
	LabelNeutral  = "Neutral"
)

// Labels 按解析优先级排列的标签列表
var Labels = []string{LabelPositive, LabelNegative, LabelNeutral}

// OutcomeKind 表示响应解析结果的类别
type OutcomeKind int

const (
	// OutcomeStructured 从结构化响应中取得标签
	OutcomeStructured OutcomeKind = iota
	// OutcomeRawText 未识别出标签，原样返回响应文本
	OutcomeRawText
	// OutcomeFailed 响应为空，解析失败
	OutcomeFailed
)

// ParseOutcome 表示一次响应解析的结果
// Kind 为 OutcomeStructured 或 OutcomeRawText 时 Value 有效
type ParseOutcome struct {
	Kind  OutcomeKind
	Value string
}

// StructuredOutcome 构造结构化解析结果
func StructuredOutcome(label string) ParseOutcome {
	return ParseOutcome{Kind: OutcomeStructured, Value: label}
}

// RawTextOutcome 构造原样文本结果
func RawTextOutcome(text string) ParseOutcome {
	return ParseOutcome{Kind: OutcomeRawText, Value: text}
}

// FailedOutcome 构造失败结果
func FailedOutcome() ParseOutcome {
	return ParseOutcome{Kind: OutcomeFailed}
}

// Ok 判断解析是否得到了可用的结果
func (o ParseOutcome) Ok() bool {
	return o.Kind != OutcomeFailed
}
