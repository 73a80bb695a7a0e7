package model

// CanonicalColumns 结果表的规范列顺序
var CanonicalColumns = []string{"id", "title", "body", "vote", "comment", "emotion_result"}

// Record 表示输入/输出表格中的一行，以 id 作为稳定主键
// id 为空或无法转换为整数时为 nil，其余字段原样透传
type Record struct {
	ID            *int    `json:"id"`
	Title         string  `json:"title"`
	Body          string  `json:"body"`
	Vote          string  `json:"vote"`
	Comment       string  `json:"comment"`
	EmotionResult *string `json:"emotion_result"`
}

// HasBody 判断 body 是否有内容
func (r *Record) HasBody() bool {
	return r.Body != ""
}
