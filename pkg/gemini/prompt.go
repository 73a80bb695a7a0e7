package gemini

// systemPrompt 情感分析指令前缀
// 要求模型结合整句语境，返回 Positive/Negative/Neutral 三类之一
const systemPrompt = "请结合下面句子的整体语境进行情感分析。" +
	"句子为积极时回答 Positive，消极时回答 Negative，中性时回答 Neutral。" +
	"句子:"

// BuildPrompt 拼接指令前缀与待分析文本
func BuildPrompt(text string) string {
	return systemPrompt + " " + text
}
