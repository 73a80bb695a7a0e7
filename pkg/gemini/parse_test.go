package gemini

import (
	"testing"

	"emotion-analysis-log/pkg/model"

	"github.com/stretchr/testify/assert"
)

func TestParseEmotionResponse(t *testing.T) {
	t.Run("解析符合 Schema 的 JSON 响应", func(t *testing.T) {
		outcome := ParseEmotionResponse(`{"result": "Positive"}`)

		assert.Equal(t, model.OutcomeStructured, outcome.Kind)
		assert.Equal(t, model.LabelPositive, outcome.Value)
	})

	t.Run("解析带 Markdown 代码块的 JSON 响应", func(t *testing.T) {
		outcome := ParseEmotionResponse("```json\n{\"result\": \"Neutral\"}\n```")

		assert.Equal(t, model.OutcomeStructured, outcome.Kind)
		assert.Equal(t, model.LabelNeutral, outcome.Value)
	})

	t.Run("result 为非字符串时走通用 JSON 策略", func(t *testing.T) {
		outcome := ParseEmotionResponse(`{"result": 3}`)

		assert.Equal(t, model.OutcomeStructured, outcome.Kind)
		assert.Equal(t, "3", outcome.Value)
	})

	t.Run("JSON 对象缺少 result 键时判定失败", func(t *testing.T) {
		// JSON 解析成功即终止回退链，不再做子串匹配
		outcome := ParseEmotionResponse(`{"label": "Negative"}`)

		assert.Equal(t, model.OutcomeFailed, outcome.Kind)
		assert.False(t, outcome.Ok())
	})

	t.Run("result 为 null 或空串时判定失败", func(t *testing.T) {
		// 合法 JSON 不会落到原样兜底，整段 JSON 文本不能当作标签
		outcome := ParseEmotionResponse(`{"result": null}`)
		assert.Equal(t, model.OutcomeFailed, outcome.Kind)

		outcome = ParseEmotionResponse(`{"result": ""}`)
		assert.Equal(t, model.OutcomeFailed, outcome.Kind)
	})

	t.Run("非 JSON 文本按标签子串判定", func(t *testing.T) {
		outcome := ParseEmotionResponse("整体情绪是 Negative，不算 Neutral")

		assert.Equal(t, model.OutcomeStructured, outcome.Kind)
		assert.Equal(t, model.LabelNegative, outcome.Value)
	})

	t.Run("多个标签同时出现时按优先级取第一个", func(t *testing.T) {
		outcome := ParseEmotionResponse("Negative or Positive, hard to say")

		assert.Equal(t, model.LabelPositive, outcome.Value)
	})

	t.Run("未命中任何标签时原样返回文本", func(t *testing.T) {
		outcome := ParseEmotionResponse("  情绪不明  ")

		assert.Equal(t, model.OutcomeRawText, outcome.Kind)
		assert.Equal(t, "情绪不明", outcome.Value)
		assert.True(t, outcome.Ok())
	})

	t.Run("空响应解析失败", func(t *testing.T) {
		outcome := ParseEmotionResponse("   ")

		assert.Equal(t, model.OutcomeFailed, outcome.Kind)
		assert.False(t, outcome.Ok())
	})
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt("今天的食堂很好吃")

	assert.Contains(t, prompt, systemPrompt)
	assert.Contains(t, prompt, "今天的食堂很好吃")
}
