package gemini

import (
	"encoding/json"
	"strings"

	"emotion-analysis-log/pkg/model"

	"github.com/spf13/cast"
)

// emotionResult 对应响应 Schema {"result": string}
type emotionResult struct {
	Result string `json:"result"`
}

// extractStrategy 单个提取策略，返回 false 时交给下一个策略
type extractStrategy func(raw string) (model.ParseOutcome, bool)

// extractStrategies 按优先级排列的提取策略
// 依次尝试：Schema 结构体 -> 通用 JSON 对象 -> 标签子串 -> 原样文本
var extractStrategies = []extractStrategy{
	extractSchemaResult,
	extractJSONResult,
	extractLabelLiteral,
	extractRawText,
}

// ParseEmotionResponse 宽容地解析模型响应文本
// 所有策略都失败时返回 FailedOutcome
func ParseEmotionResponse(raw string) model.ParseOutcome {
	for _, strategy := range extractStrategies {
		if outcome, ok := strategy(raw); ok {
			return outcome
		}
	}
	return model.FailedOutcome()
}

// extractSchemaResult 按响应 Schema 解析 JSON
func extractSchemaResult(raw string) (model.ParseOutcome, bool) {
	var result emotionResult
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &result); err != nil {
		return model.ParseOutcome{}, false
	}
	if result.Result == "" {
		return model.ParseOutcome{}, false
	}
	return model.StructuredOutcome(result.Result), true
}

// extractJSONResult 解析为通用 JSON 对象后取 result 键
// JSON 对象解析成功即终止整条回退链：result 缺失、为 null 或为空串时
// 直接判定失败，不再把 JSON 文本交给子串匹配或原样兜底
func extractJSONResult(raw string) (model.ParseOutcome, bool) {
	var obj map[string]interface{}
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &obj); err != nil {
		return model.ParseOutcome{}, false
	}
	label := cast.ToString(obj["result"])
	if label == "" {
		return model.FailedOutcome(), true
	}
	return model.StructuredOutcome(label), true
}

// extractLabelLiteral 在响应文本中按优先级查找标签子串
func extractLabelLiteral(raw string) (model.ParseOutcome, bool) {
	for _, label := range model.Labels {
		if strings.Contains(raw, label) {
			return model.StructuredOutcome(label), true
		}
	}
	return model.ParseOutcome{}, false
}

// extractRawText 兜底策略：原样返回去除空白后的响应文本
func extractRawText(raw string) (model.ParseOutcome, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return model.ParseOutcome{}, false
	}
	return model.RawTextOutcome(trimmed), true
}

// stripCodeFence 去除模型偶尔包裹的 Markdown 代码块标记
func stripCodeFence(raw string) string {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}
