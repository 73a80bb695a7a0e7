package config

import (
	"github.com/pkg/errors"
)

// GeminiConfig Gemini API 的访问配置
// API Key 缺失不在这里校验，首次调用时会自然失败
type GeminiConfig struct {
	APIKey      string  `json:"apiKey" yaml:"apiKey"`           // 支持 ${GEMINI_API_KEY} 形式引用环境变量
	Model       string  `json:"model" yaml:"model"`             // 模型名称
	Temperature float32 `json:"temperature" yaml:"temperature"` // 生成温度
}

func (g *GeminiConfig) Validate() []error {
	var errs = make([]error, 0)
	if g.Model == "" {
		errs = append(errs, errors.Errorf("Gemini 模型名称不能为空"))
	}
	return errs
}

func NewDefaultGeminiConfig() *GeminiConfig {
	return &GeminiConfig{
		Model:       "gemini-2.0-flash",
		Temperature: 0.3,
	}
}
