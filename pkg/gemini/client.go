package gemini

import (
	"context"
	"fmt"
	"strings"

	"emotion-analysis-log/config"
	"emotion-analysis-log/pkg/model"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// Client 封装 Gemini API 客户端，必须通过 NewClient 显式构造
type Client struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewClient 创建 Gemini 客户端
// API Key 缺失在这里不报错，首次调用时由 API 返回错误
func NewClient(ctx context.Context, cfg *config.GeminiConfig) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("Gemini 配置未设置")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("创建 Gemini 客户端失败: %v", err)
	}

	genModel := client.GenerativeModel(cfg.Model)
	genModel.ResponseMIMEType = "application/json"
	genModel.ResponseSchema = &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"result": {Type: genai.TypeString},
		},
		Required: []string{"result"},
	}
	genModel.SetTemperature(cfg.Temperature)

	zap.S().Debugf("Gemini 客户端初始化完成, 模型: %s", cfg.Model)

	return &Client{
		client: client,
		model:  genModel,
	}, nil
}

// Close 释放底层连接
func (c *Client) Close() error {
	return c.client.Close()
}

// AnalyzeEmotion 对单条文本做情感分析，返回标签
// 每次调用产生一次出站请求，不做重试
func (c *Client) AnalyzeEmotion(ctx context.Context, text string) (string, error) {
	prompt := BuildPrompt(text)

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("Gemini API 调用失败: %v", err)
	}

	raw, err := firstTextPart(resp)
	if err != nil {
		return "", err
	}

	outcome := ParseEmotionResponse(raw)
	if !outcome.Ok() {
		return "", fmt.Errorf("响应解析失败, 原始响应: %q", raw)
	}
	if outcome.Kind == model.OutcomeRawText {
		zap.S().Debugf("响应未包含已知标签, 原样返回: %q", outcome.Value)
	}
	return outcome.Value, nil
}

// firstTextPart 取出响应中第一个文本片段
func firstTextPart(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("Gemini 返回了空响应")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("Gemini 响应缺少内容")
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("Gemini 响应不含文本内容")
	}
	return sb.String(), nil
}
