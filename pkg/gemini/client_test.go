package gemini

import (
	"context"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientRequiresConfig(t *testing.T) {
	_, err := NewClient(context.Background(), nil)
	require.Error(t, err)
}

func TestFirstTextPart(t *testing.T) {
	t.Run("拼接多个文本片段", func(t *testing.T) {
		resp := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{
				Content: &genai.Content{
					Parts: []genai.Part{
						genai.Text(`{"result":`),
						genai.Text(` "Positive"}`),
					},
				},
			}},
		}

		text, err := firstTextPart(resp)
		require.NoError(t, err)
		assert.Equal(t, `{"result": "Positive"}`, text)
	})

	t.Run("空响应报错", func(t *testing.T) {
		_, err := firstTextPart(nil)
		require.Error(t, err)

		_, err = firstTextPart(&genai.GenerateContentResponse{})
		require.Error(t, err)
	})

	t.Run("候选缺少内容时报错", func(t *testing.T) {
		resp := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{Content: nil}},
		}

		_, err := firstTextPart(resp)
		require.Error(t, err)
	})

	t.Run("不含文本片段时报错", func(t *testing.T) {
		resp := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{
				Content: &genai.Content{
					Parts: []genai.Part{genai.Blob{MIMEType: "image/png"}},
				},
			}},
		}

		_, err := firstTextPart(resp)
		require.Error(t, err)
	})
}
