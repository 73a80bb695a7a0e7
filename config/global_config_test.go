package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultGlobalConfig(t *testing.T) {
	cfg := NewDefaultGlobalConfig()

	require.NotNil(t, cfg.AnalysisConfig)
	assert.Equal(t, filepath.Join("data", "school.xlsx"), cfg.AnalysisConfig.InputPath)
	assert.Equal(t, filepath.Join("result", "emotion_analysis_result.xlsx"), cfg.AnalysisConfig.OutputPath)

	require.NotNil(t, cfg.GeminiConfig)
	assert.Equal(t, "gemini-2.0-flash", cfg.GeminiConfig.Model)
	assert.Equal(t, float32(0.3), cfg.GeminiConfig.Temperature)

	require.NotNil(t, cfg.DuckDBConfig)
	assert.Equal(t, "./data/emotion.duckdb", cfg.DuckDBConfig.DBPath)
}

func TestTryLoadFromDisk(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	content := `
analysis:
  inputPath: ` + filepath.Join(dir, "in.xlsx") + `
  outputPath: ` + filepath.Join(dir, "out", "result.xlsx") + `
gemini:
  model: gemini-2.5-flash
  temperature: 0.7
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	cfg, err := TryLoadFromDisk(configPath)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "in.xlsx"), cfg.AnalysisConfig.InputPath)
	assert.Equal(t, "gemini-2.5-flash", cfg.GeminiConfig.Model)
	assert.Equal(t, float32(0.7), cfg.GeminiConfig.Temperature)

	// 未出现在文件中的配置保持默认值
	require.NotNil(t, cfg.DuckDBConfig)
	assert.Equal(t, "./data/emotion.duckdb", cfg.DuckDBConfig.DBPath)
}

func TestTryLoadFromDiskMissingFile(t *testing.T) {
	_, err := TryLoadFromDisk(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestGeminiAPIKeyFromEnv(t *testing.T) {
	// 配置未提供 apiKey 时回退到环境变量
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg := NewDefaultGlobalConfig()
	cfg.applyEnvOverrides()

	assert.Equal(t, "test-key", cfg.GeminiConfig.APIKey)
}

func TestAnalysisConfigValidate(t *testing.T) {
	t.Run("合法配置创建结果目录", func(t *testing.T) {
		dir := t.TempDir()
		cfg := &AnalysisConfig{
			InputPath:  filepath.Join(dir, "in.xlsx"),
			OutputPath: filepath.Join(dir, "result", "out.xlsx"),
		}

		assert.Empty(t, cfg.Validate())
		_, err := os.Stat(filepath.Join(dir, "result"))
		assert.NoError(t, err)
	})

	t.Run("路径为空时报错", func(t *testing.T) {
		cfg := &AnalysisConfig{}
		assert.NotEmpty(t, cfg.Validate())
	})
}

func TestGeminiConfigValidate(t *testing.T) {
	// API Key 缺失不在校验阶段报错
	cfg := &GeminiConfig{Model: "gemini-2.0-flash"}
	assert.Empty(t, cfg.Validate())

	cfg.Model = ""
	assert.NotEmpty(t, cfg.Validate())
}
