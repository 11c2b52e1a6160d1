package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"MatchOdds/internal/config"
	"MatchOdds/internal/utils/httpclient"

	"github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
)

// ErrNotConfigured 未配置 LLM key
var ErrNotConfigured = errors.New("llm api key not configured")

const temperature = 0.3

// Client OpenAI 兼容的对话补全，base_url 可指向任意兼容网关
type Client struct {
	cfg    config.LLMConfig
	api    *openai.Client
	logger *logrus.Logger
}

func NewClient(cfg config.LLMConfig, logger *logrus.Logger) *Client {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	clientCfg.HTTPClient = httpclient.NewHTTPClient(config.ProviderConfig{Timeout: cfg.Timeout}, logger)
	return &Client{
		cfg:    cfg,
		api:    openai.NewClientWithConfig(clientCfg),
		logger: logger,
	}
}

func (c *Client) Configured() bool {
	return c.cfg.APIKey != ""
}

// Complete 单轮对话，返回第一条回复的文本。调用方断开不取消请求。
func (c *Client) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}

	resp, err := c.api.CreateChatCompletion(context.WithoutCancel(ctx), openai.ChatCompletionRequest{
		Model: c.cfg.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		Temperature: temperature,
	})
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return "", fmt.Errorf("LLM返回错误(status=%d): %s", apiErr.HTTPStatusCode, apiErr.Message)
		}
		return "", fmt.Errorf("调用LLM失败: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("LLM响应没有choices")
	}
	c.logger.WithFields(logrus.Fields{
		"model":         resp.Model,
		"prompt_tokens": resp.Usage.PromptTokens,
		"total_tokens":  resp.Usage.TotalTokens,
	}).Debug("LLM调用完成")
	return resp.Choices[0].Message.Content, nil
}
