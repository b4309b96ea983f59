package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	defaultModel   = "gemini-2.0-flash"

	// Balasan baku bila model mengembalikan teks kosong
	emptyReplyFallback = "Baik, saya akan segera memeriksanya."
)

// GeminiClient memanggil Generative Language API untuk membuat balasan chat.
type GeminiClient struct {
	httpClient *http.Client
	baseURL    string
	model      string
	apiKey     string
	logger     *zap.Logger
}

func NewGeminiClient(apiKey string, logger ...*zap.Logger) *GeminiClient {
	l := zap.L().Named("genai.gemini")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("genai.gemini")
	}
	return &GeminiClient{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    defaultBaseURL,
		model:      defaultModel,
		apiKey:     apiKey,
		logger:     l,
	}
}

// WithBaseURL mengganti endpoint, dipakai di test
func (c *GeminiClient) WithBaseURL(baseURL string) *GeminiClient {
	c.baseURL = strings.TrimSuffix(baseURL, "/")
	return c
}

type generateContentRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (c *GeminiClient) GenerateReply(
	ctx context.Context,
	history []ChatLine,
	employeeName, picName string,
) (string, error) {
	prompt := BuildReplyPrompt(history, employeeName, picName)

	body, err := json.Marshal(generateContentRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Warn("generate reply failed",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", payload),
		)
		return "", fmt.Errorf("generate reply: unexpected status %d", resp.StatusCode)
	}

	var out generateContentResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}

	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return emptyReplyFallback, nil
	}

	text := strings.TrimSpace(out.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return emptyReplyFallback, nil
	}
	return text, nil
}

// BuildReplyPrompt menyusun prompt berbahasa Indonesia dari riwayat terakhir
func BuildReplyPrompt(history []ChatLine, employeeName, picName string) string {
	var lines []string
	for _, msg := range history {
		lines = append(lines, fmt.Sprintf("%s: %s", msg.Sender, msg.Text))
	}

	return fmt.Sprintf(
		`Anda adalah %s, seorang karyawan di SWAPRO. Anda sedang berbicara dengan manajer Anda, %s. Balas pesan terakhir dengan singkat, profesional, dan ramah dalam Bahasa Indonesia.

Konteks percakapan terakhir:
%s

Balasan Anda (sebagai %s):`,
		employeeName, picName, strings.Join(lines, "\n"), employeeName,
	)
}
