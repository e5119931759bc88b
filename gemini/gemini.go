package gemini

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// ErrUnreadable means the model answered but no numeric reading could be
// extracted from the reply. Callers treat it as "bad image", not as an
// infrastructure failure.
var ErrUnreadable = errors.New("could not extract a reading from the image")

const promptTemplate = `I want to analyze the %s consumption meter image, capture the value and return it all to me in a JSON.

The JSON should be in the following format:
{
  "value": "10"
}
`

// Client calls the Gemini API to read a consumption value off a meter photo.
type Client struct {
	apiKey string
	model  string
	log    *zap.Logger
}

func New(apiKey, model string, log *zap.Logger) *Client {
	return &Client{
		apiKey: strings.TrimSpace(apiKey),
		model:  strings.TrimSpace(model),
		log:    log,
	}
}

// Analyze sends the base64 image plus the meter type to Gemini and parses
// the textual reply into a numeric reading. Transport failures propagate;
// an unparseable reply is logged and reported as ErrUnreadable.
func (c *Client) Analyze(ctx context.Context, imageBase64, measureType string) (float64, error) {
	imgBytes, err := base64.StdEncoding.DecodeString(imageBase64)
	if err != nil {
		return 0, fmt.Errorf("gemini: bad base64 image: %w", err)
	}

	cl, err := genai.NewClient(ctx, option.WithAPIKey(c.apiKey))
	if err != nil {
		return 0, err
	}
	defer cl.Close()

	m := cl.GenerativeModel(c.model)

	resp, err := m.GenerateContent(ctx,
		genai.Text(fmt.Sprintf(promptTemplate, strings.ToLower(measureType))),
		genai.Blob{MIMEType: "image/jpg", Data: imgBytes},
	)
	if err != nil {
		return 0, err
	}

	raw := responseText(resp)

	value, err := ParseReply(raw)
	if err != nil {
		c.log.Warn("gemini reply did not contain a reading",
			zap.String("reply", raw),
			zap.Error(err))
		return 0, ErrUnreadable
	}

	return value, nil
}

func responseText(resp *genai.GenerateContentResponse) string {
	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if txt, ok := part.(genai.Text); ok {
				sb.WriteString(string(txt))
			}
		}
	}
	return sb.String()
}
