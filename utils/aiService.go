package utils

import (
	"errors"
	"fmt"
	"lms/config"
	"log"
	"time"

	"github.com/go-resty/resty/v2"
)

type aiRequest struct {
	Contents []aiContent `json:"contents"`
}

type aiContent struct {
	Parts []aiPart `json:"parts"`
}

type aiPart struct {
	Text string `json:"text"`
}

type aiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []aiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// GenerateResumeSummary asks the generative AI service to rewrite the given
// resume content into a short professional summary.
func GenerateResumeSummary(resumeText string) (string, error) {
	if config.AppConfig.AIApiKey == "" {
		return "", errors.New("AI API key not configured")
	}

	prompt := fmt.Sprintf(
		"Write a concise, professional resume summary (3-4 sentences) based on the following resume details:\n\n%s",
		resumeText,
	)

	var result aiResponse

	client := resty.New().SetTimeout(30 * time.Second)
	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetQueryParam("key", config.AppConfig.AIApiKey).
		SetBody(aiRequest{
			Contents: []aiContent{{Parts: []aiPart{{Text: prompt}}}},
		}).
		SetResult(&result).
		Post(config.AppConfig.AIApiURL)

	if err != nil {
		log.Printf("Error calling AI service: %v", err)
		return "", err
	}

	if resp.IsError() {
		log.Printf("AI service returned status %d", resp.StatusCode())
		return "", errors.New("AI service request failed")
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("AI service returned an empty response")
	}

	return result.Candidates[0].Content.Parts[0].Text, nil
}
