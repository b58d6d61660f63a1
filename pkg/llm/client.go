package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// Client represents a Gemini API client for resume tailoring.
type Client struct {
	client          *genai.Client
	tailoringModel  string
	extractionModel string
	fallbacks       []string
}

// NewClient creates a new Gemini client. An empty fallback list gets the
// default model ladder.
func NewClient(ctx context.Context, apiKey, tailoringModel, extractionModel string, fallbacks []string) (client *Client, err error) {
	if apiKey == "" {
		err = errors.New("API key is required")
		return client, err
	}

	var inner *genai.Client
	inner, err = genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		err = errors.Wrap(err, "failed to create Gemini client")
		return client, err
	}

	if len(fallbacks) == 0 {
		fallbacks = DefaultFallbackModels
	}

	client = &Client{
		client:          inner,
		tailoringModel:  tailoringModel,
		extractionModel: extractionModel,
		fallbacks:       fallbacks,
	}
	return client, err
}

// Close releases resources held by the client.
func (c *Client) Close() (err error) {
	if c.client != nil {
		err = c.client.Close()
	}
	return err
}

// Tailor rewrites the resume template for the job description. When company
// or position hints are missing it first extracts them from the job
// description and records the machine-parsable extraction lines in the
// result transcript. An unusable generation result falls back to the
// request's template text rather than failing.
func (c *Client) Tailor(ctx context.Context, req TailorRequest) (result TailorResult, err error) {
	transcript := strings.Builder{}

	result.Company = req.Company
	result.Position = req.Position

	// Extract company/position when either hint is absent
	if req.Company == "" || req.Position == "" {
		company, position, extractErr := c.ExtractCompanyPosition(ctx, req.JobDescription)
		if extractErr != nil {
			// Extraction failure degrades; tailoring can still proceed.
			transcript.WriteString(fmt.Sprintf("Warning: extraction failed: %v\n", extractErr))
		} else {
			if req.Company == "" {
				result.Company = company
			}
			if req.Position == "" {
				result.Position = position
			}
			transcript.WriteString(fmt.Sprintf("Extracted Company: %s\n", company))
			transcript.WriteString(fmt.Sprintf("Extracted Position: %s\n", position))
		}
	}

	tailorReq := req
	tailorReq.Company = displayName(result.Company, UnknownCompany)
	tailorReq.Position = displayName(result.Position, UnknownPosition)

	prompt := buildTailoringPrompt(tailorReq)

	var responseText string
	responseText, err = c.generateWithFallback(ctx, c.tailoringModel, prompt, false)
	if err != nil {
		err = errors.Wrap(err, "tailoring request failed")
		result.Output = transcript.String()
		return result, err
	}

	content := stripCodeFences(responseText)
	if strings.TrimSpace(content) == "" || content == req.Template {
		transcript.WriteString("Warning: generated content is empty or unchanged, using original template\n")
		content = req.Template
	}

	result.Content = content
	result.Output = transcript.String()

	return result, err
}

// ExtractCompanyPosition extracts company name and position title from a job
// description. Returns the Unknown placeholders when the response cannot be
// parsed; the error is non-nil only when every model call failed.
func (c *Client) ExtractCompanyPosition(ctx context.Context, jobDescription string) (company, position string, err error) {
	prompt := buildExtractionPrompt(jobDescription)

	var responseText string
	responseText, err = c.generateWithFallback(ctx, c.extractionModel, prompt, true)
	if err != nil {
		company = UnknownCompany
		position = UnknownPosition
		err = errors.Wrap(err, "extraction request failed")
		return company, position, err
	}

	company, position = parseExtraction(responseText)

	return company, position, err
}

// generateWithFallback sends a prompt to the primary model, walking the
// fallback ladder on quota or unknown-model errors. Other errors abort
// immediately since they would fail identically on every model.
func (c *Client) generateWithFallback(ctx context.Context, primary, prompt string, jsonMode bool) (text string, err error) {
	tried := map[string]bool{}

	models := make([]string, 0, len(c.fallbacks)+1)
	models = append(models, primary)
	models = append(models, c.fallbacks...)

	var lastErr error
	for _, name := range models {
		if name == "" || tried[name] {
			continue
		}
		tried[name] = true

		text, err = c.generate(ctx, name, prompt, jsonMode)
		if err == nil {
			return text, err
		}

		lastErr = err
		if !isRetryableModelError(err) {
			err = errors.Wrapf(err, "model %s failed", name)
			return text, err
		}
	}

	err = errors.Wrap(lastErr, "all models failed")
	return text, err
}

// generate runs a single model call.
func (c *Client) generate(ctx context.Context, modelName, prompt string, jsonMode bool) (text string, err error) {
	model := c.client.GenerativeModel(modelName)
	if jsonMode {
		model.ResponseMIMEType = "application/json"
	}

	var resp *genai.GenerateContentResponse
	resp, err = model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		err = errors.Wrapf(err, "generate content failed for model %s", modelName)
		return text, err
	}

	text, err = extractText(resp)
	if err != nil {
		err = errors.Wrapf(err, "unusable response from model %s", modelName)
		return text, err
	}

	return text, err
}

// extractText pulls the text parts out of a Gemini response.
func extractText(resp *genai.GenerateContentResponse) (text string, err error) {
	if resp == nil || len(resp.Candidates) == 0 {
		err = errors.New("no candidates in response")
		return text, err
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		err = errors.New("no content in response")
		return text, err
	}

	parts := []string{}
	for _, part := range candidate.Content.Parts {
		if t, ok := part.(genai.Text); ok {
			parts = append(parts, string(t))
		}
	}

	if len(parts) == 0 {
		err = errors.New("no text parts in response")
		return text, err
	}

	text = strings.Join(parts, "")
	return text, err
}

// displayName returns the name or its placeholder when empty.
func displayName(name, placeholder string) (display string) {
	display = name
	if display == "" {
		display = placeholder
	}
	return display
}
