// Package llm pkg/llm/types.go
package llm

// Content is one part of a multi-part chat message: text or an
// inline image.
type Content struct {
	Type     string    `json:"type"` // "text" or "image_url"
	Text     string    `json:"text,omitempty"`
	ImageURL *ImageURL `json:"image_url,omitempty"`
}

type ImageURL struct {
	URL string `json:"url"`
}

// Message is a single chat message. Content holds either a plain
// string or a []Content part list.
type Message struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type completionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature *float64  `json:"temperature,omitempty"`
	MaxTokens   *int      `json:"max_tokens,omitempty"`
}

// Metric is one usage metric reported by the LLM API.
type Metric struct {
	Metric string  `json:"metric"`
	Value  float64 `json:"value"`
	Unit   string  `json:"unit,omitempty"`
}

type completionMessage struct {
	Role       string `json:"role"`
	StopReason string `json:"stop_reason,omitempty"`
	Content    struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

type completionResponse struct {
	ID                string            `json:"id"`
	CompletionMessage completionMessage `json:"completion_message"`
	Metrics           []Metric          `json:"metrics,omitempty"`
}

// Completion is the generated text plus usage metadata of one
// chat-completion call.
type Completion struct {
	ID      string
	Text    string
	Metrics []Metric
}
