package out

import "context"

// TextGenerator 외부 텍스트 생성 서비스
type TextGenerator interface {
	// Generate returns the completion for prompt. Any provider, transport
	// or timeout failure is returned as an error.
	Generate(ctx context.Context, prompt string) (string, error)
}
