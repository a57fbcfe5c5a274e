package googleservice

import (
	"context"
	"sync"
)

type GeminiAPIStub struct {
	Reply string
	Err   error

	// Block, if set, is waited on before replying
	Block chan struct{}

	mu      sync.Mutex
	prompts []string
}

func (gemini *GeminiAPIStub) GenerateContent(ctx context.Context, prompt string) (string, error) {
	gemini.mu.Lock()
	gemini.prompts = append(gemini.prompts, prompt)
	gemini.mu.Unlock()

	if gemini.Block != nil {
		<-gemini.Block
	}

	return gemini.Reply, gemini.Err
}

// Prompts returns every prompt received so far
func (gemini *GeminiAPIStub) Prompts() []string {
	gemini.mu.Lock()
	defer gemini.mu.Unlock()
	return append([]string{}, gemini.prompts...)
}
