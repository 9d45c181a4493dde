package assist

import (
	"embed"
	"encoding/json"
	"fmt"
	"sync"
)

//go:embed prompts/*.json
var promptFiles embed.FS

var (
	promptsOnce sync.Once
	promptTable map[string]string
	promptsErr  error
)

// systemPrompt returns the system prompt for an assist type. An empty or
// unknown type falls back to the general rewrite prompt.
func systemPrompt(assistType string) (string, error) {
	promptsOnce.Do(func() {
		data, err := promptFiles.ReadFile("prompts/assist.json")
		if err != nil {
			promptsErr = fmt.Errorf("failed to read prompt file: %w", err)
			return
		}
		if err := json.Unmarshal(data, &promptTable); err != nil {
			promptsErr = fmt.Errorf("failed to parse prompt file: %w", err)
		}
	})
	if promptsErr != nil {
		return "", promptsErr
	}

	if prompt, ok := promptTable[assistType]; ok {
		return prompt, nil
	}
	prompt, ok := promptTable["general"]
	if !ok {
		return "", fmt.Errorf("prompt key %q not found", "general")
	}
	return prompt, nil
}
