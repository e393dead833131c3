package flow

import "strings"

// newConversationMarkers are the natural-language phrases a sub-task prompt
// may use to request a fresh conversation. Detection deliberately lives in
// this one function so the policy can be tightened without touching callers.
var newConversationMarkers = []string{
	"new conversation",
	"start a new conversation",
	"fresh conversation",
}

// WantsNewConversation reports whether a child task asked to break out of
// its parent's conversation, either via the explicit metadata flag or a
// recognized marker in the prompt. The flow identifier is still inherited.
func WantsNewConversation(metadata map[string]any, prompt string) bool {
	if metadata != nil {
		if v, ok := metadata["new_conversation"].(bool); ok && v {
			return true
		}
	}
	lowered := strings.ToLower(prompt)
	for _, marker := range newConversationMarkers {
		if strings.Contains(lowered, marker) {
			return true
		}
	}
	return false
}
