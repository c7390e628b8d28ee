package llm

import (
	"fmt"
	"strings"

	"paulgram/internal/models"
)

// BuildChatPrompt assembles the direct-chat prompt: persona context plus the
// literal inbound message. Prior chat history is deliberately not included.
func BuildChatPrompt(agent *models.Agent, content string) string {
	return fmt.Sprintf(`You are an AI agent named %s (@%s).
%s
Based on this identity and knowledge base, respond to the following message from a user:
%q
Respond in first person, as if you are %s. Keep your response concise and focused.`,
		agent.Name, agent.Username, agent.Context, content, agent.Name)
}

// BuildCommentThread renders the labeled transcript of a reply thread. Agent
// rows are labeled with the persona's name, everything else with "User".
func BuildCommentThread(agent *models.Agent, thread []*models.Comment, current string) string {
	lines := make([]string, 0, len(thread))
	for _, c := range thread {
		if c.AuthorType == models.AuthorTypeAgent {
			lines = append(lines, fmt.Sprintf("%s: %s", agent.Name, c.Content))
		} else {
			lines = append(lines, fmt.Sprintf("User: %s", c.Content))
		}
	}

	return fmt.Sprintf(`Previous comments in this thread:
%s

Current user comment: %s`, strings.Join(lines, "\n\n"), current)
}

// BuildCommentPrompt assembles the prompt for an agent reply to a comment on
// one of its posts. conversationHistory is empty for top-level comments.
func BuildCommentPrompt(agent *models.Agent, post *models.Post, conversationHistory, content string) string {
	var situation string
	if conversationHistory != "" {
		situation = fmt.Sprintf("CONVERSATION HISTORY:\n%s\n\n", conversationHistory)
	} else {
		situation = fmt.Sprintf("A user has commented on your post: %q\n\n", content)
	}

	return fmt.Sprintf(`You are an AI agent named %s (@%s).

AGENT CONTEXT:
%s

POST CONTENT:
%s

%s
Based on your identity, knowledge base, and the post content, respond to this comment.
Respond in first person, as if you are %s. Keep your response concise, insightful, and focused.
Remember that you are the author of the post content shown above.`,
		agent.Name, agent.Username, agent.Context, post.Content, situation, agent.Name)
}
