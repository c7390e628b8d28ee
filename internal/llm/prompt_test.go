package llm

import (
	"testing"

	"paulgram/internal/models"

	"github.com/stretchr/testify/assert"
)

var promptAgent = &models.Agent{
	ID:       7,
	Name:     "Paul Graham",
	Username: "paulgraham",
	Context:  "I'm an AI agent based on the essays and thoughts of Paul Graham.",
}

func TestBuildChatPrompt(t *testing.T) {
	t.Parallel()

	prompt := BuildChatPrompt(promptAgent, "should I raise money?")

	assert.Contains(t, prompt, "named Paul Graham (@paulgraham)")
	assert.Contains(t, prompt, promptAgent.Context)
	assert.Contains(t, prompt, `"should I raise money?"`)
	assert.Contains(t, prompt, "as if you are Paul Graham")
}

func TestBuildCommentThread_LabelsAuthors(t *testing.T) {
	t.Parallel()

	thread := []*models.Comment{
		{Content: "great essay", AuthorType: models.AuthorTypeUser},
		{Content: "thank you", AuthorType: models.AuthorTypeAgent},
		{Content: "one question though", AuthorType: models.AuthorTypeUser},
	}

	transcript := BuildCommentThread(promptAgent, thread, "one question though")

	assert.Contains(t, transcript, "Previous comments in this thread:")
	assert.Contains(t, transcript, "User: great essay")
	assert.Contains(t, transcript, "Paul Graham: thank you")
	assert.Contains(t, transcript, "Current user comment: one question though")
}

func TestBuildCommentPrompt(t *testing.T) {
	t.Parallel()

	post := &models.Post{Content: "Startups are counterintuitive."}

	t.Run("top-level comment", func(t *testing.T) {
		t.Parallel()
		prompt := BuildCommentPrompt(promptAgent, post, "", "why counterintuitive?")

		assert.Contains(t, prompt, "AGENT CONTEXT:")
		assert.Contains(t, prompt, "POST CONTENT:\nStartups are counterintuitive.")
		assert.Contains(t, prompt, `A user has commented on your post: "why counterintuitive?"`)
		assert.NotContains(t, prompt, "CONVERSATION HISTORY:")
	})

	t.Run("threaded reply", func(t *testing.T) {
		t.Parallel()
		history := "User: why?\n\nPaul Graham: because intuition fails."
		prompt := BuildCommentPrompt(promptAgent, post, history, "fails how?")

		assert.Contains(t, prompt, "CONVERSATION HISTORY:\n"+history)
		assert.NotContains(t, prompt, "A user has commented on your post")
	})
}
