package chat

import (
	"fmt"
	"time"

	"leetcode-assistant/models"
)

// SystemInstructions is the fixed instruction block that seeds every
// exchange with the model capability.
const SystemInstructions = `You are LeetCodeBot, a specialized assistant for helping programmers solve LeetCode problems.
Follow these instructions carefully:

1. Focus on providing detailed algorithmic explanations
2. When sharing code solutions, use proper markdown code blocks with language specification
3. Always analyze the time and space complexity of your solutions
4. Provide multiple approaches when appropriate (brute force -> optimized)
5. Include comments in your code to explain key steps
6. Be concise yet comprehensive
7. If the user is struggling, offer hints before giving the full solution
8. When relevant, explain common patterns (two pointers, sliding window, etc.)`

// SystemAcknowledgement is the seeded assistant turn confirming the role.
const SystemAcknowledgement = "I understand my role as LeetCodeBot. I'll provide detailed algorithmic explanations, proper code solutions, complexity analysis, and follow all the guidelines you've outlined."

const problemPromptTemplate = `I'm working on this LeetCode problem: %s (%s).

My question is: %s

Please respond in the following format:
1. Provide a clear, detailed solution
2. Include well-commented code solutions
3. Explain the algorithm's time and space complexity
4. If relevant, offer multiple approaches (brute force, optimized, etc.)
5. Use markdown for formatting, especially code blocks with proper language syntax`

// ComposedPrompt is the output of prompt construction: the two fixed
// seed turns plus the final user-facing prompt text.
type ComposedPrompt struct {
	SeedTurns   []models.Turn
	FinalPrompt string
}

// Compose builds the outgoing prompt for one exchange. The seed turns
// are constants, independent of input, and are never persisted into the
// visible history. With no reference the final prompt is the user text
// unchanged; with a reference the question is wrapped in the problem
// context template. Pure string composition, no model call.
func Compose(userText string, ref *models.ProblemReference) ComposedPrompt {
	now := time.Now()
	seed := []models.Turn{
		{Speaker: models.SpeakerSystem, Text: SystemInstructions, CreatedAt: now},
		{Speaker: models.SpeakerAssistant, Text: SystemAcknowledgement, CreatedAt: now},
	}

	finalPrompt := userText
	if ref != nil {
		finalPrompt = fmt.Sprintf(problemPromptTemplate, ref.DisplayTitle, ref.SourceURL, userText)
	}

	return ComposedPrompt{
		SeedTurns:   seed,
		FinalPrompt: finalPrompt,
	}
}
