package model

import "fmt"

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// PoemStyles lists the styles offered by the poetry UI, in display order.
var PoemStyles = []string{"Haiku", "Free Verse", "Sonnet", "Limerick"}

const (
	MinPoemLength = 1
	MaxPoemLength = 100
)

// Turn is a single message in a chat conversation.
type Turn struct {
	Role    string `json:"role" validate:"required,oneof=user assistant"`
	Content string `json:"content"`
}

// PoemRequest holds everything the poetry UI collects for one generation.
type PoemRequest struct {
	Prompt string `json:"prompt"`
	Style  string `json:"style" validate:"required,poemstyle"`
	Theme  string `json:"theme"`
	Length int    `json:"length" validate:"min=1,max=100"`
	Model  string `json:"model"`
}

// Instruction renders the request as the single prompt sent to the model.
func (p PoemRequest) Instruction() string {
	return fmt.Sprintf("%s in the style of a %s, with a theme of %s, and a length of %d lines.",
		p.Prompt, p.Style, p.Theme, p.Length)
}

// Reply is the text shown to the user for one interaction. Failures are
// reported through Text as a fixed message, never as an error.
type Reply struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}
