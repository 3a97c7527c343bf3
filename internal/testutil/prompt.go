package testutil

import (
	"errors"

	"github.com/hbjs97/pushover-cli/internal/prompt"
)

// FakePrompter answers prompts from a queue instead of a terminal.
type FakePrompter struct {
	// Answers are returned in order, one per Input call.
	Answers []string

	// Err, if set, is returned by every Input call.
	Err error

	// Asked records the title of every prompt, in order.
	Asked []string
}

var _ prompt.Prompter = (*FakePrompter)(nil)

// Input pops the next answer from Answers.
func (p *FakePrompter) Input(title string, _ bool) (string, error) {
	p.Asked = append(p.Asked, title)
	if p.Err != nil {
		return "", p.Err
	}
	if len(p.Answers) == 0 {
		return "", errors.New("FakePrompter: no answer queued")
	}
	answer := p.Answers[0]
	p.Answers = p.Answers[1:]
	return answer, nil
}
