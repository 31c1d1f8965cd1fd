package ui

import (
	"fmt"
	"io"
)

// Script is a Prompter that replays canned answers, for headless runs and
// tests. It records everything shown to the user, prompts included, in
// order.
type Script struct {
	Answers    []string
	Transcript []string

	next int
}

// Ask implements Prompter. Once the answers run out it returns io.EOF.
func (s *Script) Ask(prompt string) (string, error) {
	s.Transcript = append(s.Transcript, prompt)
	if s.next >= len(s.Answers) {
		return "", io.EOF
	}
	answer := s.Answers[s.next]
	s.next++
	return answer, nil
}

// Say implements Prompter.
func (s *Script) Say(format string, args ...any) {
	s.Transcript = append(s.Transcript, fmt.Sprintf(format, args...))
}
