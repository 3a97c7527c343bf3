// Package prompt reads interactive input for commands that fall back to the
// terminal when a value was not given on the command line.
package prompt

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
)

// Prompter는 대화형 입력을 추상화하는 interface다.
// 프로덕션에서는 huh 기반 구현, 테스트에서는 mock을 사용한다.
type Prompter interface {
	// Input은 title을 표시하고 한 줄을 입력받는다. secret이면 입력을 가린다.
	// 반환값은 앞뒤 공백이 제거된 문자열이다.
	Input(title string, secret bool) (string, error)
}

// HuhPrompter는 charmbracelet/huh 기반의 Prompter 구현이다.
type HuhPrompter struct {
	// Accessible이 true면 TUI 대신 일반 텍스트 프롬프트를 사용한다.
	Accessible bool

	// runForm은 폼을 실행하고 입력값을 value에 채운다. nil이면 (*huh.Form).Run.
	runForm func(form *huh.Form, value *string) error
}

func runHuhForm(form *huh.Form, _ *string) error {
	return form.Run()
}

var _ Prompter = (*HuhPrompter)(nil)

// Input은 huh 입력 폼을 실행한다.
func (h *HuhPrompter) Input(title string, secret bool) (string, error) {
	var value string
	input := huh.NewInput().Title(title).Value(&value)
	if secret {
		input = input.EchoMode(huh.EchoModePassword)
	}

	run := h.runForm
	if run == nil {
		run = runHuhForm
	}
	form := huh.NewForm(huh.NewGroup(input)).WithAccessible(h.Accessible)
	if err := run(form, &value); err != nil {
		return "", fmt.Errorf("prompt.Input: %w", err)
	}
	return strings.TrimSpace(value), nil
}
