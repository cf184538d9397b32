package testutil

import (
	"context"
	"fmt"

	"github.com/smartcontractkit/scaffold/internal/params"
)

// ScriptedPrompter answers prompts from queues and records every message it was asked.
// An empty text or number answer falls back to the request default.
type ScriptedPrompter struct {
	Texts        []string
	Numbers      []string
	Confirms     []bool
	Selects      []int
	MultiSelects [][]int

	// Err, when set, is returned by every prompt.
	Err error

	Asked []string
}

var _ params.Prompter = (*ScriptedPrompter)(nil)

func (p *ScriptedPrompter) Text(_ context.Context, req params.TextRequest) (string, error) {
	p.Asked = append(p.Asked, req.Message)
	if p.Err != nil {
		return "", p.Err
	}
	if len(p.Texts) == 0 {
		return "", fmt.Errorf("unexpected text prompt: %s", req.Message)
	}
	answer := p.Texts[0]
	p.Texts = p.Texts[1:]
	if answer == "" {
		answer = req.Default
	}
	if req.Validate != nil {
		if err := req.Validate(answer); err != nil {
			return "", err
		}
	}
	return answer, nil
}

func (p *ScriptedPrompter) Number(_ context.Context, req params.NumberRequest) (string, error) {
	p.Asked = append(p.Asked, req.Message)
	if p.Err != nil {
		return "", p.Err
	}
	if len(p.Numbers) == 0 {
		return "", fmt.Errorf("unexpected number prompt: %s", req.Message)
	}
	answer := p.Numbers[0]
	p.Numbers = p.Numbers[1:]
	if answer == "" {
		answer = req.Default
	}
	return answer, nil
}

func (p *ScriptedPrompter) Confirm(_ context.Context, req params.ConfirmRequest) (bool, error) {
	p.Asked = append(p.Asked, req.Message)
	if p.Err != nil {
		return false, p.Err
	}
	if len(p.Confirms) == 0 {
		return false, fmt.Errorf("unexpected confirm prompt: %s", req.Message)
	}
	answer := p.Confirms[0]
	p.Confirms = p.Confirms[1:]
	return answer, nil
}

func (p *ScriptedPrompter) Select(_ context.Context, req params.SelectRequest) (int, error) {
	p.Asked = append(p.Asked, req.Message)
	if p.Err != nil {
		return 0, p.Err
	}
	if len(p.Selects) == 0 {
		return 0, fmt.Errorf("unexpected select prompt: %s", req.Message)
	}
	answer := p.Selects[0]
	p.Selects = p.Selects[1:]
	return answer, nil
}

func (p *ScriptedPrompter) MultiSelect(_ context.Context, req params.SelectRequest) ([]int, error) {
	p.Asked = append(p.Asked, req.Message)
	if p.Err != nil {
		return nil, p.Err
	}
	if len(p.MultiSelects) == 0 {
		return nil, fmt.Errorf("unexpected multiselect prompt: %s", req.Message)
	}
	answer := p.MultiSelects[0]
	p.MultiSelects = p.MultiSelects[1:]
	return answer, nil
}
