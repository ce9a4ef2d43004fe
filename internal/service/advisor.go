package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"solarquote/internal/advisor"
	"solarquote/internal/models"
	"solarquote/internal/repository"
)

// AdvisorService builds prompts from the user's appliance list and shapes
// the generative responses for the UI.
type AdvisorService struct {
	appliances repository.ApplianceRepo
	gen        Generator
}

func NewAdvisorService(appliances repository.ApplianceRepo, gen Generator) *AdvisorService {
	return &AdvisorService{appliances: appliances, gen: gen}
}

var _ Advisor = (*AdvisorService)(nil)

const suggestionsPromptFmt = `The user tracks these household appliances: %s.
Suggest up to 5 other common household appliances they likely own but have not listed.
Respond with a JSON array only, each element {"name": string, "wattage": number, "hours_per_day": number}.`

const tipsPromptFmt = `Given this household's daily appliance usage:
%s
Give 5 short practical energy-saving tips, one per line, plain text, no numbering.`

// Suggestions asks for likely missing appliances and filters out names the
// user already has (case-insensitive).
func (s *AdvisorService) Suggestions(ctx context.Context, userID int) ([]models.Suggestion, error) {
	rows, err := s.appliances.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(rows))
	existing := make(map[string]struct{}, len(rows))
	for _, a := range rows {
		names = append(names, a.Name)
		existing[strings.ToLower(strings.TrimSpace(a.Name))] = struct{}{}
	}

	prompt := fmt.Sprintf(suggestionsPromptFmt, strings.Join(names, ", "))
	text, err := s.gen.Generate(ctx, prompt, true)
	if err != nil {
		return nil, err
	}

	var suggested []models.Suggestion
	if err := json.Unmarshal([]byte(text), &suggested); err != nil {
		return nil, fmt.Errorf("%w: unexpected suggestion payload", advisor.ErrRemoteService)
	}

	out := make([]models.Suggestion, 0, len(suggested))
	for _, sg := range suggested {
		name := strings.TrimSpace(sg.Name)
		if name == "" || sg.Wattage <= 0 {
			continue
		}
		if _, dup := existing[strings.ToLower(name)]; dup {
			continue
		}
		sg.Name = name
		out = append(out, sg)
	}
	return out, nil
}

// Tips returns free-form advice lines. The only shaping is a split on line
// breaks with blanks dropped.
func (s *AdvisorService) Tips(ctx context.Context, userID int) ([]string, error) {
	rows, err := s.appliances.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var usage strings.Builder
	for _, a := range rows {
		fmt.Fprintf(&usage, "- %s: %.0fW x %.1fh/day x %d\n", a.Name, a.Wattage, a.HoursPerDay, a.Quantity)
	}

	text, err := s.gen.Generate(ctx, fmt.Sprintf(tipsPromptFmt, usage.String()), false)
	if err != nil {
		return nil, err
	}

	var tips []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			tips = append(tips, line)
		}
	}
	if len(tips) == 0 {
		return nil, fmt.Errorf("%w: empty tips response", advisor.ErrRemoteService)
	}
	return tips, nil
}
