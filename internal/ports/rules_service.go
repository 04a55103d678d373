package ports

import (
	"context"

	"github.com/Tomas-vilte/MateLint/internal/lint"
	"github.com/Tomas-vilte/MateLint/internal/models"
	"github.com/Tomas-vilte/MateLint/internal/rules"
)

// RulesService finds the rule set that applies to a directory.
type RulesService interface {
	Resolve(ctx context.Context, explicit, dir string) (*rules.RuleSet, models.RuleSource, error)
	Linter(ctx context.Context, explicit, dir string) (*lint.Linter, models.RuleSource, error)
}

// MessageService reads the commit message to lint.
type MessageService interface {
	Read(ctx context.Context, req models.MessageRequest) (string, error)
}
