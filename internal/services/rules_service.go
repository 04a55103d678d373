package services

import (
	"context"
	"errors"
	"os"

	"github.com/Tomas-vilte/MateLint/internal/config"
	domainErrors "github.com/Tomas-vilte/MateLint/internal/errors"
	"github.com/Tomas-vilte/MateLint/internal/lint"
	"github.com/Tomas-vilte/MateLint/internal/logger"
	"github.com/Tomas-vilte/MateLint/internal/models"
	"github.com/Tomas-vilte/MateLint/internal/rules"
)

type RulesService struct {
	cfg *config.Config
}

func NewRulesService(cfg *config.Config) *RulesService {
	return &RulesService{cfg: cfg}
}

// Resolve picks the rule set in this order: explicit (a file, or a preset
// name when no such file exists), the user's rules_file, the first file found
// walking up from dir, and the gitmoji preset.
func (s *RulesService) Resolve(ctx context.Context, explicit, dir string) (*rules.RuleSet, models.RuleSource, error) {
	if explicit != "" {
		return s.resolveExplicit(ctx, explicit)
	}

	if s.cfg != nil && s.cfg.RulesFile != "" {
		logger.Debug(ctx, "loading rules from user config", "path", s.cfg.RulesFile)
		rs, err := rules.Load(s.cfg.RulesFile)
		if err != nil {
			return nil, models.RuleSource{}, err
		}
		return rs, models.RuleSource{Kind: models.SourceUserConfig, Location: s.cfg.RulesFile}, nil
	}

	path, err := rules.Discover(dir)
	switch {
	case err == nil:
		logger.Debug(ctx, "loading discovered rules", "path", path)
		rs, err := rules.Load(path)
		if err != nil {
			return nil, models.RuleSource{}, err
		}
		return rs, models.RuleSource{Kind: models.SourceDiscovered, Location: path}, nil
	case errors.Is(err, domainErrors.ErrRulesNotFound):
		logger.Info(ctx, "no lint configuration found, using preset", "preset", rules.PresetGitmoji)
		return rules.Gitmoji(), models.RuleSource{Kind: models.SourcePreset, Location: rules.PresetGitmoji}, nil
	default:
		return nil, models.RuleSource{}, err
	}
}

func (s *RulesService) resolveExplicit(ctx context.Context, explicit string) (*rules.RuleSet, models.RuleSource, error) {
	if info, err := os.Stat(explicit); err == nil && !info.IsDir() {
		logger.Debug(ctx, "loading rules from flag", "path", explicit)
		rs, err := rules.Load(explicit)
		if err != nil {
			return nil, models.RuleSource{}, err
		}
		return rs, models.RuleSource{Kind: models.SourceFlag, Location: explicit}, nil
	}

	if rs, ok := rules.Preset(explicit); ok {
		logger.Debug(ctx, "using preset from flag", "preset", explicit)
		return rs, models.RuleSource{Kind: models.SourcePreset, Location: rs.Name}, nil
	}

	return nil, models.RuleSource{}, domainErrors.ErrRulesNotFound.WithContext("path", explicit)
}

// Linter resolves the rules and compiles them into a ready linter.
func (s *RulesService) Linter(ctx context.Context, explicit, dir string) (*lint.Linter, models.RuleSource, error) {
	rs, source, err := s.Resolve(ctx, explicit, dir)
	if err != nil {
		return nil, models.RuleSource{}, err
	}
	compiled, err := rules.Compile(rs)
	if err != nil {
		return nil, models.RuleSource{}, err
	}
	return lint.NewLinter(compiled), source, nil
}
