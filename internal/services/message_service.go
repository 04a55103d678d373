package services

import (
	"context"
	"io"
	"os"
	"strings"

	domainErrors "github.com/Tomas-vilte/MateLint/internal/errors"
	"github.com/Tomas-vilte/MateLint/internal/logger"
	"github.com/Tomas-vilte/MateLint/internal/models"
	"github.com/Tomas-vilte/MateLint/internal/ports"
)

type MessageService struct {
	git ports.GitService
}

func NewMessageService(git ports.GitService) *MessageService {
	return &MessageService{git: git}
}

// Read returns the raw commit message, or ErrEmptyMessage when no source
// provided any text.
func (s *MessageService) Read(ctx context.Context, req models.MessageRequest) (string, error) {
	var (
		message string
		err     error
	)

	switch {
	case req.EditFile != "":
		message, err = readFile(req.EditFile)
	case req.CommitMsg:
		var path string
		path, err = s.git.CommitMsgPath(ctx)
		if err != nil {
			return "", err
		}
		message, err = readFile(path)
	case len(req.Args) > 0:
		message = strings.Join(req.Args, " ")
	case req.Stdin != nil && !req.StdinIsTerminal:
		var data []byte
		data, err = io.ReadAll(req.Stdin)
		if err != nil {
			err = domainErrors.ErrReadMessage.WithError(err).WithContext("path", "stdin")
		}
		message = string(data)
	}
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(message) == "" {
		return "", domainErrors.ErrEmptyMessage
	}
	logger.Debug(ctx, "commit message read", "bytes", len(message))
	return message, nil
}

func readFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", domainErrors.ErrReadMessage.WithError(err).WithContext("path", path)
	}
	return string(data), nil
}
