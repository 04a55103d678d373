package errors

import "fmt"

// ErrorType defines the category of the error
type ErrorType string

const (
	TypeConfiguration ErrorType = "CONFIGURATION"
	TypeLint          ErrorType = "LINT"
	TypeInput         ErrorType = "INPUT"
	TypePrompt        ErrorType = "PROMPT"
	TypeGit           ErrorType = "GIT"
	TypeInternal      ErrorType = "INTERNAL"
)

// AppError represents a domain-level error with a type and an underlying error
type AppError struct {
	Type       ErrorType
	Message    string
	Context    map[string]interface{}
	Err        error
	Suggestion string
}

func (e *AppError) Error() string {
	var msg string
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %s (%v)", e.Type, e.Message, e.Err)
	} else {
		msg = fmt.Sprintf("%s: %s", e.Type, e.Message)
	}

	if e.Context != nil {
		if stderr, ok := e.Context["stderr"].(string); ok && stderr != "" {
			msg += fmt.Sprintf(" - %s", stderr)
		}
		if path, ok := e.Context["path"].(string); ok && path != "" {
			msg += fmt.Sprintf(" [%s]", path)
		}
	}

	return msg
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is reports whether target is an AppError of the same type and message, so
// sentinels keep matching after WithError/WithContext copies.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type && e.Message == t.Message
}

// WithError creates a new AppError with an underlying error
func (e *AppError) WithError(err error) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    e.Context,
		Err:        err,
		Suggestion: e.Suggestion,
	}
}

// WithContext creates a new AppError with additional context
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	ctx := make(map[string]interface{})
	for k, v := range e.Context {
		ctx[k] = v
	}
	ctx[key] = value
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    ctx,
		Err:        e.Err,
		Suggestion: e.Suggestion,
	}
}

func (e *AppError) WithSuggestion(suggestion string) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    e.Context,
		Err:        e.Err,
		Suggestion: suggestion,
	}
}

// NewAppError creates a new AppError
func NewAppError(t ErrorType, msg string, err error) *AppError {
	return &AppError{
		Type:    t,
		Message: msg,
		Err:     err,
	}
}

// Configuration errors
var (
	ErrRulesNotFound = NewAppError(TypeConfiguration, "No lint configuration found", nil).
				WithSuggestion("Create one with: matelint config init")

	ErrReadRules = NewAppError(TypeConfiguration, "Failed to read lint configuration", nil).
			WithSuggestion("Check the file exists and is readable")

	ErrDecodeRules = NewAppError(TypeConfiguration, "Failed to decode lint configuration", nil).
			WithSuggestion("Check the file syntax matches its extension (.toml, .yaml, .yml, .json)")

	ErrUnsupportedFormat = NewAppError(TypeConfiguration, "Unsupported configuration format", nil).
				WithSuggestion("Use one of: toml, yaml, json")

	ErrInvalidRules = NewAppError(TypeConfiguration, "Lint configuration is invalid", nil).
			WithSuggestion("Print the built-in preset for reference: matelint rules --format toml")

	ErrUnknownPreset = NewAppError(TypeConfiguration, "Unknown preset", nil).
				WithSuggestion("Available presets: gitmoji, conventional")

	ErrRulesExist = NewAppError(TypeConfiguration, "Lint configuration already exists", nil).
			WithSuggestion("Use --force to overwrite it")

	ErrUnsupportedLanguage = NewAppError(TypeConfiguration, "Language not supported", nil).
				WithSuggestion("Supported languages: en, es")

	ErrLoadConfig = NewAppError(TypeConfiguration, "Failed to load user configuration", nil).
			WithSuggestion("Fix or delete ~/.matelint/config.json to restore the defaults")

	ErrSaveConfig = NewAppError(TypeConfiguration, "Failed to save user configuration", nil).
			WithSuggestion("Check you have write permissions on ~/.matelint")

	ErrWriteRules = NewAppError(TypeConfiguration, "Failed to write lint configuration", nil).
			WithSuggestion("Check you have write permissions on the current directory")
)

// Input errors
var (
	ErrEmptyMessage = NewAppError(TypeInput, "Commit message is empty", nil).
			WithSuggestion("Pass a message as argument, through stdin or with --edit <file>")

	ErrReadMessage = NewAppError(TypeInput, "Failed to read commit message", nil).
			WithSuggestion("Check the message file exists and is readable")

	ErrUnsupportedOutput = NewAppError(TypeInput, "Unsupported output format", nil).
				WithSuggestion("Use one of: text, json")
)

// Lint errors
var (
	ErrLintFailed = NewAppError(TypeLint, "Commit message does not follow the configured rules", nil)

	ErrUnknownCase = NewAppError(TypeLint, "Unknown letter case", nil).
			WithSuggestion("Supported cases: lower-case, upper-case, camel-case, kebab-case, pascal-case, sentence-case, snake-case, start-case")
)

// Prompt errors
var (
	ErrPromptAborted = NewAppError(TypePrompt, "Prompt aborted", nil)

	ErrPromptInvalid = NewAppError(TypePrompt, "Composed message does not follow the configured rules", nil).
				WithSuggestion("Run the prompt again and adjust the highlighted fields")

	ErrWriteMessage = NewAppError(TypePrompt, "Failed to write commit message", nil).
			WithSuggestion("Check you have write permissions on the output path")
)

// Git errors
var (
	ErrNotInGitRepo = NewAppError(TypeGit, "Not in a git repository", nil).
			WithSuggestion("Run the command inside a git repository or pass --edit <file>")

	ErrGetGitDir = NewAppError(TypeGit, "Failed to get git directory", nil)
)
