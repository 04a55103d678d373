package models

type (
	// Commit is a commit message split into its conventional parts.
	Commit struct {
		Raw        string
		Header     string
		Body       string
		Footer     string
		Emoji      string
		Type       string
		Scope      string
		Subject    string
		Breaking   bool
		Merge      bool
		Revert     bool
		Notes      []Note
		References []Reference
	}

	// Note is a footer note such as "BREAKING CHANGE: ...".
	Note struct {
		Title string
		Text  string
	}

	// Reference is an issue reference such as "fix #123".
	Reference struct {
		Action string
		Issue  string
		Raw    string
	}
)
