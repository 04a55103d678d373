package regex

import "regexp"

var (
	// Message structure
	Scissors       = regexp.MustCompile(`^# -+ >8 -+$`)
	BreakingChange = regexp.MustCompile(`^(BREAKING[ -]CHANGE):\s*(.*)`)
	MergeHeader    = regexp.MustCompile(`^Merge `)
	RevertHeader   = regexp.MustCompile(`^[Rr]evert "?`)
	Shortcode      = regexp.MustCompile(`^:[\w-]+:$`)

	// Issue references, e.g. "fix #123", "re #456" or a bare "#7"
	IssueReference = regexp.MustCompile(`(?i)(?:\b(close[sd]?|fix(?:e[sd])?|resolve[sd]?|re|refs?)\s+)?#(\d+)`)
	ActionLine     = regexp.MustCompile(`(?i)^(close[sd]?|fix(?:e[sd])?|resolve[sd]?|re|refs?)\s+#\d+`)

	// Case checks ignore quoted text and split scopes on these delimiters
	Quoted      = regexp.MustCompile("`.*?`|\".*?\"|'.*?'")
	ScopeDelims = regexp.MustCompile(`/|\\|, ?`)
)

// DefaultIgnores match automated commits that should never be linted.
var DefaultIgnores = []*regexp.Regexp{
	regexp.MustCompile(`(?m)^((Merge pull request)|(Merge (.*?) into (.*?)|(Merge branch (.*?)))(?:\r?\n)*$)`),
	regexp.MustCompile(`(?m)^(Merge tag (.*?))(?:\r?\n)*$`),
	regexp.MustCompile(`^(R|r)evert (.*)`),
	regexp.MustCompile(`^(amend|fixup|squash)!`),
	regexp.MustCompile(`^(Merged (.*?)(in|into) (.*)|Merged PR (.*): (.*))`),
	regexp.MustCompile(`^Merge remote-tracking branch(\s*)(.*)`),
	regexp.MustCompile(`^Automatic merge(.*)`),
	regexp.MustCompile(`^Auto-merged (.*?) into (.*)`),
}
