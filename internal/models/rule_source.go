package models

import "io"

// SourceKind says where a rule set came from.
type SourceKind string

const (
	SourceFlag       SourceKind = "flag"
	SourceUserConfig SourceKind = "user-config"
	SourceDiscovered SourceKind = "discovered"
	SourcePreset     SourceKind = "preset"
)

type RuleSource struct {
	Kind SourceKind `json:"kind"`
	// Location is a file path, or a preset name for SourcePreset.
	Location string `json:"location"`
}

func (s RuleSource) String() string {
	return string(s.Kind) + ": " + s.Location
}

// MessageRequest lists every place a commit message may come from. The
// first one set wins.
type MessageRequest struct {
	EditFile  string
	CommitMsg bool
	Args      []string
	Stdin     io.Reader
	// StdinIsTerminal skips stdin so an interactive shell does not block.
	StdinIsTerminal bool
}
