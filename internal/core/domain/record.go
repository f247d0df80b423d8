package domain

// Record is one logical build step recognized in the trace.
// It is a closed set: CompileRecord, SwiftBatchRecord, LinkRecord and
// SigningRecord. Unrecognized lines never become records, they pass through
// as comment entries on the graph.
type Record interface {
	isRecord()
}

// CompileRecord is a single-object compile step.
// All fields are already re-escaped for embedding in the rule file.
type CompileRecord struct {
	Object  string
	Source  string
	Prefix  string
	Command string
}

// SwiftPair is one (object, source) member of an aggregate invocation.
type SwiftPair struct {
	Object string
	Source string
}

// SwiftBatchRecord is an aggregate compiler invocation covering many outputs
// with one shared command.
type SwiftBatchRecord struct {
	Pairs   []SwiftPair
	Prefix  string
	Command string
}

// LinkRecord is a link step. Objects holds the ordered object paths read from
// the file-list artifact, before prerequisite filtering.
type LinkRecord struct {
	Executable string
	Objects    []string
	Prefix     string
	Command    string
}

// SigningRecord is a post-link codesign or touch command with no dependency
// information.
type SigningRecord struct {
	Command string
}

func (CompileRecord) isRecord()    {}
func (SwiftBatchRecord) isRecord() {}
func (LinkRecord) isRecord()       {}
func (SigningRecord) isRecord()    {}
