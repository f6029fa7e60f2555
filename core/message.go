package core

// NodeID identifies a node within a single graph. IDs are unique per graph
// and double as routing targets for decision capabilities.
type NodeID string

// End is the distinguished terminal routing target. Routing to End finishes
// the run; End is never registered as a node.
const End NodeID = "__end__"

// Role distinguishes the two kinds of message author.
type Role int

const (
	// RoleUser marks a message supplied by the caller.
	RoleUser Role = iota
	// RoleAgent marks a message produced by a graph node.
	RoleAgent
)

// String returns the string representation of the role.
func (r Role) String() string {
	switch r {
	case RoleUser:
		return "user"
	case RoleAgent:
		return "agent"
	default:
		return "unknown"
	}
}

// Author is the explicit identity tag carried by every message. It is a
// closed union: either the user, or a named agent node. The tag is resolved
// once when the message is created and never inferred afterwards.
type Author struct {
	Role  Role
	Agent NodeID // set only when Role == RoleAgent
}

// UserAuthor returns the author tag for caller-supplied messages.
func UserAuthor() Author { return Author{Role: RoleUser} }

// AgentAuthor returns the author tag for messages produced by node id.
func AgentAuthor(id NodeID) Author { return Author{Role: RoleAgent, Agent: id} }

// IsUser reports whether the message came from the caller.
func (a Author) IsUser() bool { return a.Role == RoleUser }

// IsAgent reports whether the message came from the named node.
func (a Author) IsAgent(id NodeID) bool { return a.Role == RoleAgent && a.Agent == id }

// String renders the author for logs and transcripts.
func (a Author) String() string {
	if a.Role == RoleAgent {
		return string(a.Agent)
	}
	return "user"
}

// Message is one immutable conversation turn. Sequence is assigned by the
// owning State when the message is appended and is strictly increasing
// within a run. Messages are owned by exactly one State; Result carries
// unsequenced messages until the engine commits them.
type Message struct {
	Author   Author `json:"author"`
	Content  string `json:"content"`
	Sequence int    `json:"sequence"`
}

// NewUserMessage builds an unsequenced user message.
func NewUserMessage(content string) Message {
	return Message{Author: UserAuthor(), Content: content}
}

// NewAgentMessage builds an unsequenced message authored by node id.
func NewAgentMessage(id NodeID, content string) Message {
	return Message{Author: AgentAuthor(id), Content: content}
}
