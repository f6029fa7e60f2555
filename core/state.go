package core

// State is the shared conversation state threaded through one graph run.
// It holds an append-only message log plus the routing hint side channel.
//
// Contract:
//   - One State instance per run; never shared across concurrent runs
//   - Messages are appended exclusively by the execution engine; the
//     Sequence of each committed message is previous max + 1
//   - Messages / Last return copies so callers cannot alias internal state
//
// State requires no locking: the engine executes exactly one node at a time
// and distinct runs never share an instance.
type State struct {
	messages []Message
	nextSeq  int
	nextHint NodeID
}

// NewState creates a fresh State seeded with the given messages in order.
// Sequence indexes are assigned starting at zero; author tags and content
// of the input are preserved.
func NewState(initial []Message) *State {
	s := &State{}
	for _, m := range initial {
		s.Append(m)
	}
	return s
}

// Append commits a message to the log, assigning the next sequence index.
// The committed copy is returned.
func (s *State) Append(m Message) Message {
	m.Sequence = s.nextSeq
	s.nextSeq++
	s.messages = append(s.messages, m)
	return m
}

// Messages returns a copy of the full message log in append order.
func (s *State) Messages() []Message {
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Len returns the number of committed messages.
func (s *State) Len() int { return len(s.messages) }

// Last returns the most recently appended message, if any.
func (s *State) Last() (Message, bool) {
	if len(s.messages) == 0 {
		return Message{}, false
	}
	return s.messages[len(s.messages)-1], true
}

// NextHint returns the current routing hint ("" when unset).
func (s *State) NextHint() NodeID { return s.nextHint }

// SetNextHint overwrites the routing hint.
func (s *State) SetNextHint(id NodeID) { s.nextHint = id }

// Result is the partial outcome returned by a node executor. Messages are
// unsequenced; the engine appends them in order and then overwrites the
// state's routing hint if NextHint is set.
type Result struct {
	Messages []Message
	NextHint NodeID
}
