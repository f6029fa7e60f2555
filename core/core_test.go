package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorTags(t *testing.T) {
	user := UserAuthor()
	assert.True(t, user.IsUser())
	assert.False(t, user.IsAgent("coder"))
	assert.Equal(t, "user", user.String())

	coder := AgentAuthor("coder")
	assert.False(t, coder.IsUser())
	assert.True(t, coder.IsAgent("coder"))
	assert.False(t, coder.IsAgent("searcher"))
	assert.Equal(t, "coder", coder.String())
}

func TestRoleString(t *testing.T) {
	assert.Equal(t, "user", RoleUser.String())
	assert.Equal(t, "agent", RoleAgent.String())
	assert.Equal(t, "unknown", Role(42).String())
}

func TestNewStateAssignsSequences(t *testing.T) {
	st := NewState([]Message{
		NewUserMessage("hello"),
		NewAgentMessage("coder", "hi"),
	})

	msgs := st.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, 0, msgs[0].Sequence)
	assert.Equal(t, 1, msgs[1].Sequence)
	assert.True(t, msgs[0].Author.IsUser())
	assert.True(t, msgs[1].Author.IsAgent("coder"))
}

func TestStateAppendIsMonotonic(t *testing.T) {
	st := NewState(nil)
	for i := 0; i < 5; i++ {
		committed := st.Append(NewAgentMessage("worker", "step"))
		assert.Equal(t, i, committed.Sequence)
	}

	msgs := st.Messages()
	require.Len(t, msgs, 5)
	for i, m := range msgs {
		assert.Equal(t, i, m.Sequence)
	}
}

func TestStateMessagesReturnsCopy(t *testing.T) {
	st := NewState([]Message{NewUserMessage("original")})

	msgs := st.Messages()
	msgs[0].Content = "mutated"

	fresh := st.Messages()
	assert.Equal(t, "original", fresh[0].Content)
}

func TestStateLast(t *testing.T) {
	st := NewState(nil)
	_, ok := st.Last()
	assert.False(t, ok)

	st.Append(NewUserMessage("first"))
	st.Append(NewAgentMessage("coder", "second"))

	last, ok := st.Last()
	require.True(t, ok)
	assert.Equal(t, "second", last.Content)
	assert.True(t, last.Author.IsAgent("coder"))
}

func TestStateNextHint(t *testing.T) {
	st := NewState(nil)
	assert.Equal(t, NodeID(""), st.NextHint())

	st.SetNextHint("coder")
	assert.Equal(t, NodeID("coder"), st.NextHint())

	st.SetNextHint(End)
	assert.Equal(t, End, st.NextHint())
}

func TestNormalizeToken(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"coder", "coder"},
		{"  Coder  ", "coder"},
		{"\"searcher\"", "searcher"},
		{"'FINISH'", "finish"},
		{"coder.", "coder"},
		{"coder!", "coder"},
		{"结束。", "结束"},
		{"", ""},
		{"   ", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeToken(tc.raw), "raw=%q", tc.raw)
	}
}

func TestResolveTokenMatchesTargets(t *testing.T) {
	targets := []NodeID{"coder", "searcher", End}

	target, ok := ResolveToken("coder", targets)
	require.True(t, ok)
	assert.Equal(t, NodeID("coder"), target)

	target, ok = ResolveToken("  \"Searcher\".  ", targets)
	require.True(t, ok)
	assert.Equal(t, NodeID("searcher"), target)
}

func TestResolveTokenFinishAliases(t *testing.T) {
	targets := []NodeID{"coder", End}

	for _, raw := range []string{"FINISH", "finish", "End", "done", "__end__", "'Finish'."} {
		target, ok := ResolveToken(raw, targets)
		require.True(t, ok, "raw=%q", raw)
		assert.Equal(t, End, target, "raw=%q", raw)
	}
}

func TestResolveTokenFinishRequiresTerminalTarget(t *testing.T) {
	// End absent from the allowed set: aliases must not resolve.
	targets := []NodeID{"coder", "searcher"}

	_, ok := ResolveToken("FINISH", targets)
	assert.False(t, ok)

	_, ok = ResolveToken("__end__", targets)
	assert.False(t, ok)
}

func TestResolveTokenUnknown(t *testing.T) {
	targets := []NodeID{"coder", End}

	_, ok := ResolveToken("poet", targets)
	assert.False(t, ok)

	_, ok = ResolveToken("", targets)
	assert.False(t, ok)
}
