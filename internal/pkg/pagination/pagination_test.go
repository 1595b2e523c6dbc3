package pagination

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromRequestClampsValues(t *testing.T) {
	require.Equal(t, Request{Page: 1, Limit: DefaultLimit}, FromRequest("", ""))
	require.Equal(t, Request{Page: 1, Limit: DefaultLimit}, FromRequest("-3", "abc"))
	require.Equal(t, Request{Page: 4, Limit: MaxLimit}, FromRequest("4", "1000"))
	require.Equal(t, int64(30), FromRequest("4", "10").Skip())
}

func TestNew(t *testing.T) {
	p := New(2, 10, 25)
	require.Equal(t, 3, p.Pages)
	require.True(t, p.HasNext)
	require.True(t, p.HasPrev)
	require.Equal(t, 10, p.Offset)

	empty := New(1, 10, 0)
	require.Equal(t, 1, empty.Pages)
	require.False(t, empty.HasNext)
}
