// File: vector/stream_test.go
// Author: momentics <momentics@gmail.com>

package vector_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/momentics/nexvec/vector"
)

func TestFprintFormat(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, vector.Of(10, 20, 30).Fprint(&sb))
	require.Equal(t, "10 20 30\n", sb.String())

	sb.Reset()
	require.NoError(t, vector.New[int]().Fprint(&sb))
	require.Equal(t, "\n", sb.String())

	sb.Reset()
	require.NoError(t, vector.Of(7).Fprint(&sb))
	require.Equal(t, "7\n", sb.String())
}

func TestFscanReadsExactlyLenTokens(t *testing.T) {
	v := vector.NewFilled(3, 0)
	require.NoError(t, v.Fscan(strings.NewReader("10 20 30\n")))
	require.Equal(t, []int{10, 20, 30}, v.Slice())
	require.Equal(t, 3, v.Len(), "scan must not resize")

	// Extra tokens in the stream are left unconsumed.
	w := vector.NewFilled(2, 0)
	r := strings.NewReader("1 2 3")
	require.NoError(t, w.Fscan(r))
	require.Equal(t, []int{1, 2}, w.Slice())
}

func TestFscanErrors(t *testing.T) {
	v := vector.NewFilled(3, 0)
	err := v.Fscan(strings.NewReader("1 2"))
	require.Error(t, err, "short input")

	w := vector.NewFilled(2, 0)
	err = w.Fscan(strings.NewReader("1 oops"))
	require.Error(t, err, "malformed token")
	require.Equal(t, 1, w.Get(0), "elements scanned before the failure are kept")
}

func TestRoundTrip(t *testing.T) {
	orig := vector.Of(10, 20, 30)
	var sb strings.Builder
	require.NoError(t, orig.Fprint(&sb))

	read := vector.NewFilled(orig.Len(), 0)
	require.NoError(t, read.Fscan(strings.NewReader(sb.String())))
	require.True(t, vector.Equal(orig, read))
}

func TestString(t *testing.T) {
	require.Equal(t, "1 2 3", vector.Of(1, 2, 3).String())
	require.Equal(t, "", vector.New[int]().String())
	require.Equal(t, "a b", vector.Of("a", "b").String())
}
