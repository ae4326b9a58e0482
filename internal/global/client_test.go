package global

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunner returns canned output or a canned error and records the
// arguments it was called with.
type fakeRunner struct {
	out  string
	err  error
	name string
	args []string
}

func (f *fakeRunner) Run(_ context.Context, _ string, name string, args ...string) (string, error) {
	f.name = name
	f.args = args
	return f.out, f.err
}

func TestClient_Definitions(t *testing.T) {
	runner := &fakeRunner{out: "foo 42 src/bar.c    int foo(int x) {\n"}
	c := NewClient("", "/repo", runner)

	refs, err := c.Definitions(context.Background(), "foo")
	require.NoError(t, err)

	assert.Equal(t, "global", runner.name)
	assert.Equal(t, []string{"-x", "foo"}, runner.args)

	require.Len(t, refs, 1)
	assert.Equal(t, "foo", refs[0].Symbol)
	assert.Equal(t, 41, refs[0].Line, "xref line numbers are converted to zero-based")
	assert.Equal(t, "src/bar.c", refs[0].File)
	assert.Equal(t, "int foo(int x) {", refs[0].Code)
}

func TestClient_References(t *testing.T) {
	runner := &fakeRunner{out: "foo 7 main.c    foo();\n"}
	c := NewClient("/opt/global/bin/global", "/repo", runner)

	refs, err := c.References(context.Background(), "foo")
	require.NoError(t, err)

	assert.Equal(t, "/opt/global/bin/global", runner.name)
	assert.Equal(t, []string{"-rx", "foo"}, runner.args)
	require.Len(t, refs, 1)
	assert.Equal(t, 6, refs[0].Line)
}

func TestClient_RunFailurePropagates(t *testing.T) {
	runner := &fakeRunner{err: errors.New("exit status 3")}
	c := NewClient("", "/repo", runner)

	_, err := c.Definitions(context.Background(), "helper")
	assert.Error(t, err)
}

func TestClient_Available(t *testing.T) {
	c := NewClient("", "/repo", &fakeRunner{out: "global (GNU GLOBAL) 6.6.12\n"})
	assert.True(t, c.Available(context.Background()))

	c = NewClient("", "/repo", &fakeRunner{err: errors.New("executable file not found")})
	assert.False(t, c.Available(context.Background()))
}

func TestParseXRefs(t *testing.T) {
	tests := []struct {
		name string
		out  string
		want []XRef
	}{
		{
			name: "well formed rows",
			out: "foo 42 src/bar.c    int foo(int x) {\n" +
				"foo 80 src/baz.c    static void foo(void)\n",
			want: []XRef{
				{Symbol: "foo", Line: 41, File: "src/bar.c", Code: "int foo(int x) {"},
				{Symbol: "foo", Line: 79, File: "src/baz.c", Code: "static void foo(void)"},
			},
		},
		{
			name: "malformed rows are dropped",
			out: "not an xref row\n" +
				"foo notanumber src/bar.c    code\n" +
				"foo 12 src/ok.c    keep();\n" +
				"\n",
			want: []XRef{
				{Symbol: "foo", Line: 11, File: "src/ok.c", Code: "keep();"},
			},
		},
		{
			name: "numeric file field is a misaligned parse",
			out:  "foo 42 1234    code here\n",
			want: nil,
		},
		{
			name: "zero line number is invalid",
			out:  "foo 0 src/bar.c    code\n",
			want: nil,
		},
		{
			name: "empty output",
			out:  "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseXRefs(tt.out))
		})
	}
}
