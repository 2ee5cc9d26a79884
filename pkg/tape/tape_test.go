package tape

import (
	"errors"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamaar/gocalc/pkg/calculator"
	"github.com/mamaar/gocalc/pkg/types"
)

func TestParse(t *testing.T) {
	src := "# add two numbers\n6 + 3 Enter\n\n  sqrt # root of nine\n"
	tp, err := Parse("add.tape", strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, []string{"6", "+", "3", "Enter", "sqrt"}, tp.Keys())
	assert.Equal(t, Event{Key: "Enter", Line: 2, Column: 7}, tp.Events[3])
	assert.Equal(t, Event{Key: "sqrt", Line: 4, Column: 3}, tp.Events[4])
}

func TestParse_UnknownKey(t *testing.T) {
	_, err := Parse("bad.tape", strings.NewReader("1 +\n2  F1 Enter\n"))
	require.Error(t, err)

	var calcErr *types.CalcError
	require.True(t, errors.As(err, &calcErr))
	assert.Equal(t, types.ParseError, calcErr.Type)
	assert.Equal(t, 2, calcErr.Line)
	assert.Equal(t, 4, calcErr.Column)
	assert.True(t, errors.Is(err, types.ErrUnmappedKey))
	assert.Equal(t, `bad.tape:2:4: unknown key "F1"`, err.Error())
}

func TestLoad_AndReplay(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/tapes/chain.tape", []byte("6 + 3 * 2 Enter\n"), 0644))

	tp, err := Load(fs, "/tapes/chain.tape")
	require.NoError(t, err)

	c := calculator.New()
	require.NoError(t, tp.Replay(c))

	st := c.Snapshot()
	assert.Equal(t, "18", st.Current)
	assert.Equal(t, []string{"9 * 2 = 18", "6 + 3 = 9"}, st.History)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(afero.NewMemMapFs(), "/nope.tape")
	require.Error(t, err)

	var calcErr *types.CalcError
	require.True(t, errors.As(err, &calcErr))
	assert.Equal(t, types.FileSystemError, calcErr.Type)
}

func TestSum(t *testing.T) {
	a, err := Parse("a", strings.NewReader("1 + 2 Enter"))
	require.NoError(t, err)
	b, err := Parse("b", strings.NewReader("1 + 2 Enter"))
	require.NoError(t, err)
	c, err := Parse("c", strings.NewReader("1 + 3 Enter"))
	require.NoError(t, err)

	assert.Equal(t, a.Sum(), b.Sum())
	assert.NotEqual(t, a.Sum(), c.Sum())
}

func TestTokens(t *testing.T) {
	toks := tokens("\t1  +\t2")
	require.Len(t, toks, 3)
	assert.Equal(t, token{text: "1", col: 2}, toks[0])
	assert.Equal(t, token{text: "+", col: 5}, toks[1])
	assert.Equal(t, token{text: "2", col: 7}, toks[2])
}
