package csvloader

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriterWrite(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		rows        Grid
		alwaysQuote bool
		want        string
	}{
		{
			name: "mixedKinds",
			rows: Grid{{IntValue(1), FloatValue(2.5), NullValue(), StringValue(""), StringValue("hello")}},
			want: "1,2.5,,\"\",hello\n",
		},
		{
			name: "wholeFloatKeepsPoint",
			rows: Grid{{FloatValue(3), FloatValue(-0.0001), FloatValue(1e21)}},
			want: "3.0,-0.0001,1000000000000000000000.0\n",
		},
		{
			name: "quotesSpecialStrings",
			rows: Grid{{StringValue("a,b"), StringValue("say \"hi\""), StringValue("x\ny")}},
			want: "\"a,b\",\"say \"\"hi\"\"\",\"x\ny\"\n",
		},
		{
			name: "quotesNumericLookingStrings",
			rows: Grid{{StringValue("42"), StringValue("-1.5"), StringValue("-"), StringValue("1e5")}},
			want: "\"42\",\"-1.5\",-,1e5\n",
		},
		{
			name:        "alwaysQuote",
			rows:        Grid{{StringValue("a"), IntValue(7), NullValue()}},
			alwaysQuote: true,
			want:        "\"a\",7,\n",
		},
		{
			name: "emptyRow",
			rows: Grid{{}, {NullValue()}},
			want: "\n\n",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			w := NewWriter(&buf)
			w.AlwaysQuote = tc.alwaysQuote

			require.NoError(t, w.WriteAll(tc.rows))
			require.NoError(t, w.Flush())
			require.Equal(t, tc.want, buf.String())
		})
	}
}

func TestDumpsRoundTrip(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"1,2.5,,\"\",hello\n",
		"\"he said \"\"hi\"\"\"\n",
		"-5,-5.5\n",
		"\"007\",007,\"a\nb\"\n",
		"",
		"9223372036854775808,.5,1.\n",
		"x\r\ny\n",
	}

	for _, input := range inputs {
		want, err := LoadsString(input)
		require.NoError(t, err)

		text, err := Dumps(want)
		require.NoError(t, err)

		got, err := Loads(text)
		require.NoError(t, err)
		require.True(t, want.Equal(got), "input %q dumped as %q loaded as %v, want %v", input, text, got, want)
	}
}

func TestWriterNonFiniteFloat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	w := NewWriter(&buf)

	err := w.Write(Row{FloatValue(math.NaN())})
	require.ErrorIs(t, err, ErrNonFiniteFloat)
	require.ErrorIs(t, w.Error(), ErrNonFiniteFloat)
	require.ErrorIs(t, w.Write(Row{IntValue(1)}), ErrNonFiniteFloat)

	_, err = Dumps(Grid{{FloatValue(math.Inf(-1))}})
	require.ErrorIs(t, err, ErrNonFiniteFloat)
}

func TestWriterReset(t *testing.T) {
	t.Parallel()

	var first, second bytes.Buffer
	w := NewWriter(&first)
	w.AlwaysQuote = true

	require.NoError(t, w.Write(Row{StringValue("a")}))
	require.NoError(t, w.Flush())

	w.Reset(&second)
	require.NoError(t, w.Write(Row{StringValue("b")}))
	require.NoError(t, w.Flush())

	require.Equal(t, "\"a\"\n", first.String())
	require.Equal(t, "\"b\"\n", second.String())
}

func TestWriterPropagatesErrors(t *testing.T) {
	t.Parallel()

	errFail := errors.New("fail")
	w := NewWriter(failingWriter{err: errFail})

	row := Row{StringValue(strings.Repeat("x", defaultBufferSize*2))}
	err := w.Write(row)
	require.ErrorIs(t, err, errFail)
	require.ErrorIs(t, w.Error(), errFail)
	require.ErrorIs(t, w.Flush(), errFail)
}

func TestWriterNilCases(t *testing.T) {
	t.Parallel()

	var w *Writer
	require.ErrorIs(t, w.Write(Row{NullValue()}), errNilWriter)
	require.ErrorIs(t, w.WriteAll(Grid{{NullValue()}}), errNilWriter)
	require.ErrorIs(t, w.Flush(), errNilWriter)
	require.ErrorIs(t, w.Error(), errNilWriter)

	var zero Writer
	require.ErrorIs(t, zero.Write(Row{NullValue()}), errWriterNoTarget)
	require.ErrorIs(t, zero.Flush(), errWriterNoTarget)

	require.Panics(t, func() { NewWriter(nil) })
	require.Panics(t, func() { w.Reset(&bytes.Buffer{}) })
}

type failingWriter struct{ err error }

func (w failingWriter) Write([]byte) (int, error) { return 0, w.err }
