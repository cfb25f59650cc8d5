package csvloader

import (
	"errors"
	"testing"
)

func FuzzLoadsRoundTrip(f *testing.F) {
	seeds := []string{
		"",
		"1,2.5,,\"\",hello\n",
		"\"he said \"\"hi\"\"\"\n",
		"a,\"b\nc\",d\n",
		"\"unterminated\n",
		"a\"b,c\n",
		"\"ab\"c\n",
		"-5,-5.5,-,.,1.2.3\n",
		"99999999999999999999,007\n",
		"trailing,newline\n",
		"no,newline",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		if len(input) > 1<<12 {
			t.Skip()
		}

		grid, err := LoadsString(input)
		if err != nil {
			if grid != nil {
				t.Fatalf("LoadsString() returned grid %v with error %v", grid, err)
			}
			var perr *ParseError
			if !errors.As(err, &perr) || !errors.Is(err, ErrMalformedQuoting) {
				t.Fatalf("LoadsString() error = %v, want *ParseError wrapping ErrMalformedQuoting", err)
			}
			if perr.Line < 1 || perr.Column < 1 {
				t.Fatalf("ParseError location line %d column %d out of range", perr.Line, perr.Column)
			}
			return
		}
		if len(grid) == 0 {
			t.Fatalf("LoadsString(%q) returned an empty grid", truncateForMessage(input))
		}

		text, err := Dumps(grid)
		if err != nil {
			t.Fatalf("Dumps() error = %v for grid %v", err, grid)
		}
		again, err := Loads(text)
		if err != nil {
			t.Fatalf("Loads(Dumps()) error = %v, text=%q", err, truncateForMessage(string(text)))
		}
		if !grid.Equal(again) {
			t.Fatalf("round trip mismatch:\ninput=%q\nfirst=%v\nagain=%v", truncateForMessage(input), grid, again)
		}
	})
}

func truncateForMessage(s string) string {
	const max = 256
	if len(s) <= max {
		return s
	}
	return s[:max] + "...(truncated)"
}
