package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPromptGrid verifies that the prompt repeats until a positive integer
// is entered and fails cleanly when input runs out.
func TestPromptGrid(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		want        int
		wantInvalid int
		wantErr     bool
	}{
		{name: "valid first try", input: "4\n", want: 4},
		{name: "surrounding spaces", input: "  7 \n", want: 7},
		{name: "no trailing newline", input: "2", want: 2},
		{name: "retries until valid", input: "abc\n0\n-2\n\n3\n", want: 3, wantInvalid: 4},
		{name: "empty input", input: "", wantErr: true},
		{name: "invalid then eof", input: "x\n", wantInvalid: 1, wantErr: true},
		{name: "invalid without newline", input: "1.5", wantInvalid: 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := promptGrid(bufio.NewReader(strings.NewReader(tt.input)), &out)

			assert.Equal(t, tt.wantInvalid, strings.Count(out.String(), "Invalid input"))
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, ExitInvalidParameter, AsExitError(err).Code)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantInvalid+1, strings.Count(out.String(), gridPrompt))
		})
	}
}
