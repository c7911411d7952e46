package internal

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestPrompter_ReadInt(t *testing.T) {

	tests := []struct {
		name    string
		input   string
		want    int
		wantOut string
		wantErr error
	}{
		{
			name:    "Read a number on the first try",
			input:   "7\n",
			want:    7,
			wantOut: "Seat: ",
		},
		{
			name:    "Read a number surrounded by blanks",
			input:   "  12 \r\n",
			want:    12,
			wantOut: "Seat: ",
		},
		{
			name:    "Retry until a number is given",
			input:   "abc\n\n3\n",
			want:    3,
			wantOut: "Seat: Invalid number. Try again.\nSeat: Invalid number. Try again.\nSeat: ",
		},
		{
			name:    "Read a negative number",
			input:   "-2\n",
			want:    -2,
			wantOut: "Seat: ",
		},
		{
			name:    "Read a number on the last line without a line break",
			input:   "5",
			want:    5,
			wantOut: "Seat: ",
		},
		{
			name:    "Stop when the input ends",
			input:   "x\n",
			wantOut: "Seat: Invalid number. Try again.\nSeat: ",
			wantErr: io.EOF,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			p := NewPrompter(strings.NewReader(tt.input), out)

			got, err := p.ReadInt("Seat: ")

			if tt.wantErr != nil {
				require.Equal(t, tt.wantErr, err)
			} else {
				require.NoError(t, err)
				require.Equal(t, tt.want, got)
			}
			if diff := cmp.Diff(tt.wantOut, out.String()); diff != "" {
				t.Errorf("Differences found: (-want,+got)\n%s", diff)
			}
		})
	}
}

func TestPrompter_ReadString(t *testing.T) {
	out := &bytes.Buffer{}
	p := NewPrompter(strings.NewReader("  Alice Smith \nBob\n"), out)

	first, err := p.ReadString("Name: ")
	require.NoError(t, err)
	second, err := p.ReadString("Name: ")
	require.NoError(t, err)
	_, err = p.ReadString("Name: ")

	require.Equal(t, "Alice Smith", first)
	require.Equal(t, "Bob", second)
	require.Equal(t, io.EOF, err)
	require.Equal(t, "Name: Name: Name: ", out.String())
}

func TestTrimLines(t *testing.T) {
	require.Equal(t, "Alice", TrimLines("\tAlice \r\n"))
	require.Equal(t, "", TrimLines(" \n"))
}
