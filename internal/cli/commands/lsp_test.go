package commands

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLSPCommandMetadata(t *testing.T) {
	cmd := NewLSPCommand()
	assert.Equal(t, "lsp", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotNil(t, cmd.Flags().Lookup("stdio"))
}

func TestLSPCommand_ServesStdio(t *testing.T) {
	var in bytes.Buffer
	for _, body := range []string{
		`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"processId":1}}`,
		`{"jsonrpc":"2.0","id":2,"method":"shutdown"}`,
		`{"jsonrpc":"2.0","method":"exit"}`,
	} {
		_, _ = fmt.Fprintf(&in, "Content-Length: %d\r\n\r\n%s", len(body), body)
	}

	cmd := NewLSPCommand()
	cmd.SetIn(&in)
	out, _, err := runCommand(t, cmd, "--stdio")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "Content-Length: "))
	assert.Contains(t, out, `"name":"leapstyle"`)
}
