package main

import (
	"bytes"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gbfwtest/gpiocert/internal/scenario"
)

func TestListCommandPrintsEveryCase(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := newRootCmd()
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"list"})

	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "Case")
	assert.Contains(t, out, "Modes")
	for _, id := range scenario.Cases() {
		assert.Contains(t, out, strconv.Itoa(id))
	}
}
