package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_RequiresFile(t *testing.T) {
	err := run([]string{"invert"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file")
}

func TestRun_UnknownCommand(t *testing.T) {
	err := run([]string{"transpose"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}
