package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCommand(t *testing.T) {
	root := NewRootCommand()

	for _, args := range [][]string{
		{"report", "generate"},
		{"fixtures", "generate"},
		{"serve"},
	} {
		c, _, err := root.Find(args)
		require.NoError(t, err)
		assert.Equal(t, args[len(args)-1], c.Name())
	}

	serve, _, err := root.Find([]string{"serve"})
	require.NoError(t, err)
	assert.Equal(t, ":8080", serve.Flags().Lookup("addr").DefValue)
}
