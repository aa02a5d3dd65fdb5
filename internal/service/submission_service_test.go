package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseActivityID(t *testing.T) {
	require.Nil(t, ParseActivityID(""))
	require.Nil(t, ParseActivityID("abc"))

	id := ParseActivityID("42")
	require.NotNil(t, id)
	require.Equal(t, uint(42), *id)
}
