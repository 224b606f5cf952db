package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestID_Deterministic(t *testing.T) {
	require.Equal(t, ID("temperature"), ID("temperature"))
	require.NotEqual(t, ID("temperature"), ID("humidity"))
}

func TestID_MatchesSum(t *testing.T) {
	require.Equal(t, ID("column"), Sum([]byte("column")))
}

func TestSum_Empty(t *testing.T) {
	require.Equal(t, Sum(nil), Sum([]byte{}))
}
