package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPointerHelpers(t *testing.T) {
	i := I64Ptr(7)
	require.NotNil(t, i)
	require.EqualValues(t, 7, *i)

	j := I64Ptr(7)
	require.NotSame(t, i, j)
}
