// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/formation/matrix"
)

// TestDefaultOptions_Documented verifies that no options means the documented defaults.
func TestDefaultOptions_Documented(t *testing.T) {
	o := matrix.GatherOptionsSnapshot_TestOnly()
	require.Equal(t, matrix.DefaultValidateNaNInf, o.ValidateNaNInf)
}

// TestGatherOptions_LastWriterWins ensures later options override earlier ones
// and nil options are skipped.
func TestGatherOptions_LastWriterWins(t *testing.T) {
	o := matrix.GatherOptionsSnapshot_TestOnly(matrix.WithValidateNaNInf(), matrix.WithNoValidateNaNInf())
	require.False(t, o.ValidateNaNInf)

	o = matrix.GatherOptionsSnapshot_TestOnly(matrix.WithNoValidateNaNInf(), nil, matrix.WithValidateNaNInf())
	require.True(t, o.ValidateNaNInf)
}

// TestOptions_PolicyIsPerMatrix checks that the policy is captured at construction
// and carried by Clone and Transpose.
func TestOptions_PolicyIsPerMatrix(t *testing.T) {
	strict, err := matrix.NewDense(1, 2)
	require.NoError(t, err)
	loose, err := matrix.NewDense(1, 2, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)

	require.True(t, matrix.ValidatesNaNInf_TestOnly(strict))
	require.False(t, matrix.ValidatesNaNInf_TestOnly(loose))

	require.ErrorIs(t, strict.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)
	require.NoError(t, loose.Set(0, 0, math.Inf(-1)))

	clone, ok := loose.Clone().(*matrix.Dense)
	require.True(t, ok)
	require.False(t, matrix.ValidatesNaNInf_TestOnly(clone))
	require.False(t, matrix.ValidatesNaNInf_TestOnly(loose.Transpose()))
}
