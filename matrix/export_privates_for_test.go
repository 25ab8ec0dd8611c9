// SPDX-License-Identifier: MIT

package matrix

// Test bridge for matrix_test: a read-only view of the resolved Options
// and of a Dense's numeric policy. Compiled only with the package tests.

// OptionsSnapshot mirrors the internal Options fields.
type OptionsSnapshot struct {
	ValidateNaNInf bool
}

// GatherOptionsSnapshot_TestOnly resolves opts over the defaults.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{ValidateNaNInf: o.validateNaNInf}
}

// ValidatesNaNInf_TestOnly reports the policy m was built with.
func ValidatesNaNInf_TestOnly(m *Dense) bool {
	return m.validateNaNInf
}
