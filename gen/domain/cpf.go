// Package domain re-exports the CPF generator and validators under a
// namespaced import, for callers that prefer domain.CPF(...) to gen.CPF(...).
package domain

import "github.com/lucaskalb/gopbt/gen"

// CPF generates valid Brazilian CPF numbers; masked controls the format.
func CPF(masked bool) gen.Generator[string] { return gen.CPF(masked) }

// CPFAny generates CPF numbers with a 50/50 chance of being masked.
func CPFAny() gen.Generator[string] { return gen.CPFAny() }

// ValidCPF reports whether s is a well-formed CPF with correct check digits.
func ValidCPF(s string) bool { return gen.ValidCPF(s) }

// MaskCPF formats an 11-digit raw CPF string with dots and a dash.
func MaskCPF(raw string) string { return gen.MaskCPF(raw) }

// UnmaskCPF removes all non-digit characters from s.
func UnmaskCPF(s string) string { return gen.UnmaskCPF(s) }
