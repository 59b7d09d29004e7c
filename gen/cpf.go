package gen

import (
	"errors"
	"strings"
	"unicode"

	"github.com/lucaskalb/gopbt/seed"
	"github.com/lucaskalb/gopbt/tree"
)

// CPF generates valid Brazilian CPF numbers; masked controls whether the
// result carries the dotted/dashed formatting.
func CPF(masked bool) Generator[string] {
	return From(func(s seed.Seed, _ Size) tree.Tree[string] {
		root := generateCPF(s, masked)
		return tree.Unfold(id[string], cpfNeighbors, root)
	})
}

// CPFAny generates CPF numbers with a 50/50 chance of being masked.
func CPFAny() Generator[string] {
	return Bind(Bool(), func(masked bool) Generator[string] { return CPF(masked) })
}

func generateCPF(s seed.Seed, masked bool) string {
	root := make([]byte, 9)
	cur := s
	for {
		for i := range 9 {
			var word uint64
			word, cur = seed.Next(cur)
			root[i] = byte(word % 10)
		}
		if !allSameDigits(root) {
			break
		}
	}
	d1, d2 := computeCPFVerifiersBytes(root)

	raw := make([]byte, 0, 11)
	for _, n := range root {
		raw = append(raw, '0'+n)
	}
	raw = append(raw, d1, d2)

	out := string(raw)
	if masked {
		out = MaskCPF(out)
	}
	return out
}

// cpfNeighbors lists the one-step simplifications of a CPF candidate:
// unmask first, then zero each root digit left to right, then decrement
// each root digit right to left — mirroring the order a human simplifying
// a failing CPF by hand would try.
func cpfNeighbors(base string) []string {
	out := []string{}
	un := UnmaskCPF(base)

	if base != un {
		out = append(out, un)
	}

	r9 := make([]byte, 9)
	for i := range 9 {
		r9[i] = un[i] - '0'
	}

	for i := range 9 {
		if r9[i] == 0 {
			continue
		}
		orig := r9[i]
		r9[i] = 0
		if !allSameDigits(r9) {
			out = append(out, buildCPFString(r9))
		}
		r9[i] = orig
	}

	for j := 8; j >= 0; j-- {
		if r9[j] == 0 {
			continue
		}
		r9[j]--
		if !allSameDigits(r9) {
			out = append(out, buildCPFString(r9))
		}
		r9[j]++
	}

	return out
}

func buildCPFString(r9 []byte) string {
	d1, d2 := computeCPFVerifiersBytes(r9)
	buf := make([]byte, 0, 11)
	for _, n := range r9 {
		buf = append(buf, '0'+n)
	}
	buf = append(buf, d1, d2)
	return string(buf)
}

// ValidCPF reports whether s is a well-formed CPF with correct check
// digits, masked or not.
func ValidCPF(s string) bool {
	raw := UnmaskCPF(s)
	if len(raw) != 11 {
		return false
	}
	b := []byte(raw)
	if allSame(b) {
		return false
	}
	d1, d2 := computeCPFVerifiers(b[:9])
	return b[9] == d1 && b[10] == d2
}

// MaskCPF formats an 11-digit raw CPF string with dots and a dash.
func MaskCPF(raw string) string {
	raw = UnmaskCPF(raw)
	if len(raw) != 11 {
		panic(errors.New("MaskCPF: needs 11 digits"))
	}
	return raw[0:3] + "." + raw[3:6] + "." + raw[6:9] + "-" + raw[9:11]
}

// UnmaskCPF removes all non-digit characters from s.
func UnmaskCPF(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteByte(byte((int(r) - int('0')) + int('0')))
		}
	}
	return b.String()
}

func allSame(b []byte) bool {
	if len(b) == 0 {
		return true
	}
	f := b[0]
	for _, x := range b[1:] {
		if x != f {
			return false
		}
	}
	return true
}

func allSameDigits(b []byte) bool { return allSame(b) }

func computeCPFVerifiers(root []byte) (d1, d2 byte) {
	if len(root) != 9 {
		panic(errors.New("computeCPFVerifiers: root len != 9"))
	}
	sum := 0
	for i := range 9 {
		sum += int(root[i]-'0') * (10 - i)
	}
	rest := sum % 11
	if rest < 2 {
		d1 = '0'
	} else {
		d1 = byte(11-rest) + '0'
	}

	sum = 0
	for i := range 9 {
		sum += int(root[i]-'0') * (11 - i)
	}
	sum += int(d1-'0') * 2
	rest = sum % 11
	if rest < 2 {
		d2 = '0'
	} else {
		d2 = byte(11-rest) + '0'
	}
	return
}

func computeCPFVerifiersBytes(root []byte) (d1, d2 byte) {
	if len(root) != 9 {
		panic(errors.New("computeCPFVerifiersBytes: root len != 9"))
	}
	sum := 0
	for i := range 9 {
		sum += int(root[i]) * (10 - i)
	}
	rest := sum % 11
	if rest < 2 {
		d1 = '0'
	} else {
		d1 = byte(11-rest) + '0'
	}

	sum = 0
	for i := range 9 {
		sum += int(root[i]) * (11 - i)
	}
	sum += int(d1-'0') * 2
	rest = sum % 11
	if rest < 2 {
		d2 = '0'
	} else {
		d2 = byte(11-rest) + '0'
	}
	return
}
