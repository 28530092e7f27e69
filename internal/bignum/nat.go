package bignum

import (
	"math"
	"math/bits"
	"strconv"
	"strings"

	apperrors "github.com/agbru/primegen/internal/errors"
)

// Nat is an arbitrary-precision natural number.
//
// The representation is a little-endian slice of base-2^32 limbs with no
// trailing (most-significant) zero limb; the canonical zero is the empty
// slice, so the zero value of Nat is ready to use.
type Nat struct {
	limbs []uint32
}

// pow10 maps a digit count to the corresponding power of ten. Used when
// folding decimal chunks of up to nine digits into a Nat.
var pow10 = [10]uint64{1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000, 1000000000}

// trim removes trailing zero limbs, restoring the canonical form.
func trim(limbs []uint32) []uint32 {
	for len(limbs) > 0 && limbs[len(limbs)-1] == 0 {
		limbs = limbs[:len(limbs)-1]
	}
	if len(limbs) == 0 {
		return nil
	}
	return limbs
}

// FromUint64 creates a Nat holding the value v.
func FromUint64(v uint64) Nat {
	if v == 0 {
		return Nat{}
	}
	if v <= math.MaxUint32 {
		return Nat{limbs: []uint32{uint32(v)}}
	}
	return Nat{limbs: []uint32{uint32(v), uint32(v >> 32)}}
}

// ParseDecimal parses a decimal string into a Nat.
//
// It fails with an apperrors.InvalidInputError when s is empty, encodes a
// negative value, or contains any non-digit character. Leading zeros are
// accepted and canonicalized away.
//
// Parameters:
//   - s: The decimal representation of a natural number.
//
// Returns:
//   - Nat: The parsed value.
//   - error: An InvalidInputError describing the rejection, or nil.
func ParseDecimal(s string) (Nat, error) {
	if s == "" {
		return Nat{}, apperrors.NewInvalidInputError(s, "empty string")
	}
	if s[0] == '-' {
		return Nat{}, apperrors.NewInvalidInputError(s, "negative value")
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return Nat{}, apperrors.NewInvalidInputError(s, "non-digit character")
		}
	}

	// Fold up to nine digits at a time: z = z*10^len(chunk) + chunk.
	var z Nat
	for i := 0; i < len(s); {
		j := i + 9
		if j > len(s) {
			j = len(s)
		}
		chunk, err := strconv.ParseUint(s[i:j], 10, 64)
		if err != nil {
			// Unreachable after the digit scan above.
			return Nat{}, apperrors.NewInvalidInputError(s, "non-digit character")
		}
		z = z.MulUint64(pow10[j-i]).AddUint64(chunk)
		i = j
	}
	return z, nil
}

// String returns the canonical decimal representation of x. It is the exact
// inverse of ParseDecimal for canonical inputs.
func (x Nat) String() string {
	if x.IsZero() {
		return "0"
	}

	// Peel off base-1e9 digits, least significant first.
	var chunks []uint64
	q := x
	for !q.IsZero() {
		var r uint64
		q, r = q.DivModUint64(1e9)
		chunks = append(chunks, r)
	}

	var b strings.Builder
	b.WriteString(strconv.FormatUint(chunks[len(chunks)-1], 10))
	for i := len(chunks) - 2; i >= 0; i-- {
		s := strconv.FormatUint(chunks[i], 10)
		for pad := 9 - len(s); pad > 0; pad-- {
			b.WriteByte('0')
		}
		b.WriteString(s)
	}
	return b.String()
}

// IsZero reports whether x is zero.
func (x Nat) IsZero() bool { return len(x.limbs) == 0 }

// Uint64 returns the value of x as a uint64 and whether it fits.
func (x Nat) Uint64() (uint64, bool) {
	switch len(x.limbs) {
	case 0:
		return 0, true
	case 1:
		return uint64(x.limbs[0]), true
	case 2:
		return uint64(x.limbs[0]) | uint64(x.limbs[1])<<32, true
	default:
		return 0, false
	}
}

// BitLen returns the length of x in bits. BitLen of zero is 0.
func (x Nat) BitLen() int {
	if len(x.limbs) == 0 {
		return 0
	}
	return (len(x.limbs)-1)*32 + bits.Len32(x.limbs[len(x.limbs)-1])
}

// Cmp compares x and y and returns -1, 0, or +1.
func (x Nat) Cmp(y Nat) int {
	if len(x.limbs) != len(y.limbs) {
		if len(x.limbs) < len(y.limbs) {
			return -1
		}
		return 1
	}
	for i := len(x.limbs) - 1; i >= 0; i-- {
		if x.limbs[i] != y.limbs[i] {
			if x.limbs[i] < y.limbs[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// CmpUint64 compares x against the uint64 value v.
func (x Nat) CmpUint64(v uint64) int { return x.Cmp(FromUint64(v)) }

// Add returns x + y.
func (x Nat) Add(y Nat) Nat {
	a, b := x.limbs, y.limbs
	if len(a) < len(b) {
		a, b = b, a
	}
	z := make([]uint32, len(a)+1)
	var carry uint64
	for i := 0; i < len(b); i++ {
		cur := uint64(a[i]) + uint64(b[i]) + carry
		z[i] = uint32(cur)
		carry = cur >> 32
	}
	for i := len(b); i < len(a); i++ {
		cur := uint64(a[i]) + carry
		z[i] = uint32(cur)
		carry = cur >> 32
	}
	z[len(a)] = uint32(carry)
	return Nat{limbs: trim(z)}
}

// AddUint64 returns x + v.
func (x Nat) AddUint64(v uint64) Nat { return x.Add(FromUint64(v)) }

// Sub returns x - y. The sieve never subtracts a larger value from a smaller
// one under valid input, so underflow is a programming invariant violation
// and panics.
func (x Nat) Sub(y Nat) Nat {
	if x.Cmp(y) < 0 {
		panic("bignum: subtraction underflow")
	}
	z := make([]uint32, len(x.limbs))
	var borrow uint64
	for i := 0; i < len(x.limbs); i++ {
		var yi uint64
		if i < len(y.limbs) {
			yi = uint64(y.limbs[i])
		}
		cur := uint64(x.limbs[i]) - yi - borrow
		z[i] = uint32(cur)
		borrow = (cur >> 32) & 1
	}
	return Nat{limbs: trim(z)}
}

// SubUint64 returns x - v, panicking on underflow.
func (x Nat) SubUint64(v uint64) Nat { return x.Sub(FromUint64(v)) }

// Mul returns x * y using schoolbook multiplication, O(limbs^2). Inputs are
// bounded by practical sieve ranges, not cryptographic magnitudes, so the
// quadratic algorithm is the right tradeoff.
func (x Nat) Mul(y Nat) Nat {
	if x.IsZero() || y.IsZero() {
		return Nat{}
	}
	z := make([]uint32, len(x.limbs)+len(y.limbs))
	for i, xi := range x.limbs {
		var carry uint64
		for j, yj := range y.limbs {
			cur := uint64(xi)*uint64(yj) + uint64(z[i+j]) + carry
			z[i+j] = uint32(cur)
			carry = cur >> 32
		}
		z[i+len(y.limbs)] = uint32(carry)
	}
	return Nat{limbs: trim(z)}
}

// MulUint64 returns x * v.
func (x Nat) MulUint64(v uint64) Nat { return x.Mul(FromUint64(v)) }

// DivMod returns the quotient and remainder of x / y. Division by zero is a
// programming invariant violation and panics.
//
// Single-limb divisors take an O(limbs) short-division path; the general
// case aligns the divisor to the remainder's bit length and subtracts,
// O(limbs^2) overall.
func (x Nat) DivMod(y Nat) (Nat, Nat) {
	if y.IsZero() {
		panic("bignum: division by zero")
	}
	switch x.Cmp(y) {
	case -1:
		return Nat{}, x
	case 0:
		return FromUint64(1), Nat{}
	}

	if len(y.limbs) == 1 {
		q, r := x.divModLimb(y.limbs[0])
		return q, FromUint64(uint64(r))
	}

	var q Nat
	rem := x
	yBits := y.BitLen()
	one := FromUint64(1)
	for rem.Cmp(y) >= 0 {
		shift := uint(rem.BitLen() - yBits)
		cand := y.Lsh(shift)
		if cand.Cmp(rem) > 0 {
			shift--
			cand = y.Lsh(shift)
		}
		rem = rem.Sub(cand)
		q = q.Add(one.Lsh(shift))
	}
	return q, rem
}

// DivModUint64 returns the quotient and remainder of x / v with the
// remainder as a plain uint64. Panics when v is zero.
func (x Nat) DivModUint64(v uint64) (Nat, uint64) {
	if v == 0 {
		panic("bignum: division by zero")
	}
	if v <= math.MaxUint32 {
		q, r := x.divModLimb(uint32(v))
		return q, uint64(r)
	}
	q, r := x.DivMod(FromUint64(v))
	rv, _ := r.Uint64()
	return q, rv
}

// divModLimb performs short division by a single non-zero limb.
func (x Nat) divModLimb(d uint32) (Nat, uint32) {
	q := make([]uint32, len(x.limbs))
	var rem uint64
	for i := len(x.limbs) - 1; i >= 0; i-- {
		cur := rem<<32 | uint64(x.limbs[i])
		q[i] = uint32(cur / uint64(d))
		rem = cur % uint64(d)
	}
	return Nat{limbs: trim(q)}, uint32(rem)
}

// Lsh returns x << k.
func (x Nat) Lsh(k uint) Nat {
	if x.IsZero() || k == 0 {
		return x
	}
	words, shift := int(k/32), k%32
	z := make([]uint32, len(x.limbs)+words+1)
	if shift == 0 {
		copy(z[words:], x.limbs)
	} else {
		var carry uint32
		for i, limb := range x.limbs {
			z[words+i] = limb<<shift | carry
			carry = limb >> (32 - shift)
		}
		z[words+len(x.limbs)] = carry
	}
	return Nat{limbs: trim(z)}
}

// Rsh returns x >> k.
func (x Nat) Rsh(k uint) Nat {
	if x.IsZero() || k == 0 {
		return x
	}
	words, shift := int(k/32), k%32
	if words >= len(x.limbs) {
		return Nat{}
	}
	z := make([]uint32, len(x.limbs)-words)
	copy(z, x.limbs[words:])
	if shift > 0 {
		for i := 0; i < len(z); i++ {
			v := z[i] >> shift
			if i+1 < len(z) {
				v |= z[i+1] << (32 - shift)
			}
			z[i] = v
		}
	}
	return Nat{limbs: trim(z)}
}

// Isqrt returns the floor integer square root of x.
//
// The root is found by binary search over candidate magnitudes bracketed by
// x's bit length, verifying each candidate by multiplication. This is the
// bound computation for the segmented sieve: primes up to Isqrt(n) suffice
// to sieve any range up to n.
func (x Nat) Isqrt() Nat {
	if x.CmpUint64(2) < 0 {
		return x
	}

	// The root of an L-bit value has between ceil((L-1)/2) and ceil(L/2)
	// bits, so these bounds always bracket it.
	bl := x.BitLen()
	one := FromUint64(1)
	start := one.Lsh(uint((bl - 1) / 2))
	end := one.Lsh(uint(bl/2 + 1))
	ans := start

	for start.Cmp(end) <= 0 {
		mid := start.Add(end).Rsh(1)
		sqr := mid.Mul(mid)
		switch sqr.Cmp(x) {
		case 0:
			return mid
		case -1:
			ans = mid
			start = mid.AddUint64(1)
		default:
			end = mid.Sub(one)
		}
	}
	return ans
}
