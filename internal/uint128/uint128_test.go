// Copyright (c) 2026 Bitvantage
// SPDX-License-Identifier: MIT

package uint128

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOnes(t *testing.T) {
	assert.Equal(t, Uint128{}, Ones(0))
	assert.Equal(t, Uint128{Lo: 1}, Ones(1))
	assert.Equal(t, Uint128{Lo: 0xffff_ffff}, Ones(32))
	assert.Equal(t, Uint128{Lo: ^uint64(0)}, Ones(64))
	assert.Equal(t, Uint128{Hi: 1, Lo: ^uint64(0)}, Ones(65))
	assert.Equal(t, Uint128{Hi: ^uint64(0), Lo: ^uint64(0)}, Ones(128))
}

func TestBitwise(t *testing.T) {
	a := Uint128{Hi: 0xf0f0, Lo: 0x0f0f}
	b := Uint128{Hi: 0xff00, Lo: 0x00ff}

	assert.Equal(t, Uint128{Hi: 0xf000, Lo: 0x000f}, a.And(b))
	assert.Equal(t, Uint128{Hi: 0xfff0, Lo: 0x0fff}, a.Or(b))
	assert.Equal(t, Uint128{Hi: 0x0ff0, Lo: 0x0ff0}, a.Xor(b))
	assert.Equal(t, Uint128{Hi: 0x00f0, Lo: 0x0f00}, a.AndNot(b))
	assert.Equal(t, a, a.Not().Not())
	assert.True(t, Uint128{}.IsZero())
	assert.False(t, Uint128{Lo: 1}.IsZero())
}

func TestCmp(t *testing.T) {
	assert.Equal(t, 0, From64(5).Cmp(From64(5)))
	assert.Equal(t, -1, From64(4).Cmp(From64(5)))
	assert.Equal(t, 1, Uint128{Hi: 1}.Cmp(Uint128{Lo: ^uint64(0)}))
	assert.Equal(t, -1, Uint128{Hi: 1, Lo: 0}.Cmp(Uint128{Hi: 2, Lo: 0}))
}

func TestBitLen(t *testing.T) {
	assert.Equal(t, 0, Uint128{}.BitLen())
	assert.Equal(t, 1, From64(1).BitLen())
	assert.Equal(t, 64, Uint128{Lo: 1 << 63}.BitLen())
	assert.Equal(t, 65, Uint128{Hi: 1}.BitLen())
	assert.Equal(t, 128, Uint128{Hi: 1 << 63}.BitLen())
}

func TestShifts(t *testing.T) {
	one := From64(1)

	assert.Equal(t, Uint128{Lo: 2}, one.Lsh(1))
	assert.Equal(t, Uint128{Hi: 1}, one.Lsh(64))
	assert.Equal(t, Uint128{Hi: 1 << 63}, one.Lsh(127))
	assert.Equal(t, Uint128{}, one.Lsh(128))

	top := Uint128{Hi: 1 << 63}
	assert.Equal(t, Uint128{Hi: 1 << 62}, top.Rsh(1))
	assert.Equal(t, Uint128{Lo: 1 << 63}, top.Rsh(64))
	assert.Equal(t, one, top.Rsh(127))
	assert.Equal(t, Uint128{}, top.Rsh(128))

	// cross-word carries
	assert.Equal(t, Uint128{Hi: 1, Lo: 0}, Uint128{Lo: 1 << 63}.Lsh(1))
	assert.Equal(t, Uint128{Lo: 1 << 63}, Uint128{Hi: 1}.Rsh(1))
}

func TestAddSub(t *testing.T) {
	max64 := ^uint64(0)

	sum, carry := Uint128{Lo: max64}.Add(From64(1))
	assert.Equal(t, Uint128{Hi: 1, Lo: 0}, sum)
	assert.Equal(t, uint64(0), carry)

	_, carry = Uint128{Hi: max64, Lo: max64}.Add(From64(1))
	assert.Equal(t, uint64(1), carry)

	diff, borrow := Uint128{Hi: 1, Lo: 0}.Sub(From64(1))
	assert.Equal(t, Uint128{Lo: max64}, diff)
	assert.Equal(t, uint64(0), borrow)

	_, borrow = Uint128{}.Sub(From64(1))
	assert.Equal(t, uint64(1), borrow)
}
