package datality

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// SetBit returns n with bit i set to 1.
func SetBit[I constraints.Integer](n I, i uint) I {
	return n | 1<<i
}

// ToggleBit returns n with bit i flipped.
func ToggleBit[I constraints.Integer](n I, i uint) I {
	return n ^ 1<<i
}

// ResetBit returns n with bit i set to 0.
func ResetBit[I constraints.Integer](n I, i uint) I {
	return n &^ (1 << i)
}

// CheckBit reports whether bit i of n is 1.
func CheckBit[I constraints.Integer](n I, i uint) bool {
	return n&(1<<i) != 0
}

// ClearBits returns n with every bit reset.
func ClearBits[I constraints.Integer](n I) I {
	return n & 0
}

// NewBitArray holding at least size bits, all 0.
func NewBitArray(size int) BitArray {
	return BitArray{bits: make([]uint, (size+bits.UintSize-1)/bits.UintSize)}
}

// BitArray is a mask wider than any machine word. The zero value has length 0.
// Indexes outside [0, Len()) panic like slice indexes do.
type BitArray struct {
	bits []uint
}

func (u BitArray) Len() int {
	return len(u.bits) * bits.UintSize
}

func (u BitArray) Get(i int) bool {
	return CheckBit(u.bits[i/bits.UintSize], uint(i%bits.UintSize))
}

func (u BitArray) Up(i int) {
	u.bits[i/bits.UintSize] = SetBit(u.bits[i/bits.UintSize], uint(i%bits.UintSize))
}

func (u BitArray) Down(i int) {
	u.bits[i/bits.UintSize] = ResetBit(u.bits[i/bits.UintSize], uint(i%bits.UintSize))
}

func (u BitArray) Toggle(i int) {
	u.bits[i/bits.UintSize] = ToggleBit(u.bits[i/bits.UintSize], uint(i%bits.UintSize))
}

// Count of bits that are 1.
func (u BitArray) Count() (c int) {
	for _, w := range u.bits {
		c += bits.OnesCount(w)
	}
	return
}

// Clear every bit.
func (u BitArray) Clear() {
	for i := range u.bits {
		u.bits[i] = ClearBits(u.bits[i])
	}
}
