// linear and linearInverse below reproduce the rot/irot macro sequence from
// Dr B R Gladman's reference Serpent implementation (serpent.c, Serpent
// linear transformation, 30th June 1998) operand for operand. Gladman's
// source grants free direct or derivative use of that material "subject to
// acknowledgment of its origin"; this file is that derivative use, and this
// notice is that acknowledgment. Original copyright in the transformation
// sequence is held by Dr B R Gladman (gladman@seven77.demon.co.uk).

package serpent

// linear applies the Serpent linear transformation L to (a,b,c,d). Rotation
// amounts (13, 3, 7, 1, 5, 22) and operation order are load-bearing: any
// deviation silently yields a non-invertible cipher.
func linear(a, b, c, d uint32) (uint32, uint32, uint32, uint32) {
	a = rotl(a, 13)
	c = rotl(c, 3)
	d ^= c ^ (a << 3)
	b ^= a ^ c
	d = rotl(d, 7)
	b = rotl(b, 1)
	a ^= b ^ d
	c ^= d ^ (b << 7)
	a = rotl(a, 5)
	c = rotl(c, 22)
	return a, b, c, d
}

// linearInverse applies L⁻¹, the exact reversal of linear.
func linearInverse(a, b, c, d uint32) (uint32, uint32, uint32, uint32) {
	c = rotr(c, 22)
	a = rotr(a, 5)
	c ^= d ^ (b << 7)
	a ^= b ^ d
	d = rotr(d, 7)
	b = rotr(b, 1)
	d ^= c ^ (a << 3)
	b ^= a ^ c
	c = rotr(c, 3)
	a = rotr(a, 13)
	return a, b, c, d
}
