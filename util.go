// Copyright (c) 2016 Bob Ziuchkovski
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.
//
// loadBlockReversed and storeBlockReversed reproduce the BLOCK_REVERSE
// load/store sequence from Dr B R Gladman's reference Serpent implementation
// (serpent.c, 30th June 1998), which conditions free derivative use on
// acknowledgment of its origin; this notice is that acknowledgment for those
// two functions. rotl/rotr are Bob Ziuchkovski's, per the header above.

package serpent

// rotl rotates word left by shift bits. shift must be in [1,31].
func rotl(word uint32, shift uint) uint32 {
	return (word << shift) | (word >> (32 - shift))
}

// rotr rotates word right by shift bits. shift must be in [1,31].
func rotr(word uint32, shift uint) uint32 {
	return (word >> shift) | (word << (32 - shift))
}

// loadBlockReversed loads four internal words from a 16-byte block using the
// reference implementation's block-reverse convention: the last four bytes
// of the buffer become the first word, each word big-endian.
func loadBlockReversed(block []byte) (a, b, c, d uint32) {
	a = loadBE32(block[12:16])
	b = loadBE32(block[8:12])
	c = loadBE32(block[4:8])
	d = loadBE32(block[0:4])
	return
}

// storeBlockReversed is the exact inverse of loadBlockReversed.
func storeBlockReversed(block []byte, a, b, c, d uint32) {
	storeBE32(block[12:16], a)
	storeBE32(block[8:12], b)
	storeBE32(block[4:8], c)
	storeBE32(block[0:4], d)
}

func loadBE32(b []byte) uint32 {
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}

func storeBE32(b []byte, w uint32) {
	b[0] = byte(w >> 24)
	b[1] = byte(w >> 16)
	b[2] = byte(w >> 8)
	b[3] = byte(w)
}
