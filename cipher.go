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
// The round sequencing inside Encrypt and Decrypt reproduces the encrypt/
// decrypt functions of Dr B R Gladman's reference Serpent implementation
// (serpent.c, 30th June 1998), which conditions free derivative use on
// acknowledgment of its origin; this notice is that acknowledgment for the
// round-sequencing logic in this file. The NewCipher/Cipher/Reset API shape
// is Bob Ziuchkovski's, per the header above.

package serpent

import "fmt"

// Cipher is an instance of the Serpent cipher bound to one KeySchedule. A
// *Cipher satisfies crypto/cipher.Block, so it can be used directly with any
// mode of operation in the standard library's crypto/cipher package.
type Cipher struct {
	schedule *KeySchedule
}

// NewCipher creates a Cipher from a user key of keyLenBits bits (0..256).
// keyBytes must be at least ceil(keyLenBits/32)*4 bytes; see ExpandKey for
// the byte-to-word loading convention.
func NewCipher(keyBytes []byte, keyLenBits int) (cipher *Cipher, err error) {
	ks, err := ExpandKey(keyBytes, keyLenBits)
	if err != nil {
		return nil, err
	}
	return &Cipher{schedule: ks}, nil
}

// NewCipherBytes creates a Cipher from a whole-byte key (16, 24 or 32 bytes
// being the AES-relevant sizes, though any 0..32-byte key is accepted). It
// is a convenience wrapper over NewCipher for the common case where the key
// length in bits is simply len(key)*8.
func NewCipherBytes(key []byte) (*Cipher, error) {
	return NewCipher(key, len(key)*8)
}

// BlockSize returns the Serpent block size in bytes. It satisfies the
// crypto/cipher.Block interface.
func (cipher *Cipher) BlockSize() int {
	return BlockSize
}

// Encrypt encrypts the first block in src into dst, using the block-reverse
// byte convention (see the package doc). len(src) and len(dst) must be at
// least BlockSize; dst and src may fully overlap but otherwise must not.
func (cipher *Cipher) Encrypt(dst, src []byte) {
	mustHaveBlock(dst, src)

	a, b, c, d := loadBlockReversed(src)
	ks := cipher.schedule

	for r := 0; r <= 30; r++ {
		k0, k1, k2, k3 := ks.subkey(r)
		a, b, c, d = a^k0, b^k1, c^k2, d^k3
		sb := forwardSbox[r%8]
		a, b, c, d = sb(a, b, c, d)
		a, b, c, d = linear(a, b, c, d)
	}

	k0, k1, k2, k3 := ks.subkey(31)
	a, b, c, d = a^k0, b^k1, c^k2, d^k3
	a, b, c, d = forwardSbox[7](a, b, c, d)
	k0, k1, k2, k3 = ks.subkey(32)
	a, b, c, d = a^k0, b^k1, c^k2, d^k3

	storeBlockReversed(dst, a, b, c, d)
}

// Decrypt decrypts the first block in src into dst. It is the exact inverse
// of Encrypt under the same KeySchedule.
func (cipher *Cipher) Decrypt(dst, src []byte) {
	mustHaveBlock(dst, src)

	a, b, c, d := loadBlockReversed(src)
	ks := cipher.schedule

	k0, k1, k2, k3 := ks.subkey(32)
	a, b, c, d = a^k0, b^k1, c^k2, d^k3
	a, b, c, d = inverseSbox[7](a, b, c, d)
	k0, k1, k2, k3 = ks.subkey(31)
	a, b, c, d = a^k0, b^k1, c^k2, d^k3

	for r := 30; r >= 0; r-- {
		a, b, c, d = linearInverse(a, b, c, d)
		isb := inverseSbox[r%8]
		a, b, c, d = isb(a, b, c, d)
		k0, k1, k2, k3 = ks.subkey(r)
		a, b, c, d = a^k0, b^k1, c^k2, d^k3
	}

	storeBlockReversed(dst, a, b, c, d)
}

// Reset scrubs the cipher's key schedule. The Cipher must not be used
// afterwards.
func (cipher *Cipher) Reset() {
	cipher.schedule.Zero()
}

func mustHaveBlock(dst, src []byte) {
	if len(src) < BlockSize {
		panic(fmt.Sprintf("serpent: input not full block (%d bytes)", len(src)))
	}
	if len(dst) < BlockSize {
		panic(fmt.Sprintf("serpent: output not full block (%d bytes)", len(dst)))
	}
}
