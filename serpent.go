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

// Package serpent implements the Serpent block cipher, as submitted by Ross
// Anderson, Eli Biham and Lars Knudsen to the AES competition. The package
// API mimics that of the standard library's crypto/aes package: NewCipher
// builds a *Cipher from a key, and the resulting *Cipher satisfies
// crypto/cipher.Block so it can be wrapped in any mode of operation from
// crypto/cipher (CBC, CTR, GCM, ...) by the caller. This package itself
// implements only the core primitive: key schedule, encryption and
// decryption of single 16-byte blocks.
//
// Blocks and keys use the reference implementation's block-reverse byte
// order: the last four bytes of a 16-byte block form the first internal
// word, the first four bytes the last, and each word is read big-endian.
// Keys are loaded the same way, a word at a time.
package serpent

import "fmt"

const (
	// BlockSize is the Serpent block size in bytes (128 bits).
	BlockSize = 16

	// phi is the golden-ratio constant used in the prekey recurrence.
	phi = 0x9e3779b9

	// numRounds is the number of encryption rounds, counting the terminal
	// one: rounds 0..30 are full rounds, and round 31 (the 32nd,
	// zero-indexed) replaces the linear transformation with a second
	// subkey XOR.
	numRounds = 32

	// numSubkeys is the number of four-word subkeys produced by the key
	// schedule: K0..K32.
	numSubkeys = numRounds + 1

	// maxKeyBits is the largest user key size the schedule accepts.
	maxKeyBits = 256
)

// KeySizeError is returned by NewCipher and ExpandKey when the requested key
// length, in bits, falls outside [0, 256].
type KeySizeError int

func (k KeySizeError) Error() string {
	return fmt.Sprintf("serpent: invalid key size %d bits, must be in [0, 256]", int(k))
}
