// The prekey recurrence and S-box mixing loop in ExpandKey below reproduce
// Dr B R Gladman's reference Serpent implementation (serpent.c, set_key,
// 30th June 1998), with the one architectural change recorded in this
// module's design notes (a caller-owned KeySchedule value in place of the
// reference's single process-wide key buffer). Gladman's source grants
// free direct or derivative use of that material "subject to acknowledgment
// of its origin"; this file is that derivative use, and this notice is that
// acknowledgment. Original copyright in the key-schedule algorithm is held
// by Dr B R Gladman (gladman@seven77.demon.co.uk).

package serpent

// sboxOrder is the rotating S-box schedule used while mixing prekeys into
// subkeys: round r uses sboxOrder[r%8]. This reproduces the reference
// implementation's sb3,sb2,sb1,sb0,sb7,sb6,sb5,sb4 sequence.
var sboxOrder = [8]int{3, 2, 1, 0, 7, 6, 5, 4}

// KeySchedule holds the 33 four-word subkeys K0..K32 derived from a user
// key. It is an ordinary value owned by the caller: unlike the reference C
// implementation's single process-wide l_key buffer, any number of
// KeySchedule values may coexist and be used concurrently by any number of
// readers, since encryption and decryption never mutate it.
type KeySchedule struct {
	subkeys [numSubkeys][4]uint32
}

// ExpandKey derives a KeySchedule from a user key of keyLenBits bits
// (0..256), presented in keyBytes using the block-reverse byte convention
// (see loadBlockReversed / the package doc). The loader reads whole 4-byte
// words, so keyBytes must be at least ceil(keyLenBits/32)*4 bytes long (e.g.
// keyLenBits=20 needs 4 bytes, not 3); any bits beyond keyLenBits are
// ignored.
//
// ExpandKey rejects keyLenBits outside [0, 256] and returns KeySizeError.
func ExpandKey(keyBytes []byte, keyLenBits int) (*KeySchedule, error) {
	if keyLenBits < 0 || keyLenBits > maxKeyBits {
		return nil, KeySizeError(keyLenBits)
	}

	// w holds the key-schedule working buffer: w[0..7] are the padded
	// prekeys w_-8..w_-1, w[8+i] is prekey w_i for i in 0..131.
	var w [8 + 132]uint32
	defer zeroWords(w[:])

	lk := (keyLenBits + 31) / 32
	for i := 0; i < lk; i++ {
		off := (lk - 1 - i) * 4
		w[i] = loadBE32(keyBytes[off : off+4])
	}

	if keyLenBits < 256 {
		for i := lk; i < 8; i++ {
			w[i] = 0
		}
		i := keyLenBits / 32
		m := uint32(1) << uint(keyLenBits%32)
		w[i] = (w[i] & (m - 1)) | m
	}

	for i := 0; i <= 131; i++ {
		t := w[i] ^ w[i+3] ^ w[i+5] ^ w[i+7] ^ phi ^ uint32(i)
		w[i+8] = rotl(t, 11)
	}

	ks := &KeySchedule{}
	for r := 0; r <= 32; r++ {
		sb := forwardSbox[sboxOrder[r%8]]
		base := 8 + 4*r
		e, f, g, h := sb(w[base], w[base+1], w[base+2], w[base+3])
		ks.subkeys[r] = [4]uint32{e, f, g, h}
	}
	return ks, nil
}

// subkey returns the four words of K_r.
func (ks *KeySchedule) subkey(r int) (uint32, uint32, uint32, uint32) {
	k := &ks.subkeys[r]
	return k[0], k[1], k[2], k[3]
}

// Zero overwrites all subkey words, scrubbing the schedule's sensitive
// material. The KeySchedule must not be used for encryption or decryption
// afterwards.
func (ks *KeySchedule) Zero() {
	for r := range ks.subkeys {
		ks.subkeys[r] = [4]uint32{}
	}
}

func zeroWords(w []uint32) {
	for i := range w {
		w[i] = 0
	}
}
