package serpent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandKeyRejectsInvalidLength(t *testing.T) {
	_, err := ExpandKey(make([]byte, 32), -1)
	assert.Error(t, err)
	var kerr KeySizeError
	assert.ErrorAs(t, err, &kerr)

	_, err = ExpandKey(make([]byte, 32), 257)
	assert.Error(t, err)
}

func TestExpandKeyAcceptsFullRange(t *testing.T) {
	for _, bits := range []int{0, 1, 8, 32, 64, 96, 120, 128, 160, 192, 224, 255, 256} {
		key := make([]byte, 32)
		ks, err := ExpandKey(key, bits)
		require.NoError(t, err, "bits=%d", bits)
		require.NotNil(t, ks)
	}
}

func TestExpandKeyIsDeterministic(t *testing.T) {
	key := []byte{
		0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07,
		0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f,
	}
	ks1, err := ExpandKey(key, 128)
	require.NoError(t, err)
	ks2, err := ExpandKey(key, 128)
	require.NoError(t, err)
	assert.Equal(t, ks1.subkeys, ks2.subkeys)
}

// TestShortKeyTerminatorIgnoresPadBits checks the boundary arithmetic from
// design note §9: for key_len_bits not a multiple of 32, bits at and above
// position key_len_bits%32 in the boundary word are overwritten by the
// terminator and must not influence the derived schedule.
func TestShortKeyTerminatorIgnoresPadBits(t *testing.T) {
	const keyLenBits = 20 // not a multiple of 8 or 32
	a := []byte{0x00, 0x0a, 0xab, 0xcd}
	b := []byte{0x00, 0xfa, 0xab, 0xcd} // differs only in bits 20-23 of w0

	ksA, err := ExpandKey(a, keyLenBits)
	require.NoError(t, err)
	ksB, err := ExpandKey(b, keyLenBits)
	require.NoError(t, err)
	assert.Equal(t, ksA.subkeys, ksB.subkeys)
}

// TestShortKeyTerminatorAtWordBoundary exercises key_len_bits a multiple of
// 32, where the terminator lands in the *next* word (m=1) per design note §9.
func TestShortKeyTerminatorAtWordBoundary(t *testing.T) {
	const keyLenBits = 128
	key := []byte{
		0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88,
		0x99, 0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff, 0x00,
		// trailing bytes beyond keyLenBits/8 must be ignored entirely
		0xff, 0xff, 0xff, 0xff,
	}
	truncated := key[:16]

	ksFull, err := ExpandKey(key, keyLenBits)
	require.NoError(t, err)
	ksTrunc, err := ExpandKey(truncated, keyLenBits)
	require.NoError(t, err)
	assert.Equal(t, ksFull.subkeys, ksTrunc.subkeys)
}

func TestDifferentKeysProduceDifferentSchedules(t *testing.T) {
	ks1, err := ExpandKey(make([]byte, 16), 128)
	require.NoError(t, err)
	key2 := make([]byte, 16)
	key2[0] = 1
	ks2, err := ExpandKey(key2, 128)
	require.NoError(t, err)
	assert.NotEqual(t, ks1.subkeys, ks2.subkeys)
}

func TestKeyScheduleZero(t *testing.T) {
	ks, err := ExpandKey(make([]byte, 16), 128)
	require.NoError(t, err)
	ks.Zero()
	for _, k := range ks.subkeys {
		assert.Equal(t, [4]uint32{}, k)
	}
}
