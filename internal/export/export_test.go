package export

import (
	"testing"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/stretchr/testify/require"

	"github.com/not-for-prod/vanityeth/internal/hash"
)

func TestEncodeWIFStyleDecodesBackToPayload(t *testing.T) {
	var priv [32]byte
	for i := range priv {
		priv[i] = byte(i + 1)
	}

	encoded := EncodeWIFStyle(priv)
	decoded, version, err := base58.CheckDecode(encoded)
	require.NoError(t, err)
	require.Equal(t, byte(WIFVersionMainnet), version)
	require.Equal(t, priv[:], decoded)
}

func TestEncodeWIFStyleChecksumMatchesDoubleSHA256(t *testing.T) {
	var priv [32]byte
	priv[0] = 0xAB

	encoded := EncodeWIFStyle(priv)
	full := base58.Decode(encoded)
	require.Len(t, full, 1+32+4)

	payload := full[:33]
	first := hash.Sum256(payload)
	second := hash.Sum256(first[:])
	require.Equal(t, second[:4], full[33:])
}

func TestEncodeWIFStyleIsDeterministic(t *testing.T) {
	var priv [32]byte
	priv[15] = 0x42

	a := EncodeWIFStyle(priv)
	b := EncodeWIFStyle(priv)
	require.Equal(t, a, b)
}
