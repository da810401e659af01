package types //nolint:revive,nolintlint // allow pkg name 'types'

import (
	"encoding/json"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rsv is a fixed signature with r = 0x1234567890abcdef, s = 0xfedcba0987654321 and v = 1.
var rsv = append(append(
	common.HexToHash("0x1234567890abcdef").Bytes(),
	common.HexToHash("0xfedcba0987654321").Bytes()...),
	0x01,
)

func TestNewSignatureFromBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		give    []byte
		want    Signature
		wantErr string
	}{
		{
			name: "success",
			give: rsv,
			want: Signature{
				R: common.HexToHash("0x1234567890abcdef"),
				S: common.HexToHash("0xfedcba0987654321"),
				V: 1,
			},
		},
		{
			name:    "failure: too short",
			give:    rsv[:64],
			wantErr: "invalid signature length: 64",
		},
		{
			name:    "failure: too long",
			give:    append(common.CopyBytes(rsv), 0x00),
			wantErr: "invalid signature length: 66",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := NewSignatureFromBytes(tt.give)

			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
				assert.Equal(t, tt.give, got.ToBytes())
			}
		})
	}
}

func TestSignature_ToRSV(t *testing.T) {
	t.Parallel()

	sig, err := NewSignatureFromBytes(rsv)
	require.NoError(t, err)

	out := sig.ToRSV()
	assert.Equal(t, byte(28), out[SignatureBytesLength-1])
	assert.Equal(t, rsv[:64], out[:64])

	// Already in contract form.
	sig.V = 27
	assert.Equal(t, byte(27), sig.ToRSV()[SignatureBytesLength-1])

	// The receiver is not modified.
	assert.Equal(t, uint8(27), sig.V)
}

func TestSignature_Text(t *testing.T) {
	t.Parallel()

	sig, err := NewSignatureFromBytes(rsv)
	require.NoError(t, err)

	raw, err := json.Marshal(map[string]Signature{"sig": sig})
	require.NoError(t, err)
	assert.JSONEq(t, `{"sig":"`+sig.String()+`"}`, string(raw))

	var decoded map[string]Signature
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, sig, decoded["sig"])

	var bad Signature
	require.ErrorContains(t, bad.UnmarshalText([]byte("0x1234")), "invalid signature length")
	require.ErrorContains(t, bad.UnmarshalText([]byte("zz")), "invalid signature encoding")
}

func TestSignature_Recover(t *testing.T) {
	t.Parallel()

	pk, err := crypto.GenerateKey()
	require.NoError(t, err)

	hash := common.HexToHash("0xabcdef1234567890")
	sigBytes, err := crypto.Sign(hash.Bytes(), pk)
	require.NoError(t, err)

	sig, err := NewSignatureFromBytes(sigBytes)
	require.NoError(t, err)

	tests := []struct {
		name          string
		giveSignature Signature
		giveHash      common.Hash
		want          common.Address
		wantErr       string
	}{
		{
			name:          "success",
			giveSignature: sig,
			giveHash:      hash,
			want:          crypto.PubkeyToAddress(pk.PublicKey),
		},
		{
			name:          "success: contract form v",
			giveSignature: Signature{R: sig.R, S: sig.S, V: sig.V + SignatureVOffset},
			giveHash:      hash,
			want:          crypto.PubkeyToAddress(pk.PublicKey),
		},
		{
			name:          "other hash recovers another address",
			giveSignature: sig,
			giveHash:      common.HexToHash("0x01"),
		},
		{
			name: "failure: could not recover",
			giveSignature: Signature{
				R: common.HexToHash("0x0"),
				S: common.HexToHash("0xf"),
				V: 1,
			},
			giveHash: hash,
			wantErr:  "failed to recover public key: recovery failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tt.giveSignature.Recover(tt.giveHash)

			switch {
			case tt.wantErr != "":
				require.EqualError(t, err, tt.wantErr)
			case tt.want == common.Address{}:
				require.NoError(t, err)
				assert.NotEqual(t, crypto.PubkeyToAddress(pk.PublicKey), got)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
