package abi

import (
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Encode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		giveTypes  []string
		giveValues []any
		want       string
		wantError  bool
	}{
		{
			name:      "success: encode single uint256",
			giveTypes: []string{"uint256"},
			giveValues: []any{
				big.NewInt(30), // 30 in uint256
			},
			want: "000000000000000000000000000000000000000000000000000000000000001e",
		},
		{
			name:       "success: encode address",
			giveTypes:  []string{"address"},
			giveValues: []any{common.HexToAddress("0x5b38da6a701c568545dcfcb03fcb875f56beddc4")},
			want:       "0000000000000000000000005b38da6a701c568545dcfcb03fcb875f56beddc4",
		},
		{
			name:       "success: encode address and bool",
			giveTypes:  []string{"address", "bool"},
			giveValues: []any{common.HexToAddress("0x5b38da6a701c568545dcfcb03fcb875f56beddc4"), true},
			want: "0000000000000000000000005b38da6a701c568545dcfcb03fcb875f56beddc4" +
				"0000000000000000000000000000000000000000000000000000000000000001",
		},
		{
			name:       "success: encode empty address array",
			giveTypes:  []string{"address[]"},
			giveValues: []any{[]common.Address{}},
			want: "0000000000000000000000000000000000000000000000000000000000000020" + // offset
				"0000000000000000000000000000000000000000000000000000000000000000", // length
		},
		{
			name:       "failure: invalid ABI type",
			giveTypes:  []string{"invalid"},
			giveValues: []any{big.NewInt(1)},
			wantError:  true,
		},
		{
			name:       "failure: missing values",
			giveTypes:  []string{"uint256"},
			giveValues: []any{},
			wantError:  true,
		},
		{
			name:       "failure: wrong value type",
			giveTypes:  []string{"bool"},
			giveValues: []any{"yes"},
			wantError:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Encode(tt.giveTypes, tt.giveValues...)

			if tt.wantError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)

				wantBytes, err := hex.DecodeString(tt.want)
				require.NoError(t, err)
				assert.Equal(t, wantBytes, got)
			}
		})
	}
}

func Test_Decode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		giveTypes []string
		giveData  string
		want      []any
		wantError bool
	}{
		{
			name:      "success: decode single uint256",
			giveTypes: []string{"uint256"},
			giveData:  "000000000000000000000000000000000000000000000000000000000000001e", // 30 in uint256
			want: []any{
				big.NewInt(30),
			},
		},
		{
			name:      "success: decode address",
			giveTypes: []string{"address"},
			giveData:  "0000000000000000000000005b38da6a701c568545dcfcb03fcb875f56beddc4",
			want:      []any{common.HexToAddress("0x5b38da6a701c568545dcfcb03fcb875f56beddc4")},
		},
		{
			name:      "failure: invalid data",
			giveTypes: []string{"uint256"},
			giveData:  "00000000000000000000000000000000", // Too short for uint256
			wantError: true,
		},
		{
			name:      "failure: invalid ABI type",
			giveTypes: []string{"invalid"},
			giveData:  "000000000000000000000000000000000000000000000000000000000000001e",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data, err := hex.DecodeString(tt.giveData)
			require.NoError(t, err)

			got, err := Decode(tt.giveTypes, data)

			if tt.wantError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func Test_RoundTrip(t *testing.T) {
	t.Parallel()

	add := []common.Address{common.HexToAddress("0x01"), common.HexToAddress("0x02")}
	remove := []common.Address{common.HexToAddress("0x03")}
	threshold := big.NewInt(2)

	data, err := Encode([]string{"address[]", "address[]", "uint256"}, add, remove, threshold)
	require.NoError(t, err)

	got, err := Decode([]string{"address[]", "address[]", "uint256"}, data)
	require.NoError(t, err)
	assert.Equal(t, []any{add, remove, threshold}, got)
}
