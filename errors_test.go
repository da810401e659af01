package caravan

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	t.Parallel()

	head := common.HexToHash("0x01")
	parent := common.HexToHash("0x02")

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "stale parent",
			err:  NewStaleParentError(head, parent),
			want: fmt.Sprintf("stale parent: message builds on %s but head is %s", parent, head),
		},
		{
			name: "insufficient signatures",
			err:  NewInsufficientSignaturesError(head, 2),
			want: fmt.Sprintf("not enough signatures for %s: need 2 more", head),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.EqualError(t, tt.err, tt.want)
		})
	}
}

func TestErrorsAs(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("commit failed: %w", NewInsufficientSignaturesError(common.Hash{}, 3))

	var target *InsufficientSignaturesError
	assert.True(t, errors.As(err, &target))
	assert.Equal(t, 3, target.Needed)
}
