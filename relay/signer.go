package relay

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/smartcontractkit/caravan"
	"github.com/smartcontractkit/caravan/messages"
	"github.com/smartcontractkit/caravan/types"
)

var _ caravan.Signer = (*RemoteSigner)(nil)

// RemoteSigner reports the signatures a remote signer published to the coordinator. A message
// without a published signature is declined.
type RemoteSigner struct {
	ctx     context.Context //nolint:containedctx // Signer.Sign takes no context
	client  *Client
	address common.Address
}

// Signer returns a RemoteSigner for address. Coordinator requests made by Sign are bound to ctx
// and abort once it is done.
func (c *Client) Signer(ctx context.Context, address common.Address) *RemoteSigner {
	return &RemoteSigner{ctx: ctx, client: c, address: address}
}

func (s *RemoteSigner) GetAddress() (common.Address, error) {
	return s.address, nil
}

func (s *RemoteSigner) Sign(msg messages.Message) (*types.Signature, error) {
	set, err := s.client.Signatures(s.ctx, msg.Hash())
	if err != nil {
		return nil, err
	}

	sig, ok := set.Get(s.address)
	if !ok {
		return nil, nil
	}

	return &sig, nil
}
