package queue

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/smartcontractkit/caravan/messages"
	"github.com/smartcontractkit/caravan/types"
)

// Item is a proposed message together with the off-chain signatures collected for it. The
// message and hash never change; only the signature set grows.
type Item struct {
	message    messages.Message
	signatures *types.SignatureSet
}

// NewItem creates an item, verifying every signature against the message hash.
func NewItem(msg messages.Message, sigs map[common.Address]types.Signature) (*Item, error) {
	set, err := types.NewSignatureSetFromMap(msg.Hash(), sigs)
	if err != nil {
		return nil, err
	}

	return &Item{message: msg, signatures: set}, nil
}

func (i *Item) Message() messages.Message {
	return i.message
}

func (i *Item) Hash() common.Hash {
	return i.message.Hash()
}

func (i *Item) Parent() common.Hash {
	return i.message.Parent()
}

// MessageType returns "execute" or "modify/<action>".
func (i *Item) MessageType() string {
	if m, ok := i.message.(*messages.Modify); ok {
		return string(messages.KindModify) + "/" + m.Action().String()
	}

	return string(i.message.Kind())
}

// Confirmations returns the number of distinct signers with an off-chain signature.
func (i *Item) Confirmations() int {
	return i.signatures.Len()
}

// Signatures returns a copy of the item's signature set.
func (i *Item) Signatures() *types.SignatureSet {
	return i.signatures.Clone()
}

// AddConfirmations merges sigs into the item. Every signature is verified first; on any failure
// the item is left unchanged.
func (i *Item) AddConfirmations(sigs map[common.Address]types.Signature) error {
	incoming, err := types.NewSignatureSetFromMap(i.Hash(), sigs)
	if err != nil {
		return err
	}

	return i.signatures.Merge(incoming)
}
