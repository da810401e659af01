package messages

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/smartcontractkit/caravan/types"
)

// ErrUnknownMessage is returned when encoded data matches neither message kind.
var ErrUnknownMessage = errors.New("unknown message kind")

type modifyJSON struct {
	Parent *common.Hash      `json:"parent"`
	Action *types.ActionType `json:"action"`
	Data   *hexutil.Bytes    `json:"data"`
}

type executeJSON struct {
	Parent *common.Hash `json:"parent"`
	Calls  []types.Call `json:"calls"`
}

// Marshal encodes the message fields without its domain.
func Marshal(msg Message) ([]byte, error) {
	switch m := msg.(type) {
	case *Modify:
		data := hexutil.Bytes(m.Data())
		action := m.action

		return json.MarshalIndent(modifyJSON{Parent: &m.parent, Action: &action, Data: &data}, "", "  ")
	case *Execute:
		return json.MarshalIndent(executeJSON{Parent: &m.parent, Calls: m.Calls()}, "", "  ")
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownMessage, msg)
	}
}

// Unmarshal decodes a message produced by Marshal under domain. Unknown or missing fields are
// rejected.
func Unmarshal(domain types.Domain, raw []byte) (Message, error) {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(raw, &keys); err != nil {
		return nil, fmt.Errorf("failed to decode message: %w", err)
	}

	_, isModify := keys["action"]
	_, isExecute := keys["calls"]

	switch {
	case isModify && !isExecute:
		var m modifyJSON
		if err := decodeStrict(raw, &m); err != nil {
			return nil, err
		}
		if m.Parent == nil || m.Action == nil || m.Data == nil {
			return nil, errors.New("modify message requires parent, action and data")
		}

		return NewModify(domain, *m.Parent, *m.Action, *m.Data)
	case isExecute && !isModify:
		var e executeJSON
		if err := decodeStrict(raw, &e); err != nil {
			return nil, err
		}
		if e.Parent == nil {
			return nil, errors.New("execute message requires parent")
		}
		for i, c := range e.Calls {
			if c.Value == nil {
				return nil, fmt.Errorf("call %d requires value", i)
			}
		}

		return NewExecute(domain, *e.Parent, e.Calls...)
	default:
		return nil, ErrUnknownMessage
	}
}

func decodeStrict(raw []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("failed to decode message: %w", err)
	}

	return nil
}
