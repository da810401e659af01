package messages

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"

	"github.com/smartcontractkit/caravan/types"
)

const modifyTypeName = "Modify"

var modifyType = []apitypes.Type{
	{Name: "parent", Type: "bytes32"},
	{Name: "action", Type: "uint256"},
	{Name: "data", Type: "bytes"},
}

// Modify is an administrative change to the wallet itself.
type Modify struct {
	digest

	domain types.Domain
	parent common.Hash
	action types.ActionType
	data   []byte
}

var _ Message = (*Modify)(nil)

// NewModify builds a Modify message over already encoded action data.
func NewModify(domain types.Domain, parent common.Hash, action types.ActionType, data []byte) (*Modify, error) {
	if err := domain.Validate(); err != nil {
		return nil, err
	}

	if err := action.Validate(); err != nil {
		return nil, err
	}

	if _, err := types.DecodeAction(action, data); err != nil {
		return nil, err
	}

	m := &Modify{
		domain: domain,
		parent: parent,
		action: action,
		data:   common.CopyBytes(data),
	}

	d, err := newDigest(m.TypedData())
	if err != nil {
		return nil, err
	}
	m.digest = d

	return m, nil
}

// NewModifyWithArgs encodes args per the action's schema and builds the message.
func NewModifyWithArgs(domain types.Domain, parent common.Hash, action types.ActionType, args ...any) (*Modify, error) {
	data, err := types.EncodeAction(action, args...)
	if err != nil {
		return nil, err
	}

	return NewModify(domain, parent, action, data)
}

// UpgradeImplementation migrates the wallet proxy to a new implementation.
func UpgradeImplementation(domain types.Domain, parent common.Hash, impl common.Address) (*Modify, error) {
	return NewModifyWithArgs(domain, parent, types.ActionUpgradeImplementation, impl)
}

// RotateSigners adds and removes signers and sets a new threshold. A zero threshold keeps the
// current one.
func RotateSigners(domain types.Domain, parent common.Hash, add, remove []common.Address, threshold uint64) (*Modify, error) {
	if add == nil {
		add = []common.Address{}
	}
	if remove == nil {
		remove = []common.Address{}
	}

	return NewModifyWithArgs(domain, parent, types.ActionRotateSigners, add, remove, new(big.Int).SetUint64(threshold))
}

// ConfigureModule enables or disables a module.
func ConfigureModule(domain types.Domain, parent common.Hash, module common.Address, enabled bool) (*Modify, error) {
	return NewModifyWithArgs(domain, parent, types.ActionConfigureModule, module, enabled)
}

// SetAdminGuard sets the guard consulted on admin changes. The zero address clears it.
func SetAdminGuard(domain types.Domain, parent common.Hash, guard common.Address) (*Modify, error) {
	return NewModifyWithArgs(domain, parent, types.ActionSetAdminGuard, guard)
}

// SetExecuteGuard sets the guard consulted on execute calls. The zero address clears it.
func SetExecuteGuard(domain types.Domain, parent common.Hash, guard common.Address) (*Modify, error) {
	return NewModifyWithArgs(domain, parent, types.ActionSetExecuteGuard, guard)
}

func (*Modify) isMessage() {}

func (m *Modify) Parent() common.Hash {
	return m.parent
}

func (m *Modify) Domain() types.Domain {
	return m.domain
}

func (m *Modify) Kind() Kind {
	return KindModify
}

func (m *Modify) Title() string {
	return m.action.Title()
}

// Action returns the action tag.
func (m *Modify) Action() types.ActionType {
	return m.action
}

// Data returns the ABI encoded action arguments.
func (m *Modify) Data() []byte {
	return common.CopyBytes(m.data)
}

// Args decodes the action arguments in schema order.
func (m *Modify) Args() ([]any, error) {
	return types.DecodeAction(m.action, m.data)
}

func (m *Modify) TypedData() apitypes.TypedData {
	return apitypes.TypedData{
		Types:       typesWith(apitypes.Types{modifyTypeName: modifyType}),
		PrimaryType: modifyTypeName,
		Domain:      m.domain.TypedDataDomain(),
		Message: apitypes.TypedDataMessage{
			"parent": m.parent.Bytes(),
			"action": new(big.Int).SetUint64(uint64(m.action)),
			"data":   common.CopyBytes(m.data),
		},
	}
}

// Render returns the action followed by one field per schema entry, in schema order. The values
// are the decoded arguments, so encoding them again reproduces Data.
func (m *Modify) Render() []types.Field {
	fields := []types.Field{{Name: "Action", Value: m.action.Title()}}

	args, err := m.Args()
	if err != nil {
		// unreachable, data is decoded at construction
		return append(fields, types.Field{Name: "Data", Value: fmt.Sprintf("%x", m.data)})
	}

	for i, f := range types.ActionSchemas[m.action] {
		fields = append(fields, types.Field{Name: f.Name, Value: args[i]})
	}

	return fields
}
