package types

import (
	"errors"
	"fmt"
	"strings"

	abiutils "github.com/smartcontractkit/caravan/internal/utils/abi"
)

// ActionType tags an administrative Modify message. Values are bit flags to match the wallet
// contract's enum encoding.
type ActionType uint8

const (
	ActionUpgradeImplementation ActionType = 1 << iota
	ActionRotateSigners
	ActionConfigureModule
	ActionSetAdminGuard
	ActionSetExecuteGuard
)

// ErrUnknownAction is returned for an action tag outside the closed set above.
var ErrUnknownAction = errors.New("unknown action type")

// SchemaField is one positional argument of an action.
type SchemaField struct {
	Name string
	Type string
}

// ActionSchemas is the static argument schema for each action. Argument data is the ABI
// encoding of these fields in order.
var ActionSchemas = map[ActionType][]SchemaField{
	ActionUpgradeImplementation: {
		{Name: "New Implementation", Type: "address"},
	},
	ActionRotateSigners: {
		{Name: "Signers to Add", Type: "address[]"},
		{Name: "Signers to Remove", Type: "address[]"},
		{Name: "Threshold", Type: "uint256"},
	},
	ActionConfigureModule: {
		{Name: "Module", Type: "address"},
		{Name: "Enabled", Type: "bool"},
	},
	ActionSetAdminGuard: {
		{Name: "New Admin Guard", Type: "address"},
	},
	ActionSetExecuteGuard: {
		{Name: "New Execute Guard", Type: "address"},
	},
}

var actionNames = map[ActionType]string{
	ActionUpgradeImplementation: "upgrade-implementation",
	ActionRotateSigners:         "rotate-signers",
	ActionConfigureModule:       "configure-module",
	ActionSetAdminGuard:         "set-admin-guard",
	ActionSetExecuteGuard:       "set-execute-guard",
}

// ParseActionType parses the kebab-case name of an action.
func ParseActionType(s string) (ActionType, error) {
	for action, name := range actionNames {
		if name == s {
			return action, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAction, s)
}

// Validate returns ErrUnknownAction if a is not a known action.
func (a ActionType) Validate() error {
	if _, ok := ActionSchemas[a]; !ok {
		return fmt.Errorf("%w: %d", ErrUnknownAction, a)
	}

	return nil
}

func (a ActionType) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}

	return fmt.Sprintf("action(%d)", uint8(a))
}

// Title returns the human readable name, e.g. "Rotate signers".
func (a ActionType) Title() string {
	name := strings.ReplaceAll(a.String(), "-", " ")
	if name == "" {
		return name
	}

	return strings.ToUpper(name[:1]) + name[1:]
}

// Schema returns the argument schema of the action.
func (a ActionType) Schema() ([]SchemaField, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}

	return ActionSchemas[a], nil
}

// EncodeAction ABI encodes args according to the action's schema.
func EncodeAction(action ActionType, args ...any) ([]byte, error) {
	schema, err := action.Schema()
	if err != nil {
		return nil, err
	}

	if len(args) != len(schema) {
		return nil, fmt.Errorf("%s expects %d arguments, got %d", action, len(schema), len(args))
	}

	data, err := abiutils.Encode(schemaTypes(schema), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s arguments: %w", action, err)
	}

	return data, nil
}

// DecodeAction is the inverse of EncodeAction.
func DecodeAction(action ActionType, data []byte) ([]any, error) {
	schema, err := action.Schema()
	if err != nil {
		return nil, err
	}

	args, err := abiutils.Decode(schemaTypes(schema), data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s arguments: %w", action, err)
	}

	return args, nil
}

func schemaTypes(schema []SchemaField) []string {
	out := make([]string, 0, len(schema))
	for _, f := range schema {
		out = append(out, f.Type)
	}

	return out
}
