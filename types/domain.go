package types

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
	"github.com/go-playground/validator/v10"
)

// DefaultDomainName is the EIP-712 domain name used by every Caravan wallet.
const DefaultDomainName = "Caravan Wallet"

// EIP712DomainTypeName is the reserved EIP-712 domain struct name.
const EIP712DomainTypeName = "EIP712Domain"

// EIP712DomainType is the field list of the domain struct. The wallet contract enables exactly
// these four fields.
var EIP712DomainType = []apitypes.Type{
	{Name: "name", Type: "string"},
	{Name: "version", Type: "string"},
	{Name: "chainId", Type: "uint256"},
	{Name: "verifyingContract", Type: "address"},
}

// Domain binds message hashes to a single wallet deployment.
type Domain struct {
	Name              string         `json:"name" validate:"required"`
	Version           string         `json:"version" validate:"required"`
	ChainID           uint64         `json:"chainId" validate:"required"`
	VerifyingContract common.Address `json:"verifyingContract"`
}

// NewDomain returns a validated Domain using the default wallet domain name.
func NewDomain(version string, chainID uint64, verifyingContract common.Address) (Domain, error) {
	d := Domain{
		Name:              DefaultDomainName,
		Version:           version,
		ChainID:           chainID,
		VerifyingContract: verifyingContract,
	}

	if err := d.Validate(); err != nil {
		return Domain{}, err
	}

	return d, nil
}

// Validate checks that every field needed to compute a domain separator is set.
func (d Domain) Validate() error {
	if err := validator.New().Struct(d); err != nil {
		return fmt.Errorf("invalid domain: %w", err)
	}

	return nil
}

// TypedDataDomain converts the domain into its go-ethereum typed data representation.
func (d Domain) TypedDataDomain() apitypes.TypedDataDomain {
	return apitypes.TypedDataDomain{
		Name:              d.Name,
		Version:           d.Version,
		ChainId:           (*math.HexOrDecimal256)(new(big.Int).SetUint64(d.ChainID)),
		VerifyingContract: d.VerifyingContract.Hex(),
	}
}

// Separator returns the EIP-712 domain separator.
func (d Domain) Separator() (common.Hash, error) {
	if err := d.Validate(); err != nil {
		return common.Hash{}, err
	}

	typedData := apitypes.TypedData{
		Types:  apitypes.Types{EIP712DomainTypeName: EIP712DomainType},
		Domain: d.TypedDataDomain(),
	}

	sep, err := typedData.HashStruct(EIP712DomainTypeName, typedData.Domain.Map())
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to hash domain: %w", err)
	}

	return common.BytesToHash(sep), nil
}

func (d Domain) String() string {
	return fmt.Sprintf("%s v%s @ %s (chain %d)", d.Name, d.Version, d.VerifyingContract.Hex(), d.ChainID)
}
