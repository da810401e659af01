package caravan

import (
	"crypto/ecdsa"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/accounts/usbwallet"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/smartcontractkit/caravan/messages"
	"github.com/smartcontractkit/caravan/types"
)

// Signer is a local key able to sign wallet messages.
type Signer interface {
	GetAddress() (common.Address, error)
	// Sign signs msg. A nil signature with a nil error means the signer declined.
	Sign(msg messages.Message) (*types.Signature, error)
}

var _ Signer = &PrivateKeySigner{}

// PrivateKeySigner signs messages using a private key.
type PrivateKeySigner struct {
	pk *ecdsa.PrivateKey
}

// NewPrivateKeySigner creates a new PrivateKeySigner.
func NewPrivateKeySigner(pk *ecdsa.PrivateKey) *PrivateKeySigner {
	return &PrivateKeySigner{pk: pk}
}

// Sign signs the EIP-712 hash of msg.
func (s *PrivateKeySigner) Sign(msg messages.Message) (*types.Signature, error) {
	raw, err := crypto.Sign(msg.Hash().Bytes(), s.pk)
	if err != nil {
		return nil, err
	}

	return toSignature(raw)
}

// GetAddress returns the address of the signer.
func (s *PrivateKeySigner) GetAddress() (common.Address, error) {
	return crypto.PubkeyToAddress(s.pk.PublicKey), nil
}

var _ Signer = &KeystoreSigner{}

// KeystoreSigner signs messages with an account of an encrypted go-ethereum keystore.
type KeystoreSigner struct {
	ks         *keystore.KeyStore
	account    accounts.Account
	passphrase string
}

// NewKeystoreSigner opens the keystore in dir and selects the account of address.
func NewKeystoreSigner(dir string, address common.Address, passphrase string) (*KeystoreSigner, error) {
	ks := keystore.NewKeyStore(dir, keystore.StandardScryptN, keystore.StandardScryptP)

	account, err := ks.Find(accounts.Account{Address: address})
	if err != nil {
		return nil, fmt.Errorf("failed to find %s in keystore %s: %w", address, dir, err)
	}

	return &KeystoreSigner{ks: ks, account: account, passphrase: passphrase}, nil
}

// Sign decrypts the key for the duration of a single signature over the EIP-712 hash of msg.
func (s *KeystoreSigner) Sign(msg messages.Message) (*types.Signature, error) {
	raw, err := s.ks.SignHashWithPassphrase(s.account, s.passphrase, msg.Hash().Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to sign with keystore account %s: %w", s.account.Address, err)
	}

	return toSignature(raw)
}

func (s *KeystoreSigner) GetAddress() (common.Address, error) {
	return s.account.Address, nil
}

var _ Signer = &LedgerSigner{}

// LedgerSigner signs messages using a Ledger. The device shows the domain separator and struct
// hash of each message for confirmation.
type LedgerSigner struct {
	derivationPath accounts.DerivationPath
	openHub        func() (accounts.Backend, error)
}

// NewLedgerSigner creates a new LedgerSigner.
func NewLedgerSigner(derivationPath []uint32) *LedgerSigner {
	return &LedgerSigner{
		derivationPath: derivationPath,
		openHub: func() (accounts.Backend, error) {
			return usbwallet.NewLedgerHub()
		},
	}
}

// Sign signs msg on the first Ledger found.
func (s *LedgerSigner) Sign(msg messages.Message) (*types.Signature, error) {
	wallet, account, err := s.setupLedgerAccount()
	if err != nil {
		return nil, err
	}
	defer wallet.Close()

	// A 0x19 0x01 payload with the typed data mimetype is signed as EIP-712 on the device
	raw, err := wallet.SignData(account, accounts.MimetypeTypedData, msg.SigningPayload())
	if err != nil {
		return nil, fmt.Errorf("failed to sign %s on ledger: %w", msg.Hash(), err)
	}

	return toSignature(raw)
}

func (s *LedgerSigner) GetAddress() (common.Address, error) {
	wallet, account, err := s.setupLedgerAccount()
	if err != nil {
		return common.Address{}, err
	}
	defer wallet.Close()

	return account.Address, nil
}

// setupLedgerAccount loads the wallet and account from the ledger. Caller is responsible for closing the wallet.
func (s *LedgerSigner) setupLedgerAccount() (accounts.Wallet, accounts.Account, error) {
	ledgerhub, err := s.openHub()
	if err != nil {
		return nil, accounts.Account{}, fmt.Errorf("failed to open ledger hub: %w", err)
	}

	wallets := ledgerhub.Wallets()
	if len(wallets) == 0 {
		return nil, accounts.Account{}, errors.New("no wallets found")
	}
	wallet := wallets[0]

	if err = wallet.Open(""); err != nil {
		return nil, accounts.Account{}, fmt.Errorf("failed to open wallet: %w", err)
	}

	account, err := wallet.Derive(s.derivationPath, true)
	if err != nil {
		wallet.Close() // Only close on error since caller won't be able to
		return nil, accounts.Account{}, fmt.Errorf("is your ledger ethereum app open? Failed to derive account: %w derivation path %v", err, s.derivationPath)
	}

	return wallet, account, nil
}

func toSignature(raw []byte) (*types.Signature, error) {
	sig, err := types.NewSignatureFromBytes(raw)
	if err != nil {
		return nil, err
	}

	return &sig, nil
}
