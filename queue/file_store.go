package queue

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/smartcontractkit/caravan/messages"
	"github.com/smartcontractkit/caravan/sdk"
	"github.com/smartcontractkit/caravan/types"
)

const (
	domainFile     = "domain.json"
	messageFile    = "message.json"
	signaturesDir  = "signatures"
	dirPermission  = 0o755
	filePermission = 0o644
)

var _ Store = (*FileStore)(nil)

// FileStore persists the queue as a directory tree:
//
//	<root>/<domain separator>/domain.json
//	<root>/<domain separator>/<message hash>/message.json
//	<root>/<domain separator>/<message hash>/signatures/<signer>
//
// Signature files hold exactly 65 bytes, r || s || v.
type FileStore struct {
	root string
}

// NewFileStore returns a store rooted at root. The directory is created on first save.
func NewFileStore(root string) *FileStore {
	return &FileStore{root: root}
}

// Root returns the store's root directory.
func (s *FileStore) Root() string {
	return s.root
}

// Load reads and verifies every item under the root. A missing root is an empty store.
func (s *FileStore) Load(ctx context.Context) ([]*Item, error) {
	domains, err := os.ReadDir(s.root)
	if errors.Is(err, fs.ErrNotExist) {
		return []*Item{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read queue store: %w", err)
	}

	records := make([]record, 0)
	for _, entry := range domains {
		if !entry.IsDir() {
			return nil, corruptf("unexpected file %s", filepath.Join(s.root, entry.Name()))
		}

		recs, err := s.loadDomain(entry.Name())
		if err != nil {
			return nil, err
		}
		records = append(records, recs...)
	}

	items, err := verifyAll(records)
	if err != nil {
		return nil, err
	}

	sdk.LoggerFrom(ctx).Debugf("read %d items from %s", len(items), s.root)

	return items, nil
}

func (s *FileStore) loadDomain(name string) ([]record, error) {
	sep, err := parseHash(name)
	if err != nil {
		return nil, corruptf("domain directory %s: %v", name, err)
	}

	dir := filepath.Join(s.root, name)
	raw, err := os.ReadFile(filepath.Join(dir, domainFile))
	if err != nil {
		return nil, corruptf("domain %s: %v", name, err)
	}

	domain, err := decodeDomain(raw)
	if err != nil {
		return nil, corruptf("domain %s: %v", name, err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, corruptf("domain %s: %v", name, err)
	}

	records := make([]record, 0, len(entries))
	for _, entry := range entries {
		if entry.Name() == domainFile {
			continue
		}
		if !entry.IsDir() {
			return nil, corruptf("unexpected file %s", filepath.Join(dir, entry.Name()))
		}

		r, err := s.loadMessage(dir, entry.Name())
		if err != nil {
			return nil, err
		}
		r.separator = sep
		r.domain = domain
		records = append(records, r)
	}

	return records, nil
}

func (s *FileStore) loadMessage(domainDir, name string) (record, error) {
	hash, err := parseHash(name)
	if err != nil {
		return record{}, corruptf("message directory %s: %v", name, err)
	}

	dir := filepath.Join(domainDir, name)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return record{}, corruptf("message %s: %v", name, err)
	}
	for _, entry := range entries {
		if entry.Name() != messageFile && entry.Name() != signaturesDir {
			return record{}, corruptf("unexpected entry %s", filepath.Join(dir, entry.Name()))
		}
	}

	raw, err := os.ReadFile(filepath.Join(dir, messageFile))
	if err != nil {
		return record{}, corruptf("message %s: %v", name, err)
	}

	sigs, err := s.loadSignatures(filepath.Join(dir, signaturesDir))
	if err != nil {
		return record{}, err
	}

	return record{hash: hash, message: raw, signatures: sigs}, nil
}

func (s *FileStore) loadSignatures(dir string) (map[common.Address][]byte, error) {
	sigs := make(map[common.Address][]byte)

	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return sigs, nil
	}
	if err != nil {
		return nil, corruptf("signatures %s: %v", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !common.IsHexAddress(entry.Name()) {
			return nil, corruptf("unexpected signature entry %s", filepath.Join(dir, entry.Name()))
		}

		raw, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, corruptf("signature %s: %v", entry.Name(), err)
		}
		if len(raw) != types.SignatureBytesLength {
			return nil, corruptf("signature %s has %d bytes, want %d", entry.Name(), len(raw), types.SignatureBytesLength)
		}

		signer := common.HexToAddress(entry.Name())
		if _, dup := sigs[signer]; dup {
			return nil, corruptf("duplicate signature files for %s", signer)
		}
		sigs[signer] = raw
	}

	return sigs, nil
}

// Save writes items and deletes removed. Existing files are replaced.
func (s *FileStore) Save(ctx context.Context, items []*Item, removed []*Item) error {
	for _, item := range items {
		if err := s.saveItem(item); err != nil {
			return err
		}
	}

	for _, item := range removed {
		sep, err := itemSeparator(item)
		if err != nil {
			return err
		}

		if err := os.RemoveAll(filepath.Join(s.root, sep.Hex(), item.Hash().Hex())); err != nil {
			return fmt.Errorf("failed to delete %s: %w", item.Hash(), err)
		}
	}

	sdk.LoggerFrom(ctx).Debugf("wrote %d items to %s", len(items), s.root)

	return nil
}

func (s *FileStore) saveItem(item *Item) error {
	domain := item.Message().Domain()
	sep, err := domain.Separator()
	if err != nil {
		return err
	}

	domainDir := filepath.Join(s.root, sep.Hex())
	itemDir := filepath.Join(domainDir, item.Hash().Hex())
	sigDir := filepath.Join(itemDir, signaturesDir)
	if err := os.MkdirAll(sigDir, dirPermission); err != nil {
		return fmt.Errorf("failed to create %s: %w", sigDir, err)
	}

	rawDomain, err := encodeDomain(domain)
	if err != nil {
		return err
	}
	if err := writeFileAtomic(filepath.Join(domainDir, domainFile), rawDomain); err != nil {
		return err
	}

	rawMessage, err := messages.Marshal(item.Message())
	if err != nil {
		return err
	}
	if err := writeFileAtomic(filepath.Join(itemDir, messageFile), rawMessage); err != nil {
		return err
	}

	sigs := item.Signatures()
	for _, signer := range sigs.Signers() {
		sig, _ := sigs.Get(signer)
		if err := writeFileAtomic(filepath.Join(sigDir, signer.Hex()), sig.ToBytes()); err != nil {
			return err
		}
	}

	return nil
}

// writeFileAtomic replaces path with data through a rename so readers never see partial files.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Chmod(tmp.Name(), filePermission); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

func parseHash(name string) (common.Hash, error) {
	raw, err := hexutil.Decode(name)
	if err != nil {
		return common.Hash{}, err
	}
	if len(raw) != common.HashLength {
		return common.Hash{}, fmt.Errorf("want %d bytes, got %d", common.HashLength, len(raw))
	}

	return common.BytesToHash(raw), nil
}
