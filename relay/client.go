// Package relay talks to a signature coordinator shared by the signers of a wallet. Clients
// publish the signatures they produce and pull the ones other signers published, so queue items
// can be confirmed without sharing a queue directory.
package relay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-resty/resty/v2"

	"github.com/smartcontractkit/caravan/messages"
	"github.com/smartcontractkit/caravan/types"
)

const defaultTimeout = 30 * time.Second

// ErrHashMismatch is returned when the coordinator serves a message whose hash differs from the
// one it was listed under.
var ErrHashMismatch = errors.New("message hash mismatch")

// PendingMessage is a message the coordinator expects a signer to sign.
type PendingMessage struct {
	Hash    common.Hash     `json:"hash"`
	Message json.RawMessage `json:"message"`
}

// SignedMessage is a signature published for a message.
type SignedMessage struct {
	Hash      common.Hash     `json:"hash"`
	Signer    common.Address  `json:"signer"`
	Signature types.Signature `json:"signature"`
	Message   json.RawMessage `json:"message,omitempty"`
}

// Client is a coordinator client bound to a single wallet domain.
type Client struct {
	http   *resty.Client
	domain types.Domain
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying resty client, e.g. to add auth headers or retries.
func WithHTTPClient(c *resty.Client) Option {
	return func(client *Client) {
		client.http = c
	}
}

// NewClient returns a client of the coordinator at baseURL.
func NewClient(baseURL string, domain types.Domain, opts ...Option) *Client {
	c := &Client{
		http:   resty.New().SetTimeout(defaultTimeout),
		domain: domain,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.http.SetBaseURL(baseURL)

	return c
}

// Pending returns the messages awaiting a signature of signer. Messages that do not decode under
// the client's domain, or whose hash does not match, are rejected.
func (c *Client) Pending(ctx context.Context, signer common.Address) ([]messages.Message, error) {
	var pending []PendingMessage
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("id", signer.Hex()).
		SetResult(&pending).
		Get("/signer/{id}/messages")
	if err := checkResponse(resp, err, "query messages"); err != nil {
		return nil, err
	}

	out := make([]messages.Message, 0, len(pending))
	for _, p := range pending {
		msg, err := messages.Unmarshal(c.domain, p.Message)
		if err != nil {
			return nil, fmt.Errorf("failed to decode pending message %s: %w", p.Hash, err)
		}
		if msg.Hash() != p.Hash {
			return nil, fmt.Errorf("%w: listed as %s, computed %s", ErrHashMismatch, p.Hash, msg.Hash())
		}
		out = append(out, msg)
	}

	return out, nil
}

// Publish posts the signature of msg by signer.
func (c *Client) Publish(ctx context.Context, msg messages.Message, signer common.Address, sig types.Signature) error {
	raw, err := messages.Marshal(msg)
	if err != nil {
		return err
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(SignedMessage{Hash: msg.Hash(), Signer: signer, Signature: sig, Message: raw}).
		Post("/signature")

	return checkResponse(resp, err, "post signature")
}

// Signatures returns the published signatures of hash keyed by signer. Signatures that do not
// recover to their claimed signer are dropped.
func (c *Client) Signatures(ctx context.Context, hash common.Hash) (*types.SignatureSet, error) {
	var signed []SignedMessage
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("hash", hash.Hex()).
		SetResult(&signed).
		Get("/message/{hash}/signatures")
	if err := checkResponse(resp, err, "query signatures"); err != nil {
		return nil, err
	}

	set := types.NewSignatureSet(hash)
	for _, s := range signed {
		if s.Hash != hash {
			continue
		}
		// corrupt entries are skipped
		_ = set.Add(s.Signer, s.Signature)
	}

	return set, nil
}

func checkResponse(resp *resty.Response, err error, action string) error {
	if err != nil {
		return fmt.Errorf("failed to %s: %w", action, err)
	}
	if resp.IsError() {
		return fmt.Errorf("failed to %s: %s: %s", action, resp.Status(), resp.String())
	}

	return nil
}
