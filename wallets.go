package magiceden

import (
	"context"

	"github.com/magiceden-go/client-go/internal/params"
)

// Wallets groups the /wallets endpoints.
type Wallets struct {
	client *Client
}

// WalletInfo is the public profile of a wallet.
type WalletInfo struct {
	DisplayName string `json:"displayName"`
	Avatar      string `json:"avatar"`
}

// Info returns the profile of the wallet address.
func (s *Wallets) Info(ctx context.Context, address string) (*WalletInfo, error) {
	seg, err := params.Segment("address", address)
	if err != nil {
		return nil, err
	}
	var out WalletInfo
	if err := s.client.get(ctx, "/wallets/"+seg, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
