package magiceden

import (
	"context"

	"github.com/magiceden-go/client-go/internal/params"
)

// Tokens groups the /tokens endpoints.
type Tokens struct {
	client *Client
}

// Listings returns the active listings of the token mint.
func (s *Tokens) Listings(ctx context.Context, mint string) ([]Listing, error) {
	seg, err := params.Segment("mint", mint)
	if err != nil {
		return nil, err
	}
	var out []Listing
	if err := s.client.get(ctx, "/tokens/"+seg+"/listings", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
