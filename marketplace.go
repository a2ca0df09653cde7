package magiceden

import "context"

// Time ranges accepted by PopularCollections.
const (
	TimeRange1h  = "1h"
	TimeRange1d  = "1d"
	TimeRange7d  = "7d"
	TimeRange30d = "30d"
)

// Marketplace groups the /marketplace endpoints.
type Marketplace struct {
	client *Client
}

// PopularCollectionsRequest selects the window popularity is measured over.
// The API defaults to one day.
type PopularCollectionsRequest struct {
	TimeRange string `url:"timeRange,omitempty" validate:"omitempty,oneof=1h 1d 7d 30d"`
}

// PopularCollections returns the most traded collections in the window.
func (s *Marketplace) PopularCollections(ctx context.Context, req PopularCollectionsRequest) ([]Collection, error) {
	var out []Collection
	if err := s.client.get(ctx, "/marketplace/popular_collections", req, &out); err != nil {
		return nil, err
	}
	return out, nil
}
