package magiceden

import (
	"context"

	"github.com/magiceden-go/client-go/internal/params"
)

// Listing sort fields.
const (
	SortListPrice = "listPrice"
	SortUpdatedAt = "updatedAt"
)

// Sort directions.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// Collections groups the /collections endpoints.
type Collections struct {
	client *Client
}

// CollectionActivitiesRequest pages through collection activities.
type CollectionActivitiesRequest struct {
	Offset int `url:"offset,omitempty" validate:"min=0"`
	Limit  int `url:"limit,omitempty" validate:"omitempty,min=1,max=1000"`
}

// CollectionActivity is a sale, listing, bid or delisting in a collection.
type CollectionActivity struct {
	Signature        string  `json:"signature"`
	Type             string  `json:"type"`
	Source           string  `json:"source"`
	TokenMint        string  `json:"tokenMint,omitempty"`
	CollectionSymbol string  `json:"collectionSymbol,omitempty"`
	Slot             int64   `json:"slot"`
	BlockTime        int64   `json:"blockTime"`
	Buyer            string  `json:"buyer,omitempty"`
	BuyerReferral    string  `json:"buyerReferral"`
	Seller           string  `json:"seller,omitempty"`
	SellerReferral   string  `json:"sellerReferral,omitempty"`
	Price            float64 `json:"price"`
	Image            string  `json:"image,omitempty"`
}

// CollectionStats summarizes the market of a collection.
type CollectionStats struct {
	Symbol       string   `json:"symbol"`
	FloorPrice   *float64 `json:"floorPrice,omitempty"`
	ListedCount  *int64   `json:"listedCount,omitempty"`
	AvgPrice24hr *float64 `json:"avgPrice24hr,omitempty"`
	VolumeAll    *float64 `json:"volumeAll,omitempty"`
}

// CollectionsRequest pages through all collections.
type CollectionsRequest struct {
	Offset int `url:"offset,omitempty" validate:"min=0"`
	Limit  int `url:"limit,omitempty" validate:"omitempty,min=1,max=1000"`
}

// CollectionListingsRequest filters and sorts the listings of a collection.
// Prices are in SOL.
type CollectionListingsRequest struct {
	Offset        int             `url:"offset,omitempty" validate:"min=0"`
	Limit         int             `url:"limit,omitempty" validate:"omitempty,min=1,max=1000"`
	MinPrice      float64         `url:"minPrice,omitempty" validate:"min=0"`
	MaxPrice      float64         `url:"maxPrice,omitempty" validate:"min=0"`
	Attributes    AttributeFilter `url:"attributes,omitempty"`
	Sort          string          `url:"sort,omitempty" validate:"omitempty,oneof=listPrice updatedAt"`
	SortDirection string          `url:"sortDirection,omitempty" validate:"omitempty,oneof=asc desc"`
}

// HolderStats reports how a collection's supply is distributed.
type HolderStats struct {
	Symbol        string `json:"symbol"`
	TotalSupply   *int   `json:"totalSupply,omitempty"`
	UniqueHolders *int   `json:"uniqueHolders,omitempty"`
}

// Activities returns the activities of the collection symbol.
func (s *Collections) Activities(ctx context.Context, symbol string, req CollectionActivitiesRequest) ([]CollectionActivity, error) {
	seg, err := params.Segment("symbol", symbol)
	if err != nil {
		return nil, err
	}
	var out []CollectionActivity
	if err := s.client.get(ctx, "/collections/"+seg+"/activities", req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Stats returns market statistics of the collection symbol.
func (s *Collections) Stats(ctx context.Context, symbol string) (*CollectionStats, error) {
	seg, err := params.Segment("symbol", symbol)
	if err != nil {
		return nil, err
	}
	var out CollectionStats
	if err := s.client.get(ctx, "/collections/"+seg+"/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// List returns collections in the order the marketplace lists them.
func (s *Collections) List(ctx context.Context, req CollectionsRequest) ([]Collection, error) {
	var out []Collection
	if err := s.client.get(ctx, "/collections", req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Listings returns the active listings of the collection symbol.
func (s *Collections) Listings(ctx context.Context, symbol string, req CollectionListingsRequest) ([]Listing, error) {
	seg, err := params.Segment("symbol", symbol)
	if err != nil {
		return nil, err
	}
	if req.MaxPrice > 0 && req.MinPrice > req.MaxPrice {
		return nil, &InvalidArgumentError{Field: "minPrice", Reason: "must not exceed maxPrice"}
	}
	var out []Listing
	if err := s.client.get(ctx, "/collections/"+seg+"/listings", req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// HolderStats returns holder statistics of the collection symbol.
func (s *Collections) HolderStats(ctx context.Context, symbol string) (*HolderStats, error) {
	seg, err := params.Segment("symbol", symbol)
	if err != nil {
		return nil, err
	}
	var out HolderStats
	if err := s.client.get(ctx, "/collections/"+seg+"/holder_stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
