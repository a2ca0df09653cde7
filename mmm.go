package magiceden

import (
	"context"

	"github.com/magiceden-go/client-go/internal/params"
)

// CurveType is the pricing curve of an AMM pool.
type CurveType string

// Pool curves.
const (
	CurveLinear CurveType = "linear"
	CurveExp    CurveType = "exp"
	CurveXYK    CurveType = "xyk"
)

// PoolType is which side of the market a pool trades.
type PoolType string

// Pool sides.
const (
	PoolBuySided  PoolType = "buy_sided"
	PoolSellSided PoolType = "sell_sided"
	PoolTwoSided  PoolType = "two_sided"
	PoolInvalid   PoolType = "invalid"
)

// MMM groups the Magic Eden AMM endpoints.
type MMM struct {
	client *Client
}

// MMMPool is an AMM pool.
type MMMPool struct {
	SpotPrice                      float64     `json:"spotPrice"`
	CurveType                      CurveType   `json:"curveType"`
	CurveDelta                     float64     `json:"curveDelta"`
	ReinvestFulfillBuy             bool        `json:"reinvestFulfillBuy"`
	ReinvestFulfillSell            bool        `json:"reinvestFulfillSell"`
	Expiry                         int64       `json:"expiry"`
	LPFeeBp                        int64       `json:"lpFeeBp"`
	BuysideCreatorRoyaltyBp        int64       `json:"buysideCreatorRoyaltyBp"`
	PoolOwner                      string      `json:"poolOwner"`
	SellsideAssetAmount            int64       `json:"sellsideAssetAmount"`
	BuysidePaymentAmount           int64       `json:"buysidePaymentAmount"`
	BuyOrdersAmount                int64       `json:"buyOrdersAmount"`
	CollectionSymbol               string      `json:"collectionSymbol"`
	CollectionName                 string      `json:"collectionName"`
	PoolType                       PoolType    `json:"poolType"`
	UUID                           string      `json:"uuid"`
	PoolKey                        string      `json:"poolKey"`
	Cosigner                       string      `json:"cosigner"`
	Attributes                     []Attribute `json:"attributes,omitempty"`
	BlockedAt                      string      `json:"blockedAt,omitempty"`
	Mints                          []string    `json:"mints,omitempty"`
	CollectionSellerFeeBasisPoints int64       `json:"collectionSellerFeeBasisPoints"`
	LPFeeEarned                    int64       `json:"lpFeeEarned"`
	BuyPriceTaker                  *float64    `json:"buyPriceTaker,omitempty"`
	IsMIP1                         *bool       `json:"isMIP1,omitempty"`
	IsOCP                          *bool       `json:"isOCP,omitempty"`
	UpdatedAt                      string      `json:"updatedAt"`
}

// MMMPoolsRequest selects pools by owner or collection. At least one of
// CollectionSymbol and Owner is required.
type MMMPoolsRequest struct {
	CollectionSymbol string `url:"collectionSymbol,omitempty" validate:"required_without=Owner"`
	Owner            string `url:"owner,omitempty"`
	Offset           int    `url:"offset,omitempty" validate:"min=0"`
	Limit            int    `url:"limit,omitempty" validate:"omitempty,min=1,max=500"`
	// Field sorts by: 0 none, 1 address, 2 spot price, 5 buy side payment amount.
	Field int `url:"field,omitempty" validate:"min=0"`
	// Direction is 0 for ascending, 1 for descending.
	Direction int `url:"direction,omitempty" validate:"min=0,max=1"`
}

// MMMTokenPoolsRequest limits the best offers returned for a token.
type MMMTokenPoolsRequest struct {
	Limit int `url:"limit,omitempty" validate:"omitempty,min=1,max=5"`
}

// MMMCreatePoolRequest describes a new pool. Prices are in SOL, fees in
// basis points.
type MMMCreatePoolRequest struct {
	SpotPrice               float64   `url:"spotPrice" validate:"gt=0"`
	CurveType               CurveType `url:"curveType" validate:"required,oneof=linear exp xyk"`
	CurveDelta              float64   `url:"curveDelta" validate:"min=0"`
	ReinvestBuy             bool      `url:"reinvestBuy"`
	ReinvestSell            bool      `url:"reinvestSell"`
	Expiry                  int64     `url:"expiry,omitempty" validate:"min=0"`
	LPFeeBp                 int64     `url:"lpFeeBp" validate:"min=0,max=10000"`
	BuysideCreatorRoyaltyBp int64     `url:"buysideCreatorRoyaltyBp" validate:"min=0,max=10000"`
	PaymentMint             string    `url:"paymentMint" validate:"required"`
	CollectionSymbol        string    `url:"collectionSymbol" validate:"required"`
	Owner                   string    `url:"owner" validate:"required"`
	SolDeposit              float64   `url:"solDeposit,omitempty" validate:"min=0"`
}

// MMMSolWithdrawBuyRequest withdraws SOL from the buy side of a pool.
type MMMSolWithdrawBuyRequest struct {
	Pool          string  `url:"pool" validate:"required"`
	PaymentAmount float64 `url:"paymentAmount" validate:"gt=0"`
}

// MMMSolFulfillBuyRequest sells an asset into a pool.
type MMMSolFulfillBuyRequest struct {
	Pool                string  `url:"pool" validate:"required"`
	AssetAmount         float64 `url:"assetAmount" validate:"gt=0"`
	MinPaymentAmount    float64 `url:"minPaymentAmount" validate:"min=0"`
	Seller              string  `url:"seller" validate:"required"`
	AssetMint           string  `url:"assetMint" validate:"required"`
	AssetTokenAccount   string  `url:"assetTokenAccount" validate:"required"`
	AllowlistAuxAccount string  `url:"allowlistAuxAccount,omitempty"`
}

// MMMSolFulfillSellRequest buys an asset from a pool.
type MMMSolFulfillSellRequest struct {
	Pool                    string  `url:"pool" validate:"required"`
	AssetAmount             float64 `url:"assetAmount" validate:"gt=0"`
	MaxPaymentAmount        float64 `url:"maxPaymentAmount" validate:"gt=0"`
	BuysideCreatorRoyaltyBp int64   `url:"buysideCreatorRoyaltyBp" validate:"min=0,max=10000"`
	Buyer                   string  `url:"buyer" validate:"required"`
	AssetMint               string  `url:"assetMint" validate:"required"`
	AllowlistAuxAccount     string  `url:"allowlistAuxAccount,omitempty"`
}

// Pools returns the pools of an owner or collection.
func (s *MMM) Pools(ctx context.Context, req MMMPoolsRequest) ([]MMMPool, error) {
	var out []MMMPool
	if err := s.client.get(ctx, "/mmm/pools", req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// TokenPools returns the best offers for the token mint.
func (s *MMM) TokenPools(ctx context.Context, mint string, req MMMTokenPoolsRequest) ([]MMMPool, error) {
	seg, err := params.Segment("mint", mint)
	if err != nil {
		return nil, err
	}
	var out []MMMPool
	if err := s.client.get(ctx, "/token/"+seg+"/pools", req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreatePool returns the transaction creating a pool.
func (s *MMM) CreatePool(ctx context.Context, req MMMCreatePoolRequest) (*InstructionResponse, error) {
	return s.client.instruction(ctx, "/instructions/mmm/create-pool", req)
}

// SolWithdrawBuy returns the transaction withdrawing SOL from a pool.
func (s *MMM) SolWithdrawBuy(ctx context.Context, req MMMSolWithdrawBuyRequest) (*InstructionResponse, error) {
	return s.client.instruction(ctx, "/instructions/mmm/sol-withdraw-buy", req)
}

// SolFulfillBuy returns the transaction having a pool fulfill a buy.
func (s *MMM) SolFulfillBuy(ctx context.Context, req MMMSolFulfillBuyRequest) (*InstructionResponse, error) {
	return s.client.instruction(ctx, "/instructions/mmm/sol-fulfill-buy", req)
}

// SolFulfillSell returns the transaction having a pool fulfill a sell.
func (s *MMM) SolFulfillSell(ctx context.Context, req MMMSolFulfillSellRequest) (*InstructionResponse, error) {
	return s.client.instruction(ctx, "/instructions/mmm/sol-fulfill-sell", req)
}
