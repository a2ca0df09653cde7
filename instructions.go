package magiceden

import "context"

// Instructions groups the endpoints that return unsigned marketplace
// transactions for the caller to sign and submit. Prices are in SOL.
type Instructions struct {
	client *Client
}

// BuyRequest places a bid.
type BuyRequest struct {
	Buyer               string  `url:"buyer" validate:"required"`
	AuctionHouseAddress string  `url:"auctionHouseAddress" validate:"required"`
	TokenMint           string  `url:"tokenMint" validate:"required"`
	Price               float64 `url:"price" validate:"gt=0"`
	BuyerReferral       string  `url:"buyerReferral,omitempty"`
	Expiry              int64   `url:"expiry,omitempty" validate:"min=0"`
}

// BuyNowRequest buys a listed token at its price.
type BuyNowRequest struct {
	Buyer                      string  `url:"buyer" validate:"required"`
	Seller                     string  `url:"seller" validate:"required"`
	AuctionHouseAddress        string  `url:"auctionHouseAddress" validate:"required"`
	TokenMint                  string  `url:"tokenMint" validate:"required"`
	TokenATA                   string  `url:"tokenATA" validate:"required"`
	Price                      float64 `url:"price" validate:"gt=0"`
	BuyerReferral              string  `url:"buyerReferral,omitempty"`
	SellerReferral             string  `url:"sellerReferral,omitempty"`
	BuyerExpiry                int64   `url:"buyerExpiry,omitempty" validate:"min=0"`
	SellerExpiry               int64   `url:"sellerExpiry,omitempty" validate:"min=0"`
	BuyerCreatorRoyaltyPercent *int    `url:"buyerCreatorRoyaltyPercent,omitempty" validate:"omitempty,min=0,max=100"`
}

// BuyNowTransferNFTRequest buys a listed token and sends it to another owner.
type BuyNowTransferNFTRequest struct {
	Buyer                      string  `url:"buyer" validate:"required"`
	Seller                     string  `url:"seller" validate:"required"`
	AuctionHouseAddress        string  `url:"auctionHouseAddress" validate:"required"`
	TokenMint                  string  `url:"tokenMint" validate:"required"`
	TokenATA                   string  `url:"tokenATA" validate:"required"`
	Price                      float64 `url:"price" validate:"gt=0"`
	DestinationATA             string  `url:"destinationATA" validate:"required"`
	DestinationOwner           string  `url:"destinationOwner" validate:"required"`
	CreateATA                  bool    `url:"createATA"`
	BuyerReferral              string  `url:"buyerReferral,omitempty"`
	SellerReferral             string  `url:"sellerReferral,omitempty"`
	BuyerExpiry                int64   `url:"buyerExpiry,omitempty" validate:"min=0"`
	SellerExpiry               int64   `url:"sellerExpiry,omitempty" validate:"min=0"`
	BuyerCreatorRoyaltyPercent *int    `url:"buyerCreatorRoyaltyPercent,omitempty" validate:"omitempty,min=0,max=100"`
}

// BuyCancelRequest withdraws a bid.
type BuyCancelRequest struct {
	Buyer               string  `url:"buyer" validate:"required"`
	AuctionHouseAddress string  `url:"auctionHouseAddress" validate:"required"`
	TokenMint           string  `url:"tokenMint" validate:"required"`
	Price               float64 `url:"price" validate:"gt=0"`
	BuyerReferral       string  `url:"buyerReferral,omitempty"`
	Expiry              int64   `url:"expiry,omitempty" validate:"min=0"`
}

// BuyChangePriceRequest moves a bid to NewPrice.
type BuyChangePriceRequest struct {
	Buyer               string  `url:"buyer" validate:"required"`
	AuctionHouseAddress string  `url:"auctionHouseAddress" validate:"required"`
	TokenMint           string  `url:"tokenMint" validate:"required"`
	Price               float64 `url:"price" validate:"gt=0"`
	NewPrice            float64 `url:"newPrice" validate:"gt=0"`
	BuyerReferral       string  `url:"buyerReferral,omitempty"`
	Expiry              int64   `url:"expiry,omitempty" validate:"min=0"`
}

// SellRequest lists a token.
type SellRequest struct {
	Seller              string  `url:"seller" validate:"required"`
	AuctionHouseAddress string  `url:"auctionHouseAddress" validate:"required"`
	TokenMint           string  `url:"tokenMint" validate:"required"`
	TokenAccount        string  `url:"tokenAccount" validate:"required"`
	Price               float64 `url:"price" validate:"gt=0"`
	SellerReferral      string  `url:"sellerReferral,omitempty"`
	Expiry              int64   `url:"expiry,omitempty" validate:"min=0"`
}

// SellChangePriceRequest moves a listing to NewPrice.
type SellChangePriceRequest struct {
	Seller              string  `url:"seller" validate:"required"`
	AuctionHouseAddress string  `url:"auctionHouseAddress" validate:"required"`
	TokenMint           string  `url:"tokenMint" validate:"required"`
	TokenAccount        string  `url:"tokenAccount" validate:"required"`
	Price               float64 `url:"price" validate:"gt=0"`
	NewPrice            float64 `url:"newPrice" validate:"gt=0"`
	SellerReferral      string  `url:"sellerReferral,omitempty"`
	Expiry              int64   `url:"expiry,omitempty" validate:"min=0"`
}

// SellNowRequest accepts a bid.
type SellNowRequest struct {
	Buyer               string  `url:"buyer" validate:"required"`
	Seller              string  `url:"seller" validate:"required"`
	AuctionHouseAddress string  `url:"auctionHouseAddress" validate:"required"`
	TokenMint           string  `url:"tokenMint" validate:"required"`
	TokenATA            string  `url:"tokenATA" validate:"required"`
	Price               float64 `url:"price" validate:"gt=0"`
	NewPrice            float64 `url:"newPrice" validate:"gt=0"`
	SellerExpiry        int64   `url:"sellerExpiry" validate:"min=0"`
	BuyerReferral       string  `url:"buyerReferral,omitempty"`
	SellerReferral      string  `url:"sellerReferral,omitempty"`
	BuyerExpiry         int64   `url:"buyerExpiry,omitempty" validate:"min=0"`
}

// SellCancelRequest delists a token.
type SellCancelRequest struct {
	Seller              string  `url:"seller" validate:"required"`
	AuctionHouseAddress string  `url:"auctionHouseAddress" validate:"required"`
	TokenMint           string  `url:"tokenMint" validate:"required"`
	TokenAccount        string  `url:"tokenAccount" validate:"required"`
	Price               float64 `url:"price" validate:"gt=0"`
	SellerReferral      string  `url:"sellerReferral,omitempty"`
	Expiry              int64   `url:"expiry,omitempty" validate:"min=0"`
}

// DepositRequest moves SOL into the buyer's escrow.
type DepositRequest struct {
	Buyer               string  `url:"buyer" validate:"required"`
	AuctionHouseAddress string  `url:"auctionHouseAddress" validate:"required"`
	Amount              float64 `url:"amount" validate:"gt=0"`
}

// WithdrawRequest moves SOL out of the buyer's escrow.
type WithdrawRequest struct {
	Buyer               string  `url:"buyer" validate:"required"`
	AuctionHouseAddress string  `url:"auctionHouseAddress" validate:"required"`
	Amount              float64 `url:"amount" validate:"gt=0"`
}

// Buy returns the transaction placing a bid.
func (s *Instructions) Buy(ctx context.Context, req BuyRequest) (*InstructionResponse, error) {
	return s.client.instruction(ctx, "/instructions/buy", req)
}

// BuyNow returns the transaction buying a listed token.
func (s *Instructions) BuyNow(ctx context.Context, req BuyNowRequest) (*InstructionResponse, error) {
	return s.client.instruction(ctx, "/instructions/buy_now", req)
}

// BuyNowTransferNFT returns the transaction buying a listed token for
// another owner.
func (s *Instructions) BuyNowTransferNFT(ctx context.Context, req BuyNowTransferNFTRequest) (*InstructionResponse, error) {
	return s.client.instruction(ctx, "/instructions/buy_now_transfer_nft", req)
}

// BuyCancel returns the transaction cancelling a bid.
func (s *Instructions) BuyCancel(ctx context.Context, req BuyCancelRequest) (*InstructionResponse, error) {
	return s.client.instruction(ctx, "/instructions/buy_cancel", req)
}

// BuyChangePrice returns the transaction changing a bid's price.
func (s *Instructions) BuyChangePrice(ctx context.Context, req BuyChangePriceRequest) (*InstructionResponse, error) {
	return s.client.instruction(ctx, "/instructions/buy_change_price", req)
}

// Sell returns the transaction listing a token.
func (s *Instructions) Sell(ctx context.Context, req SellRequest) (*InstructionResponse, error) {
	return s.client.instruction(ctx, "/instructions/sell", req)
}

// SellChangePrice returns the transaction changing a listing's price.
func (s *Instructions) SellChangePrice(ctx context.Context, req SellChangePriceRequest) (*InstructionResponse, error) {
	return s.client.instruction(ctx, "/instructions/sell_change_price", req)
}

// SellNow returns the transaction accepting a bid.
func (s *Instructions) SellNow(ctx context.Context, req SellNowRequest) (*InstructionResponse, error) {
	return s.client.instruction(ctx, "/instructions/sell_now", req)
}

// SellCancel returns the transaction delisting a token.
func (s *Instructions) SellCancel(ctx context.Context, req SellCancelRequest) (*InstructionResponse, error) {
	return s.client.instruction(ctx, "/instructions/sell_cancel", req)
}

// Deposit returns the transaction funding the buyer's escrow.
func (s *Instructions) Deposit(ctx context.Context, req DepositRequest) (*InstructionResponse, error) {
	return s.client.instruction(ctx, "/instructions/deposit", req)
}

// Withdraw returns the transaction draining the buyer's escrow.
func (s *Instructions) Withdraw(ctx context.Context, req WithdrawRequest) (*InstructionResponse, error) {
	return s.client.instruction(ctx, "/instructions/withdraw", req)
}
