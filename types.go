package magiceden

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"
)

// Attribute is a trait of an NFT.
type Attribute struct {
	TraitType string `json:"traitType"`
	Value     string `json:"value"`
}

// AttributeFilter selects listings by trait. Attributes within an inner
// group are ORed; the groups are ANDed. It is sent as a JSON query value.
type AttributeFilter [][]Attribute

// EncodeValues implements query.Encoder.
func (f AttributeFilter) EncodeValues(key string, v *url.Values) error {
	if len(f) == 0 {
		return nil
	}
	data, err := json.Marshal([][]Attribute(f))
	if err != nil {
		return err
	}
	v.Set(key, string(data))
	return nil
}

// Collection describes an NFT collection.
type Collection struct {
	Symbol       string   `json:"symbol"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Image        string   `json:"image"`
	Twitter      string   `json:"twitter,omitempty"`
	Discord      string   `json:"discord,omitempty"`
	Website      string   `json:"website,omitempty"`
	IsFlagged    *bool    `json:"isFlagged,omitempty"`
	FlagMessage  string   `json:"flagMessage,omitempty"`
	Categories   []string `json:"categories,omitempty"`
	FloorPrice   *float64 `json:"floorPrice,omitempty"`
	ListedCount  *float64 `json:"listedCount,omitempty"`
	AvgPrice24hr *float64 `json:"avgPrice24hr,omitempty"`
	VolumeAll    *float64 `json:"volumeAll,omitempty"`
	IsBadged     *bool    `json:"isBadged,omitempty"`
}

// Listing is an NFT offered for sale.
type Listing struct {
	PDAAddress     string  `json:"pdaAddress"`
	AuctionHouse   string  `json:"auctionHouse"`
	TokenAddress   string  `json:"tokenAddress"`
	TokenMint      string  `json:"tokenMint"`
	Seller         string  `json:"seller"`
	SellerReferral string  `json:"sellerReferral,omitempty"`
	TokenSize      int64   `json:"tokenSize"`
	Price          float64 `json:"price"`
	Rarity         Rarity  `json:"rarity"`
	Extra          Extra   `json:"extra"`
	Expiry         int64   `json:"expiry"`
}

// Extra holds listing media.
type Extra struct {
	Img string `json:"img,omitempty"`
}

// Rarity aggregates the rarity rankings known for a token.
type Rarity struct {
	HowRare  *HowRare  `json:"howrare,omitempty"`
	MoonRank *MoonRank `json:"moonrank,omitempty"`
	MERarity *MERarity `json:"merarity,omitempty"`
}

// HowRare is the howrare.is ranking.
type HowRare struct {
	Rank int `json:"rank"`
}

// MoonRank is the moonrank.app ranking.
type MoonRank struct {
	Crawl          Crawl `json:"crawl"`
	AbsoluteRarity int   `json:"absolute_rarity"`
	Rank           int   `json:"rank"`
}

// Crawl is the moonrank crawl state.
type Crawl struct {
	Complete bool   `json:"complete"`
	ID       string `json:"id"`
}

// MERarity is Magic Eden's own rarity score.
type MERarity struct {
	TokenKey            string               `json:"tokenKey"`
	Score               float64              `json:"score"`
	Rank                *int                 `json:"rank,omitempty"`
	TotalSupply         *int                 `json:"totalSupply,omitempty"`
	AttributeWithCounts []AttributeWithCount `json:"attributeWithCounts,omitempty"`
}

// AttributeWithCount is a trait together with how many tokens share it.
type AttributeWithCount struct {
	TraitType string `json:"traitType"`
	Value     string `json:"value"`
	Count     *int   `json:"count,omitempty"`
}

// Bytes is binary data the API encodes as a JSON array of numbers.
type Bytes []byte

// MarshalJSON encodes b as an array of numbers.
func (b Bytes) MarshalJSON() ([]byte, error) {
	if b == nil {
		return []byte("null"), nil
	}
	ints := make([]int, len(b))
	for i, v := range b {
		ints[i] = int(v)
	}
	return json.Marshal(ints)
}

// UnmarshalJSON accepts an array of numbers in [0, 255], or a base64 string.
func (b *Bytes) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*b = nil
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		decoded, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return fmt.Errorf("decode bytes: %w", err)
		}
		*b = decoded
		return nil
	}

	var ints []int
	if err := json.Unmarshal(data, &ints); err != nil {
		return fmt.Errorf("decode bytes: %w", err)
	}
	out := make([]byte, len(ints))
	for i, v := range ints {
		if v < 0 || v > 255 {
			return fmt.Errorf("decode bytes: value %d at index %d out of range", v, i)
		}
		out[i] = byte(v)
	}
	*b = out
	return nil
}

// Tx is a serialized Solana transaction.
type Tx struct {
	Type string `json:"type,omitempty"`
	Data Bytes  `json:"data"`
}

// InstructionResponse carries an unsigned transaction and the same
// transaction signed by Magic Eden where applicable.
type InstructionResponse struct {
	Tx       Tx `json:"tx"`
	TxSigned Tx `json:"txSigned"`
}
