package magiceden

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarketplace_PopularCollections(t *testing.T) {
	api := newFakeAPI(t)
	api.handle("/v2/marketplace/popular_collections", http.StatusOK, `[{"symbol":"hot","name":"Hot","description":"d","image":"i","floorPrice":1.5}]`)
	client := api.client()

	cols, err := client.Marketplace().PopularCollections(context.Background(), PopularCollectionsRequest{TimeRange: TimeRange7d})
	require.NoError(t, err)
	require.Len(t, cols, 1)
	assert.Equal(t, "hot", cols[0].Symbol)
	assert.Equal(t, 1.5, *cols[0].FloorPrice)
	assert.Equal(t, "7d", api.lastRequest().Query.Get("timeRange"))
}

func TestMarketplace_PopularCollections_DefaultWindow(t *testing.T) {
	api := newFakeAPI(t)
	api.handle("/v2/marketplace/popular_collections", http.StatusOK, `[]`)
	client := api.client()

	cols, err := client.Marketplace().PopularCollections(context.Background(), PopularCollectionsRequest{})
	require.NoError(t, err)
	assert.Empty(t, cols)
	assert.Empty(t, api.lastRequest().Query)
}

func TestMarketplace_PopularCollections_InvalidWindow(t *testing.T) {
	api := newFakeAPI(t)
	client := api.client()

	_, err := client.Marketplace().PopularCollections(context.Background(), PopularCollectionsRequest{TimeRange: "2w"})
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Empty(t, api.requests())
}
