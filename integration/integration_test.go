//go:build integration

package integration

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	magiceden "github.com/magiceden-go/client-go"
)

var (
	apiKey  string
	baseURL string
	symbol  string
)

func TestMain(m *testing.M) {
	// Load .env file if it exists (won't error if missing)
	if err := godotenv.Load("../.env"); err != nil {
		os.Stderr.WriteString("Note: .env file not found at project root\n")
	}

	apiKey = os.Getenv("MAGICEDEN_API_KEY")
	baseURL = os.Getenv("MAGICEDEN_API_BASEURL")
	symbol = os.Getenv("MAGICEDEN_TEST_COLLECTION")
	if symbol == "" {
		symbol = "okay_bears"
	}

	if apiKey == "" {
		os.Stderr.WriteString("Skipping integration tests: MAGICEDEN_API_KEY not set\n")
		os.Exit(0)
	}

	os.Stderr.WriteString("Running integration tests...\n")
	os.Exit(m.Run())
}

func newClient(t *testing.T) *magiceden.Client {
	t.Helper()

	opts := []magiceden.Option{magiceden.WithTimeout(30 * time.Second)}
	if baseURL != "" {
		opts = append(opts, magiceden.WithBaseURL(baseURL))
	}

	client, err := magiceden.New(apiKey, opts...)
	require.NoError(t, err)
	return client
}

func TestIntegration_CollectionStats(t *testing.T) {
	client := newClient(t)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	stats, err := client.Collections().Stats(ctx, symbol)
	require.NoError(t, err)
	assert.Equal(t, symbol, stats.Symbol)
}

func TestIntegration_CollectionListingsSorted(t *testing.T) {
	client := newClient(t)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	listings, err := client.Collections().Listings(ctx, symbol, magiceden.CollectionListingsRequest{
		Limit:         10,
		Sort:          magiceden.SortListPrice,
		SortDirection: magiceden.SortAsc,
	})
	require.NoError(t, err)
	for i := 1; i < len(listings); i++ {
		assert.LessOrEqual(t, listings[i-1].Price, listings[i].Price)
	}
}

func TestIntegration_PopularCollections(t *testing.T) {
	client := newClient(t)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	cols, err := client.Marketplace().PopularCollections(ctx, magiceden.PopularCollectionsRequest{
		TimeRange: magiceden.TimeRange1d,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, cols)
}

func TestIntegration_UnknownCollection(t *testing.T) {
	client := newClient(t)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	_, err := client.Collections().Stats(ctx, "this_collection_does_not_exist_42")
	require.Error(t, err)

	var apiErr *magiceden.APIError
	if errors.As(err, &apiErr) {
		t.Logf("status %d: %s", apiErr.StatusCode, apiErr.Message)
	}
}
