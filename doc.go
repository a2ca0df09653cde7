// Package magiceden provides a Go client for the Magic Eden marketplace
// API (Solana, v2).
//
// Every endpoint is a typed method on an endpoint group. Calls share one
// request pipeline: a request is built, sent once, and its response is
// classified. Responses with status 429 are retried with exponential
// backoff until the policy's time budget runs out, except when the API
// reports "insufficient_quota". Every other failure is returned at once.
//
// Basic usage:
//
//	client, err := magiceden.New(os.Getenv("MAGICEDEN_API_KEY"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	stats, err := client.Collections().Stats(ctx, "okay_bears")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("floor:", *stats.FloorPrice)
//
// Errors can be inspected with errors.Is against the Err* sentinels or
// with errors.As against the typed errors:
//
//	var apiErr *magiceden.APIError
//	if errors.As(err, &apiErr) {
//	    fmt.Println(apiErr.StatusCode, apiErr.Message)
//	}
//
// Parameters are validated locally; an invalid request fails with
// ErrInvalidArgument and nothing is sent.
package magiceden
