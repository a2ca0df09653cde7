package main

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/spf13/cobra"

	magiceden "github.com/magiceden-go/client-go"
)

func newCollectionsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "collections",
		Short: "Collection statistics, listings and activity",
	}

	var page magiceden.CollectionsRequest
	list := &cobra.Command{
		Use:   "list",
		Short: "List collections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cols, err := a.client.Collections().List(cmd.Context(), page)
			if err != nil {
				return err
			}
			return a.print(cols)
		},
	}
	list.Flags().IntVar(&page.Offset, "offset", 0, "number of items to skip")
	list.Flags().IntVar(&page.Limit, "limit", 0, "number of items to return (1-1000)")

	stats := &cobra.Command{
		Use:   "stats SYMBOL",
		Short: "Show floor price, listed count and volume",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.client.Collections().Stats(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.print(s)
		},
	}

	holders := &cobra.Command{
		Use:   "holders SYMBOL",
		Short: "Show supply and unique holders",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.client.Collections().HolderStats(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.print(s)
		},
	}

	var actReq magiceden.CollectionActivitiesRequest
	activities := &cobra.Command{
		Use:   "activities SYMBOL",
		Short: "Show recent activity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			acts, err := a.client.Collections().Activities(cmd.Context(), args[0], actReq)
			if err != nil {
				return err
			}
			return a.print(acts)
		},
	}
	activities.Flags().IntVar(&actReq.Offset, "offset", 0, "number of items to skip")
	activities.Flags().IntVar(&actReq.Limit, "limit", 0, "number of items to return (1-1000)")

	var listReq magiceden.CollectionListingsRequest
	var attrs []string
	listings := &cobra.Command{
		Use:   "listings SYMBOL",
		Short: "Show active listings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := parseAttributes(attrs)
			if err != nil {
				return err
			}
			req := listReq
			req.Attributes = filter
			ls, err := a.client.Collections().Listings(cmd.Context(), args[0], req)
			if err != nil {
				return err
			}
			return a.print(ls)
		},
	}
	f := listings.Flags()
	f.IntVar(&listReq.Offset, "offset", 0, "number of items to skip")
	f.IntVar(&listReq.Limit, "limit", 0, "number of items to return")
	f.Float64Var(&listReq.MinPrice, "min-price", 0, "minimum price in SOL")
	f.Float64Var(&listReq.MaxPrice, "max-price", 0, "maximum price in SOL")
	f.StringVar(&listReq.Sort, "sort", "", "listPrice or updatedAt")
	f.StringVar(&listReq.SortDirection, "direction", "", "asc or desc")
	f.StringArrayVar(&attrs, "attr", nil, "trait filter trait=value[|value...]; repeat to AND")

	cmd.AddCommand(list, stats, holders, activities, listings)
	return cmd
}

// parseAttributes turns "hat=cap|crown" into one ORed group per flag.
func parseAttributes(flags []string) (magiceden.AttributeFilter, error) {
	var filter magiceden.AttributeFilter
	for _, f := range flags {
		trait, values, ok := strings.Cut(f, "=")
		if !ok || trait == "" || values == "" {
			return nil, fmt.Errorf("invalid --attr %q: want trait=value", f)
		}
		var group []magiceden.Attribute
		for _, v := range strings.Split(values, "|") {
			group = append(group, magiceden.Attribute{TraitType: trait, Value: v})
		}
		filter = append(filter, group)
	}
	return filter, nil
}

func newPopularCommand(a *app) *cobra.Command {
	var req magiceden.PopularCollectionsRequest
	cmd := &cobra.Command{
		Use:   "popular",
		Short: "Show the most traded collections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cols, err := a.client.Marketplace().PopularCollections(cmd.Context(), req)
			if err != nil {
				return err
			}
			return a.print(cols)
		},
	}
	cmd.Flags().StringVar(&req.TimeRange, "range", "", "1h, 1d, 7d or 30d")
	return cmd
}

func newTokenCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Token listings and offers",
	}

	listings := &cobra.Command{
		Use:   "listings MINT",
		Short: "Show listings of a token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ls, err := a.client.Tokens().Listings(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.print(ls)
		},
	}

	var poolsReq magiceden.MMMTokenPoolsRequest
	pools := &cobra.Command{
		Use:   "pools MINT",
		Short: "Show the best pool offers for a token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ps, err := a.client.MMM().TokenPools(cmd.Context(), args[0], poolsReq)
			if err != nil {
				return err
			}
			return a.print(ps)
		},
	}
	pools.Flags().IntVar(&poolsReq.Limit, "limit", 0, "number of offers (1-5)")

	cmd.AddCommand(listings, pools)
	return cmd
}

func newWalletCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "wallet ADDRESS",
		Short: "Show the public profile of a wallet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := a.client.Wallets().Info(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.print(info)
		},
	}
}

func newPoolsCommand(a *app) *cobra.Command {
	var req magiceden.MMMPoolsRequest
	cmd := &cobra.Command{
		Use:   "pools",
		Short: "List AMM pools of a collection or owner",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ps, err := a.client.MMM().Pools(cmd.Context(), req)
			if err != nil {
				return err
			}
			return a.print(ps)
		},
	}
	f := cmd.Flags()
	f.StringVar(&req.CollectionSymbol, "collection", "", "collection symbol")
	f.StringVar(&req.Owner, "owner", "", "pool owner address")
	f.IntVar(&req.Offset, "offset", 0, "number of items to skip")
	f.IntVar(&req.Limit, "limit", 0, "number of items to return (1-500)")
	return cmd
}

func newGetCommand(a *app) *cobra.Command {
	var params []string
	cmd := &cobra.Command{
		Use:   "get PATH",
		Short: "GET any endpoint and print the JSON response",
		Example: `  magiceden get /launchpad/collections -q limit=5
  magiceden get /tokens/MINT/activities`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := url.Values{}
			for _, p := range params {
				k, v, ok := strings.Cut(p, "=")
				if !ok || k == "" {
					return fmt.Errorf("invalid -q %q: want key=value", p)
				}
				query.Add(k, v)
			}
			var out any
			if err := a.client.Do(cmd.Context(), http.MethodGet, args[0], query, nil, &out); err != nil {
				return err
			}
			return a.print(out)
		},
	}
	cmd.Flags().StringArrayVarP(&params, "query", "q", nil, "query parameter key=value (repeatable)")
	return cmd
}
