package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"staydrive/internal/cache"
	"staydrive/internal/modules/booking"
	"staydrive/internal/modules/catalog"
)

// listingInvalidator reaches the API's redis listing cache when REDIS_ADDR is
// set. Without redis nothing is cached, so Nop is enough.
func listingInvalidator(ctx context.Context) (cache.Invalidator, func(), error) {
	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		return cache.Nop{}, func() {}, nil
	}
	db := 0
	if raw := strings.TrimSpace(os.Getenv("REDIS_DB")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid REDIS_DB value %q: %w", raw, err)
		}
		db = n
	}
	rdb, err := cache.Connect(ctx, cache.RedisConfig{
		Addr:     addr,
		Username: strings.TrimSpace(os.Getenv("REDIS_USERNAME")),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       db,
	})
	if err != nil {
		return nil, nil, err
	}
	// Only Invalidate is used, so the TTL does not matter here.
	return cache.NewListingCache(rdb, 0), func() { _ = rdb.Close() }, nil
}

func invalidatePaths(ctx context.Context, inv cache.Invalidator, out io.Writer, paths ...string) error {
	var errs []error
	for _, p := range paths {
		if err := inv.Invalidate(ctx, p); err != nil {
			errs = append(errs, err)
			continue
		}
		fmt.Fprintf(out, "invalidated %s\n", p)
	}
	return errors.Join(errs...)
}

func cacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the API's listing cache",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "invalidate",
		Short: "Drop cached catalog and booking listings, e.g. after editing prices in the CMS",
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, done, err := listingInvalidator(cmd.Context())
			if err != nil {
				return err
			}
			defer done()

			paths := append([]string{booking.ListingPath}, catalog.ListingPaths...)
			return invalidatePaths(cmd.Context(), inv, cmd.OutOrStdout(), paths...)
		},
	})
	return cmd
}
