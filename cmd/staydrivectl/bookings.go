package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"staydrive/internal/app"
	"staydrive/internal/cache"
	"staydrive/internal/config"
	"staydrive/internal/identity"
	"staydrive/internal/modules/booking"
	"staydrive/internal/pkg/logger"
)

func bookingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bookings",
		Short: "Inspect and update bookings in the configured store",
	}
	cmd.AddCommand(listBookingsCmd(), getBookingCmd(), setStatusCmd())
	return cmd
}

// bookingService opens the store named by the environment. Status changes
// made here clear the redis listing when redis is configured.
func bookingService(cmd *cobra.Command) (*booking.Service, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	lg := logger.NewDefaultLogger(logger.ParseLevel(cfg.LogLevel)).
		WithFields(logrus.Fields{"service": "staydrivectl"})

	stores, err := app.OpenStores(cfg, lg)
	if err != nil {
		return nil, nil, err
	}
	closers := []func() error{stores.Close}

	var inv booking.Invalidator = cache.Nop{}
	if cfg.RedisEnabled() {
		rdb, err := cache.Connect(cmd.Context(), cache.RedisConfig{
			Addr:     cfg.RedisAddr,
			Username: cfg.RedisUsername,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			lg.Error("redis_unavailable addr=%s error=%v", cfg.RedisAddr, err)
		} else {
			inv = cache.NewListingCache(rdb, cfg.ListingCacheTTL)
			closers = append(closers, rdb.Close)
		}
	}

	svc := booking.NewService(stores.Bookings, stores.Catalog, identity.ContextResolver{}, inv, lg, booking.WithLocation(cfg.Location))
	closeAll := func() {
		for _, c := range closers {
			_ = c()
		}
	}
	return svc, closeAll, nil
}

func listBookingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List bookings of both kinds, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, done, err := bookingService(cmd)
			if err != nil {
				return err
			}
			defer done()

			list, err := svc.ListAll(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "KIND\tREF\tBOOKING ID\tGUEST\tFROM\tTO\tTOTAL\tSTATUS")
			for _, b := range list {
				fmt.Fprintf(w, "%s\t%d\t%s\t%s %s\t%s\t%s\t%.2f\t%s\n",
					b.Kind, b.ID, b.BookingID, b.FirstName, b.LastName, b.StartDate, b.EndDate, b.TotalPrice, b.Status)
			}
			return w.Flush()
		},
	}
}

func getBookingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <bookingId>",
		Short: "Show one booking by its public identifier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, done, err := bookingService(cmd)
			if err != nil {
				return err
			}
			defer done()

			b, err := svc.GetByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, b)
		},
	}
}

func setStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-status <stay|rental> <ref> <status>",
		Short: "Move a booking to pending, confirmed, cancelled or completed",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid ref %q: %w", args[1], err)
			}

			svc, done, err := bookingService(cmd)
			if err != nil {
				return err
			}
			defer done()

			b, err := svc.SetStatus(cmd.Context(), args[0], ref, args[2])
			if err != nil {
				return err
			}
			return printJSON(cmd, b)
		},
	}
}

func printJSON(cmd *cobra.Command, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
