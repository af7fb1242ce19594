package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/propcompare/internal/catalog"
	"github.com/jask/propcompare/internal/config"
	"github.com/jask/propcompare/internal/database/repository"
	"github.com/jask/propcompare/internal/details"
	"github.com/jask/propcompare/internal/format"
	"github.com/jask/propcompare/internal/listing"
	"github.com/jask/propcompare/internal/mortgage"
	"github.com/jask/propcompare/internal/predict"
	"github.com/jask/propcompare/internal/testdata"
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func newCatalogCmd(e *env) *cobra.Command {
	var search string
	var plain bool
	list := func(cmd *cobra.Command, args []string) error {
		db, repo, err := e.openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer db.Close()

		c, err := catalog.Load(cmd.Context(), repo)
		if err != nil {
			return err
		}
		t := newTable("ID", "Title", "Location", "BHK", "Price", "RERA")
		for _, p := range c.Search(search) {
			t.Row(strconv.Itoa(p.ID), p.Title, p.Location, strconv.Itoa(p.BHK), format.Listing(e.cfg.UI.CurrencySymbol, p.Price), yesNo(p.RERAApproved))
		}
		fmt.Fprintln(cmd.OutOrStdout(), t.Render())
		return nil
	}

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the properties available for comparison",
		Args:  cobra.NoArgs,
		RunE:  list,
	}
	cmd.Flags().StringVarP(&search, "search", "s", "", "Filter by title or location")

	importCmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Add or replace properties from a JSON array",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}
			var props []listing.Property
			if err := json.Unmarshal(data, &props); err != nil {
				return fmt.Errorf("decode %s: %w", args[0], err)
			}

			db, repo, err := e.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()
			for _, p := range props {
				if p.ID <= 0 || strings.TrimSpace(p.Title) == "" {
					return fmt.Errorf("property %d: id and title are required", p.ID)
				}
				if err := repo.Upsert(cmd.Context(), p); err != nil {
					return err
				}
			}
			e.logger.Info("catalog import", zap.String("file", args[0]), zap.Int("properties", len(props)))
			fmt.Fprintf(cmd.OutOrStdout(), "imported %s\n", format.Count(len(props), "property", "properties"))
			return nil
		},
	}

	removeCmd := &cobra.Command{
		Use:   "remove ID",
		Short: "Delete a property from the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid id %q", args[0])
			}
			db, repo, err := e.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()
			if err := repo.Delete(cmd.Context(), id); err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return fmt.Errorf("property %d not found", id)
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed property %d\n", id)
			return nil
		},
	}

	showCmd := &cobra.Command{
		Use:   "show ID",
		Short: "Show every detail of one property",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid id %q", args[0])
			}
			db, repo, err := e.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()
			p, err := repo.Get(cmd.Context(), id)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return fmt.Errorf("property %d not found", id)
				}
				return err
			}
			style := ""
			if plain {
				style = "notty"
			}
			out, err := details.Render(p, e.cfg.UI.CurrencySymbol, 80, style)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	showCmd.Flags().BoolVar(&plain, "plain", false, "Render without colour")

	var count int
	var seed uint64
	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Add synthetic listings after the existing ones",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("count must be positive, got %d", count)
			}
			db, repo, err := e.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()
			existing, err := repo.List(cmd.Context())
			if err != nil {
				return err
			}
			next := 1
			for _, p := range existing {
				next = max(next, p.ID+1)
			}
			props, err := testdata.Seed(cmd.Context(), repo, seed, count, next)
			if err != nil {
				return err
			}
			e.logger.Info("catalog generate", zap.Int("first_id", next), zap.Int("properties", len(props)), zap.Uint64("seed", seed))
			fmt.Fprintf(cmd.OutOrStdout(), "generated %s starting at id %d\n", format.Count(len(props), "property", "properties"), next)
			return nil
		},
	}
	generateCmd.Flags().IntVarP(&count, "count", "n", 10, "Number of listings")
	generateCmd.Flags().Uint64Var(&seed, "seed", 1, "Random seed")

	cmd.AddCommand(importCmd, removeCmd, showCmd, generateCmd)
	return cmd
}

func newMortgageCmd(e *env) *cobra.Command {
	var p mortgage.Params
	cmd := &cobra.Command{
		Use:   "mortgage",
		Short: "Estimate monthly payments for a loan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("rate") {
				p.InterestRate = e.cfg.Mortgage.InterestRate
			}
			if !cmd.Flags().Changed("years") {
				p.Years = e.cfg.Mortgage.TermYears
			}
			res, err := mortgage.Calculate(p)
			if err != nil {
				return err
			}
			sym := e.cfg.UI.CurrencySymbol
			t := newTable("", "")
			t.Row("Principal", format.Currency(sym, res.Principal))
			t.Row("Monthly payment", format.Currency(sym, res.MonthlyPayment))
			t.Row("Total payment", format.Currency(sym, res.TotalPayment))
			t.Row("Total interest", format.Currency(sym, res.TotalInterest))
			t.Row("Principal share", fmt.Sprintf("%.1f%%", res.PrincipalPercent))
			t.Row("Interest share", fmt.Sprintf("%.1f%%", res.InterestPercent))
			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return nil
		},
	}
	cmd.Flags().Float64Var(&p.LoanAmount, "loan", 5000000, "Property value")
	cmd.Flags().Float64Var(&p.DownPayment, "down", 1000000, "Down payment")
	cmd.Flags().Float64Var(&p.InterestRate, "rate", 8.5, "Annual interest rate in percent")
	cmd.Flags().IntVar(&p.Years, "years", 20, "Loan term in years")
	return cmd
}

func newPredictCmd(e *env) *cobra.Command {
	var req predict.Request
	var gym, pool bool
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Ask the prediction service for matching properties",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Gym, req.Pool = yesNo(gym), yesNo(pool)
			client := predict.NewClient(e.cfg.Predict.Endpoint, e.cfg.Predict.Timeout, e.logger)
			matches, err := client.Predict(cmd.Context(), req)
			if errors.Is(err, predict.ErrNoMatches) {
				fmt.Fprintln(cmd.OutOrStdout(), "no matching properties")
				return nil
			}
			if err != nil {
				return err
			}
			t := newTable("Society", "Location", "Price", "BHK", "Gym", "Pool", "Rating", "Est. Rent")
			for _, m := range matches {
				t.Row(string(m.SocietyName), string(m.Location), string(m.Price), string(m.BHK),
					yesNo(m.Gym.Yes()), yesNo(m.Pool.Yes()), m.Rating(), string(m.EstimatedRent))
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return nil
		},
	}
	cmd.Flags().IntVar(&req.BHK, "bhk", 2, "Bedrooms (1-5)")
	cmd.Flags().StringVar(&req.Location, "location", "", "Locality")
	cmd.Flags().BoolVar(&req.RERA, "rera", false, "Only RERA approved")
	cmd.Flags().BoolVar(&gym, "gym", false, "Require a gym")
	cmd.Flags().BoolVar(&pool, "pool", false, "Require a swimming pool")
	return cmd
}

func newConfigCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := e.cfg
			t := newTable("Key", "Value")
			t.Row("database.path", c.Database.Path)
			t.Row("ui.currency_symbol", c.UI.CurrencySymbol)
			t.Row("ui.mobile_breakpoint", strconv.Itoa(c.UI.MobileBreakpoint))
			t.Row("ui.notice_timeout", c.UI.NoticeTimeout.String())
			t.Row("ui.prefs_path", c.UI.PrefsPath)
			t.Row("mortgage.down_payment_pct", strconv.FormatFloat(c.Mortgage.DownPaymentPct, 'f', -1, 64))
			t.Row("mortgage.interest_rate", strconv.FormatFloat(c.Mortgage.InterestRate, 'f', -1, 64))
			t.Row("mortgage.term_years", strconv.Itoa(c.Mortgage.TermYears))
			t.Row("predict.endpoint", c.Predict.Endpoint)
			t.Row("predict.timeout", c.Predict.Timeout.String())
			t.Row("log.path", c.Log.Path)
			t.Row("log.level", c.Log.Level)
			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return nil
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "save",
		Short: "Write the effective configuration to the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Save(e.cfg); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "configuration saved")
			return nil
		},
	})
	return cmd
}
