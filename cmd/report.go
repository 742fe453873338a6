package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/jekabolt/grbpwr-insights/internal/categorize"
	"github.com/jekabolt/grbpwr-insights/internal/clientreport"
	"github.com/jekabolt/grbpwr-insights/internal/daterange"
	"github.com/jekabolt/grbpwr-insights/internal/entity"
	"github.com/jekabolt/grbpwr-insights/internal/form"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func reportCmd() *cobra.Command {
	var (
		tenantId int
		q        form.WindowQuery
	)
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print behavior and spending categories of a tenant's clients",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := q.Validate(); err != nil {
				return err
			}
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			cfg, db, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			engine, err := categorize.NewFromConfig(cfg.Analytics, db.Orders(), db.Clients())
			if err != nil {
				return err
			}
			c, err := daterange.New().ResolveComparison(q.Request())
			if err != nil {
				return err
			}
			rep, err := clientreport.New(engine).Report(ctx, tenantId, c)
			if err != nil {
				return err
			}
			printReport(cmd.OutOrStdout(), rep)
			return nil
		},
	}
	cmd.Flags().IntVarP(&tenantId, "tenant", "t", 1, "tenant id")
	cmd.Flags().StringVarP(&q.Preset, "preset", "p", daterange.DefaultPreset.String(), "window preset")
	cmd.Flags().StringVar(&q.From, "from", "", "window start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&q.To, "to", "", "window end date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&q.Compare, "compare", "", "compare with a second window (true/false)")
	cmd.Flags().StringVar(&q.ComparePreset, "compare-preset", "", "comparison window preset")
	cmd.Flags().StringVar(&q.CompareFrom, "compare-from", "", "comparison window start date")
	cmd.Flags().StringVar(&q.CompareTo, "compare-to", "", "comparison window end date")
	return cmd
}

func printReport(out io.Writer, rep *entity.ClientCategoriesReport) {
	p := message.NewPrinter(language.English)
	p.Fprintf(out, "period %s .. %s, %d clients\n",
		rep.Period.From.Format("2006-01-02"), rep.Period.To.Format("2006-01-02"), rep.TotalClients)
	if rep.ComparePeriod != nil && rep.CompareTotal != nil {
		p.Fprintf(out, "compared with %s .. %s, %d clients\n",
			rep.ComparePeriod.From.Format("2006-01-02"), rep.ComparePeriod.To.Format("2006-01-02"), *rep.CompareTotal)
	}

	printRows(out, p, "behavior", rep.Behavior, func(c string) string {
		return entity.BehaviorCategory(c).Label()
	})
	printRows(out, p, "spending", rep.Spending, func(c string) string {
		return entity.SpendingCategory(c).Label()
	})
}

func printRows(out io.Writer, p *message.Printer, title string, rows []entity.CategoryStatsWithComparison, label func(string) string) {
	fmt.Fprintf(out, "\n%s\n", cases.Title(language.English).String(title))
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "category\tclients\tshare\ttotal\taverage\tchange\t")
	for _, r := range rows {
		change := "-"
		if r.ChangePct != nil {
			change = p.Sprintf("%+.1f%%", *r.ChangePct)
		}
		total, _ := r.TotalSpent.Float64()
		avg, _ := r.AverageSpending.Float64()
		p.Fprintf(tw, "%s\t%d\t%.1f%%\t%.2f\t%.2f\t%s\t\n",
			label(r.Category), r.Count, r.Percentage, total, avg, change)
	}
	tw.Flush()
}
