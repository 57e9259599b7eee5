package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/smartcity/traffic-analyzer/internal/config"
	"github.com/smartcity/traffic-analyzer/internal/domain"
	"github.com/smartcity/traffic-analyzer/internal/llm"
	"github.com/smartcity/traffic-analyzer/internal/registry"
	"github.com/smartcity/traffic-analyzer/internal/service"
)

var (
	locationsFile string
	seed          uint64
	dashboardSvc  *service.DashboardService
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "trafficctl",
		Short: "Traffic Analyzer - synthetic incident dashboard from the terminal",
		Long: `A CLI for generating synthetic traffic incidents, summarising them per location,
drawing historical series and point predictions, and asking questions about the data.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&locationsFile, "locations", "", "YAML file with city and locations (default: built-in Chennai set)")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0, "Random seed; 0 uses RANDOM_SEED, or a fresh seed when that is unset")

	rootCmd.AddCommand(locationsCmd())
	rootCmd.AddCommand(incidentsCmd())
	rootCmd.AddCommand(askCmd())
	rootCmd.AddCommand(historyCmd())
	rootCmd.AddCommand(predictCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup builds the services shared by every command
func setup(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	cfg := config.Load()
	cfg.SetupLogger()
	if locationsFile != "" {
		cfg.LocationsFile = locationsFile
	}

	reg, err := registry.Load(cfg.LocationsFile)
	if err != nil {
		return err
	}

	insights := service.NewInsightService(llm.NewBedrockClient(cfg.Bedrock), cfg.InsightTimeout)
	dashboardSvc = service.NewDashboardService(reg, insights, cfg.IncidentCount, cfg.RandomSeed)
	log.Debug().Str("city", reg.City()).Msg("CLI initialised")
	return nil
}

func locationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "locations",
		Short: "List the selectable locations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := dashboardSvc.Registry()
			fmt.Printf("%s\n", reg.City())
			for _, loc := range reg.Options() {
				fmt.Printf("  %s\n", loc)
			}
			return nil
		},
	}
}

func incidentsCmd() *cobra.Command {
	var location string
	var count int

	cmd := &cobra.Command{
		Use:   "incidents",
		Short: "Generate incidents and show the traffic overview",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dash, err := dashboardSvc.GetDashboard(cmd.Context(), service.DashboardQuery{
				Location: domain.Location(location),
				Count:    count,
				Seed:     seed,
			})
			if err != nil {
				return err
			}
			printDashboard(dash)
			return nil
		},
	}

	cmd.Flags().StringVarP(&location, "location", "l", string(domain.AllLocations), "Location to filter by")
	cmd.Flags().IntVarP(&count, "count", "n", 0, "Number of incidents to generate (default from INCIDENT_COUNT)")
	return cmd
}

func askCmd() *cobra.Command {
	var location string

	cmd := &cobra.Command{
		Use:   "ask [question]",
		Short: "Ask a question about the current traffic data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ans, err := dashboardSvc.Ask(cmd.Context(), service.DashboardQuery{
				Location: domain.Location(location),
				Seed:     seed,
			}, args[0])
			if err != nil {
				return err
			}
			fmt.Println(ans.Answer)
			return nil
		},
	}

	cmd.Flags().StringVarP(&location, "location", "l", string(domain.AllLocations), "Location the question is about")
	return cmd
}

func historyCmd() *cobra.Command {
	var location, start, end string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the historical traffic series for a location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			startDate, err := parseDate(start)
			if err != nil {
				return err
			}
			endDate, err := parseDate(end)
			if err != nil {
				return err
			}

			res, err := dashboardSvc.GetHistory(cmd.Context(), service.HistoryQuery{
				Location: domain.Location(location),
				Start:    startDate,
				End:      endDate,
				Seed:     seed,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Historical Traffic Analysis for %s\n\n", res.Location)
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "DATE\tINCIDENTS\tAVG DELAY (s)")
			for _, p := range res.Points {
				fmt.Fprintf(w, "%s\t%d\t%.2f\n", p.Date.Format(time.DateOnly), p.IncidentCount, p.AverageDelaySeconds)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&location, "location", "l", "", "Location (required)")
	cmd.Flags().StringVar(&start, "start", "", "Start date YYYY-MM-DD (default 30 days before end)")
	cmd.Flags().StringVar(&end, "end", "", "End date YYYY-MM-DD (default today)")
	_ = cmd.MarkFlagRequired("location")
	return cmd
}

func predictCmd() *cobra.Command {
	var location, date string

	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Draw a traffic prediction for a location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseDate(date)
			if err != nil {
				return err
			}

			p, err := dashboardSvc.GetPrediction(cmd.Context(), service.PredictionQuery{
				Location: domain.Location(location),
				Date:     d,
				Seed:     seed,
			})
			if err != nil {
				return err
			}

			day := p.Date.Format(time.DateOnly)
			fmt.Printf("Predicted number of incidents for %s in %s: %d\n", day, p.Location, p.PredictedIncidentCount)
			fmt.Printf("Predicted average delay for %s in %s: %s\n", day, p.Location,
				service.FormatAverageDelay(p.PredictedAverageDelaySeconds))
			return nil
		},
	}

	cmd.Flags().StringVarP(&location, "location", "l", "", "Location (required)")
	cmd.Flags().StringVar(&date, "date", "", "Prediction date YYYY-MM-DD (default tomorrow)")
	_ = cmd.MarkFlagRequired("location")
	return cmd
}

func printDashboard(dash domain.Dashboard) {
	fmt.Printf("Traffic Overview on %s (%s, %s)\n\n", dash.Date, dash.Location, dash.City)

	if dash.Summary == nil {
		fmt.Printf("No traffic incident data available for %s.\n", dash.Location)
		return
	}

	avg, _ := dash.Summary.AverageDelay()
	fmt.Printf("Total incidents: %d\n", dash.Summary.Count)
	fmt.Printf("Average delay: %s\n", service.FormatAverageDelay(avg))
	fmt.Printf("Total affected road length: %s\n\n", service.FormatLength(dash.Summary.TotalLengthMeters))

	fmt.Println("Incident Type Distribution")
	for _, tc := range dash.TypeDistribution {
		fmt.Printf("  %-13s %d\n", tc.Type, tc.Count)
	}

	fmt.Printf("\nTop %d Most Affected Areas\n", service.DefaultTopAffected)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tFROM\tTO\tDELAY\tLENGTH\tTYPE")
	for _, r := range dash.TopAffected {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n", r.Rank, r.From, r.To, r.Delay, r.Length, r.Type)
	}
	_ = w.Flush()
}

func parseDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", raw, err)
	}
	return t, nil
}
