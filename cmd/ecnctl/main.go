package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/seastack/ecnctl/internal/config"
	"github.com/seastack/ecnctl/internal/events"
	"github.com/seastack/ecnctl/internal/model"
	"github.com/seastack/ecnctl/internal/store/postgres"
	"github.com/seastack/ecnctl/internal/ui"
	"github.com/seastack/ecnctl/internal/wred"
)

const version = "0.1.0"

var (
	listFlag    bool
	profileFlag string
	verbose     bool
	jsonOutput  bool
	noColor     bool

	// thresholdValues holds one flag value per threshold short code.
	thresholdValues = map[string]*string{}
)

var rootCmd = &cobra.Command{
	Use:   "ecnctl",
	Short: "Inspect and modify ECN WRED profile configuration",
	Long: `ecnctl lists WRED profiles stored in the configuration store and
merge-updates individual threshold fields of a named profile.

The store connection is read from ECNCTL_DATABASE_URL (or database_url in
the config file); threshold values are passed through as opaque strings.`,
	Example: `  ecnctl -l
  ecnctl -p AZURE_LOSSLESS --gmin 200
  ecnctl -p AZURE_LOSSLESS --gmin 200 --rmax 500 -V`,
	Version:      version,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		act, err := buildAction(collectFlags(cmd))
		if err != nil {
			return err
		}
		if act == nil {
			// No action requested: print full help, exit non-zero.
			_ = cmd.Help()
			os.Exit(1)
		}

		if noColor || !ui.ShouldUseColor() {
			ui.ForceNoColor()
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		st, err := postgres.New(cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer st.Close()

		pub, err := newPublisher(cfg.NATSURL)
		if err != nil {
			return err
		}
		defer pub.Close()

		mgr := wred.New(st, pub, wred.Options{
			Verbose: verbose,
			Out:     os.Stdout,
			ErrOut:  os.Stderr,
		})

		ctx := context.Background()
		if act.list {
			if jsonOutput {
				return mgr.ListJSON(ctx)
			}
			return mgr.List(ctx)
		}

		// One independent merge-update per threshold flag, in apply order.
		// The first failure aborts the rest; already-applied updates stand.
		for _, op := range act.ops {
			if err := mgr.SetThreshold(ctx, act.profile, op.code, op.value); err != nil {
				return err
			}
		}
		return nil
	},
}

func newPublisher(natsURL string) (events.Publisher, error) {
	if natsURL == "" {
		return &events.NoopPublisher{}, nil
	}
	return events.NewNATSPublisher(natsURL)
}

// collectFlags reduces the cobra flag set to the values buildAction
// validates, recording which threshold flags were explicitly set.
func collectFlags(cmd *cobra.Command) flagValues {
	fv := flagValues{
		list:       listFlag,
		profileSet: cmd.Flags().Changed("profile"),
		profile:    profileFlag,
		thresholds: map[string]string{},
	}
	for code, value := range thresholdValues {
		if cmd.Flags().Changed(code) {
			fv.thresholds[code] = *value
		}
	}
	return fv
}

func init() {
	f := rootCmd.Flags()
	f.BoolVarP(&listFlag, "list", "l", false, "list WRED profiles and their thresholds")
	f.StringVarP(&profileFlag, "profile", "p", "", "profile to update (requires at least one threshold flag)")
	for _, t := range model.Thresholds {
		thresholdValues[t.Code()] = f.String(t.Code(), "", "set "+t.Field())
	}
	f.BoolVarP(&verbose, "verbose", "V", false, "print diagnostic output")
	f.BoolVar(&jsonOutput, "json", false, "output list as JSON")
	f.BoolVar(&noColor, "no-color", false, "disable colored output")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
