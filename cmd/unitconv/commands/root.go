package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"unitconv/internal/app"
	"unitconv/internal/telemetry"
)

const serviceName = "unitconv"

var (
	home        string
	passphrase  string
	apiKey      string
	exchangeURL string
	timeout     time.Duration
	locale      string
	editMode    string
	appCtx      *app.App
	appCfg      app.Config
	stopTracing func(context.Context) error
)

// Execute runs the CLI with os.Args. Cancelling ctx aborts in-flight
// rate lookups and ends an interactive session.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "unitconv",
		Short:         "Convert values between units of length, weight, temperature, currency and more",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig()
			if err != nil {
				return err
			}
			applyFlagOverrides(cmd, &cfg)
			cfg.ErrOut = cmd.ErrOrStderr()
			appCfg = cfg

			if skipsWiring(cmd) {
				return nil
			}
			shutdown, err := telemetry.Setup(cmd.Context(), serviceName, cfg.Telemetry)
			if err != nil {
				return err
			}
			stopTracing = shutdown

			appCtx, err = app.New(cfg)
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if stopTracing == nil {
				return nil
			}
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			err := stopTracing(ctx)
			stopTracing = nil
			return err
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.unitconv)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase protecting the stored API key")
	root.PersistentFlags().StringVar(&apiKey, "api-key", "", "exchange-rate API key (overrides the stored key)")
	root.PersistentFlags().StringVar(&exchangeURL, "exchange-url", "", "exchange-rate provider base URL")
	root.PersistentFlags().DurationVar(&timeout, "timeout", 0, "exchange-rate lookup timeout (e.g. 3s)")
	root.PersistentFlags().StringVar(&locale, "locale", "", "locale for displayed numbers (e.g. en-US, de-DE)")
	root.PersistentFlags().StringVar(&editMode, "edit-mode", "", "how converted-value edits propagate in interactive mode: inverse or mirror")

	root.AddCommand(categoriesCmd(), unitsCmd(), convertCmd(), interactiveCmd(), keyCmd())
	return root
}

// applyFlagOverrides lets explicitly set flags win over environment values.
func applyFlagOverrides(cmd *cobra.Command, cfg *app.Config) {
	flags := cmd.Flags()
	if flags.Changed("home") {
		cfg.Home = home
	}
	if flags.Changed("passphrase") {
		cfg.Passphrase = passphrase
	}
	if flags.Changed("api-key") {
		cfg.ExchangeAPIKey = apiKey
	}
	if flags.Changed("exchange-url") {
		cfg.ExchangeURL = exchangeURL
	}
	if flags.Changed("timeout") {
		cfg.ExchangeTimeout = timeout
	}
	if flags.Changed("locale") {
		cfg.Locale = locale
	}
	if flags.Changed("edit-mode") {
		cfg.EditMode = editMode
	}
}

// skipsWiring reports whether cmd only needs configuration, not the app.
func skipsWiring(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations["wiring"] == "none" {
			return true
		}
	}
	return false
}
