package cli

import (
	"fmt"
	"io"
	"tzdate/config"
	"tzdate/shared/constant"
	"tzdate/shared/timezone"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type app struct {
	out         io.Writer
	clock       timezone.Clock
	defaultZone string
	verbose     bool
	provider    *timezone.Provider
}

// NewRootCmd builds the tzctl command tree. Output goes to out and the
// current instant comes from clock.
func NewRootCmd(out io.Writer, clock timezone.Clock) *cobra.Command {
	a := &app{out: out, clock: clock}

	rootCmd := &cobra.Command{
		Use:           "tzctl",
		Short:         "Inspect and convert times with the configured default timezone",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.setup()
		},
	}

	rootCmd.SetOut(out)
	rootCmd.SetErr(out)

	rootCmd.PersistentFlags().StringVar(&a.defaultZone, "default", "", "default timezone, overrides APP_TIMEZONE")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose logging")

	rootCmd.AddCommand(a.nowCmd(), a.convertCmd(), a.offsetCmd())

	return rootCmd
}

func (a *app) setup() error {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if a.verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	zone := a.defaultZone
	if zone == constant.Empty {
		cfg, err := config.Load()
		if err != nil {
			return err //nolint:wrapcheck
		}

		zone = cfg.App.Timezone
	}

	provider, err := timezone.New(timezone.WithDefault(zone), timezone.WithClock(a.clock))
	if err != nil {
		return err //nolint:wrapcheck
	}

	a.provider = provider

	return nil
}

func (a *app) print(instant timezone.Instant) {
	fmt.Fprintf(a.out, "%s %s %s\n", instant.Time.Format(constant.DateFormat), instant.Zone, instant.Abbreviation)
}

func (a *app) describe(zone string) (timezone.Instant, error) {
	if zone == constant.Empty {
		return a.provider.Describe(a.provider.NowUTC()), nil
	}

	return a.provider.DescribeIn(a.provider.NowUTC(), zone) //nolint:wrapcheck
}
