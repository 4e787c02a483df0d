package cli

import (
	"fmt"
	"time"
	"tzdate/shared/constant"

	"github.com/spf13/cobra"
)

func (a *app) nowCmd() *cobra.Command {
	var zone string

	cmd := &cobra.Command{
		Use:   "now",
		Short: "Print the current time in the default zone or in --zone",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			instant, err := a.describe(zone)
			if err != nil {
				return err
			}

			a.print(instant)

			return nil
		},
	}

	cmd.Flags().StringVarP(&zone, "zone", "z", "", "IANA timezone identifier")

	return cmd
}

func (a *app) convertCmd() *cobra.Command {
	var from, to, layout string

	cmd := &cobra.Command{
		Use:   "convert TIME",
		Short: "Convert TIME from --from (default zone when omitted) to --to",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			goLayout, ok := constant.Layouts[layout]
			if !ok {
				return fmt.Errorf("unknown layout %q", layout)
			}

			var (
				at  time.Time
				err error
			)

			if from == constant.Empty {
				at, err = a.provider.Parse(goLayout, args[0])
			} else {
				at, err = a.provider.ParseIn(goLayout, args[0], from)
			}

			if err != nil {
				return err //nolint:wrapcheck
			}

			instant, err := a.provider.DescribeIn(at, to)
			if err != nil {
				return err //nolint:wrapcheck
			}

			a.print(instant)

			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "zone TIME is expressed in")
	cmd.Flags().StringVar(&to, "to", constant.TimezoneUTC, "zone to convert to")
	cmd.Flags().StringVar(&layout, "layout", constant.LayoutRFC3339, "one of rfc3339, rfc1123, date, datetime, kitchen")

	return cmd
}

func (a *app) offsetCmd() *cobra.Command {
	var at string

	cmd := &cobra.Command{
		Use:   "offset [ZONE]",
		Short: "Print the UTC offset of ZONE (default zone when omitted)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			moment := a.provider.NowUTC()

			if at != constant.Empty {
				parsed, err := time.Parse(time.RFC3339, at)
				if err != nil {
					return fmt.Errorf("parsing --at: %w", err)
				}

				moment = parsed
			}

			zone := a.provider.Zone()
			if len(args) == 1 {
				zone = args[0]
			}

			instant, err := a.provider.DescribeIn(moment, zone)
			if err != nil {
				return err //nolint:wrapcheck
			}

			dst := "standard"
			if instant.DST {
				dst = "daylight saving"
			}

			fmt.Fprintf(a.out, "%s %s (%s, %s)\n", instant.Zone, instant.Offset, instant.Abbreviation, dst)

			return nil
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "RFC3339 moment, now when omitted")

	return cmd
}
