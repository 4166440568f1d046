package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kilianp07/pmrs/config"
	"github.com/kilianp07/pmrs/core/band"
)

func newBandsCmd(load func() (*config.Config, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "bands",
		Short: "List the available band profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			reg, err := cfg.Registry()
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tCHANNELS\tTONES\tBACKUP")
			for _, name := range reg.Names() {
				b, err := reg.Get(name)
				if err != nil {
					return err
				}
				fmt.Fprintln(tw, bandRow(name, b, cfg.Schedule.Band))
			}
			return tw.Flush()
		},
	}
}

func bandRow(name band.Name, b band.Band, def band.Name) string {
	ch, tone := b.Backup()
	label := string(name)
	if name == def {
		label += " (default)"
	}
	return fmt.Sprintf("%s\t%d\t%d\tch %d %s MHz %.1f Hz", label, b.ChannelCount(), b.ToneCount(), ch.ID, ch.Frequency, tone)
}
