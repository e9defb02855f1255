package main

import (
	"fmt"
	"github.com/spf13/cobra"
	"text/tabwriter"
)

func statsCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print the parameters and segment count of each frame",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := s.cfg.Animator()
			if err != nil {
				return err
			}

			n := s.cfg.Animation.Frames
			if n <= 0 {
				n = 10
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "frame\tt\tratio\tangle\temergence\tbranches\tspin\tsegments")
			for i := 0; i < n; i++ {
				f := a.Next()
				fmt.Fprintf(w, "%d\t%.3f\t%.4f\t%.2f\t%.4f\t%d\t%.2f\t%d\n",
					f.Index, f.T, f.Params.LengthRatio, f.Params.BranchAngle, f.Params.Emergence,
					f.Params.BranchCount, f.Camera.Spin, len(f.Segments))
			}
			return w.Flush()
		},
	}
}
