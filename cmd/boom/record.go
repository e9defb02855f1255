package main

import (
	"github.com/spf13/cobra"
	"github.com/willbeason/boom/pkg/animation"
	"github.com/willbeason/boom/pkg/render/raster"
	"os"
	"time"
)

func recordCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "record",
		Short: "Run the animation, saving every frame as a numbered PNG",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := os.MkdirAll(s.cfg.Output.Dir, 0o755); err != nil {
				return err
			}

			a, err := s.cfg.Animator()
			if err != nil {
				return err
			}

			seq := raster.NewSequence(s.cfg.Output.Dir, s.cfg.Output.Width, s.cfg.Output.Height)
			defer seq.Close()

			// Recording is not paced to the wall clock.
			return a.Run(cmd.Context(), seq, animation.Options{
				Interval:   time.Nanosecond,
				Frames:     max(s.cfg.Animation.Frames, 1),
				StatsEvery: 10,
				Logger:     s.log,
			})
		},
	}
}
