package main

import (
	"context"
	"errors"
	"github.com/spf13/cobra"
	"github.com/willbeason/boom/pkg/animation"
	"github.com/willbeason/boom/pkg/render/terminal"
)

func termCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "term",
		Short: "Animate the tree in the terminal; press q or Esc to quit",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := s.cfg.Animator()
			if err != nil {
				return err
			}

			// Logged before the renderer takes over the terminal.
			a.Banner(s.log)

			r, err := terminal.New()
			if err != nil {
				return err
			}

			// The terminal is owned by the renderer until it closes, so nothing
			// is logged while it runs.
			err = a.Run(cmd.Context(), r, animation.Options{
				Interval: s.cfg.Interval(),
				Frames:   s.cfg.Animation.Frames,
			})
			_ = r.Close()

			if errors.Is(err, context.Canceled) {
				err = nil
			}
			if err == nil {
				s.log.Info("tree animation ended, goodbye")
			}
			return err
		},
	}
}
