package main

import (
	"context"
	"errors"
	"github.com/spf13/cobra"
	"github.com/willbeason/boom/pkg/render/window"
)

func windowCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "window",
		Short: "Animate the tree in a desktop window",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := s.cfg.Animator()
			if err != nil {
				return err
			}

			err = window.Run(cmd.Context(), a, window.Options{
				Width:  s.cfg.Output.Width,
				Height: s.cfg.Output.Height,
				Frames: s.cfg.Animation.Frames,
				Logger: s.log,
			})
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
}
