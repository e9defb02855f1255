package main

import (
	"fmt"
	"github.com/spf13/cobra"
	"github.com/willbeason/boom/pkg/render/raster"
	"golang.org/x/sync/errgroup"
	"os"
	"path/filepath"
	"runtime"
)

func snapshotCmd(s *settings) *cobra.Command {
	var at []int

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render frames of the animation to PNG files",
		Long: "Render the listed frames, or frames 1 through --frames, to PNG files.\n" +
			"Frames are rendered in parallel; each is identical to the frame the\n" +
			"animation would show at that index.",
		Args: cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			frames := at
			if len(frames) == 0 {
				n := max(s.cfg.Animation.Frames, 1)
				for i := 1; i <= n; i++ {
					frames = append(frames, i)
				}
			}

			for _, f := range frames {
				if f < 1 {
					return fmt.Errorf("frame %d: frames are numbered from 1", f)
				}
			}

			if err := os.MkdirAll(s.cfg.Output.Dir, 0o755); err != nil {
				return err
			}

			a, err := s.cfg.Animator()
			if err != nil {
				return err
			}

			eg, ctx := errgroup.WithContext(cmd.Context())
			eg.SetLimit(runtime.NumCPU())
			for _, index := range frames {
				eg.Go(func() error {
					if err := ctx.Err(); err != nil {
						return err
					}

					frame := a.At(index)
					canvas := raster.NewCanvas(s.cfg.Output.Width, s.cfg.Output.Height)
					defer canvas.Close()

					if err := canvas.Present(frame.Segments, frame.Camera); err != nil {
						return fmt.Errorf("frame %d: %w", index, err)
					}

					path := filepath.Join(s.cfg.Output.Dir, raster.FrameName(index))
					if err := canvas.SavePNG(path); err != nil {
						return fmt.Errorf("saving %s: %w", path, err)
					}

					s.log.Debug("wrote frame", "path", path, "segments", len(frame.Segments))
					return nil
				})
			}

			if err := eg.Wait(); err != nil {
				return err
			}

			s.log.Info("wrote snapshots", "frames", len(frames), "dir", s.cfg.Output.Dir)
			return nil
		},
	}

	cmd.Flags().IntSliceVar(&at, "at", nil, "frame indices to render, counting from 1")

	return cmd
}
