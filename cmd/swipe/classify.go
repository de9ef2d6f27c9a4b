package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/frizinak/inbetween-go-swipe/swipe"
	"github.com/spf13/cobra"
)

func (a *app) classifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify x1 y1 x2 y2",
		Short: "Classify the swipe from (x1, y1) to (x2, y2)",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			var c [4]float64
			for i := range args {
				f, err := strconv.ParseFloat(args[i], 64)
				if err != nil {
					return fmt.Errorf("coordinate %d: %w", i+1, err)
				}
				c[i] = f
			}

			tc, err := a.conf.Tracker()
			if err != nil {
				return err
			}

			return classify(cmd.OutOrStdout(), tc, swipe.Point{X: c[0], Y: c[1]}, swipe.Point{X: c[2], Y: c[3]})
		},
	}
}

// classify replays start and end through a tracker so the threshold and
// the zero position rules apply exactly as they do for real touches.
func classify(w io.Writer, tc swipe.Config, start, end swipe.Point) error {
	target := &replay{}
	tr := swipe.New(nil, swipe.Targets{"cli": target}, tc)

	var found bool
	_, err := tr.Attach("cli", swipe.AnyFingers, swipe.DetailedHandler(func(s swipe.Swipe) {
		found = true
		fmt.Fprintln(w, s)
	}), false)
	if err != nil {
		return err
	}

	target.l.TouchStart(&swipe.Event{Touches: []swipe.Point{start}})
	target.l.TouchMove(&swipe.Event{Touches: []swipe.Point{end}})
	target.l.TouchEnd(&swipe.Event{})

	if found {
		return nil
	}

	length, min := swipe.Length(start, end), tr.Config().MinimumDistance
	switch {
	case end.IsZero():
		fmt.Fprintln(w, "no swipe: end position (0, 0) means no move was tracked")
	case length < min:
		fmt.Fprintf(w, "no swipe: length %d < %d\n", length, min)
	default:
		fmt.Fprintln(w, "no swipe")
	}
	return nil
}

type replay struct {
	l swipe.Listener
}

func (r *replay) Subscribe(l swipe.Listener) func() {
	r.l = l
	return func() { r.l = nil }
}
