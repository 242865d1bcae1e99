// -- cmd/move.go --
package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xkilldash9x/humancursor/internal/cursor"
	"github.com/xkilldash9x/humancursor/internal/geometry"
	"github.com/xkilldash9x/humancursor/internal/motion"
	"github.com/xkilldash9x/humancursor/internal/observability"
	"github.com/xkilldash9x/humancursor/internal/transport"
)

var (
	moveToX     float64
	moveToY     float64
	moveFromX   float64
	moveFromY   float64
	moveWithTS  bool
	moveTimeout time.Duration
)

// moveCmd replays one humanized move against a live page. It is the
// production wiring of planner, controller, and the CDP transport.
var moveCmd = &cobra.Command{
	Use:   "move [url]",
	Short: "Open a page and replay a humanized cursor move against it",
	Args:  cobra.ExactArgs(1),
	RunE:  runMove,
}

func init() {
	moveCmd.Flags().Float64Var(&moveToX, "to-x", 400, "destination x coordinate")
	moveCmd.Flags().Float64Var(&moveToY, "to-y", 300, "destination y coordinate")
	moveCmd.Flags().Float64Var(&moveFromX, "from-x", 0, "starting x coordinate")
	moveCmd.Flags().Float64Var(&moveFromY, "from-y", 0, "starting y coordinate")
	moveCmd.Flags().BoolVar(&moveWithTS, "timestamps", false, "attach synthesized event timestamps")
	moveCmd.Flags().DurationVar(&moveTimeout, "timeout", 60*time.Second, "overall command timeout")
	rootCmd.AddCommand(moveCmd)
}

func runMove(cmd *cobra.Command, args []string) error {
	logger := observability.GetLogger()
	url := args[0]

	ctx, cancel := context.WithTimeout(cmd.Context(), moveTimeout)
	defer cancel()

	allocOpts := chromedp.DefaultExecAllocatorOptions[:]
	if !cfg.Browser.Headless {
		allocOpts = append(allocOpts, chromedp.Flag("headless", false))
	}
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, allocOpts...)
	defer cancelAlloc()

	browserOpts := []chromedp.ContextOption{}
	if cfg.Browser.Debug {
		browserOpts = append(browserOpts, chromedp.WithDebugf(logger.Sugar().Debugf))
	}
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx, browserOpts...)
	defer cancelBrowser()

	if err := chromedp.Run(browserCtx, chromedp.Navigate(url)); err != nil {
		return fmt.Errorf("navigate %s: %w", url, err)
	}

	cur := newCursorForBrowser(browserCtx, logger)

	target := motion.PointTarget(geometry.Vector{X: moveToX, Y: moveToY})
	opts := motion.Options{UseTimestamps: moveWithTS}

	if err := cur.MoveTo(browserCtx, target, opts); err != nil {
		return err
	}

	loc := cur.Location()
	logger.Info("move finished",
		zap.Float64("x", loc.Point.X),
		zap.Float64("y", loc.Point.Y),
	)
	return nil
}

// newCursorForBrowser assembles the movement stack from the loaded
// configuration on top of a chromedp context.
func newCursorForBrowser(browserCtx context.Context, logger *zap.Logger) *cursor.Cursor {
	var algo motion.Algorithm = motion.NewCurve()
	if cfg.Cursor.JitterAmplitude > 0 {
		algo = motion.NewJitter(algo, cfg.Cursor.JitterAmplitude, time.Now().UnixNano())
	}

	return cursor.New(transport.NewCDP(browserCtx, logger), cursor.Config{
		Start:     geometry.Vector{X: moveFromX, Y: moveFromY},
		Algorithm: algo,
		Defaults: motion.Options{
			Spread:             cfg.Cursor.Spread,
			MoveSpeed:          cfg.Cursor.MoveSpeed,
			UseTimestamps:      cfg.Cursor.UseTimestamps,
			MoveDelay:          cfg.Cursor.MoveDelay(),
			RandomizeMoveDelay: cfg.Cursor.RandomizeMoveDelay,
		},
		OvershootThreshold: cfg.Cursor.OvershootThreshold,
		OvershootRadius:    cfg.Cursor.OvershootRadius,
		Logger:             logger,
	})
}
