// Package recovery reconstructs secrets from share files and flags shares
// that disagree with the reconstructed polynomial.
package recovery

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/vitalvas/shamirkit/field"
	"github.com/vitalvas/shamirkit/shamir"
	"github.com/vitalvas/shamirkit/sharefile"
	"github.com/vitalvas/shamirkit/xcmd"
	"github.com/vitalvas/shamirkit/xlogger"
)

// WrongPoint is a share flagged as inconsistent.
type WrongPoint struct {
	Share *shamir.Share
	// Expected is the baseline polynomial's value at Share.X. It is only set
	// for the substitute strategy, where the baseline is trusted.
	Expected *big.Int
}

// Result is the outcome for one share set.
type Result struct {
	Path      string
	Threshold int
	Total     int
	Secret    *big.Int
	// Checked is true when redundant shares were scanned.
	Checked     bool
	WrongPoints []WrongPoint
	Err         error
}

// Failed reports whether the share set could not be recovered.
func (r *Result) Failed() bool {
	return r.Err != nil
}

type Recoverer struct {
	field    *field.Field
	strategy shamir.Strategy
	workers  int
	logger   *slog.Logger
}

type Option func(*Recoverer)

func WithStrategy(strategy shamir.Strategy) Option {
	return func(r *Recoverer) {
		r.strategy = strategy
	}
}

// WithWorkers bounds how many files RecoverFiles processes at once.
func WithWorkers(n int) Option {
	return func(r *Recoverer) {
		if n > 0 {
			r.workers = n
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(r *Recoverer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New returns a Recoverer over the given field.
func New(f *field.Field, options ...Option) *Recoverer {
	r := &Recoverer{
		field:    f,
		strategy: shamir.StrategySubstitute,
		workers:  1,
		logger:   xlogger.Discard(),
	}

	for _, option := range options {
		option(r)
	}

	return r
}

// Recover reconstructs the secret of a decoded share file and, when the file
// carries more than k shares, scans them for wrong points.
func (r *Recoverer) Recover(file *sharefile.File) (*Result, error) {
	result := &Result{
		Path:      file.Path,
		Threshold: file.Threshold,
		Total:     file.Total,
	}

	secret, err := shamir.Reconstruct(r.field, file.Shares, file.Threshold)
	if err != nil {
		return nil, fmt.Errorf("reconstruct: %w", err)
	}
	result.Secret = secret

	if !file.Redundant() {
		return result, nil
	}

	wrong, err := shamir.FindWrongPoints(r.field, file.Shares, file.Threshold, r.strategy)
	if err != nil {
		return nil, fmt.Errorf("find wrong points: %w", err)
	}
	result.Checked = true

	for _, share := range wrong {
		point := WrongPoint{Share: share}

		if r.strategy == shamir.StrategySubstitute {
			point.Expected, err = shamir.Expected(r.field, file.Shares, file.Threshold, share.X)
			if err != nil {
				return nil, fmt.Errorf("expected value at %s: %w", share.X, err)
			}
		}

		result.WrongPoints = append(result.WrongPoints, point)
	}

	return result, nil
}

// RecoverFile loads and recovers one share file. Failures are recorded in
// Result.Err rather than returned, so a bad file never stops a batch.
func (r *Recoverer) RecoverFile(path string) *Result {
	logger := r.logger.With(slog.String("file", path))

	file, err := sharefile.Load(path)
	if err != nil {
		logger.Error("failed to load share file", slog.Any("error", err))
		return &Result{Path: path, Err: err}
	}

	logger.Debug("loaded share file",
		slog.Int("n", file.Total),
		slog.Int("k", file.Threshold),
		slog.String("strategy", r.strategy.String()),
	)

	result, err := r.Recover(file)
	if err != nil {
		logger.Error("failed to recover secret", slog.Any("error", err))
		return &Result{Path: path, Threshold: file.Threshold, Total: file.Total, Err: err}
	}

	logger.Info("secret recovered", slog.String("secret", result.Secret.String()))

	if len(result.WrongPoints) > 0 {
		logger.Warn("wrong points detected", slog.Int("count", len(result.WrongPoints)))
	}

	return result
}

// RecoverFiles processes every path and returns results in input order.
// Files are independent: per-file failures land in Result.Err. The returned
// error is non-nil only when ctx is canceled before all files are processed;
// unprocessed files then carry the context error.
func (r *Recoverer) RecoverFiles(ctx context.Context, paths []string) ([]*Result, error) {
	results := make([]*Result, len(paths))

	group, _ := xcmd.ErrGroup(ctx)
	group.SetLimit(r.workers)

	for i, path := range paths {
		group.Go(func(ctx context.Context) error {
			if err := ctx.Err(); err != nil {
				results[i] = &Result{Path: path, Err: err}
				return err
			}

			results[i] = r.RecoverFile(path)
			return nil
		})
	}

	err := group.Wait()

	return results, err
}
