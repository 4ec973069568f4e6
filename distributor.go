package apportion

import (
	"fmt"
	"time"

	"github.com/arloliu/apportion/allocate"
	"github.com/arloliu/apportion/internal/logger"
	"github.com/arloliu/apportion/internal/metrics"
	"github.com/arloliu/apportion/internal/normalize"
	"github.com/arloliu/apportion/numeric"
	"github.com/arloliu/apportion/policy"
	"github.com/arloliu/apportion/rng"
	"github.com/arloliu/apportion/source"
	"github.com/arloliu/apportion/strategy"
	"github.com/arloliu/apportion/types"
)

// Distributor allocates values across slots in proportion to weights.
//
// A Distributor owns exactly one zero-sum strategy, a random stream, an
// optional weight source with its policy chain, a logger and a metrics
// collector. It is not safe for concurrent use: the random stream and the
// weight source are stateful. Callers needing parallel allocation use one
// Distributor per goroutine or serialize access.
//
// Go methods cannot have type parameters, so the typed operations are
// package-level functions taking the Distributor as first argument:
//
//	d, _ := apportion.New(apportion.DefaultConfig())
//	target := make([]int64, 4)
//	err := apportion.Distribute(d, int64(100), target, []float64{1, 1, 1, 1})
type Distributor struct {
	cfg      Config
	logger   Logger
	metrics  MetricsCollector
	rng      Rand
	source   WeightSource
	policies policy.Chain
	zeroSum  ZeroSumStrategy
	bigFloat numeric.BigFloat
}

// New creates a Distributor from cfg.
//
// Missing configuration values are defaulted and the result is validated.
// Options override the collaborators New would build from cfg.
//
// Parameters:
//   - cfg: Configuration (see DefaultConfig)
//   - opts: Optional dependencies (WithLogger, WithMetrics, WithRand, WithSource, WithPolicies, WithZeroSumStrategy)
//
// Returns:
//   - *Distributor: Initialized distributor
//   - error: ErrInvalidConfig or ErrUnknownPolicy when cfg is invalid
//
// Example:
//
//	cfg := apportion.DefaultConfig()
//	cfg.ZeroSum.Strategy = "resample"
//	cfg.Source.Kind = "uniform"
//	d, err := apportion.New(cfg, apportion.WithLogger(logging.NewSlogDefault()))
//	if err != nil { /* handle */ }
func New(cfg Config, opts ...Option) (*Distributor, error) {
	SetDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := distributorOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	d := &Distributor{
		cfg:      cfg,
		logger:   o.logger,
		metrics:  o.metrics,
		rng:      o.rng,
		source:   o.source,
		zeroSum:  o.zeroSum,
		bigFloat: numeric.BigFloat{Prec: cfg.BigFloatPrecision},
	}

	if d.logger == nil {
		d.logger = logger.NewNop()
	}
	if d.metrics == nil {
		d.metrics = metrics.NewNop()
	}
	if d.rng == nil {
		d.rng = rng.New(cfg.Seed)
	}

	cfg.ValidateWithWarnings(d.logger)

	if d.zeroSum == nil {
		zs, err := strategy.ByName(cfg.ZeroSum.Strategy, cfg.ZeroSum.MaxAttempts)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", types.ErrInvalidConfig, err)
		}
		d.zeroSum = zs
	}

	if d.source == nil {
		d.source = buildSource(cfg.Source, d.rng)
	}

	if o.policies != nil {
		d.policies = policy.Chain(o.policies)
	} else {
		chain, err := policy.Default.Build(cfg.Policies)
		if err != nil {
			return nil, err
		}
		d.policies = chain
	}

	d.logger.Debug("distributor created",
		"mode", cfg.Mode,
		"zeroSumStrategy", d.zeroSum.Name(),
		"source", cfg.Source.Kind,
		"policies", len(d.policies),
		"seeded", cfg.Seed != 0,
	)

	return d, nil
}

func buildSource(sc SourceConfig, r Rand) WeightSource {
	switch sc.Kind {
	case SourceUniform:
		return source.NewUniform(r, sc.Min, sc.Max)
	case SourceNoise:
		// the noise lattice seed is drawn from the owned stream, so a seeded
		// Distributor produces reproducible noise
		return source.NewNoise(uint64(r.Float64()*(1<<53)),
			source.WithFrequency(sc.Frequency),
			source.WithOctaves(sc.Octaves),
			source.WithPersistence(sc.Persistence),
		)
	case SourceStatic:
		return source.NewStatic(sc.Weights)
	default:
		return nil
	}
}

// Mode returns the default allocation mode used by Distribute and the field
// operations.
func (d *Distributor) Mode() Mode {
	return d.cfg.Mode
}

// Config returns the effective configuration.
func (d *Distributor) Config() Config {
	return d.cfg
}

// ZeroSumStrategy returns the strategy resolving cancelling weights.
func (d *Distributor) ZeroSumStrategy() ZeroSumStrategy {
	return d.zeroSum
}

// Weights draws n weights from the source and runs the policy chain, without
// normalizing them.
//
// Parameters:
//   - n: Number of slots
//
// Returns:
//   - []float64: Raw weights after policies
//   - error: ErrNoWeightSource without a source, ErrInvalidShape for n < 1, or a source error
func (d *Distributor) Weights(n int) ([]float64, error) {
	if d.source == nil {
		return nil, types.ErrNoWeightSource
	}
	if n < 1 {
		return nil, fmt.Errorf("slot count %d: %w", n, types.ErrInvalidShape)
	}

	weights := make([]float64, n)
	if err := d.sample(weights); err != nil {
		return nil, err
	}

	return weights, nil
}

func (d *Distributor) sample(weights []float64) error {
	if err := d.source.Sample(weights); err != nil {
		return fmt.Errorf("sample weights: %w", err)
	}
	d.policies.Apply(weights)

	return nil
}

// sampled draws weights for n slots and returns them with a redraw function
// for the resample strategy.
func (d *Distributor) sampled(n int) ([]float64, func() (types.Normalization, error), error) {
	weights, err := d.Weights(n)
	if err != nil {
		return nil, nil, err
	}

	attempt := 0
	resample := func() (types.Normalization, error) {
		attempt++
		d.logger.Debug("resampling cancelling weights", "attempt", attempt, "slots", n)

		if err := d.sample(weights); err != nil {
			return types.Normalization{}, err
		}

		norm, err := normalize.Weights(weights)
		if err != nil {
			return norm, err
		}
		d.observe(norm, n)

		return norm, nil
	}

	return weights, resample, nil
}

// prepare normalizes weights in place and returns the divisor.
func (d *Distributor) prepare(weights []float64, resample func() (types.Normalization, error)) (float64, error) {
	norm, err := normalize.Weights(weights)
	if err != nil {
		return 0, err
	}
	d.observe(norm, len(weights))

	if !norm.ZeroSum {
		return norm.Sum, nil
	}

	res, err := d.zeroSum.Resolve(types.ZeroSum{
		Weights:  weights,
		MaxAbs:   norm.MaxAbs,
		Resample: resample,
	})
	d.metrics.RecordZeroSumResolution(d.zeroSum.Name(), res.Attempts, err == nil)
	if err != nil {
		return 0, err
	}

	d.logger.Warn("mixed-sign weights cancel to zero",
		"strategy", d.zeroSum.Name(),
		"divisor", res.Sum,
		"attempts", res.Attempts,
		"maxAbs", norm.MaxAbs,
	)

	return res.Sum, nil
}

func (d *Distributor) observe(norm types.Normalization, slots int) {
	if norm.NaNReplaced > 0 {
		d.logger.Warn("replaced NaN weights with 0", "count", norm.NaNReplaced, "slots", slots)
		d.metrics.RecordNaNReplaced(norm.NaNReplaced)
	}

	if norm.Uniform {
		d.logger.Debug("all weights are zero, falling back to uniform weights", "slots", slots)
		d.metrics.RecordUniformFallback()
	}
}

func checkShape(targetLen, weightsLen int) error {
	if targetLen != weightsLen || targetLen == 0 {
		return fmt.Errorf("target=%d weights=%d: %w", targetLen, weightsLen, types.ErrInvalidShape)
	}

	return nil
}

// Distribute adds value to target in proportion to weights, using the
// Distributor's configured mode.
//
// weights is normalized in place: NaN entries become 0 and an all-zero vector
// becomes all ones. target is only written when the call succeeds.
//
// Parameters:
//   - d: Distributor
//   - value: Quantity to distribute
//   - target: Accumulation buffer; target[i] += share[i]
//   - weights: Weights, same length as target
//
// Returns:
//   - error: ErrInvalidShape, ErrNonFiniteWeight, ErrUnresolvableWeights or ErrOverflow
//
// Example:
//
//	target := make([]int32, 2)
//	err := apportion.Distribute(d, int32(10), target, []float64{3, 1}) // target == [8 2]
func Distribute[T numeric.Signed](d *Distributor, value T, target []T, weights []float64) error {
	return distributeInt(d, d.cfg.Mode, value, target, weights, nil)
}

// DistributeExact adds value to target so that the deltas sum to exactly
// value, regardless of the configured mode.
//
// Shares start as trunc(value·w/sum); the remaining units go to the slots with
// the highest demand w/(share+1), ties to the lower index.
func DistributeExact[T numeric.Signed](d *Distributor, value T, target []T, weights []float64) error {
	return distributeInt(d, types.ModeExact, value, target, weights, nil)
}

// DistributeApproximate adds round(value·w/sum) to every slot independently,
// regardless of the configured mode. The deltas may not sum to value.
func DistributeApproximate[T numeric.Signed](d *Distributor, value T, target []T, weights []float64) error {
	return distributeInt(d, types.ModeApproximate, value, target, weights, nil)
}

// DistributeSampled draws len(target) weights from the Distributor's source,
// runs the policy chain and distributes value with the configured mode.
//
// With the resample strategy a cancelling draw is redrawn up to
// ZeroSum.MaxAttempts times before ErrUnresolvableWeights.
//
// Returns:
//   - error: ErrNoWeightSource without a source, otherwise as Distribute
func DistributeSampled[T numeric.Signed](d *Distributor, value T, target []T) error {
	weights, resample, err := d.sampled(len(target))
	if err != nil {
		return err
	}

	return distributeInt(d, d.cfg.Mode, value, target, weights, resample)
}

func distributeInt[T numeric.Signed](
	d *Distributor, mode types.Mode, value T, target []T, weights []float64,
	resample func() (types.Normalization, error),
) (err error) {
	start := time.Now()
	kind := numeric.IntegerOf[T]().Name()
	defer func() {
		d.metrics.RecordDistribution(kind, mode, len(target), time.Since(start).Seconds(), types.ErrorKind(err))
	}()

	if err = checkShape(len(target), len(weights)); err != nil {
		return err
	}

	sum, err := d.prepare(weights, resample)
	if err != nil {
		return err
	}

	if mode == types.ModeApproximate {
		return allocate.Approximate(value, target, weights, sum)
	}

	out, err := allocate.Exact(value, target, weights, sum)
	if err != nil {
		return err
	}

	if out.Remainder != 0 {
		magnitude := out.Remainder
		if magnitude < 0 {
			magnitude = -magnitude
		}
		d.metrics.RecordRemainder(magnitude)
		d.logger.Debug("corrected remainder",
			"kind", kind,
			"remainder", out.Remainder,
			"rounds", out.Rounds,
			"slots", len(target),
		)
	}

	return nil
}

// DistributeFloat adds value to a float32 or float64 target in proportion to
// weights, using the configured mode.
//
// In exact mode the rounding discrepancy is added into one slot picked with
// the Distributor's random stream.
func DistributeFloat[F numeric.Float](d *Distributor, value F, target []F, weights []float64) error {
	return DistributeField[F](d, numeric.Real[F]{}, value, target, weights)
}

// DistributeFloatExact is DistributeFloat in exact mode, regardless of the
// configured mode.
func DistributeFloatExact[F numeric.Float](d *Distributor, value F, target []F, weights []float64) error {
	return DistributeFieldExact[F](d, numeric.Real[F]{}, value, target, weights)
}

// DistributeFloatApproximate is DistributeFloat in approximate mode,
// regardless of the configured mode.
func DistributeFloatApproximate[F numeric.Float](d *Distributor, value F, target []F, weights []float64) error {
	return DistributeFieldApproximate[F](d, numeric.Real[F]{}, value, target, weights)
}

// DistributeField adds value to target using the arithmetic of field, with
// the configured mode.
//
// Parameters:
//   - d: Distributor
//   - field: Field adapter (numeric.Real, numeric.BigFloat, numeric.Decimal or custom)
//   - value: Quantity to distribute
//   - target: Accumulation buffer; target[i] = field.Add(target[i], share[i])
//   - weights: Weights, same length as target
//
// Returns:
//   - error: ErrInvalidShape, ErrNonFiniteWeight, ErrUnresolvableWeights or ErrOverflow
//
// Example:
//
//	target := make([]decimal.Decimal, 3)
//	err := apportion.DistributeField(d, numeric.Decimal{}, decimal.NewFromInt(100), target, []float64{1, 1, 1})
func DistributeField[F any](d *Distributor, field numeric.Field[F], value F, target []F, weights []float64) error {
	return distributeField(d, d.cfg.Mode, field, value, target, weights, nil)
}

// DistributeFieldExact adds value to target using the arithmetic of field in
// exact mode, regardless of the configured mode: the rounding discrepancy is
// added into one slot picked with the Distributor's random stream.
func DistributeFieldExact[F any](d *Distributor, field numeric.Field[F], value F, target []F, weights []float64) error {
	return distributeField(d, types.ModeExact, field, value, target, weights, nil)
}

// DistributeFieldApproximate adds value·w/sum to every slot using the
// arithmetic of field, regardless of the configured mode. No correction is
// applied.
func DistributeFieldApproximate[F any](d *Distributor, field numeric.Field[F], value F, target []F, weights []float64) error {
	return distributeField(d, types.ModeApproximate, field, value, target, weights, nil)
}

// DistributeSampledField draws len(target) weights from the source, runs the
// policy chain and distributes value using the arithmetic of field.
func DistributeSampledField[F any](d *Distributor, field numeric.Field[F], value F, target []F) error {
	weights, resample, err := d.sampled(len(target))
	if err != nil {
		return err
	}

	return distributeField(d, d.cfg.Mode, field, value, target, weights, resample)
}

func distributeField[F any](
	d *Distributor, mode types.Mode, field numeric.Field[F], value F, target []F, weights []float64,
	resample func() (types.Normalization, error),
) (err error) {
	start := time.Now()
	defer func() {
		d.metrics.RecordDistribution(field.Name(), mode, len(target), time.Since(start).Seconds(), types.ErrorKind(err))
	}()

	if err = checkShape(len(target), len(weights)); err != nil {
		return err
	}

	sum, err := d.prepare(weights, resample)
	if err != nil {
		return err
	}

	if mode == types.ModeApproximate {
		return allocate.ApproximateField(field, value, target, weights, sum)
	}

	return allocate.ExactField(field, value, target, weights, sum, d.rng)
}
