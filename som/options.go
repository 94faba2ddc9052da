package som

import (
	"math"
	"math/rand"
	"time"

	"github.com/cjdb01/nnk/parallel"
)

// ---------- Defaults ----------

const (
	// DefaultInitLow and DefaultInitHigh bound the uniform weight initialization.
	DefaultInitLow  = -0.1
	DefaultInitHigh = 0.1

	// ParallelThreshold is the smallest grid (in cells) for which Compete fans
	// out across workers; smaller grids always run inline.
	ParallelThreshold = 256
)

// DecayPolicy selects when lr and nbdWidth decay.
type DecayPolicy int

const (
	// DecayPerEpoch decays once after every full pass over the input set.
	DecayPerEpoch DecayPolicy = iota
	// DecayPerSample decays after every presented input vector.
	DecayPerSample
)

// String implements fmt.Stringer.
func (p DecayPolicy) String() string {
	if p == DecayPerSample {
		return "per-sample"
	}

	return "per-epoch"
}

// EpochStats is passed to the epoch hook after each completed epoch.
type EpochStats struct {
	Epoch        int     // 1-based count of epochs completed by this trainer
	LearningRate float64 // lr after this epoch's decay
	NbdWidth     float64 // nbdWidth after this epoch's decay
}

// ---------- Internal panic messages ----------

const (
	panicInitRange = "som: WithInitRange: bounds must be finite with lo < hi"
	panicWorkers   = "som: WithWorkers: n must be >= 0"
	panicNilRand   = "som: WithRand: nil source"
	panicNilHook   = "som: WithEpochHook: nil hook"
)

// Option configures a Trainer. Option constructors panic on nonsensical
// values (programmer error); runtime input problems are returned as errors.
type Option func(*options)

type options struct {
	rng             *rand.Rand
	initLow, initHi float64
	decay           DecayPolicy
	shuffle         bool
	workers         int
	onEpoch         func(EpochStats)
}

func defaultOptions() options {
	return options{
		initLow: DefaultInitLow,
		initHi:  DefaultInitHigh,
		decay:   DecayPerEpoch,
		workers: 1,
	}
}

// gatherOptions applies opts over the defaults and fills in the RNG.
func gatherOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return o
}

// WithSeed makes initialization and shuffling reproducible.
func WithSeed(seed int64) Option {
	return func(o *options) { o.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand hands r to the trainer. The trainer owns r afterwards; it must not
// be shared with other goroutines.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic(panicNilRand)
	}

	return func(o *options) { o.rng = r }
}

// WithInitRange sets the uniform initialization interval [lo, hi).
func WithInitRange(lo, hi float64) Option {
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || lo >= hi {
		panic(panicInitRange)
	}

	return func(o *options) { o.initLow, o.initHi = lo, hi }
}

// WithDecayPerSample decays lr and nbdWidth after every input vector instead
// of once per epoch.
func WithDecayPerSample() Option {
	return func(o *options) { o.decay = DecayPerSample }
}

// WithShuffle presents the inputs in a fresh random order every epoch.
func WithShuffle() Option {
	return func(o *options) { o.shuffle = true }
}

// WithWorkers fans Compete out over n goroutines on grids of at least
// ParallelThreshold cells. n == 0 selects parallel.DefaultWorkers().
func WithWorkers(n int) Option {
	if n < 0 {
		panic(panicWorkers)
	}
	if n == 0 {
		n = parallel.DefaultWorkers()
	}

	return func(o *options) { o.workers = n }
}

// WithEpochHook registers fn to be called after every completed epoch.
func WithEpochHook(fn func(EpochStats)) Option {
	if fn == nil {
		panic(panicNilHook)
	}

	return func(o *options) { o.onEpoch = fn }
}
