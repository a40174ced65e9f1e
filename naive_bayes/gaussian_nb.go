package naive_bayes

import (
	"log/slog"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/jenniferxq/imylu/core/model"
	"github.com/jenniferxq/imylu/metrics"
	"github.com/jenniferxq/imylu/pkg/errors"
	"github.com/jenniferxq/imylu/pkg/log"
)

const modelName = "GaussianNB"

// GaussianNB is a Gaussian naive Bayes classifier for multi-class tabular
// data. Fit estimates per-class, per-feature mean and variance; PredictProba
// combines the univariate Gaussian densities under the feature-independence
// assumption and normalizes them into a per-row distribution over classes.
//
// Moment estimation divides both the mean and the E[X²] term by the total
// training row count rather than the per-class count, matching the reference
// implementation this port follows. The resulting per-class "means" are
// scaled by the class fraction whenever classes are imbalanced. Likewise the
// class counts collected during fitting are exposed via ClassCount but never
// enter the probability product. Both behaviors are preserved deliberately:
// changing either would change every fitted parameter and prediction relative
// to the reference implementation.
type GaussianNB struct {
	state *model.StateManager

	// threshold is accepted for interface compatibility with the reference
	// API. Prediction is always argmax over classes; the value is never
	// consulted.
	threshold float64

	classCount map[int]int
	nClasses   int
	nFeatures  int

	// avgs and variances are nFeatures×nClasses; row j column c holds the
	// moment of feature j under class c.
	avgs      *mat.Dense
	variances *mat.Dense
}

var _ model.Classifier = (*GaussianNB)(nil)

// GaussianNBOption is a functional option for GaussianNB.
type GaussianNBOption func(*GaussianNB)

// WithThreshold sets the decision threshold. The parameter exists only for
// API compatibility and has no effect on predictions.
func WithThreshold(threshold float64) GaussianNBOption {
	return func(g *GaussianNB) {
		g.threshold = threshold
	}
}

// NewGaussianNB creates a new GaussianNB classifier.
func NewGaussianNB(opts ...GaussianNBOption) *GaussianNB {
	g := &GaussianNB{
		state:     model.NewStateManager(),
		threshold: 0.5,
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Fit estimates the class counts and the per-feature, per-class moments from
// the training data. X is n×m, y an n×1 column of integer class codes. Class
// codes must form a contiguous range starting at 0; they are used directly as
// array indices. Any previously fitted state is replaced.
func (g *GaussianNB) Fit(X, y mat.Matrix) (err error) {
	defer errors.Recover(&err, "GaussianNB.Fit")

	nSamples, nFeatures := X.Dims()
	if nSamples == 0 || nFeatures == 0 {
		return errors.NewModelError("GaussianNB.Fit", "empty data", errors.ErrEmptyData)
	}

	yRows, yCols := y.Dims()
	if yRows != nSamples {
		return errors.NewDimensionError("GaussianNB.Fit", nSamples, yRows, 0)
	}
	if yCols != 1 {
		return errors.NewValueError("GaussianNB.Fit", "y must be a column vector (n×1 matrix)")
	}

	labels := make([]int, nSamples)
	classCount := make(map[int]int)
	for i := 0; i < nSamples; i++ {
		c := int(y.At(i, 0))
		labels[i] = c
		classCount[c]++
	}

	// The class count is the model's notion of n_class, so any gap in the
	// label range would silently shift every moment onto the wrong class.
	nClasses := len(classCount)
	for c := 0; c < nClasses; c++ {
		if _, ok := classCount[c]; !ok {
			return errors.NewValidationError("y",
				"class labels must form a contiguous range starting at 0",
				classKeys(classCount))
		}
	}

	// Both moments divide by the total row count, not the per-class count,
	// and the variance uses D(X) = E[X²] − E[X]². Kept bit-compatible with
	// the reference implementation.
	avgs := mat.NewDense(nFeatures, nClasses, nil)
	variances := mat.NewDense(nFeatures, nClasses, nil)
	n := float64(nSamples)
	for j := 0; j < nFeatures; j++ {
		sum := make([]float64, nClasses)
		sqrSum := make([]float64, nClasses)
		for i := 0; i < nSamples; i++ {
			v := X.At(i, j)
			sum[labels[i]] += v
			sqrSum[labels[i]] += v * v
		}
		for c := 0; c < nClasses; c++ {
			avg := sum[c] / n
			variance := sqrSum[c]/n - avg*avg
			avgs.Set(j, c, avg)
			variances.Set(j, c, variance)
			if variance == 0 {
				errors.Warn(errors.NewZeroVarianceWarning(modelName, j, c))
			}
		}
	}

	g.classCount = classCount
	g.nClasses = nClasses
	g.nFeatures = nFeatures
	g.avgs = avgs
	g.variances = variances

	g.state.SetDimensions(nFeatures, nSamples)
	g.state.SetFitted()

	slog.Debug("model fitted",
		slog.String(log.ModelNameKey, modelName),
		slog.String(log.OperationKey, log.OperationFit),
		slog.Int(log.SamplesKey, nSamples),
		slog.Int(log.FeaturesKey, nFeatures),
		slog.Int(log.ClassesKey, nClasses),
	)

	return nil
}

// PredictProba returns an n×nClasses matrix whose rows are distributions over
// classes. Each row is the product of the per-feature Gaussian densities,
// normalized by its sum; the class counts collected during fitting do not
// participate. The product is taken in linear probability space with no
// variance clamping: a zero-variance cell or an underflowed all-zero row
// fails with a NumericalInstabilityError instead of returning a value.
func (g *GaussianNB) PredictProba(X mat.Matrix) (_ mat.Matrix, err error) {
	defer errors.Recover(&err, "GaussianNB.PredictProba")

	if err := g.state.RequireFitted(modelName, "PredictProba"); err != nil {
		return nil, err
	}

	nSamples, nFeatures := X.Dims()
	if nFeatures != g.nFeatures {
		return nil, errors.NewDimensionError("GaussianNB.PredictProba", g.nFeatures, nFeatures, 1)
	}

	out := mat.NewDense(nSamples, g.nClasses, nil)
	for i := 0; i < nSamples; i++ {
		joint := make([]float64, g.nClasses)
		for c := range joint {
			joint[c] = 1
		}
		for j := 0; j < nFeatures; j++ {
			x := X.At(i, j)
			for c := 0; c < g.nClasses; c++ {
				joint[c] *= gaussianDensity(x, g.avgs.At(j, c), g.variances.At(j, c))
			}
		}

		if err := errors.CheckNumericalStability("GaussianNB.PredictProba", joint, i); err != nil {
			return nil, err
		}
		sum := 0.0
		for _, p := range joint {
			sum += p
		}
		if sum == 0 {
			return nil, errors.NewNumericalInstabilityError("GaussianNB.PredictProba", joint, i)
		}

		for c := 0; c < g.nClasses; c++ {
			out.Set(i, c, joint[c]/sum)
		}
	}

	slog.Debug("probabilities computed",
		slog.String(log.ModelNameKey, modelName),
		slog.String(log.OperationKey, log.OperationPredictProba),
		slog.Int(log.SamplesKey, nSamples),
	)

	return out, nil
}

// Predict returns an n×1 matrix of predicted class indices: per row, the
// index of the maximum entry of PredictProba, ties broken by the lowest
// class index. The configured threshold is not applied.
func (g *GaussianNB) Predict(X mat.Matrix) (mat.Matrix, error) {
	if err := g.state.RequireFitted(modelName, "Predict"); err != nil {
		return nil, err
	}

	proba, err := g.PredictProba(X)
	if err != nil {
		return nil, err
	}

	nSamples, _ := proba.Dims()
	predictions := mat.NewDense(nSamples, 1, nil)
	for i := 0; i < nSamples; i++ {
		best := 0
		bestProb := proba.At(i, 0)
		for c := 1; c < g.nClasses; c++ {
			if p := proba.At(i, c); p > bestProb {
				best = c
				bestProb = p
			}
		}
		predictions.Set(i, 0, float64(best))
	}

	return predictions, nil
}

// Score returns the mean accuracy of Predict on X against the labels y.
func (g *GaussianNB) Score(X, y mat.Matrix) (float64, error) {
	if err := g.state.RequireFitted(modelName, "Score"); err != nil {
		return 0, err
	}

	predictions, err := g.Predict(X)
	if err != nil {
		return 0, err
	}

	return metrics.AccuracyScoreMatrix(y, predictions)
}

// Classes returns the class labels seen during fitting, in ascending order.
func (g *GaussianNB) Classes() []int {
	classes := make([]int, g.nClasses)
	for c := range classes {
		classes[c] = c
	}
	return classes
}

// ClassCount returns the raw per-class occurrence counts observed during
// fitting. Counts are not normalized or smoothed.
func (g *GaussianNB) ClassCount() map[int]int {
	counts := make(map[int]int, len(g.classCount))
	for c, n := range g.classCount {
		counts[c] = n
	}
	return counts
}

// Means returns a copy of the fitted nFeatures×nClasses mean matrix.
func (g *GaussianNB) Means() mat.Matrix {
	if g.avgs == nil {
		return nil
	}
	return mat.DenseCopyOf(g.avgs)
}

// Variances returns a copy of the fitted nFeatures×nClasses variance matrix.
func (g *GaussianNB) Variances() mat.Matrix {
	if g.variances == nil {
		return nil
	}
	return mat.DenseCopyOf(g.variances)
}

// NFeatures returns the number of feature columns seen during fitting.
func (g *GaussianNB) NFeatures() int {
	return g.nFeatures
}

// GetParams returns the model hyperparameters.
func (g *GaussianNB) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"threshold": g.threshold,
	}
}

// SetParams sets the model hyperparameters.
func (g *GaussianNB) SetParams(params map[string]interface{}) error {
	for key, value := range params {
		switch key {
		case "threshold":
			v, ok := value.(float64)
			if !ok {
				return errors.NewValidationError("threshold", "must be a float64", value)
			}
			g.threshold = v
		default:
			return errors.Newf("unknown parameter: %s", key)
		}
	}
	return nil
}

// gaussianDensity evaluates the univariate normal density at x. The variance
// is used as-is: a zero variance yields a non-finite result that the caller
// rejects.
func gaussianDensity(x, avg, variance float64) float64 {
	return 1 / math.Sqrt(2*math.Pi*variance) * math.Exp(-(x-avg)*(x-avg)/(2*variance))
}

func classKeys(classCount map[int]int) []int {
	keys := make([]int, 0, len(classCount))
	for c := range classCount {
		keys = append(keys, c)
	}
	sort.Ints(keys)
	return keys
}
