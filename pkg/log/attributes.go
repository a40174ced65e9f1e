// Package log defines the standard attribute keys used by imylu estimators.
// Using fixed keys keeps log output filterable across models and operations.
package log

// Model and operation context.
const (
	// ModelNameKey identifies the estimator type, e.g. "GaussianNB".
	ModelNameKey = "model.name"

	// OperationKey names the estimator operation: "fit", "predict",
	// "predict_proba", "score".
	OperationKey = "ml.operation"
)

// Data shape.
const (
	// SamplesKey is the number of rows processed.
	SamplesKey = "data.samples"

	// FeaturesKey is the number of feature columns.
	FeaturesKey = "data.features"

	// ClassesKey is the number of distinct classes seen during fitting.
	ClassesKey = "data.classes"
)

// Standard operation values.
const (
	OperationFit          = "fit"
	OperationPredict      = "predict"
	OperationPredictProba = "predict_proba"
	OperationScore        = "score"
)
