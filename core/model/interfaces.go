package model

import (
	"gonum.org/v1/gonum/mat"
)

// Fitter is the interface for models that learn from data.
type Fitter interface {
	// Fit trains the model on the given features and targets.
	Fit(X, y mat.Matrix) error
}

// Predictor is the interface for models that produce predictions.
type Predictor interface {
	// Predict returns predictions for the input data.
	Predict(X mat.Matrix) (mat.Matrix, error)
}

// Classifier combines the interfaces implemented by classification models.
type Classifier interface {
	Fitter
	Predictor

	// PredictProba returns per-class probability estimates.
	PredictProba(X mat.Matrix) (mat.Matrix, error)

	// Classes returns the class labels seen during fitting.
	Classes() []int

	// Score returns the mean accuracy on the given test data and labels.
	Score(X, y mat.Matrix) (float64, error)
}
