// Package imylu is a small machine learning library for Go centered on a
// Gaussian naive Bayes classifier for multi-class tabular data.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/jenniferxq/imylu/naive_bayes"
//	    "gonum.org/v1/gonum/mat"
//	)
//
//	func main() {
//	    X := mat.NewDense(6, 1, []float64{1.0, 1.2, 0.8, 10.0, 10.2, 9.8})
//	    y := mat.NewDense(6, 1, []float64{0, 0, 0, 1, 1, 1})
//
//	    nb := naive_bayes.NewGaussianNB()
//	    if err := nb.Fit(X, y); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    predictions, err := nb.Predict(mat.NewDense(2, 1, []float64{1.0, 10.0}))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(mat.Formatted(predictions))
//	}
//
// # Packages
//
//   - naive_bayes: the GaussianNB estimator
//   - metrics: classification metrics (accuracy)
//   - core/model: estimator state management and interfaces
//   - pkg/errors: structured errors and warnings
//   - pkg/log: structured logging helpers
package imylu
