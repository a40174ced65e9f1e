// Package naive_bayes implements naive Bayes classifiers.
//
// GaussianNB models each feature as an independent univariate Gaussian per
// class. Fit estimates the per-class feature moments from labeled rows;
// PredictProba multiplies the densities into an un-normalized joint term per
// class and rescales each row into a distribution; Predict takes the argmax.
//
// The estimator is a faithful port of the imylu reference implementation,
// including its unconventional moment scaling: all sums are divided by the
// total number of training rows rather than the per-class row count, and the
// class frequency counts are collected but not applied as a prior during
// inference. Callers that need textbook Gaussian NB semantics should not use
// this package as-is.
//
// Failure behavior is fail-fast: unfitted models, shape mismatches, zero
// variances and probability underflow all return errors instead of values.
package naive_bayes
