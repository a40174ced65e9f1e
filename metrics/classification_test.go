package metrics

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestAccuracyScore(t *testing.T) {
	tests := []struct {
		name    string
		yTrue   []float64
		yPred   []float64
		want    float64
		wantErr bool
	}{
		{
			name:  "All correct",
			yTrue: []float64{0, 1, 2, 1},
			yPred: []float64{0, 1, 2, 1},
			want:  1.0,
		},
		{
			name:  "All wrong",
			yTrue: []float64{0, 0, 1, 1},
			yPred: []float64{1, 1, 0, 0},
			want:  0.0,
		},
		{
			name:  "Half correct",
			yTrue: []float64{0, 1, 0, 1},
			yPred: []float64{0, 1, 1, 0},
			want:  0.5,
		},
		{
			name:  "Multiclass",
			yTrue: []float64{0, 1, 2, 2, 1, 0},
			yPred: []float64{0, 1, 2, 1, 1, 0},
			want:  5.0 / 6.0,
		},
		{
			name:    "Dimension mismatch",
			yTrue:   []float64{0, 1},
			yPred:   []float64{0},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			yTrue := mat.NewVecDense(len(tt.yTrue), tt.yTrue)
			yPred := mat.NewVecDense(len(tt.yPred), tt.yPred)

			got, err := AccuracyScore(yTrue, yPred)
			if (err != nil) != tt.wantErr {
				t.Errorf("AccuracyScore() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("AccuracyScore() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAccuracyScoreMatrix(t *testing.T) {
	tests := []struct {
		name    string
		yTrue   mat.Matrix
		yPred   mat.Matrix
		want    float64
		wantErr bool
	}{
		{
			name:  "Column vectors",
			yTrue: mat.NewDense(4, 1, []float64{0, 1, 1, 0}),
			yPred: mat.NewDense(4, 1, []float64{0, 1, 0, 0}),
			want:  0.75,
		},
		{
			name:    "Shape mismatch",
			yTrue:   mat.NewDense(3, 1, []float64{0, 1, 1}),
			yPred:   mat.NewDense(2, 1, []float64{0, 1}),
			wantErr: true,
		},
		{
			name:    "Not a column vector",
			yTrue:   mat.NewDense(2, 2, []float64{0, 1, 1, 0}),
			yPred:   mat.NewDense(2, 2, []float64{0, 1, 1, 0}),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AccuracyScoreMatrix(tt.yTrue, tt.yPred)
			if (err != nil) != tt.wantErr {
				t.Errorf("AccuracyScoreMatrix() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("AccuracyScoreMatrix() = %v, want %v", got, tt.want)
			}
		})
	}
}
