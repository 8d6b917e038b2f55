package regression

import (
	"fmt"

	"github.com/arloliu/olsim/model"
)

// Model is a fitted line together with its goodness-of-fit statistics.
//
// Fields:
//   - Estimate: the fitted intercept and slope
//   - N: number of points the line was fitted to
//   - RSquared: coefficient of determination (0-1, higher is better)
//   - RMSE: root mean square error of the residuals
//   - Formula: human-readable form of the fitted line
//   - Estimator: predictor built from the coefficients
type Model struct {
	Estimate  model.Estimate
	N         int
	RSquared  float64
	RMSE      float64
	Formula   string
	Estimator Estimator
}

// String returns a one-line summary of the model.
func (m *Model) String() string {
	return fmt.Sprintf("Model{N: %d, R²: %.4f, RMSE: %.4f, Formula: %s}",
		m.N, m.RSquared, m.RMSE, m.Formula)
}
