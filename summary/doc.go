// Package summary reduces a sequence of coefficient estimates to the numbers a
// presentation layer needs: descriptive statistics against the true value and
// equal-width histogram bins.
//
// Both functions are order-independent and ignore non-finite values, which are
// counted in the Dropped fields. Statistics are computed with gonum's stat
// package.
package summary
