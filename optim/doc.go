// SPDX-License-Identifier: MIT

// Package optim drives an interpreted construction towards a configuration
// that satisfies its asserted constraints.
//
// The objective is the weighted residual sum
//
//	Σ wᵢ·vᵢ²                      over losses
//	Σ wⱼ·max(0, margin − |vⱼ|)²   over NDG residuals
//
// evaluated over the dual-number backend, so one pass yields the value and
// the full gradient with respect to every free variable. Adam updates the
// variable store in place.
//
// Each restart draws a fresh initial sample from an independent RNG stream
// derived from Config.Seed. Samples whose points are closer than
// Config.MinDist are discarded before descent. The first restart that
// reaches Config.Tolerance wins; otherwise the best restart is returned
// with Converged == false.
//
// Goals (confirm instructions) are not optimized. They are checked once on
// the final configuration.
//
// Solve respects context cancellation between descent steps.
package optim
