// Package mocks provides hand-written fakes of the service interfaces for
// handler tests. Each fake returns its default fields unless the matching
// Fn field is set, and records the calls it receives.
//
//	svc := &mocks.MockReviewService{Err: store.ErrProblemNotFound}
package mocks
