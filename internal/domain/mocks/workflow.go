// Package mocks provides testify mocks for the domain interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mouse-blink/animfind/internal/domain"
	m "github.com/mouse-blink/animfind/internal/model"
)

// MockWorkflow is a mock implementation of domain.Workflow.
type MockWorkflow struct {
	mock.Mock
}

var _ domain.Workflow = (*MockWorkflow)(nil)

// NewMockWorkflow creates a MockWorkflow whose expectations are asserted when t finishes.
func NewMockWorkflow(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockWorkflow {
	w := &MockWorkflow{}
	w.Test(t)

	t.Cleanup(func() { w.AssertExpectations(t) })

	return w
}

// Search records the call and returns the configured outcome and error.
func (w *MockWorkflow) Search(ctx context.Context, args domain.SearchArgs) (m.SearchOutcome, error) {
	ret := w.Called(ctx, args)
	return ret.Get(0).(m.SearchOutcome), ret.Error(1)
}

// ListClips records the call and returns the configured error.
func (w *MockWorkflow) ListClips(args domain.ListArgs) error {
	ret := w.Called(args)
	return ret.Error(0)
}

// Presets records the call and returns the configured error.
func (w *MockWorkflow) Presets() error {
	ret := w.Called()
	return ret.Error(0)
}
