// Package mocks provides testify mocks for the controller interfaces.
package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/mouse-blink/animfind/internal/controller"
	m "github.com/mouse-blink/animfind/internal/model"
)

// MockUI is a mock implementation of controller.UI.
type MockUI struct {
	mock.Mock
}

var _ controller.UI = (*MockUI)(nil)

// NewMockUI creates a MockUI whose expectations are asserted when t finishes.
func NewMockUI(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUI {
	u := &MockUI{}
	u.Test(t)

	t.Cleanup(func() { u.AssertExpectations(t) })

	return u
}

// Start records the call and returns the configured error.
func (u *MockUI) Start(options ...controller.StartOption) error {
	args := u.Called(options)
	return args.Error(0)
}

// Close records the call.
func (u *MockUI) Close() {
	u.Called()
}

// Wait records the call and returns the configured error.
func (u *MockUI) Wait() error {
	args := u.Called()
	return args.Error(0)
}

// DisplayProgress records the call.
func (u *MockUI) DisplayProgress(progress m.Progress) {
	u.Called(progress)
}

// DisplayResults records the call and returns the configured error.
func (u *MockUI) DisplayResults(outcome m.SearchOutcome) error {
	args := u.Called(outcome)
	return args.Error(0)
}

// DisplayClips records the call and returns the configured error.
func (u *MockUI) DisplayClips(clips []m.ClipSummary, err error) error {
	args := u.Called(clips, err)
	return args.Error(0)
}

// DisplayPresets records the call and returns the configured error.
func (u *MockUI) DisplayPresets(presets []string) error {
	args := u.Called(presets)
	return args.Error(0)
}
