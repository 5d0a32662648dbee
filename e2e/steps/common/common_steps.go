package common

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"

	"wcg/internal/client"
)

// TestContext interface defines the methods needed from the main test context
type TestContext interface {
	CheckReachable(ctx context.Context) error
	Results() []*client.Result
	LastResult() *client.Result
}

// RegisterSteps registers common step definitions used across features
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &commonSteps{tc: tc}

	// Background steps
	ctx.Step(`^the registration service is reachable$`, steps.serviceIsReachable)

	// Response assertion steps
	ctx.Step(`^the response status should be (\d+)$`, steps.responseStatusShouldBe)
	ctx.Step(`^the response feedback should be "([^"]*)"$`, steps.responseFeedbackShouldBe)
	ctx.Step(`^response (\d+) feedback should be "([^"]*)"$`, steps.nthResponseFeedbackShouldBe)
	ctx.Step(`^every response feedback should be "([^"]*)"$`, steps.everyResponseFeedbackShouldBe)
}

type commonSteps struct {
	tc TestContext
}

func (s *commonSteps) serviceIsReachable(ctx context.Context) error {
	return s.tc.CheckReachable(ctx)
}

func (s *commonSteps) last() (*client.Result, error) {
	res := s.tc.LastResult()
	if res == nil {
		return nil, fmt.Errorf("no response recorded yet")
	}
	return res, nil
}

func (s *commonSteps) responseStatusShouldBe(ctx context.Context, expectedStatus int) error {
	res, err := s.last()
	if err != nil {
		return err
	}
	if res.StatusCode != expectedStatus {
		return fmt.Errorf("expected status %d but got %d (feedback %q)", expectedStatus, res.StatusCode, res.Feedback)
	}
	return nil
}

func (s *commonSteps) responseFeedbackShouldBe(ctx context.Context, expected string) error {
	res, err := s.last()
	if err != nil {
		return err
	}
	if res.Feedback != expected {
		return fmt.Errorf("expected feedback %q but got %q", expected, res.Feedback)
	}
	return nil
}

// nthResponseFeedbackShouldBe checks the n-th response of the scenario, counting from 1.
func (s *commonSteps) nthResponseFeedbackShouldBe(ctx context.Context, n int, expected string) error {
	results := s.tc.Results()
	if n < 1 || n > len(results) {
		return fmt.Errorf("response %d requested but %d recorded", n, len(results))
	}
	if got := results[n-1].Feedback; got != expected {
		return fmt.Errorf("response %d: expected feedback %q but got %q", n, expected, got)
	}
	return nil
}

func (s *commonSteps) everyResponseFeedbackShouldBe(ctx context.Context, expected string) error {
	results := s.tc.Results()
	if len(results) == 0 {
		return fmt.Errorf("no response recorded yet")
	}
	for i, res := range results {
		if res.Feedback != expected {
			return fmt.Errorf("response %d: expected feedback %q but got %q", i+1, expected, res.Feedback)
		}
	}
	return nil
}

