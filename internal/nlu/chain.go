package nlu

import (
	"github.com/voxadev/voxa-assist-go/internal/domain"
	"go.uber.org/zap"
)

// ChainState tracks where the interpretation chain is in its lifecycle.
type ChainState string

const (
	StatePending     ChainState = "pending"
	StateStepRunning ChainState = "step_running"
	StateResolved    ChainState = "resolved"
	StateExhausted   ChainState = "exhausted"
)

// Step is one interpretation stage. Steps only see the request, never each
// other's proposals; the chain alone aggregates. An authoritative step ends
// the chain as soon as it proposes anything.
type Step interface {
	Name() string
	Propose(req *domain.Request) *domain.Proposal
	Authoritative() bool
}

// Chain runs the configured steps in a fixed order and picks the winning
// command. The same input and step configuration always yield the same
// result: the first proposal at or above the confidence floor wins
// immediately, otherwise the highest-confidence proposal after all steps
// ran, otherwise the no-result command.
type Chain struct {
	steps  []Step
	floor  float64
	logger *zap.Logger
}

func NewChain(steps []Step, confidenceFloor float64, logger *zap.Logger) *Chain {
	return &Chain{steps: steps, floor: confidenceFloor, logger: logger}
}

func (c *Chain) Interpret(req *domain.Request) *domain.Interpretation {
	state := StatePending
	var proposals []domain.Proposal

	norm := NormalizerFor(req.Language)
	if req.TextNorm == "" {
		req.TextNorm = norm.Normalize(req.Text)
	}

	for _, step := range c.steps {
		state = StateStepRunning
		proposal := step.Propose(req)
		if proposal == nil {
			continue
		}
		proposal.Source = step.Name()
		proposals = append(proposals, *proposal)

		if step.Authoritative() || proposal.Confidence >= c.floor {
			state = StateResolved
			c.logger.Debug("Interpretation resolved",
				zap.String("step", step.Name()),
				zap.String("command", proposal.Command.String()),
				zap.Float64("confidence", proposal.Confidence),
			)
			return c.buildResult(req, *proposal, proposals)
		}
	}
	state = StateExhausted

	if len(proposals) == 0 {
		c.logger.Debug("Interpretation exhausted without proposals",
			zap.String("state", string(state)),
			zap.String("text", req.TextNorm),
		)
		return domain.NewInterpretation(req, domain.CommandNoResult, nil, 0)
	}

	best := proposals[0]
	for _, p := range proposals[1:] {
		if p.Confidence > best.Confidence {
			best = p
		}
	}
	return c.buildResult(req, best, proposals)
}

func (c *Chain) buildResult(req *domain.Request, best domain.Proposal, all []domain.Proposal) *domain.Interpretation {
	it := domain.NewInterpretation(req, best.Command, best.Params, best.Confidence)
	for _, p := range all {
		if p.Source != best.Source || p.Command != best.Command {
			it.Alternatives = append(it.Alternatives, p)
		}
	}
	return it
}
