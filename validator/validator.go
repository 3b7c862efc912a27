package validator

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/bizvalid/bizvalid/agent"
	"github.com/bizvalid/bizvalid/callback"
	"github.com/bizvalid/bizvalid/environment"
	"github.com/bizvalid/bizvalid/llm"
	"github.com/bizvalid/bizvalid/schema"
	"github.com/bizvalid/bizvalid/tool/search"
)

// DefaultSpeakingOrder is the fixed validation workflow.
var DefaultSpeakingOrder = []string{
	ClarifierName,
	MarketResearcherName,
	CompetitorScoutName,
	SWOTAnalystName,
	FeedbackAgentName,
}

// Validator wires the five prompt-engineered agents plus the user
// proxy into a bounded group conversation and turns the finished
// transcript into a report.
type Validator struct {
	llm        llm.LLM
	provider   search.Provider
	callback   callback.Handler
	selector   schema.SpeakerSelector
	maxTurn    int
	searchTopK int
}

func New(opts ...Option) (*Validator, error) {
	options := &Options{}
	for _, opt := range opts {
		opt(options)
	}
	if options.LLM == nil {
		return nil, schema.ErrMissingLLM
	}
	if options.Provider == nil {
		options.Provider = search.NewDuckDuckGo()
	}
	if options.Selector == nil {
		options.Selector = environment.NewRoundRobinSelector(DefaultSpeakingOrder...)
	}
	return &Validator{
		llm:        options.LLM,
		provider:   options.Provider,
		callback:   options.Callback,
		selector:   options.Selector,
		maxTurn:    options.MaxTurn,
		searchTopK: options.SearchTopK,
	}, nil
}

// Validate runs the full validation conversation for idea and
// returns the assembled markdown report.
func (v *Validator) Validate(ctx context.Context, idea string) (string, error) {
	transcript, err := v.RunConversation(ctx, idea)
	if err != nil {
		return "", err
	}
	return BuildReport(idea, transcript, time.Now()), nil
}

// RunConversation drives the group chat to termination or the round
// limit and returns the transcript.
func (v *Validator) RunConversation(ctx context.Context, idea string) ([]schema.Message, error) {
	team, err := v.buildAgents(idea)
	if err != nil {
		return nil, err
	}

	env := environment.NewEnv()
	if v.maxTurn > 0 {
		env.MaxTurn = v.maxTurn
	}
	env.Team.AddMembers(team...)
	env.Team.Leader = team[0]
	for _, a := range team {
		a.WithEnv(env)
	}

	seed := schema.NewUserMessage(UserProxyName,
		fmt.Sprintf(_initialMessageTemplate, idea))
	if err := env.Produce(ctx, seed); err != nil {
		return nil, errors.Wrap(err, "seed conversation")
	}

	for msg := env.Consume(ctx); msg != nil; msg = env.Consume(ctx) {
		if v.selector.Terminated(msg) {
			break
		}
		speaker, err := v.selector.Next(ctx, msg, env.GetTeam())
		if err != nil {
			return nil, err
		}
		if speaker == nil {
			break
		}

		history := env.LoadMemory(ctx)
		if v.callback != nil {
			v.callback.HandleAgentStart(ctx, speaker.Name(), history)
		}
		gen, err := speaker.Run(ctx, history)
		if err != nil {
			return nil, errors.Wrapf(err, "agent %s failed", speaker.Name())
		}
		if v.callback != nil {
			v.callback.HandleAgentEnd(ctx, speaker.Name(), gen)
		}
		if err := env.Produce(ctx, gen.Message); err != nil {
			return nil, errors.Wrap(err, "produce reply")
		}
	}

	return env.LoadMemory(ctx), nil
}

func (v *Validator) buildAgents(idea string) ([]schema.Agent, error) {
	clarifier, err := agent.NewBaseAgent(
		agent.WithName(ClarifierName),
		agent.WithDesc("Clarifies and refines the business idea into a well-defined concept"),
		agent.WithPrompt(_clarifierPrompt),
		agent.WithLLM(v.llm),
		agent.WithCallback(v.callback),
	)
	if err != nil {
		return nil, err
	}

	market, err := agent.NewSearchAgent(
		agent.WithName(MarketResearcherName),
		agent.WithDesc("Researches market trends and opportunities with live web search"),
		agent.WithPrompt(_marketResearcherPrompt),
		agent.WithLLM(v.llm),
		agent.WithCallback(v.callback),
		agent.WithSearchProvider(v.provider),
		agent.WithSearchQuery(fmt.Sprintf(_marketQueryTemplate, idea)),
		agent.WithTopK(v.searchTopK),
	)
	if err != nil {
		return nil, err
	}

	scout, err := agent.NewSearchAgent(
		agent.WithName(CompetitorScoutName),
		agent.WithDesc("Identifies and analyzes competitors with live web search"),
		agent.WithPrompt(_competitorScoutPrompt),
		agent.WithLLM(v.llm),
		agent.WithCallback(v.callback),
		agent.WithSearchProvider(v.provider),
		agent.WithSearchQuery(fmt.Sprintf(_competitorQueryTemplate, idea)),
		agent.WithTopK(v.searchTopK),
	)
	if err != nil {
		return nil, err
	}

	swot, err := agent.NewBaseAgent(
		agent.WithName(SWOTAnalystName),
		agent.WithDesc("Performs a comprehensive SWOT analysis"),
		agent.WithPrompt(_swotAnalystPrompt),
		agent.WithLLM(v.llm),
		agent.WithCallback(v.callback),
	)
	if err != nil {
		return nil, err
	}

	feedback, err := agent.NewBaseAgent(
		agent.WithName(FeedbackAgentName),
		agent.WithDesc("Provides strategic feedback and improvement suggestions"),
		agent.WithPrompt(_feedbackAgentPrompt),
		agent.WithLLM(v.llm),
		agent.WithCallback(v.callback),
	)
	if err != nil {
		return nil, err
	}

	return []schema.Agent{clarifier, market, scout, swot, feedback}, nil
}
