package chat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/katechon/engine/app/event"
	"github.com/katechon/engine/app/metrics"
	"github.com/katechon/engine/app/ollama"
)

// ErrBusy is returned when an invocation is already in flight.
// Invocations are serialized so their sequential calls never interleave.
var ErrBusy = errors.New("analysis already in progress")

// Generator is the language-model backend contract.
type Generator interface {
	Generate(ctx context.Context, systemPrompt, userMessage string) (string, error)
}

var _ Generator = (*ollama.Client)(nil)

// ArticleExtractor enriches event analysis with the linked article's
// readable text. Optional; failures are non-fatal.
type ArticleExtractor interface {
	Run(ctx context.Context, link string) (string, error)
}

// Archiver persists classified events. Optional; the in-memory store
// stays authoritative and archive failures are logged only.
type Archiver interface {
	UpsertEvent(ev event.Event) error
}

// step is one pending dispatch in an invocation's ordered task list.
type step struct {
	name   string
	prompt string
}

// Orchestrator sequences language-model calls across the active
// personas for one input, appending results to the transcript. One
// invocation walks its ordered step list front to back; the first
// failure appends a single error entry and skips the remaining steps.
type Orchestrator struct {
	llm        Generator
	registry   *Registry
	transcript *Transcript
	store      *event.Store
	health     *event.HealthTracker
	extractor  ArticleExtractor
	archive    Archiver

	inFlight atomic.Bool
}

func NewOrchestrator(llm Generator, registry *Registry, transcript *Transcript,
	store *event.Store, health *event.HealthTracker, extractor ArticleExtractor,
	archive Archiver) *Orchestrator {
	return &Orchestrator{
		llm:        llm,
		registry:   registry,
		transcript: transcript,
		store:      store,
		health:     health,
		extractor:  extractor,
		archive:    archive,
	}
}

// Send runs one invocation for a user-submitted message.
func (o *Orchestrator) Send(ctx context.Context, content string, debate bool) error {
	if !o.inFlight.CompareAndSwap(false, true) {
		return ErrBusy
	}
	defer o.inFlight.Store(false)

	_, err := o.dispatch(ctx, content, debate)
	return err
}

// AnalyzeEvent runs one invocation for an event sent to analysis. On
// success, a tier found in the first response becomes the event's
// authoritative classification: the stored record's analysis, tier and
// pillar impacts are replaced and, on first classification, the impact
// vector is folded into the pillar health scores.
func (o *Orchestrator) AnalyzeEvent(ctx context.Context, ev event.Event, debate bool) error {
	if !o.inFlight.CompareAndSwap(false, true) {
		return ErrBusy
	}
	defer o.inFlight.Store(false)

	prompt := BuildAnalysisPrompt(ev)

	if o.extractor != nil && ev.Link != "" {
		article, err := o.extractor.Run(ctx, ev.Link)
		if err != nil {
			slog.Debug("Article extraction skipped", "link", ev.Link, "error", err)
		} else {
			prompt = fmt.Sprintf("%s\n\nArticle content:\n%s", prompt, article)
		}
	}

	responses, err := o.dispatch(ctx, prompt, debate)
	if err != nil || len(responses) == 0 {
		return err
	}

	tier, ok := ParseTier(responses[0].Content)
	if !ok {
		slog.Debug("No tier found in analysis response", "event_id", ev.ID)
		return nil
	}

	info := event.Classify(tier)
	if err := o.store.ApplyAnalysis(ev.ID, responses[0].Content, info.Tier, info.SeedImpacts, o.health); err != nil {
		return fmt.Errorf("failed to apply analysis: %w", err)
	}

	if o.archive != nil {
		if updated, ok := o.store.Get(ev.ID); ok {
			if err := o.archive.UpsertEvent(updated); err != nil {
				slog.Warn("Event archive write failed", "event_id", ev.ID, "error", err)
			}
		}
	}

	slog.Info("Event classified",
		"event_id", ev.ID,
		"tier", info.Tier,
		"label", info.Label)

	return nil
}

// dispatch walks the ordered step list for one invocation. It appends
// the user message, then one assistant message per successful step. A
// failed step appends exactly one error entry and stops the walk;
// entries already appended remain.
func (o *Orchestrator) dispatch(ctx context.Context, content string, debate bool) ([]ChatMessage, error) {
	o.transcript.Append(RoleUser, content, "")

	steps := o.buildSteps(debate)
	responses := make([]ChatMessage, 0, len(steps))

	for _, st := range steps {
		response, err := o.llm.Generate(ctx, st.prompt, content)
		if err != nil {
			metrics.LLMCallsTotal.WithLabelValues(st.name, "error").Inc()
			slog.Error("Language model call failed", "persona", st.name, "error", err)

			o.transcript.Append(RoleAssistant,
				fmt.Sprintf("Error: %s. Please check your Ollama connection and settings.", err), "")
			return responses, fmt.Errorf("call for %s failed: %w", st.name, err)
		}

		metrics.LLMCallsTotal.WithLabelValues(st.name, "success").Inc()
		responses = append(responses, o.transcript.Append(RoleAssistant, response, st.name))
	}

	return responses, nil
}

// buildSteps assembles the invocation's ordered task list: the default
// responder when no persona is active, otherwise the active personas in
// activation order; with debate mode on, the adversary goes last.
func (o *Orchestrator) buildSteps(debate bool) []step {
	var steps []step

	activeIDs := o.registry.ActiveIDs()
	if len(activeIDs) == 0 {
		steps = append(steps, step{name: DefaultResponderName, prompt: restrainerPrompt})
	} else {
		for _, id := range activeIDs {
			name := DefaultResponderName
			if p, ok := o.registry.Get(id); ok {
				name = p.Name
			}
			steps = append(steps, step{name: name, prompt: o.registry.PromptFor(id)})
		}
	}

	if debate {
		steps = append(steps, step{name: AdversaryName, prompt: propagandistPrompt})
	}

	return steps
}
