package usecase

import (
	"context"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"sales-coach-assistant/internal/assistant"
	callRepo "sales-coach-assistant/internal/call/repository"
	"sales-coach-assistant/internal/classifier"
	"sales-coach-assistant/internal/rubric"
	"sales-coach-assistant/pkg/datemath"
	"sales-coach-assistant/pkg/llmprovider"
	"sales-coach-assistant/pkg/log"
)

// Generator is the LLM surface the handlers need.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
	GenerateJSON(ctx context.Context, req *llmprovider.Request, out any) error
}

// IntentClassifier maps one message to a classification, never failing.
type IntentClassifier interface {
	Classify(ctx context.Context, message string) classifier.Classification
}

// handlerFunc is the uniform contract every intent handler satisfies.
type handlerFunc func(ctx context.Context, params assistant.HandlerParams, message string) assistant.HandlerResult

// Config carries assistant tuning knobs from the composition root.
type Config struct {
	AgentCacheSize     int
	MaxTranscriptChars int
}

type implUseCase struct {
	l          log.Logger
	classifier IntentClassifier
	llm        Generator
	callRepo   callRepo.Repository
	vectorRepo callRepo.VectorRepository
	rubricUC   rubric.UseCase
	dateMath   *datemath.Parser

	agentCache         *lru.Cache[string, callRepo.AgentMatch]
	maxTranscriptChars int

	handlers map[classifier.Intent]handlerFunc
	now      func() time.Time
}

// New creates the assistant UseCase and registers one handler per intent.
// The handler map is validated for totality at construction: a missing
// intent is a programming error and panics immediately rather than
// surfacing as a silent nil dispatch at request time.
func New(
	l log.Logger,
	ic IntentClassifier,
	llm Generator,
	repo callRepo.Repository,
	vectorRepo callRepo.VectorRepository,
	rubricUC rubric.UseCase,
	dateMath *datemath.Parser,
	cfg Config,
) *implUseCase {
	cacheSize := cfg.AgentCacheSize
	if cacheSize <= 0 {
		cacheSize = 256
	}
	cache, err := lru.New[string, callRepo.AgentMatch](cacheSize)
	if err != nil {
		panic(fmt.Sprintf("assistant/usecase: agent cache: %v", err))
	}

	maxChars := cfg.MaxTranscriptChars
	if maxChars <= 0 {
		maxChars = 24000
	}

	uc := &implUseCase{
		l:                  l,
		classifier:         ic,
		llm:                llm,
		callRepo:           repo,
		vectorRepo:         vectorRepo,
		rubricUC:           rubricUC,
		dateMath:           dateMath,
		agentCache:         cache,
		maxTranscriptChars: maxChars,
		now:                time.Now,
	}

	uc.handlers = map[classifier.Intent]handlerFunc{
		classifier.IntentListCalls:     uc.handleListCalls,
		classifier.IntentAgentStats:    uc.handleAgentStats,
		classifier.IntentTeamSummary:   uc.handleTeamSummary,
		classifier.IntentGetTranscript: uc.handleGetTranscript,
		classifier.IntentSearchCalls:   uc.handleSearchCalls,
		classifier.IntentCoaching:      uc.handleCoaching,
		classifier.IntentGeneral:       uc.handleGeneral,
	}

	for _, intent := range classifier.AllIntents() {
		if _, ok := uc.handlers[intent]; !ok {
			panic(fmt.Sprintf("assistant/usecase: no handler registered for intent %s", intent))
		}
	}

	return uc
}
