package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"confmatch/internal/cache"
	"confmatch/internal/form"
	"confmatch/internal/model"
	"confmatch/internal/repository"
)

var (
	ErrSubmitInProgress = errors.New("a submission is already in progress")
	ErrNotLastSection   = errors.New("submit is only available on the last section")
)

// WebhookSender dispatches the processing webhook after a successful
// save. Implemented by WebhookClient.
type WebhookSender interface {
	Send(ctx context.Context, payload *model.WebhookPayload) error
	IsConfigured() bool
}

// QuestionnaireService orchestrates the questionnaire engine: it loads
// and prefills per-user state, funnels every mutation through the form
// package and runs the final submit against the persistence store and
// the processing webhook.
type QuestionnaireService struct {
	schema  model.Schema
	repo    repository.ResponseRepo
	cache   cache.FormCache
	webhook WebhookSender
}

// NewQuestionnaireService creates a new questionnaire service
func NewQuestionnaireService(schema model.Schema, repo repository.ResponseRepo, formCache cache.FormCache, webhook WebhookSender) *QuestionnaireService {
	return &QuestionnaireService{
		schema:  schema,
		repo:    repo,
		cache:   formCache,
		webhook: webhook,
	}
}

// Schema returns the questionnaire schema as declared.
func (s *QuestionnaireService) Schema() model.Schema {
	return s.schema
}

// MergedSchema returns the schema with each choice question's options
// extended by the user's session custom options.
func (s *QuestionnaireService) MergedSchema(ctx context.Context, userID string) (model.Schema, error) {
	st, err := s.State(ctx, userID)
	if err != nil {
		return nil, err
	}

	merged := make(model.Schema, len(s.schema))
	for i, sec := range s.schema {
		items := make([]model.Question, len(sec.Items))
		copy(items, sec.Items)
		for j, q := range items {
			if q.Type == model.QuestionTypeSingleSelect || q.Type == model.QuestionTypeMultiSelect {
				items[j].Options = st.MergedOptions(q)
			}
		}
		merged[i] = model.Section{Name: sec.Name, Items: items}
	}
	return merged, nil
}

// State returns the user's in-progress state, prefilling it from the
// last persisted submission on a cache miss. A user with no prior
// submission gets an empty state; any other lookup failure degrades
// silently to an empty state.
func (s *QuestionnaireService) State(ctx context.Context, userID string) (*form.State, error) {
	st, err := s.cache.Get(ctx, userID)
	if err != nil {
		log.Printf("[Questionnaire] form cache read failed for %s: %v", userID, err)
	}
	if st != nil {
		return st, nil
	}

	rec, err := s.repo.GetByUserID(ctx, userID)
	switch {
	case err == nil:
		st = form.Load(s.schema, rec.Answers)
	case errors.Is(err, repository.ErrNotFound):
		st = form.NewState()
	default:
		log.Printf("[Questionnaire] prefill lookup failed for %s: %v", userID, err)
		st = form.NewState()
	}

	if err := s.cache.Set(ctx, userID, st); err != nil {
		log.Printf("[Questionnaire] form cache write failed for %s: %v", userID, err)
	}
	return st, nil
}

// UpdateAnswer applies a single merge/update mutation.
func (s *QuestionnaireService) UpdateAnswer(ctx context.Context, userID string, u model.AnswerUpdate) (*form.State, error) {
	return s.mutate(ctx, userID, func(st *form.State) error {
		return st.Apply(u)
	})
}

// AddCustomOption registers a user-authored choice and selects it.
func (s *QuestionnaireService) AddCustomOption(ctx context.Context, userID, key, value string) (*form.State, error) {
	return s.mutate(ctx, userID, func(st *form.State) error {
		st.AddCustomOption(s.schema, key, value)
		return nil
	})
}

// Next advances to the following section if the current one validates.
// A *form.ValidationError passes through unwrapped so the handler can
// surface the failing prompt.
func (s *QuestionnaireService) Next(ctx context.Context, userID string) (*form.State, error) {
	return s.mutate(ctx, userID, func(st *form.State) error {
		return st.Next(s.schema)
	})
}

// Back moves to the previous section, unguarded.
func (s *QuestionnaireService) Back(ctx context.Context, userID string) (*form.State, error) {
	return s.mutate(ctx, userID, func(st *form.State) error {
		st.Back()
		return nil
	})
}

// Submit validates the terminal section, serializes the answer store,
// persists the flat record and dispatches the processing webhook
// without blocking on its outcome. Concurrent submits by the same user
// are rejected while one is in flight.
func (s *QuestionnaireService) Submit(ctx context.Context, sess *model.UserSession) (*model.SubmitResult, error) {
	st, err := s.State(ctx, sess.UserID)
	if err != nil {
		return nil, err
	}
	if !st.AtLastSection(s.schema) {
		return nil, ErrNotLastSection
	}
	if err := form.Validate(s.schema[st.SectionIndex], st.Answers); err != nil {
		return nil, err
	}

	ok, err := s.cache.AcquireSubmitLock(ctx, sess.UserID)
	if err != nil {
		return nil, fmt.Errorf("acquire submit lock: %w", err)
	}
	if !ok {
		return nil, ErrSubmitInProgress
	}
	defer func() {
		if err := s.cache.ReleaseSubmitLock(ctx, sess.UserID); err != nil {
			log.Printf("[Questionnaire] release submit lock failed for %s: %v", sess.UserID, err)
		}
	}()

	resp := &model.Response{
		UserID:       sess.UserID,
		SubmissionID: uuid.NewString(),
		Email:        sess.Email,
		Name:         sess.Name,
		Answers:      form.Serialize(s.schema, st.Answers),
		SubmittedAt:  time.Now(),
	}

	if err := s.repo.Save(ctx, resp); err != nil {
		return nil, fmt.Errorf("save submission: %w", err)
	}

	s.dispatchWebhook(sess, resp)

	return &model.SubmitResult{
		SubmissionID: resp.SubmissionID,
		SubmittedAt:  resp.SubmittedAt,
	}, nil
}

// mutate runs a load-modify-store round trip against the form cache.
// The state is written back only when the mutation succeeds.
func (s *QuestionnaireService) mutate(ctx context.Context, userID string, fn func(*form.State) error) (*form.State, error) {
	st, err := s.State(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := fn(st); err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, userID, st); err != nil {
		return nil, fmt.Errorf("save form state: %w", err)
	}
	return st, nil
}

// dispatchWebhook fires the processing webhook in the background. Its
// outcome is logged and discarded; it must never alter the submission
// result or re-block the caller.
func (s *QuestionnaireService) dispatchWebhook(sess *model.UserSession, resp *model.Response) {
	if s.webhook == nil || !s.webhook.IsConfigured() {
		return
	}

	payload := &model.WebhookPayload{
		UserID:       sess.UserID,
		UserEmail:    sess.Email,
		UserName:     sess.Name,
		SubmissionID: resp.SubmissionID,
		FormData:     resp.Answers,
	}

	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[Webhook] recovered from panic: %v", r)
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := s.webhook.Send(ctx, payload); err != nil {
			log.Printf("[Webhook] dispatch failed for submission %s: %v", resp.SubmissionID, err)
			return
		}
		log.Printf("[Webhook] dispatched submission %s", resp.SubmissionID)
	}()
}
