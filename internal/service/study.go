package service

import (
	"context"
	"fmt"

	"github.com/pkordes/travelops/backend/internal/domain"
	"github.com/pkordes/travelops/backend/internal/repo"
)

// WordSource provides the vocabulary list. Satisfied by *WordFile; defined
// as an interface so tests can inject a fixed list without touching disk.
type WordSource interface {
	Load() ([]domain.Word, error)
}

// StudyService implements the study workflow: serve the word at the current
// progress index, record answers, advance progress.
type StudyService struct {
	repo  repo.StudyRepo
	words WordSource
}

// NewStudyService constructs a StudyService backed by the provided repo and
// word source.
func NewStudyService(r repo.StudyRepo, words WordSource) *StudyService {
	return &StudyService{repo: r, words: words}
}

// Words returns the full vocabulary list.
func (s *StudyService) Words(ctx context.Context) ([]domain.Word, error) {
	words, err := s.words.Load()
	if err != nil {
		return nil, fmt.Errorf("service.StudyService.Words: %w", err)
	}
	return words, nil
}

// CurrentWord returns the word at the learner's current progress index.
// Returns domain.ErrNotFound once the index has moved past the end of the
// list — the handler renders that as the "finished" response.
func (s *StudyService) CurrentWord(ctx context.Context) (domain.WordCard, error) {
	index, err := s.repo.Progress(ctx)
	if err != nil {
		return domain.WordCard{}, fmt.Errorf("service.StudyService.CurrentWord: %w", err)
	}

	words, err := s.words.Load()
	if err != nil {
		return domain.WordCard{}, fmt.Errorf("service.StudyService.CurrentWord: %w", err)
	}

	if index < 0 || index >= len(words) {
		return domain.WordCard{}, fmt.Errorf("service.StudyService.CurrentWord: %w", domain.ErrNotFound)
	}

	w := words[index]
	return domain.WordCard{
		ID:    w.Num,
		En:    w.En,
		Jp:    w.Jp,
		Index: index,
		Total: len(words),
	}, nil
}

// Submit records one study answer and advances progress to the index after
// the one the answer was given at. The report append happens first; if the
// progress write then fails, the learner re-answers one word and a duplicate
// report row appears — the at-least-once behaviour the original remote store
// had, and harmless for an append-only review list.
func (s *StudyService) Submit(ctx context.Context, sub domain.WordSubmission) error {
	if sub.Status == "" {
		return fmt.Errorf("service.StudyService.Submit: %w: status is required", domain.ErrValidation)
	}
	if sub.CurrentIndex < 0 {
		return fmt.Errorf("service.StudyService.Submit: %w: current_index must not be negative", domain.ErrValidation)
	}

	if _, err := s.repo.AddReport(ctx, domain.WordReport{WordID: sub.WordID, Status: sub.Status}); err != nil {
		return fmt.Errorf("service.StudyService.Submit: %w", err)
	}
	if err := s.repo.SetProgress(ctx, sub.CurrentIndex+1); err != nil {
		return fmt.Errorf("service.StudyService.Submit: %w", err)
	}
	return nil
}

// Progress returns the current word index.
func (s *StudyService) Progress(ctx context.Context) (int, error) {
	index, err := s.repo.Progress(ctx)
	if err != nil {
		return 0, fmt.Errorf("service.StudyService.Progress: %w", err)
	}
	return index, nil
}

// SetProgress overwrites the current word index.
func (s *StudyService) SetProgress(ctx context.Context, index int) error {
	if index < 0 {
		return fmt.Errorf("service.StudyService.SetProgress: %w: index must not be negative", domain.ErrValidation)
	}
	if err := s.repo.SetProgress(ctx, index); err != nil {
		return fmt.Errorf("service.StudyService.SetProgress: %w", err)
	}
	return nil
}
