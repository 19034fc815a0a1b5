package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/fewfast/HomieRanking-BackEnd/core"
	"github.com/fewfast/HomieRanking-BackEnd/pkg/token"
)

// QuizService covers quiz upload, listing and the ownership-gated
// update/delete operations.
type QuizService struct {
	store  core.QuizStorage
	logger zerolog.Logger
}

func NewQuizService(store core.QuizStorage, logger zerolog.Logger) *QuizService {
	return &QuizService{
		store:  store,
		logger: logger.With().Str("service", "quiz").Logger(),
	}
}

// Create uploads a new quiz owned by the caller. UploadedBy always comes
// from the verified claims, never from the request body.
func (s *QuizService) Create(ctx context.Context, claims *token.Claims, input core.QuizInput) (*core.Quiz, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	quiz := &core.Quiz{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		Questions:   input.Questions,
		Image:       input.Image,
		UploadedBy:  claims.Username,
	}

	if err := s.store.CreateQuiz(ctx, quiz); err != nil {
		return nil, fmt.Errorf("failed to create quiz: %w", err)
	}

	s.logger.Info().Str("quiz", quiz.ID).Str("uploaded_by", quiz.UploadedBy).Msg("quiz created")
	return quiz, nil
}

func (s *QuizService) List(ctx context.Context) ([]*core.Quiz, error) {
	quizzes, err := s.store.ListQuizzes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list quizzes: %w", err)
	}
	return quizzes, nil
}

func (s *QuizService) Get(ctx context.Context, id string) (*core.Quiz, error) {
	quiz, err := s.store.GetQuizByID(ctx, id)
	if err != nil {
		if errors.Is(err, core.ErrQuizNotFound) {
			return nil, core.ErrQuizNotFound
		}
		return nil, fmt.Errorf("failed to find quiz: %w", err)
	}
	return quiz, nil
}

// Update applies a partial update after the ownership check. A valid token
// from a non-owner is rejected with core.ErrNotOwner, not an auth failure.
func (s *QuizService) Update(ctx context.Context, claims *token.Claims, id string, patch core.QuizPatch) (*core.Quiz, error) {
	quiz, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := AuthorizeOwnership(claims, quiz.UploadedBy); err != nil {
		return nil, err
	}
	if patch.Empty() {
		return nil, core.ErrEmptyUpdate
	}

	updated, err := s.store.UpdateQuiz(ctx, id, patch)
	if err != nil {
		if errors.Is(err, core.ErrQuizNotFound) {
			return nil, core.ErrQuizNotFound
		}
		return nil, fmt.Errorf("failed to update quiz: %w", err)
	}

	s.logger.Info().Str("quiz", id).Msg("quiz updated")
	return updated, nil
}

// Delete removes a quiz after the ownership check.
func (s *QuizService) Delete(ctx context.Context, claims *token.Claims, id string) error {
	quiz, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := AuthorizeOwnership(claims, quiz.UploadedBy); err != nil {
		return err
	}

	if err := s.store.DeleteQuiz(ctx, id); err != nil {
		return fmt.Errorf("failed to delete quiz: %w", err)
	}

	s.logger.Info().Str("quiz", id).Msg("quiz deleted")
	return nil
}
