package pgx

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/fewfast/HomieRanking-BackEnd/core"
)

func (a *Adapter) CreateQuiz(ctx context.Context, quiz *core.Quiz) error {
	q := `INSERT INTO quizzes (id, title, description, questions, image, uploaded_by)
	      VALUES ($1, $2, $3, $4, $5, $6)
	      RETURNING created_at, updated_at`

	return a.pool.QueryRow(ctx, q,
		quiz.ID, quiz.Title, quiz.Description, []byte(quiz.Questions), quiz.Image, quiz.UploadedBy,
	).Scan(&quiz.CreatedAt, &quiz.UpdatedAt)
}

func (a *Adapter) GetQuizByID(ctx context.Context, id string) (*core.Quiz, error) {
	q := `SELECT id, title, description, questions, image, uploaded_by, created_at, updated_at
	      FROM quizzes WHERE id = $1`

	quiz := &core.Quiz{}
	var questions []byte
	err := a.pool.QueryRow(ctx, q, id).Scan(
		&quiz.ID, &quiz.Title, &quiz.Description, &questions,
		&quiz.Image, &quiz.UploadedBy, &quiz.CreatedAt, &quiz.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, core.ErrQuizNotFound
		}
		return nil, err
	}
	quiz.Questions = questions
	return quiz, nil
}

func (a *Adapter) ListQuizzes(ctx context.Context) ([]*core.Quiz, error) {
	q := `SELECT id, title, description, questions, image, uploaded_by, created_at, updated_at
	      FROM quizzes ORDER BY created_at DESC`

	rows, err := a.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var quizzes []*core.Quiz
	for rows.Next() {
		quiz := &core.Quiz{}
		var questions []byte
		if err := rows.Scan(
			&quiz.ID, &quiz.Title, &quiz.Description, &questions,
			&quiz.Image, &quiz.UploadedBy, &quiz.CreatedAt, &quiz.UpdatedAt,
		); err != nil {
			return nil, err
		}
		quiz.Questions = questions
		quizzes = append(quizzes, quiz)
	}
	return quizzes, rows.Err()
}

func (a *Adapter) UpdateQuiz(ctx context.Context, id string, patch core.QuizPatch) (*core.Quiz, error) {
	q := `UPDATE quizzes
	      SET title       = COALESCE($1, title),
	          description = COALESCE($2, description),
	          questions   = COALESCE($3::jsonb, questions),
	          image       = COALESCE($4, image),
	          updated_at  = now()
	      WHERE id = $5
	      RETURNING id, title, description, questions, image, uploaded_by, created_at, updated_at`

	var questionsArg []byte
	if patch.Questions != nil {
		questionsArg = []byte(patch.Questions)
	}

	quiz := &core.Quiz{}
	var questions []byte
	err := a.pool.QueryRow(ctx, q, patch.Title, patch.Description, questionsArg, patch.Image, id).Scan(
		&quiz.ID, &quiz.Title, &quiz.Description, &questions,
		&quiz.Image, &quiz.UploadedBy, &quiz.CreatedAt, &quiz.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, core.ErrQuizNotFound
		}
		return nil, err
	}
	quiz.Questions = questions
	return quiz, nil
}

func (a *Adapter) DeleteQuiz(ctx context.Context, id string) error {
	tag, err := a.pool.Exec(ctx, `DELETE FROM quizzes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return core.ErrQuizNotFound
	}
	return nil
}
