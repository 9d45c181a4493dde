package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-builder/internal/types"
)

// CreateResume inserts a resume owned by userID and returns the stored record.
func (db *DB) CreateResume(ctx context.Context, userID uuid.UUID, req *types.CreateResumeRequest) (*types.Resume, error) {
	dataBytes, err := json.Marshal(req.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal resume data: %w", err)
	}

	var resume types.Resume
	var stored []byte
	err = db.pool.QueryRow(ctx,
		`INSERT INTO resumes (user_id, title, template_id, data)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, user_id, title, template_id, is_active, data, created_at, updated_at`,
		userID, req.Title, req.TemplateID, dataBytes,
	).Scan(&resume.ID, &resume.UserID, &resume.Title, &resume.TemplateID,
		&resume.IsActive, &stored, &resume.CreatedAt, &resume.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create resume: %w", err)
	}

	if err := json.Unmarshal(stored, &resume.Data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal resume data: %w", err)
	}
	return &resume, nil
}

// GetResume retrieves one resume by ID, scoped to its owner. Returns nil
// without an error when no matching row exists, including rows owned by a
// different user.
func (db *DB) GetResume(ctx context.Context, id, userID uuid.UUID) (*types.Resume, error) {
	var resume types.Resume
	var stored []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, title, template_id, is_active, data, created_at, updated_at
		 FROM resumes WHERE id = $1 AND user_id = $2`,
		id, userID,
	).Scan(&resume.ID, &resume.UserID, &resume.Title, &resume.TemplateID,
		&resume.IsActive, &stored, &resume.CreatedAt, &resume.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}

	if err := json.Unmarshal(stored, &resume.Data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal resume data: %w", err)
	}
	return &resume, nil
}

// ListResumes retrieves all resumes owned by userID, most recently updated
// first.
func (db *DB) ListResumes(ctx context.Context, userID uuid.UUID) ([]types.Resume, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, title, template_id, is_active, data, created_at, updated_at
		 FROM resumes WHERE user_id = $1 ORDER BY updated_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	var resumes []types.Resume
	for rows.Next() {
		var resume types.Resume
		var stored []byte
		if err := rows.Scan(&resume.ID, &resume.UserID, &resume.Title, &resume.TemplateID,
			&resume.IsActive, &stored, &resume.CreatedAt, &resume.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan resume: %w", err)
		}
		if err := json.Unmarshal(stored, &resume.Data); err != nil {
			return nil, fmt.Errorf("failed to unmarshal resume data: %w", err)
		}
		resumes = append(resumes, resume)
	}
	return resumes, nil
}

// UpdateResume applies a partial update to a resume the user owns and returns
// the updated record. Returns nil without an error when no matching row
// exists.
func (db *DB) UpdateResume(ctx context.Context, id, userID uuid.UUID, req *types.UpdateResumeRequest) (*types.Resume, error) {
	set, args, err := buildResumeUpdate(req)
	if err != nil {
		return nil, err
	}
	argNum := len(args) + 1
	query := fmt.Sprintf(
		`UPDATE resumes SET %s WHERE id = $%d AND user_id = $%d
		 RETURNING id, user_id, title, template_id, is_active, data, created_at, updated_at`,
		set, argNum, argNum+1,
	)
	args = append(args, id, userID)

	var resume types.Resume
	var stored []byte
	err = db.pool.QueryRow(ctx, query, args...).
		Scan(&resume.ID, &resume.UserID, &resume.Title, &resume.TemplateID,
			&resume.IsActive, &stored, &resume.CreatedAt, &resume.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update resume: %w", err)
	}

	if err := json.Unmarshal(stored, &resume.Data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal resume data: %w", err)
	}
	return &resume, nil
}

// buildResumeUpdate assembles the SET clause and arguments for a partial
// update. updated_at always advances.
func buildResumeUpdate(req *types.UpdateResumeRequest) (string, []any, error) {
	if req == nil || req.IsEmpty() {
		return "", nil, fmt.Errorf("update carries no changes")
	}

	set := ""
	args := []any{}
	argNum := 1
	add := func(clause string, value any) {
		if set != "" {
			set += ", "
		}
		set += fmt.Sprintf(clause, argNum)
		args = append(args, value)
		argNum++
	}

	if req.Title != nil {
		add("title = $%d", *req.Title)
	}
	if req.TemplateID != nil {
		add("template_id = $%d", *req.TemplateID)
	}
	if req.IsActive != nil {
		add("is_active = $%d", *req.IsActive)
	}
	if req.Data != nil {
		dataBytes, err := json.Marshal(req.Data)
		if err != nil {
			return "", nil, fmt.Errorf("failed to marshal resume data: %w", err)
		}
		add("data = $%d", dataBytes)
	}

	set += ", updated_at = NOW()"
	return set, args, nil
}

// DeleteResume removes a resume the user owns. Returns false without an error
// when no matching row exists.
func (db *DB) DeleteResume(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM resumes WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete resume: %w", err)
	}
	return result.RowsAffected() > 0, nil
}

// SetActiveResume marks one resume active and clears the flag on the user's
// other resumes in a single transaction.
func (db *DB) SetActiveResume(ctx context.Context, id, userID uuid.UUID) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`UPDATE resumes SET is_active = false WHERE user_id = $1 AND is_active`,
		userID,
	); err != nil {
		return fmt.Errorf("failed to clear active resume: %w", err)
	}

	result, err := tx.Exec(ctx,
		`UPDATE resumes SET is_active = true, updated_at = NOW() WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to set active resume: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("resume not found: %s", id)
	}

	return tx.Commit(ctx)
}
