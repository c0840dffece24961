package postgres

import (
	"context"
	"encoding/json"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"
	"marketplace/internal/errors"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type draftRepository struct {
	db *gorm.DB
}

// NewDraftRepository creates a registration draft repository bound to the given database handle.
func NewDraftRepository(db *gorm.DB) repository.DraftRepository {
	return &draftRepository{db: db}
}

func (r *draftRepository) FindByOwnerAndKind(ctx context.Context, ownerID uuid.UUID, kind entity.DraftKind) (*entity.RegistrationDraft, error) {
	var m model.RegistrationDraftModel
	err := r.db.WithContext(ctx).
		First(&m, "owner_id = ? AND kind = ?", ownerID, string(kind)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.WithStack(repository.ErrDraftNotFound)
		}

		return nil, errors.Wrap(err, "failed to find registration draft")
	}

	return toDraftDomain(&m)
}

// Save inserts the draft or overwrites the live draft for the same owner and
// kind, so every patch lands on a single row.
func (r *draftRepository) Save(ctx context.Context, draft *entity.RegistrationDraft) error {
	m, err := fromDraftDomain(draft)
	if err != nil {
		return err
	}

	err = r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "owner_id"}, {Name: "kind"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"current_step",
				"completed_steps",
				"payload",
				"updated_at",
			}),
		}).
		Create(m).Error
	if err != nil {
		return errors.Wrap(err, "failed to save registration draft")
	}
	draft.ID = m.ID
	draft.CreatedAt = m.CreatedAt
	draft.UpdatedAt = m.UpdatedAt

	return nil
}

func (r *draftRepository) Delete(ctx context.Context, ownerID uuid.UUID, kind entity.DraftKind) error {
	err := r.db.WithContext(ctx).
		Delete(&model.RegistrationDraftModel{}, "owner_id = ? AND kind = ?", ownerID, string(kind)).Error
	if err != nil {
		return errors.Wrap(err, "failed to delete registration draft")
	}

	return nil
}

func toDraftDomain(m *model.RegistrationDraftModel) (*entity.RegistrationDraft, error) {
	var completedSteps []int
	if err := decodeJSONColumn(m.CompletedSteps, &completedSteps); err != nil {
		return nil, errors.Wrap(err, "failed to decode draft completed steps")
	}

	payload := map[string]any{}
	if err := decodeJSONColumn(m.Payload, &payload); err != nil {
		return nil, errors.Wrap(err, "failed to decode draft payload")
	}

	return &entity.RegistrationDraft{
		ID:             m.ID,
		OwnerID:        m.OwnerID,
		Kind:           entity.DraftKind(m.Kind),
		CurrentStep:    m.CurrentStep,
		CompletedSteps: completedSteps,
		Payload:        payload,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}, nil
}

func fromDraftDomain(draft *entity.RegistrationDraft) (*model.RegistrationDraftModel, error) {
	completedSteps := draft.CompletedSteps
	if completedSteps == nil {
		completedSteps = []int{}
	}
	completedStepsRaw, err := json.Marshal(completedSteps)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode draft completed steps")
	}

	payload := draft.Payload
	if payload == nil {
		payload = map[string]any{}
	}
	payloadRaw, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode draft payload")
	}

	return &model.RegistrationDraftModel{
		ID:             draft.ID,
		OwnerID:        draft.OwnerID,
		Kind:           string(draft.Kind),
		CurrentStep:    draft.CurrentStep,
		CompletedSteps: datatypes.JSON(completedStepsRaw),
		Payload:        datatypes.JSON(payloadRaw),
	}, nil
}
