package repositories

import (
	"github.com/lac-hong-legacy/rehab_api/model"
	"gorm.io/gorm"
)

// ExerciseRepository stores the per-exercise result rows. The concrete table
// is picked by the record type.
type ExerciseRepository struct {
	BaseRepository
}

func NewExerciseRepository(db *gorm.DB) *ExerciseRepository {
	return &ExerciseRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

func (r *ExerciseRepository) CreateExerciseResult(result model.ExerciseResult) error {
	return r.db.Create(result).Error
}

func (r *ExerciseRepository) GetExerciseResult(kind model.ExerciseKind, sessionID uint) (model.ExerciseResult, error) {
	def, err := model.LookupExercise(kind)
	if err != nil {
		return nil, err
	}

	result := def.New()
	if err := r.db.Where("session_id = ?", sessionID).First(result).Error; err != nil {
		return nil, err
	}
	return result, nil
}
