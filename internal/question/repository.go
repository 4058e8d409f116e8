package question

import "gorm.io/gorm"

type Repository interface {
	Find(category, difficulty string, limit int) ([]Question, error)
	Categories() ([]string, error)
	Count() (int64, error)
	CreateBatch(questions []*Question) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Find returns up to limit random questions. Empty or "all" filters match
// everything.
func (r *repository) Find(category, difficulty string, limit int) ([]Question, error) {
	q := r.db.Model(&Question{})

	if category != "" && category != "all" {
		q = q.Where("category = ?", category)
	}
	if difficulty != "" && difficulty != "all" {
		q = q.Where("difficulty = ?", difficulty)
	}

	var questions []Question
	if err := q.Order("RANDOM()").Limit(limit).Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *repository) Categories() ([]string, error) {
	var categories []string
	err := r.db.Model(&Question{}).
		Distinct("category").
		Order("category").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *repository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&Question{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *repository) CreateBatch(questions []*Question) error {
	if len(questions) == 0 {
		return nil
	}
	return r.db.Create(&questions).Error
}
