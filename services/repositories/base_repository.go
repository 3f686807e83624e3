package repositories

import "gorm.io/gorm"

// BaseRepository holds the shared gorm handle embedded by the concrete
// repositories.
type BaseRepository struct {
	db *gorm.DB
}

func NewBaseRepository(db *gorm.DB) BaseRepository {
	return BaseRepository{db: db}
}

// DB exposes the raw connection for queries the repositories don't wrap.
func (r *BaseRepository) DB() *gorm.DB {
	return r.db
}
