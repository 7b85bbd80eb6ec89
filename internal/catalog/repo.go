package catalog

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repo struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) *Repo {
	return &Repo{db: db}
}

// FetchAll returns the full catalog. The conversation path calls this on
// every search; freshness over latency, no caching.
func (r *Repo) FetchAll(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := r.db.WithContext(ctx).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Upsert inserts a product or, when the name already exists, replaces its
// price, image, url and spec text.
func (r *Repo) Upsert(ctx context.Context, p *Product) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"price", "image", "url", "additional_data", "updated_at"}),
	}).Create(p).Error
}

// DeleteAll wipes the catalog before a full rescrape.
func (r *Repo) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&Product{}).Error
}

func (r *Repo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&Product{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
