package repository

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/nagoyameshi/backend/internal/types"
)

// paginate counts the rows matched by query and loads one page of them.
// decorate adjusts the row query only (preloads, selects) so the count
// stays a plain COUNT(*).
func paginate[T any](query *gorm.DB, p types.Pageable, order string, decorate func(*gorm.DB) *gorm.DB) (types.Page[T], error) {
	base := query.Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return types.Page[T]{}, fmt.Errorf("count: %w", err)
	}

	rows := make([]T, 0, p.Size)
	if total > int64(p.Offset()) {
		find := base
		if decorate != nil {
			find = decorate(find)
		}
		if err := find.Order(order).Limit(p.Size).Offset(p.Offset()).Find(&rows).Error; err != nil {
			return types.Page[T]{}, fmt.Errorf("find page: %w", err)
		}
	}

	return types.NewPage(rows, p, total), nil
}
