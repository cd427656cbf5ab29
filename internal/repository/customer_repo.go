package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/kral14/mobilsayt/internal/dto"
	"github.com/kral14/mobilsayt/internal/mapper"
	"github.com/kral14/mobilsayt/internal/model"
)

type CustomerRepository interface {
	ListRows(ctx context.Context, filter dto.CustomerFilter) ([]mapper.CustomerRow, error)
	Create(ctx context.Context, c *model.Customer) error
	Delete(ctx context.Context, id int) error
}

type customerRepo struct{ db *gorm.DB }

func NewCustomerRepository(db *gorm.DB) CustomerRepository { return &customerRepo{db: db} }

func (r *customerRepo) ListRows(ctx context.Context, filter dto.CustomerFilter) ([]mapper.CustomerRow, error) {
	where := "1=1"
	args := []interface{}{}
	if filter.Type != "" {
		where += " AND c.type = ?"
		args = append(args, filter.Type)
	}

	var rows []mapper.CustomerRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			c.*,
			f.id AS folder_id_join, f.name AS folder_name, f.parent_id AS folder_parent_id
		FROM customers c
		LEFT JOIN customer_folders f ON c.folder_id = f.id
		WHERE `+where+`
		ORDER BY c.name ASC`, args...).Scan(&rows).Error
	return rows, err
}

func (r *customerRepo) Create(ctx context.Context, c *model.Customer) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *customerRepo) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Customer{}).Error
}
