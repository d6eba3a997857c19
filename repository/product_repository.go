package repository

import (
	"strings"

	"ecomm/entity"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProductRepository struct{ DB *gorm.DB }

func NewProductRepository(db *gorm.DB) *ProductRepository { return &ProductRepository{DB: db} }

// ProductFilter holds the optional search parameters. Nil fields are not
// applied. Sort: 0 none, 1 price asc, 2 price desc, 3 rating desc, 4 rating asc.
type ProductFilter struct {
	Query      string
	CategoryID *uint
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	Sort       int
}

func (r *ProductRepository) Search(f ProductFilter) ([]entity.Product, error) {
	q := r.DB.Model(&entity.Product{})
	if f.Query != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(f.Query)+"%")
	}
	if f.CategoryID != nil && *f.CategoryID > 0 {
		q = q.Where("category_id = ?", *f.CategoryID)
	}
	if f.MinPrice != nil {
		q = q.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("price <= ?", *f.MaxPrice)
	}
	switch f.Sort {
	case 1:
		q = q.Order("price ASC")
	case 2:
		q = q.Order("price DESC")
	case 3:
		q = q.Order("rating DESC")
	case 4:
		q = q.Order("rating ASC")
	}

	var out []entity.Product
	err := q.Find(&out).Error
	return out, err
}

func (r *ProductRepository) Trending(limit int) ([]entity.Product, error) {
	var out []entity.Product
	err := r.DB.Order("rating DESC, total_ratings DESC").Limit(limit).Find(&out).Error
	return out, err
}

func (r *ProductRepository) Featured() ([]entity.Product, error) {
	var out []entity.Product
	err := r.DB.Where("is_featured = ?", true).Find(&out).Error
	return out, err
}

func (r *ProductRepository) FindByID(id uint) (*entity.Product, error) {
	var p entity.Product
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// FindByIDs batch-loads products keyed by id.
func (r *ProductRepository) FindByIDs(ids []uint) (map[uint]entity.Product, error) {
	var rows []entity.Product
	if err := r.DB.Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[uint]entity.Product, len(rows))
	for _, p := range rows {
		out[p.ID] = p
	}
	return out, nil
}

func (r *ProductRepository) ByCategory(categoryID uint) ([]entity.Product, error) {
	var out []entity.Product
	err := r.DB.Where("category_id = ?", categoryID).Find(&out).Error
	return out, err
}

func (r *ProductRepository) Create(p *entity.Product) error {
	return r.DB.Create(p).Error
}

func (r *ProductRepository) Save(p *entity.Product) error {
	return r.DB.Save(p).Error
}

func (r *ProductRepository) Delete(p *entity.Product) error {
	return r.DB.Delete(p).Error
}

// DecrementStock takes qty off the product's stock only if enough is left.
// The conditional WHERE closes the race between concurrent orders against
// the same product; false means the stock check lost.
func (r *ProductRepository) DecrementStock(tx *gorm.DB, productID uint, qty int) (bool, error) {
	res := tx.Model(&entity.Product{}).
		Where("id = ? AND stock_quantity >= ?", productID, qty).
		UpdateColumn("stock_quantity", gorm.Expr("stock_quantity - ?", qty))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *ProductRepository) UpdateRating(tx *gorm.DB, productID uint, rating float64, totalRatings int) error {
	return tx.Model(&entity.Product{}).Where("id = ?", productID).
		Updates(map[string]any{"rating": rating, "total_ratings": totalRatings}).Error
}

// ---------------- Categories ----------------

func (r *ProductRepository) Categories() ([]entity.ProductCategory, error) {
	var out []entity.ProductCategory
	err := r.DB.Find(&out).Error
	return out, err
}

func (r *ProductRepository) CreateCategory(c *entity.ProductCategory) error {
	return r.DB.Create(c).Error
}

func (r *ProductRepository) CategoryName(id uint) (string, error) {
	var row struct{ CategoryName string }
	err := r.DB.Model(&entity.ProductCategory{}).
		Select("category_name").Where("id = ?", id).
		Limit(1).Scan(&row).Error
	return row.CategoryName, err
}
