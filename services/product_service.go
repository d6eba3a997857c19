package services

import (
	"context"
	"errors"
	"time"

	"ecomm/entity"
	"ecomm/pkg/cache"
	"ecomm/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	featuredCacheKey = "featured_products"
	featuredCacheTTL = time.Minute

	trendingLimit = 10
)

var ErrInvalidRating = errors.New("rating must be between 1 and 5")

type ProductService struct {
	DB         *gorm.DB
	Repo       *repository.ProductRepository
	ReviewRepo *repository.ReviewRepository
	WishRepo   *repository.WishlistRepository
	Cache      cache.Store
}

func NewProductService(
	db *gorm.DB,
	repo *repository.ProductRepository,
	reviewRepo *repository.ReviewRepository,
	wishRepo *repository.WishlistRepository,
	store cache.Store,
) *ProductService {
	return &ProductService{
		DB:         db,
		Repo:       repo,
		ReviewRepo: reviewRepo,
		WishRepo:   wishRepo,
		Cache:      store,
	}
}

func (s *ProductService) Search(f repository.ProductFilter) ([]entity.Product, error) {
	return s.Repo.Search(f)
}

// Trending is the top products by rating, ties broken by rating count.
func (s *ProductService) Trending() ([]entity.Product, error) {
	return s.Repo.Trending(trendingLimit)
}

// Featured serves the flagged products through the cache. A stale entry is
// served as-is until its TTL runs out; product mutations do not invalidate
// it, so a newly flagged product can take up to a minute to appear.
func (s *ProductService) Featured(ctx context.Context) ([]entity.Product, error) {
	var cached []entity.Product
	if hit, err := s.Cache.Get(ctx, featuredCacheKey, &cached); err == nil && hit {
		return cached, nil
	}

	fresh, err := s.Repo.Featured()
	if err != nil {
		return nil, err
	}
	// best effort; a failed set just means another query next time
	_ = s.Cache.Set(ctx, featuredCacheKey, fresh, featuredCacheTTL)
	return fresh, nil
}

// ProductDetail is the by-id view with the category resolved.
type ProductDetail struct {
	entity.Product
	Category   string `json:"category"`
	IsTrending bool   `json:"isTrending"`
}

func (s *ProductService) GetByID(id uint) (*ProductDetail, error) {
	p, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	name, err := s.Repo.CategoryName(p.CategoryID)
	if err != nil {
		return nil, err
	}
	if name == "" {
		name = "Unknown"
	}
	return &ProductDetail{
		Product:    *p,
		Category:   name,
		IsTrending: p.Rating >= 4.0,
	}, nil
}

// ----- catalog mutation (admin) -----

type ProductInput struct {
	Name          string          `json:"name" binding:"required,max=100"`
	Description   string          `json:"description" binding:"max=500"`
	Price         decimal.Decimal `json:"price"`
	ImageURL      string          `json:"imageUrl"`
	CategoryID    uint            `json:"categoryId"`
	Brand         string          `json:"brand"`
	StockQuantity int             `json:"stockQuantity"`
}

func (s *ProductService) Add(in *ProductInput) (*entity.Product, error) {
	p := &entity.Product{
		Name:          in.Name,
		Description:   in.Description,
		Price:         in.Price,
		ImageURL:      in.ImageURL,
		CategoryID:    in.CategoryID,
		Brand:         in.Brand,
		StockQuantity: in.StockQuantity,
	}
	if err := s.Repo.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProductService) Update(id uint, in *ProductInput) (*entity.Product, error) {
	p, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	p.Name = in.Name
	p.Description = in.Description
	p.Price = in.Price
	p.ImageURL = in.ImageURL
	p.CategoryID = in.CategoryID
	p.Brand = in.Brand
	p.StockQuantity = in.StockQuantity
	if err := s.Repo.Save(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProductService) Delete(id uint) error {
	p, err := s.Repo.FindByID(id)
	if err != nil {
		return err
	}
	return s.Repo.Delete(p)
}

// ----- categories -----

func (s *ProductService) Categories() ([]entity.ProductCategory, error) {
	return s.Repo.Categories()
}

func (s *ProductService) AddCategory(name, imageURL string) (*entity.ProductCategory, error) {
	c := &entity.ProductCategory{CategoryName: name, ImageURL: imageURL}
	if err := s.Repo.CreateCategory(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *ProductService) ByCategory(categoryID uint) ([]entity.Product, error) {
	return s.Repo.ByCategory(categoryID)
}

// ----- wishlist -----

// AddToWishlist is idempotent and returns the updated wishlist.
func (s *ProductService) AddToWishlist(userID, productID uint) ([]entity.Product, error) {
	if _, err := s.Repo.FindByID(productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []entity.Product{}, nil
		}
		return nil, err
	}

	exists, err := s.WishRepo.Exists(userID, productID)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := s.WishRepo.Add(userID, productID); err != nil {
			return nil, err
		}
	}
	return s.WishRepo.Products(userID)
}

func (s *ProductService) Wishlist(userID uint) ([]entity.Product, error) {
	return s.WishRepo.Products(userID)
}

func (s *ProductService) RemoveFromWishlist(userID, productID uint) (bool, error) {
	return s.WishRepo.Remove(userID, productID)
}

// ----- reviews -----

// AddReview stores the review and recomputes the product's aggregate rating
// in the same transaction.
func (s *ProductService) AddReview(userID, productID uint, rating int, comment string) (*entity.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}
	if _, err := s.Repo.FindByID(productID); err != nil {
		return nil, err
	}

	review := &entity.Review{
		UserID:    userID,
		ProductID: productID,
		Rating:    rating,
		Comment:   comment,
	}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.ReviewRepo.Create(tx, review); err != nil {
			return err
		}
		count, sum, err := s.ReviewRepo.Aggregate(tx, productID)
		if err != nil {
			return err
		}
		return s.Repo.UpdateRating(tx, productID, float64(sum)/float64(count), int(count))
	})
	if err != nil {
		return nil, err
	}
	return review, nil
}

func (s *ProductService) Reviews(productID uint) ([]entity.Review, error) {
	return s.ReviewRepo.ListForProduct(productID)
}
