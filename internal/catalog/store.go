package catalog

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Alp4ka/pagenav"
)

const seedBatchSize = 100

// Open opens the sqlite catalog database.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog database: %w", err)
	}

	// Every connection to ":memory:" is a separate database.
	if dsn == ":memory:" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to access catalog database: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	return db, nil
}

// ListFilter narrows the product listing.
type ListFilter struct {
	// Category - exact category match. Empty means all categories.
	Category string
}

// Store is the product repository.
type Store struct {
	db  *gorm.DB
	log *logrus.Entry
}

func NewStore(db *gorm.DB, log *logrus.Entry) *Store {
	return &Store{
		db:  db,
		log: log,
	}
}

// Migrate creates or updates the products table.
func (s *Store) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&Product{}); err != nil {
		return fmt.Errorf("failed to migrate catalog: %w", err)
	}

	return nil
}

// Seed inserts n generated products when the catalog is empty. It returns
// the number of inserted products.
func (s *Store) Seed(ctx context.Context, n int) (int, error) {
	db := s.db.WithContext(ctx)

	var count int64
	if err := db.Model(&Product{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	if count > 0 || n <= 0 {
		s.log.WithField("existing", count).Debug("Skipping catalog seed")
		return 0, nil
	}

	products := GenerateProducts(n, time.Now().UTC())
	if err := db.CreateInBatches(products, seedBatchSize).Error; err != nil {
		return 0, fmt.Errorf("failed to seed products: %w", err)
	}

	s.log.WithField("products", n).Info("Seeded catalog")

	return n, nil
}

// List returns one page of products. An id tie-breaker is appended to the
// ordering unless the pager already sorts by id, so pages never overlap.
func (s *Store) List(ctx context.Context, filter ListFilter, pager *pagenav.PagePager) (*pagenav.PageResult[Product], error) {
	pager = withIDTieBreaker(pager)

	query := s.db.Model(&Product{})
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	res, err := pagenav.Fetch[Product](ctx, query, pager)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"category": filter.Category,
		"page":     res.State.CurrentPage,
		"pages":    res.State.TotalPages,
		"total":    res.State.TotalCount,
	}).Debug("Listed products")

	return res, nil
}

// GenerateProducts builds n deterministic demo products created one minute
// apart, ending at now.
func GenerateProducts(n int, now time.Time) []Product {
	return lo.Times(n, func(i int) Product {
		category := Categories[i%len(Categories)]
		return Product{
			Name:       fmt.Sprintf("%s #%03d", category, i+1),
			Category:   category,
			PriceCents: int64(999 + (i*1373)%20000),
			CreatedAt:  now.Add(-time.Duration(n-i) * time.Minute),
		}
	})
}

// withIDTieBreaker returns pager unchanged when it already sorts by id and a
// copy ending with id ASC otherwise. The caller's pager is never modified.
func withIDTieBreaker(pager *pagenav.PagePager) *pagenav.PagePager {
	hasID := lo.ContainsBy(pager.GetSort(), func(o pagenav.OrderBy) bool {
		return o.Column == "id"
	})
	if hasID {
		return pager
	}

	sort := append(slices.Clone(pager.GetSort()), pagenav.OrderBy{Column: "id", Direction: pagenav.DirectionASC})

	return pagenav.NewPagePager().
		WithMaxPageSize(pager.GetPageSize()).
		WithPageSize(pager.GetPageSize()).
		WithPage(pager.GetPage()).
		WithSubstitutedSort(sort...)
}
