package seed

import (
	"context"
	"fmt"
	"math/rand"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"lapakpedia/internal/app/marketplace/entity"
	"lapakpedia/internal/app/marketplace/repository"
	"lapakpedia/internal/app/marketplace/util"
	"lapakpedia/pkg/logger"
)

// Seeder наполняет и очищает коллекции тестовыми данными.
// Записи создаются через репозитории, очистка - напрямую по коллекции.
type Seeder struct {
	db            *mongo.Database
	userRepo      repository.UserRepository
	categoryRepo  repository.CategoryRepository
	productRepo   repository.ProductRepository
	favouriteRepo repository.FavouriteRepository
}

func New(db *mongo.Database) *Seeder {
	return &Seeder{
		db:            db,
		userRepo:      repository.NewUserRepository(db),
		categoryRepo:  repository.NewCategoryRepository(db),
		productRepo:   repository.NewProductRepository(db),
		favouriteRepo: repository.NewFavouriteRepository(db),
	}
}

// Seed наполняет одну коллекцию или все сразу ("all").
// Порядок при "all" фиксирован: товары ссылаются на категории,
// избранное - на пользователя и товары.
func (s *Seeder) Seed(ctx context.Context, collection string) error {
	switch collection {
	case "users":
		return s.seedUsers(ctx)
	case "categories":
		return s.seedCategories(ctx)
	case "products":
		return s.seedProducts(ctx)
	case "favourites":
		return s.seedFavourites(ctx)
	case "all":
		if err := s.seedUsers(ctx); err != nil {
			return err
		}
		if err := s.seedCategories(ctx); err != nil {
			return err
		}
		if err := s.seedProducts(ctx); err != nil {
			return err
		}
		return s.seedFavourites(ctx)
	default:
		return fmt.Errorf("unknown collection %q", collection)
	}
}

// Truncate удаляет все документы одной коллекции или всех сразу
func (s *Seeder) Truncate(ctx context.Context, collection string) error {
	collections := []string{"users", "categories", "products", "favourites"}

	switch collection {
	case "users", "categories", "products", "favourites":
		collections = []string{collection}
	case "all":
	default:
		return fmt.Errorf("unknown collection %q", collection)
	}

	for _, name := range collections {
		if _, err := s.db.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			return fmt.Errorf("failed to truncate %s: %w", name, err)
		}
		logger.Info().Str("collection", name).Msg("Collection truncated")
	}

	return nil
}

var sellerNames = []string{"Gadget Garage", "Volt & Byte", "Prima Elektronik"}

func (s *Seeder) seedUsers(ctx context.Context) error {
	fixtures := []struct {
		name string
		role string
	}{
		{"Arman Wijaya", entity.RoleAdmin},
		{"Sari Putri", entity.RoleMember},
		{sellerNames[0], entity.RoleSeller},
		{sellerNames[1], entity.RoleSeller},
		{sellerNames[2], entity.RoleSeller},
	}

	sellerIndex := 0
	for _, f := range fixtures {
		username := usernameFor(f.role, &sellerIndex)

		// Пароль совпадает с username: фикстуры только для разработки
		hash, err := util.HashPassword(username)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}

		user := &entity.User{
			Name:     f.name,
			Username: username,
			Email:    username + "@lapakpedia.com",
			Password: hash,
			Role:     f.role,
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return fmt.Errorf("failed to seed user %s: %w", username, err)
		}
	}

	logger.Info().Msg("Users successfully seeded")
	return nil
}

func usernameFor(role string, sellerIndex *int) string {
	switch role {
	case entity.RoleSeller:
		username := fmt.Sprintf("seller%d", *sellerIndex)
		*sellerIndex++
		return username
	case entity.RoleAdmin:
		return "admin"
	default:
		return "member"
	}
}

func (s *Seeder) seedCategories(ctx context.Context) error {
	names := []string{"Smartphone", "PC & Laptop", "Entertainment"}

	for _, name := range names {
		category := &entity.Category{Name: name}
		if err := s.categoryRepo.Create(ctx, category); err != nil {
			return fmt.Errorf("failed to seed category %s: %w", name, err)
		}
	}

	logger.Info().Msg("Categories successfully seeded")
	return nil
}

var productAdjectives = []string{
	"Sleek", "Rustic", "Intelligent", "Ergonomic", "Incredible", "Practical",
}

var productNouns = []string{
	"Keyboard", "Headset", "Monitor", "Charger", "Speaker", "Webcam",
	"Tablet", "Console", "Router", "Drone",
}

func (s *Seeder) seedProducts(ctx context.Context) error {
	categories, err := s.categoryRepo.List(ctx, entity.CategoryListQuery{})
	if err != nil {
		return fmt.Errorf("failed to list categories: %w", err)
	}
	if len(categories) == 0 {
		return fmt.Errorf("no categories to attach products to, seed categories first")
	}

	for i := 0; i < 30; i++ {
		product := &entity.Product{
			Name:        fmt.Sprintf("%s %s", productAdjectives[rand.Intn(len(productAdjectives))], productNouns[rand.Intn(len(productNouns))]),
			Category:    categories[rand.Intn(len(categories))].ID.Hex(),
			Price:       float64(10 + rand.Intn(1991)),
			Stock:       5,
			Photo:       "blank-photo.png",
			Description: "Seeded catalog item for local development.",
		}
		if err := s.productRepo.Create(ctx, product); err != nil {
			return fmt.Errorf("failed to seed product: %w", err)
		}
	}

	logger.Info().Msg("Products successfully seeded")
	return nil
}

func (s *Seeder) seedFavourites(ctx context.Context) error {
	members, err := s.userRepo.List(ctx, entity.UserListQuery{Role: entity.RoleMember})
	if err != nil {
		return fmt.Errorf("failed to find member: %w", err)
	}
	if len(members) == 0 {
		return fmt.Errorf("no member user to attach favourites to, seed users first")
	}

	products, err := s.productRepo.List(ctx, entity.ProductListQuery{
		PageQuery: entity.PageQuery{Skip: 5, Take: 4},
	})
	if err != nil {
		return fmt.Errorf("failed to list products: %w", err)
	}

	for _, product := range products {
		favourite := &entity.Favourite{
			Member:  members[0].ID.Hex(),
			Product: product.ID.Hex(),
		}
		if err := s.favouriteRepo.Create(ctx, favourite); err != nil {
			return fmt.Errorf("failed to seed favourite: %w", err)
		}
	}

	logger.Info().Msg("Favourites successfully seeded")
	return nil
}
