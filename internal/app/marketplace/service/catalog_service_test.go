package service

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"lapakpedia/internal/app/marketplace/entity"
	"lapakpedia/internal/app/marketplace/repository"
	"lapakpedia/internal/app/marketplace/repository/mocks"
	"lapakpedia/internal/app/marketplace/util"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newCatalogService(t *testing.T, cache *util.RedisClient) (*CatalogService, *mocks.MockCategoryRepository, *mocks.MockProductRepository, *util.PhotoStore) {
	t.Helper()

	categoryRepo := new(mocks.MockCategoryRepository)
	productRepo := new(mocks.MockProductRepository)
	photos := util.NewPhotoStore(t.TempDir())

	return NewCatalogService(categoryRepo, productRepo, cache, photos), categoryRepo, productRepo, photos
}

func newCacheForTest(t *testing.T) *util.RedisClient {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return util.NewRedisClientFrom(client)
}

func photoFileHeader(t *testing.T, filename string) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("photo", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte("image-bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	return req.MultipartForm.File["photo"][0]
}

func TestListCategories_DefaultQueryUsesCache(t *testing.T) {
	cache := newCacheForTest(t)
	service, categoryRepo, _, _ := newCatalogService(t, cache)
	ctx := context.Background()

	categories := []entity.Category{{ID: primitive.NewObjectID(), Name: "Smartphone"}}
	categoryRepo.On("List", ctx, entity.CategoryListQuery{}).Return(categories, nil).Once()

	// Первый запрос идет в репозиторий и наполняет кеш
	first, err := service.ListCategories(ctx, entity.CategoryListQuery{})
	require.NoError(t, err)
	assert.Equal(t, categories, first)

	// Второй обслуживается из кеша, репозиторий больше не трогаем
	second, err := service.ListCategories(ctx, entity.CategoryListQuery{})
	require.NoError(t, err)
	assert.Equal(t, categories, second)
	categoryRepo.AssertNumberOfCalls(t, "List", 1)
}

func TestListCategories_NonDefaultQueryBypassesCache(t *testing.T) {
	cache := newCacheForTest(t)
	service, categoryRepo, _, _ := newCatalogService(t, cache)
	ctx := context.Background()

	q := entity.CategoryListQuery{PageQuery: entity.PageQuery{SortBy: "desc"}}
	categoryRepo.On("List", ctx, q).Return([]entity.Category{}, nil).Twice()

	_, err := service.ListCategories(ctx, q)
	require.NoError(t, err)
	_, err = service.ListCategories(ctx, q)
	require.NoError(t, err)

	categoryRepo.AssertNumberOfCalls(t, "List", 2)
}

func TestListCategories_NilCacheWorks(t *testing.T) {
	service, categoryRepo, _, _ := newCatalogService(t, nil)
	ctx := context.Background()

	categoryRepo.On("List", ctx, entity.CategoryListQuery{}).Return([]entity.Category{}, nil)

	categories, err := service.ListCategories(ctx, entity.CategoryListQuery{})

	require.NoError(t, err)
	assert.NotNil(t, categories)
}

func TestCreateCategory_InvalidatesCache(t *testing.T) {
	cache := newCacheForTest(t)
	service, categoryRepo, _, _ := newCatalogService(t, cache)
	ctx := context.Background()

	cached := []entity.Category{{ID: primitive.NewObjectID(), Name: "Stale"}}
	categoryRepo.On("List", ctx, entity.CategoryListQuery{}).Return(cached, nil).Once()
	_, err := service.ListCategories(ctx, entity.CategoryListQuery{})
	require.NoError(t, err)

	categoryRepo.On("Create", ctx, mock.AnythingOfType("*entity.Category")).Return(nil).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Category).ID = primitive.NewObjectID()
	})

	_, err = service.CreateCategory(ctx, &entity.CreateCategoryRequest{Name: "Smartphone"})
	require.NoError(t, err)

	// Кеш сброшен: следующий листинг снова идет в репозиторий
	fresh := []entity.Category{{ID: primitive.NewObjectID(), Name: "Smartphone"}}
	categoryRepo.On("List", ctx, entity.CategoryListQuery{}).Return(fresh, nil).Once()

	got, err := service.ListCategories(ctx, entity.CategoryListQuery{})
	require.NoError(t, err)
	assert.Equal(t, fresh, got)
}

func TestCreateCategory_DuplicateName(t *testing.T) {
	service, categoryRepo, _, _ := newCatalogService(t, nil)
	ctx := context.Background()

	categoryRepo.On("Create", ctx, mock.Anything).Return(repository.ErrDuplicateKey)

	category, err := service.CreateCategory(ctx, &entity.CreateCategoryRequest{Name: "Smartphone"})

	assert.ErrorIs(t, err, ErrValidation)
	assert.Nil(t, category)
}

func TestUpdateCategory_NilNameReadsThrough(t *testing.T) {
	service, categoryRepo, _, _ := newCatalogService(t, nil)
	ctx := context.Background()

	id := primitive.NewObjectID()
	existing := &entity.Category{ID: id, Name: "Smartphone"}
	categoryRepo.On("GetByID", ctx, id.Hex()).Return(existing, nil)

	category, err := service.UpdateCategory(ctx, id.Hex(), &entity.UpdateCategoryRequest{})

	require.NoError(t, err)
	assert.Equal(t, existing, category)
	categoryRepo.AssertNotCalled(t, "Update")
}

func TestCreateProduct_RequiresPhoto(t *testing.T) {
	service, _, productRepo, _ := newCatalogService(t, nil)
	ctx := context.Background()

	price := 99.9
	stock := 5
	req := &entity.CreateProductRequest{
		Name:        "Sleek Keyboard",
		Category:    primitive.NewObjectID().Hex(),
		Price:       &price,
		Stock:       &stock,
		Description: "Mechanical keyboard",
	}

	product, err := service.CreateProduct(ctx, req, nil)

	assert.ErrorIs(t, err, ErrValidation)
	assert.Nil(t, product)
	productRepo.AssertNotCalled(t, "Create")
}

func TestCreateProduct_SavesPhotoUnderGeneratedName(t *testing.T) {
	service, _, productRepo, photos := newCatalogService(t, nil)
	ctx := context.Background()

	productRepo.On("Create", ctx, mock.AnythingOfType("*entity.Product")).Return(nil).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Product).ID = primitive.NewObjectID()
	})

	price := 50.0
	stock := 3
	req := &entity.CreateProductRequest{
		Name:        "Rustic Webcam",
		Category:    primitive.NewObjectID().Hex(),
		Price:       &price,
		Stock:       &stock,
		Description: "HD webcam",
	}

	product, err := service.CreateProduct(ctx, req, photoFileHeader(t, "cam.jpg"))

	require.NoError(t, err)
	assert.NotEqual(t, "cam.jpg", product.Photo)
	assert.True(t, photos.Exists("products", product.Photo))
}

func TestUpdateProduct_ReplacesPhotoAsset(t *testing.T) {
	service, _, productRepo, photos := newCatalogService(t, nil)
	ctx := context.Background()

	// Существующий товар уже имеет фото на диске
	oldName, err := photos.Save(photoFileHeader(t, "old.jpg"), "products")
	require.NoError(t, err)

	id := primitive.NewObjectID()
	prior := &entity.Product{ID: id, Name: "Monitor", Photo: oldName}

	productRepo.On("GetByID", ctx, id.Hex()).Return(prior, nil)
	productRepo.On("Update", ctx, id.Hex(), mock.Anything).Return(prior, nil)

	_, err = service.UpdateProduct(ctx, id.Hex(), &entity.UpdateProductRequest{}, photoFileHeader(t, "new.jpg"))

	require.NoError(t, err)
	assert.False(t, photos.Exists("products", oldName)) // старый файл удален после успеха
}

func TestUpdateProduct_KeepsOldPhotoOnStoreFailure(t *testing.T) {
	service, _, productRepo, photos := newCatalogService(t, nil)
	ctx := context.Background()

	oldName, err := photos.Save(photoFileHeader(t, "old.jpg"), "products")
	require.NoError(t, err)

	id := primitive.NewObjectID()
	prior := &entity.Product{ID: id, Name: "Monitor", Photo: oldName}

	productRepo.On("GetByID", ctx, id.Hex()).Return(prior, nil)
	productRepo.On("Update", ctx, id.Hex(), mock.Anything).Return(nil, repository.ErrNotFound)

	_, err = service.UpdateProduct(ctx, id.Hex(), &entity.UpdateProductRequest{}, photoFileHeader(t, "new.jpg"))

	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.True(t, photos.Exists("products", oldName)) // прежнее фото не тронуто
}

func TestDeleteProduct_RemovesPhotoAsset(t *testing.T) {
	service, _, productRepo, photos := newCatalogService(t, nil)
	ctx := context.Background()

	filename, err := photos.Save(photoFileHeader(t, "gone.jpg"), "products")
	require.NoError(t, err)

	id := primitive.NewObjectID()
	productRepo.On("GetByID", ctx, id.Hex()).Return(&entity.Product{ID: id, Photo: filename}, nil)
	productRepo.On("Delete", ctx, id.Hex()).Return(nil)

	require.NoError(t, service.DeleteProduct(ctx, id.Hex()))
	assert.False(t, photos.Exists("products", filename))
}

func TestGetProduct_NotFound(t *testing.T) {
	service, _, productRepo, _ := newCatalogService(t, nil)
	ctx := context.Background()

	productRepo.On("GetByID", ctx, "missing").Return(nil, repository.ErrNotFound)

	product, err := service.GetProduct(ctx, "missing")

	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.Nil(t, product)
}
