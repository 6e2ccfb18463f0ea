package handler

import (
	"net/http"
	"testing"

	"lapakpedia/internal/app/marketplace/entity"
	"lapakpedia/internal/app/marketplace/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestListUsersHandler_QueryWiring(t *testing.T) {
	router := setupTestRouter()
	userService := new(MockUserService)

	expected := entity.UserListQuery{
		PageQuery: entity.PageQuery{Sortable: "name", SortBy: "desc", Skip: 2, Take: 5},
		Name:      "ar",
		Role:      "seller",
	}
	userService.On("List", mock.Anything, expected).Return([]entity.User{}, nil)

	router.GET("/users", NewUserHandler(userService).ListUsers)

	w := performJSON(router, http.MethodGet, "/users?name=ar&role=seller&sortable=name&sortBy=desc&skip=2&take=5", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
	userService.AssertExpectations(t)
}

func TestListUsersHandler_UnparseableSkip(t *testing.T) {
	router := setupTestRouter()
	userService := new(MockUserService)

	router.GET("/users", NewUserHandler(userService).ListUsers)

	w := performJSON(router, http.MethodGet, "/users?skip=abc", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Error occurred while retrieving users", decodeMessage(t, w))
	userService.AssertNotCalled(t, "List")
}

func TestListUsersHandler_NegativeSkip(t *testing.T) {
	router := setupTestRouter()
	userService := new(MockUserService)

	// Отрицательный skip отдает репозиторию и возвращается ошибкой запроса
	userService.On("List", mock.Anything, mock.Anything).Return(nil, service.ErrInvalidQuery)

	router.GET("/users", NewUserHandler(userService).ListUsers)

	w := performJSON(router, http.MethodGet, "/users?skip=-3", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Error occurred while retrieving users", decodeMessage(t, w))
}

func TestGetUserHandler_NotFound(t *testing.T) {
	router := setupTestRouter()
	userService := new(MockUserService)
	userService.On("Get", mock.Anything, "unknown").Return(nil, service.ErrUserNotFound)

	router.GET("/users/:id", NewUserHandler(userService).GetUser)

	w := performJSON(router, http.MethodGet, "/users/unknown", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User not found", decodeMessage(t, w))
}

func TestCreateUserHandler_Success(t *testing.T) {
	router := setupTestRouter()
	userService := new(MockUserService)

	user := &entity.User{ID: primitive.NewObjectID(), Username: "member", Role: entity.RoleMember}
	userService.On("Create", mock.Anything, mock.AnythingOfType("*entity.CreateUserRequest"), mock.Anything).Return(user, nil)

	router.POST("/users", NewUserHandler(userService).CreateUser)

	payload := entity.CreateUserRequest{
		Name:     "Sari Putri",
		Username: "member",
		Email:    "member@lapakpedia.com",
		Password: "member",
		Role:     entity.RoleMember,
	}
	w := performJSON(router, http.MethodPost, "/users", payload)

	// Создание отвечает 200, не 201
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreateUserHandler_InvalidRole(t *testing.T) {
	router := setupTestRouter()
	userService := new(MockUserService)

	router.POST("/users", NewUserHandler(userService).CreateUser)

	payload := entity.CreateUserRequest{
		Name:     "Sari Putri",
		Username: "member",
		Email:    "member@lapakpedia.com",
		Password: "member",
		Role:     "SUPERUSER",
	}
	w := performJSON(router, http.MethodPost, "/users", payload)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Error occurred while creating user", decodeMessage(t, w))
	userService.AssertNotCalled(t, "Create")
}

func TestCreateUserHandler_MissingRequiredField(t *testing.T) {
	router := setupTestRouter()
	userService := new(MockUserService)

	router.POST("/users", NewUserHandler(userService).CreateUser)

	w := performJSON(router, http.MethodPost, "/users", entity.CreateUserRequest{Username: "member"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	userService.AssertNotCalled(t, "Create")
}

func TestUpdateUserHandler_NotFound(t *testing.T) {
	router := setupTestRouter()
	userService := new(MockUserService)
	userService.On("Update", mock.Anything, "unknown", mock.Anything, mock.Anything).Return(nil, service.ErrUserNotFound)

	router.PUT("/users/:id", NewUserHandler(userService).UpdateUser)

	name := "New Name"
	w := performJSON(router, http.MethodPut, "/users/unknown", entity.UpdateUserRequest{Name: &name})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User not found", decodeMessage(t, w))
}

func TestDeleteUserHandler_Success(t *testing.T) {
	router := setupTestRouter()
	userService := new(MockUserService)
	userService.On("Delete", mock.Anything, "user-1").Return(nil)

	router.DELETE("/users/:id", NewUserHandler(userService).DeleteUser)

	w := performJSON(router, http.MethodDelete, "/users/user-1", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "User deleted successfully!", decodeMessage(t, w))
}

func TestDeleteUserHandler_StoreError(t *testing.T) {
	router := setupTestRouter()
	userService := new(MockUserService)
	userService.On("Delete", mock.Anything, "user-1").Return(assert.AnError)

	router.DELETE("/users/:id", NewUserHandler(userService).DeleteUser)

	w := performJSON(router, http.MethodDelete, "/users/user-1", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Couldn't delete user", decodeMessage(t, w))
}
