package service

import "errors"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrCategoryNotFound  = errors.New("category not found")
	ErrProductNotFound   = errors.New("product not found")
	ErrFavouriteNotFound = errors.New("favourite not found")
	ErrOrderNotFound     = errors.New("order not found")
	ErrPurchaseNotFound  = errors.New("purchase not found")

	ErrInvalidCredentials = errors.New("password did not match")
	ErrValidation         = errors.New("validation error")
	ErrInvalidQuery       = errors.New("invalid list query")
)
