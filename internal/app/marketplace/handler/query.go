package handler

import (
	"mime/multipart"
	"strconv"

	"lapakpedia/internal/app/marketplace/entity"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// parsePageQuery разбирает общие параметры листинга. Нечисловые skip
// и take - ошибка запроса: обработчики отвечают на неё кодом 500 с
// сообщением листинга, как и на отрицательный skip.
func parsePageQuery(c *gin.Context) (entity.PageQuery, error) {
	q := entity.PageQuery{
		Sortable: c.Query("sortable"),
		SortBy:   c.Query("sortBy"),
	}

	if raw := c.Query("skip"); raw != "" {
		skip, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return q, err
		}
		q.Skip = skip
	}

	if raw := c.Query("take"); raw != "" {
		take, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return q, err
		}
		q.Take = take
	}

	return q, nil
}

// formPhoto достает единственный файл photo из multipart-запроса.
// Отсутствие файла или не-multipart запрос - не ошибка.
func formPhoto(c *gin.Context) *multipart.FileHeader {
	file, err := c.FormFile("photo")
	if err != nil {
		return nil
	}
	return file
}

func formatValidationError(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fieldError := range validationErrors {
			return fieldError.Field() + " is " + fieldError.Tag()
		}
	}
	return "Validation failed"
}
