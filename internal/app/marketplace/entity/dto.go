package entity

// LoginRequest - тело POST /login. Идентификатором служит username,
// а при его отсутствии email.
type LoginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// MessageResponse - единый формат тела ошибок и подтверждений удаления
type MessageResponse struct {
	Message string `json:"message"`
}

// Запросы создания принимают как JSON, так и multipart form
// (фото передаётся отдельным файловым полем "photo").

type CreateUserRequest struct {
	Name     string `json:"name" form:"name" validate:"required"`
	Username string `json:"username" form:"username" validate:"required"`
	Email    string `json:"email" form:"email" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
	Role     string `json:"role" form:"role" validate:"required,oneof=ADMIN MEMBER SELLER"`
}

// UpdateUserRequest - частичное обновление: nil-поля не меняются
type UpdateUserRequest struct {
	Name     *string `json:"name" form:"name"`
	Username *string `json:"username" form:"username"`
	Email    *string `json:"email" form:"email"`
	Password *string `json:"password" form:"password"`
	Role     *string `json:"role" form:"role"`
}

type CreateCategoryRequest struct {
	Name string `json:"name" form:"name" validate:"required"`
}

type UpdateCategoryRequest struct {
	Name *string `json:"name" form:"name"`
}

type CreateProductRequest struct {
	Name        string   `json:"name" form:"name" validate:"required"`
	Category    string   `json:"category" form:"category" validate:"required"`
	Seller      string   `json:"seller" form:"seller"`
	Price       *float64 `json:"price" form:"price" validate:"required,gte=0"`
	Stock       *int     `json:"stock" form:"stock" validate:"required,gte=0"`
	Description string   `json:"description" form:"description" validate:"required"`
}

type UpdateProductRequest struct {
	Name        *string  `json:"name" form:"name"`
	Category    *string  `json:"category" form:"category"`
	Seller      *string  `json:"seller" form:"seller"`
	Price       *float64 `json:"price" form:"price"`
	Stock       *int     `json:"stock" form:"stock"`
	TotalViews  *int     `json:"totalViews" form:"totalViews"`
	Description *string  `json:"description" form:"description"`
}

type CreateFavouriteRequest struct {
	Member  string `json:"member" form:"member" validate:"required"`
	Product string `json:"product" form:"product" validate:"required"`
}

type CreateOrderRequest struct {
	Member      string `json:"member" form:"member" validate:"required"`
	BankName    string `json:"bankName" form:"bankName" validate:"required"`
	BankAccount string `json:"bankAccount" form:"bankAccount" validate:"required"`
	BankPerson  string `json:"bankPerson" form:"bankPerson" validate:"required"`
	Address     string `json:"address" form:"address" validate:"required"`
	Zip         string `json:"zip" form:"zip" validate:"required"`
	Phone       string `json:"phone" form:"phone" validate:"required"`
	Status      string `json:"status" form:"status" validate:"omitempty,oneof=WAITING PROCESSED SENT ARRIVED"`
}

// UpdateOrderRequest не проверяет enum статуса: перевод статуса
// ничем не ограничен, любое значение записывается как есть.
type UpdateOrderRequest struct {
	Member      *string `json:"member" form:"member"`
	BankName    *string `json:"bankName" form:"bankName"`
	BankAccount *string `json:"bankAccount" form:"bankAccount"`
	BankPerson  *string `json:"bankPerson" form:"bankPerson"`
	Address     *string `json:"address" form:"address"`
	Zip         *string `json:"zip" form:"zip"`
	Phone       *string `json:"phone" form:"phone"`
	Status      *string `json:"status" form:"status"`
}

type CreatePurchaseRequest struct {
	Order       string   `json:"order" form:"order" validate:"required"`
	Product     string   `json:"product" form:"product" validate:"required"`
	Quantity    *int     `json:"quantity" form:"quantity" validate:"required,gte=0"`
	TotalPrices *float64 `json:"totalPrices" form:"totalPrices" validate:"required,gte=0"`
	Rate        *int     `json:"rate" form:"rate"`
	Review      *string  `json:"review" form:"review"`
}

type UpdatePurchaseRequest struct {
	Order       *string  `json:"order" form:"order"`
	Product     *string  `json:"product" form:"product"`
	Quantity    *int     `json:"quantity" form:"quantity"`
	TotalPrices *float64 `json:"totalPrices" form:"totalPrices"`
	Rate        *int     `json:"rate" form:"rate"`
	Review      *string  `json:"review" form:"review"`
}

// PageQuery - общие параметры листинга для всех ресурсов.
// Take == 0 означает "без ограничения".
type PageQuery struct {
	Sortable string
	SortBy   string
	Skip     int64
	Take     int64
}

type UserListQuery struct {
	PageQuery
	Name string
	Role string
}

type CategoryListQuery struct {
	PageQuery
}

type ProductListQuery struct {
	PageQuery
	Name       string
	CategoryID string
	SellerID   string
	Price      string // диапазон "min,max", границы включительно
}

type FavouriteListQuery struct {
	PageQuery
	MemberID  string
	ProductID string
}

type OrderListQuery struct {
	PageQuery
	MemberID string
}

type PurchaseListQuery struct {
	PageQuery
	OrderID   string
	ProductID string
}
