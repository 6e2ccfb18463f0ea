package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Роли пользователей
const (
	RoleAdmin  = "ADMIN"
	RoleMember = "MEMBER"
	RoleSeller = "SELLER"
)

// Статусы заказа
const (
	StatusWaiting   = "WAITING"
	StatusProcessed = "PROCESSED"
	StatusSent      = "SENT"
	StatusArrived   = "ARRIVED"
)

// User - пользователь маркетплейса. Поле password хранит bcrypt-хэш
// и никогда не сериализуется в ответах.
type User struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Username  string             `json:"username" bson:"username"`
	Email     string             `json:"email" bson:"email"`
	Password  string             `json:"-" bson:"password"`
	Role      string             `json:"role" bson:"role"`
	Photo     string             `json:"photo,omitempty" bson:"photo,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type Category struct {
	ID   primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name string             `json:"name" bson:"name"`
}

// Product - товар каталога. Поля category и seller хранят hex-идентификаторы
// связанных документов; ссылки не разворачиваются при выдаче.
type Product struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Category    string             `json:"category" bson:"category"`
	Seller      string             `json:"seller,omitempty" bson:"seller,omitempty"`
	Price       float64            `json:"price" bson:"price"`
	Stock       int                `json:"stock" bson:"stock"`
	TotalViews  int                `json:"totalViews" bson:"totalViews"`
	Photo       string             `json:"photo" bson:"photo"`
	Description string             `json:"description" bson:"description"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// Favourite - пара (участник, товар). Дубликаты допустимы.
type Favourite struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Member    string             `json:"member" bson:"member"`
	Product   string             `json:"product" bson:"product"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type Order struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Member      string             `json:"member" bson:"member"`
	BankName    string             `json:"bankName" bson:"bankName"`
	BankAccount string             `json:"bankAccount" bson:"bankAccount"`
	BankPerson  string             `json:"bankPerson" bson:"bankPerson"`
	Address     string             `json:"address" bson:"address"`
	Zip         string             `json:"zip" bson:"zip"`
	Phone       string             `json:"phone" bson:"phone"`
	Status      string             `json:"status" bson:"status"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// Purchase - строка заказа; rate и review заполняются позже через update.
type Purchase struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Order       string             `json:"order" bson:"order"`
	Product     string             `json:"product" bson:"product"`
	Quantity    int                `json:"quantity" bson:"quantity"`
	TotalPrices float64            `json:"totalPrices" bson:"totalPrices"`
	Rate        int                `json:"rate" bson:"rate"`
	Review      string             `json:"review" bson:"review"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// OrderEvent публикуется в Kafka после успешного создания заказа или позиции
type OrderEvent struct {
	EventType string    `json:"event_type"` // ORDER_CREATED, PURCHASE_CREATED
	OrderID   string    `json:"order_id"`
	ProductID string    `json:"product_id,omitempty"`
	MemberID  string    `json:"member_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
