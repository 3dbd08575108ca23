package dto

import "time"

// ============ Общие структуры ============

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type SuccessResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ============ Аутентификация ============

type RegisterRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	Address  string `json:"address"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UserResponse struct {
	ID       uint   `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}

type UpdateUserRequest struct {
	FullName string `json:"full_name"`
	Password string `json:"password" binding:"omitempty,min=6"`
	Address  string `json:"address"`
}

// ============ Калькулятор ============

type CalculatorRequest struct {
	MonthlyBill  float64 `json:"monthly_bill" binding:"required,gt=0"`
	RoofArea     float64 `json:"roof_area" binding:"required,gt=0"`
	PropertyType string  `json:"property_type"`
}

// ============ Товары ============

type ProductResponse struct {
	ID             uint              `json:"id"`
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Category       string            `json:"category"`
	Price          float64           `json:"price"`
	StockQuantity  int               `json:"stock_quantity"`
	Image          string            `json:"image"`
	Specifications map[string]string `json:"specifications,omitempty"`
	Wattage        *int              `json:"wattage,omitempty"`
}

type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Total    int               `json:"total"`
}

type CreateProductRequest struct {
	Name           string            `json:"name" binding:"required"`
	Description    string            `json:"description" binding:"required"`
	Category       string            `json:"category" binding:"required,oneof=panel inverter battery controller mounting cables"`
	Price          float64           `json:"price" binding:"required,gt=0"`
	StockQuantity  int               `json:"stock_quantity" binding:"gte=0"`
	Specifications map[string]string `json:"specifications"`
	Wattage        *int              `json:"wattage"`
}

type UpdateProductRequest struct {
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Category       string            `json:"category" binding:"omitempty,oneof=panel inverter battery controller mounting cables"`
	Price          float64           `json:"price" binding:"omitempty,gt=0"`
	StockQuantity  *int              `json:"stock_quantity" binding:"omitempty,gte=0"`
	Specifications map[string]string `json:"specifications"`
	Wattage        *int              `json:"wattage"`
	IsActive       *bool             `json:"is_active"`
}

// ============ Заявки на подключение ============

type ApplicationResponse struct {
	ID               uint              `json:"id"`
	ReferenceNumber  string            `json:"reference_number"`
	ApplicationType  string            `json:"application_type"`
	SystemCapacity   float64           `json:"system_capacity"`
	ConsumptionUnits int               `json:"consumption_units,omitempty"`
	PropertyType     string            `json:"property_type"`
	PropertyAddress  string            `json:"property_address"`
	OwnershipType    string            `json:"ownership_type"`
	Status           string            `json:"status"`
	SubmittedAt      time.Time         `json:"submitted_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
	Documents        map[string]string `json:"documents,omitempty"`
	NOCMessage       string            `json:"noc_message,omitempty"`
	AdminNotes       string            `json:"admin_notes,omitempty"`
	EstimatedCost    float64           `json:"estimated_cost"`
	Applicant        string            `json:"applicant,omitempty"`
}

type ApplicationListResponse struct {
	Applications []ApplicationResponse `json:"applications"`
	Total        int                   `json:"total"`
}

// Проекция для публичной проверки статуса по номеру заявки.
// Даты в формате YYYY-MM-DD.
type ApplicationStatusResponse struct {
	ReferenceNumber string  `json:"reference_number"`
	Type            string  `json:"type"`
	Capacity        float64 `json:"capacity"`
	Status          string  `json:"status"`
	SubmittedAt     string  `json:"submitted_at"`
	UpdatedAt       string  `json:"updated_at"`
}

type UpdateApplicationRequest struct {
	Status     string `json:"status" binding:"required"`
	AdminNotes string `json:"admin_notes"`
}

// ============ Корзина и заказы ============

type CartItemResponse struct {
	ID       uint            `json:"id"`
	Product  ProductResponse `json:"product"`
	Quantity int             `json:"quantity"`
	SubTotal float64         `json:"subtotal"`
}

type CartResponse struct {
	Items []CartItemResponse `json:"items"`
	Total float64            `json:"total"`
}

type AddToCartRequest struct {
	Quantity int `json:"quantity" binding:"omitempty,gt=0"`
}

type UpdateCartRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

type CheckoutRequest struct {
	ShippingAddress string `json:"shipping_address" binding:"required"`
}

type OrderItemResponse struct {
	ProductID   uint    `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

type OrderResponse struct {
	ID              uint                `json:"id"`
	OrderNumber     string              `json:"order_number"`
	TotalAmount     float64             `json:"total_amount"`
	Status          string              `json:"status"`
	PaymentStatus   string              `json:"payment_status"`
	ShippingAddress string              `json:"shipping_address"`
	CreatedAt       time.Time           `json:"created_at"`
	Customer        string              `json:"customer,omitempty"`
	Items           []OrderItemResponse `json:"items,omitempty"`
}

type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
	Total  int             `json:"total"`
}

type UpdateOrderRequest struct {
	Status        string `json:"status" binding:"required,oneof=pending confirmed shipped delivered cancelled"`
	PaymentStatus string `json:"payment_status" binding:"required,oneof=pending paid failed"`
}

// ============ Обслуживание ============

type CreateMaintenanceRequest struct {
	RequestType      string   `json:"request_type" binding:"required,oneof=cleaning repair inspection upgrade"`
	SystemCapacity   *float64 `json:"system_capacity"`
	InstallationDate string   `json:"installation_date"` // YYYY-MM-DD
	IssueDescription string   `json:"issue_description" binding:"required"`
	PreferredDate    string   `json:"preferred_date"` // YYYY-MM-DD
}

type MaintenanceResponse struct {
	ID               uint      `json:"id"`
	RequestType      string    `json:"request_type"`
	SystemCapacity   *float64  `json:"system_capacity,omitempty"`
	InstallationDate string    `json:"installation_date,omitempty"`
	IssueDescription string    `json:"issue_description"`
	PreferredDate    string    `json:"preferred_date,omitempty"`
	Status           string    `json:"status"`
	AdminNotes       string    `json:"admin_notes,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	Customer         string    `json:"customer,omitempty"`
}

type UpdateMaintenanceRequest struct {
	Status     string `json:"status" binding:"required,oneof=pending scheduled in_progress completed cancelled"`
	AdminNotes string `json:"admin_notes"`
}

// ============ Отзывы ============

type CreateFeedbackRequest struct {
	Rating      int    `json:"rating" binding:"required,gte=1,lte=5"`
	Comment     string `json:"comment" binding:"required"`
	ServiceType string `json:"service_type" binding:"omitempty,oneof=installation product maintenance general"`
}

type FeedbackResponse struct {
	ID          uint      `json:"id"`
	Rating      int       `json:"rating"`
	Comment     string    `json:"comment"`
	ServiceType string    `json:"service_type"`
	IsApproved  bool      `json:"is_approved"`
	CreatedAt   time.Time `json:"created_at"`
	Author      string    `json:"author,omitempty"`
}

// ============ Галерея ============

type GalleryProjectResponse struct {
	ID             uint     `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Location       string   `json:"location"`
	SystemCapacity float64  `json:"system_capacity"`
	CompletionDate string   `json:"completion_date,omitempty"`
	Images         []string `json:"images"`
	Category       string   `json:"category"`
}

type GalleryListResponse struct {
	Projects []GalleryProjectResponse `json:"projects"`
	Total    int                      `json:"total"`
}

// ============ Админ-дашборд ============

type DashboardStatsResponse struct {
	Clients             int64 `json:"clients"`
	Products            int64 `json:"products"`
	Orders              int64 `json:"orders"`
	PendingApplications int64 `json:"pending_applications"`
	PendingMaintenance  int64 `json:"pending_maintenance"`
}

type DashboardResponse struct {
	Stats              DashboardStatsResponse `json:"stats"`
	RecentApplications []ApplicationResponse  `json:"recent_applications"`
	RecentOrders       []OrderResponse        `json:"recent_orders"`
}

// ============ Публичная витрина ============

type SiteStatsResponse struct {
	Installations int64   `json:"installations"`
	Clients       int64   `json:"clients"`
	CapacityKW    float64 `json:"capacity_kw"`
}
