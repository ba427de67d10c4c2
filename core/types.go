package core

import "time"

// User is a marketplace account. Role distinguishes traders, suppliers and
// administrators.
type User struct {
	ID        int        `json:"id"`
	Email     string     `json:"email"`
	FullName  string     `json:"full_name,omitempty"`
	Phone     string     `json:"phone,omitempty"`
	Role      string     `json:"role,omitempty"`
	IsAdmin   bool       `json:"is_admin"`
	IsActive  bool       `json:"is_active"`
	Location  string     `json:"location,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// AuthResponse is returned by login and registration calls.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`
	IsAdmin     bool   `json:"is_admin"`
	UserType    string `json:"user_type,omitempty"`
	User        *User  `json:"user,omitempty"`
}

// Group is a bulk-purchase deal traders can join.
type Group struct {
	ID             int        `json:"id"`
	Name           string     `json:"name"`
	Description    string     `json:"description,omitempty"`
	Category       string     `json:"category,omitempty"`
	Location       string     `json:"location,omitempty"`
	Price          float64    `json:"price"`
	Unit           string     `json:"unit,omitempty"`
	TargetQuantity int        `json:"target_quantity,omitempty"`
	CurrentMembers int        `json:"current_members,omitempty"`
	MaxMembers     int        `json:"max_members,omitempty"`
	Status         string     `json:"status,omitempty"`
	SupplierID     *int       `json:"supplier_id,omitempty"`
	ImageURL       string     `json:"image_url,omitempty"`
	Deadline       *time.Time `json:"deadline,omitempty"`
	CreatedAt      *time.Time `json:"created_at,omitempty"`
}

// GroupFilter narrows group listings. Zero value lists everything.
type GroupFilter struct {
	Query    string
	Category string
	Location string
	Status   string
	Limit    int
	Offset   int
}

// JoinGroupRequest is the payload for joining a group buy.
type JoinGroupRequest struct {
	Quantity         int    `json:"quantity"`
	PickupLocationID *int   `json:"pickup_location_id,omitempty"`
	Note             string `json:"note,omitempty"`
}

// JoinGroupResponse carries the payment handle created by a join.
type JoinGroupResponse struct {
	GroupID     int     `json:"group_id"`
	Quantity    int     `json:"quantity"`
	Amount      float64 `json:"amount"`
	TxRef       string  `json:"tx_ref"`
	CheckoutURL string  `json:"checkout_url,omitempty"`
	Status      string  `json:"status,omitempty"`
}

// Product is a supplier catalog entry.
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category,omitempty"`
	Price       float64 `json:"price"`
	Unit        string  `json:"unit,omitempty"`
	Stock       int     `json:"stock,omitempty"`
	SupplierID  *int    `json:"supplier_id,omitempty"`
	ImageURL    string  `json:"image_url,omitempty"`
}

// Recommendation is an ML-scored group suggestion for the current user.
type Recommendation struct {
	Group  Group   `json:"group"`
	Score  float64 `json:"score"`
	Reason string  `json:"reason,omitempty"`
}

// Order is a supplier-side view of a trader's participation.
type Order struct {
	ID         int        `json:"id"`
	GroupID    int        `json:"group_id"`
	GroupName  string     `json:"group_name,omitempty"`
	BuyerName  string     `json:"buyer_name,omitempty"`
	Quantity   int        `json:"quantity"`
	Amount     float64    `json:"amount"`
	Status     string     `json:"status,omitempty"`
	PickupCode string     `json:"pickup_code,omitempty"`
	CreatedAt  *time.Time `json:"created_at,omitempty"`
}

// Invoice is a supplier billing record.
type Invoice struct {
	ID        int        `json:"id"`
	OrderID   int        `json:"order_id"`
	Number    string     `json:"number,omitempty"`
	Amount    float64    `json:"amount"`
	Status    string     `json:"status,omitempty"`
	IssuedAt  *time.Time `json:"issued_at,omitempty"`
	DueAt     *time.Time `json:"due_at,omitempty"`
	PaidAt    *time.Time `json:"paid_at,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// SupplierPayment is a settlement line item paid out to a supplier.
type SupplierPayment struct {
	ID        int        `json:"id"`
	InvoiceID int        `json:"invoice_id,omitempty"`
	Amount    float64    `json:"amount"`
	Method    string     `json:"method,omitempty"`
	Status    string     `json:"status,omitempty"`
	TxRef     string     `json:"tx_ref,omitempty"`
	PaidAt    *time.Time `json:"paid_at,omitempty"`
}

// Notification is a supplier inbox entry.
type Notification struct {
	ID        int        `json:"id"`
	Title     string     `json:"title"`
	Body      string     `json:"body,omitempty"`
	Kind      string     `json:"kind,omitempty"`
	Read      bool       `json:"read"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// PickupLocation is a physical collection point for fulfilled group buys.
type PickupLocation struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

// QRCode is a pickup-verification code issued for an order.
type QRCode struct {
	ID        int        `json:"id"`
	OrderID   int        `json:"order_id"`
	Payload   string     `json:"payload"`
	ImageData string     `json:"image_data,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// ScanResult is the outcome of verifying a pickup QR code.
type ScanResult struct {
	Valid     bool       `json:"valid"`
	OrderID   int        `json:"order_id,omitempty"`
	GroupName string     `json:"group_name,omitempty"`
	BuyerName string     `json:"buyer_name,omitempty"`
	Message   string     `json:"message,omitempty"`
	ScannedAt *time.Time `json:"scanned_at,omitempty"`
}

// ScanRecord is one entry in the admin scan history.
type ScanRecord struct {
	ID        int        `json:"id"`
	OrderID   int        `json:"order_id"`
	Result    string     `json:"result,omitempty"`
	ScannedBy string     `json:"scanned_by,omitempty"`
	ScannedAt *time.Time `json:"scanned_at,omitempty"`
}

// PaymentStatus enumerates terminal and non-terminal verification states.
type PaymentStatus string

const (
	PaymentPending    PaymentStatus = "pending"
	PaymentSuccessful PaymentStatus = "successful"
	PaymentFailed     PaymentStatus = "failed"
	PaymentError      PaymentStatus = "error"
)

// Terminal reports whether the status will no longer change.
func (s PaymentStatus) Terminal() bool {
	return s == PaymentSuccessful || s == PaymentFailed || s == PaymentError
}

// PaymentInitRequest asks the gateway to open a checkout session.
type PaymentInitRequest struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency,omitempty"`
	GroupID  int     `json:"group_id,omitempty"`
	OrderID  int     `json:"order_id,omitempty"`
	Email    string  `json:"email,omitempty"`
	Phone    string  `json:"phone,omitempty"`
}

// PaymentInit is the gateway's checkout handle.
type PaymentInit struct {
	TxRef       string `json:"tx_ref"`
	CheckoutURL string `json:"checkout_url"`
	Status      string `json:"status,omitempty"`
}

// PaymentVerification is the result of polling a transaction by reference.
type PaymentVerification struct {
	TxRef      string        `json:"tx_ref"`
	Status     PaymentStatus `json:"status"`
	Amount     float64       `json:"amount,omitempty"`
	Currency   string        `json:"currency,omitempty"`
	VerifiedAt *time.Time    `json:"verified_at,omitempty"`
}

// Metadata is the slow-changing configuration bundle served to every client.
type Metadata struct {
	Categories    []string `json:"categories"`
	Locations     []string `json:"locations"`
	Units         []string `json:"units,omitempty"`
	GroupStatuses []string `json:"group_statuses,omitempty"`
	OrderStatuses []string `json:"order_statuses,omitempty"`
}

// DashboardStats summarizes a supplier's book of business.
type DashboardStats struct {
	ActiveGroups    int     `json:"active_groups"`
	PendingOrders   int     `json:"pending_orders"`
	CompletedOrders int     `json:"completed_orders"`
	TotalRevenue    float64 `json:"total_revenue"`
	UnreadNotices   int     `json:"unread_notices,omitempty"`
}

// AdminStats summarizes platform-wide activity for the admin console.
type AdminStats struct {
	TotalUsers    int     `json:"total_users"`
	TotalGroups   int     `json:"total_groups"`
	ActiveGroups  int     `json:"active_groups"`
	PendingGroups int     `json:"pending_groups"`
	TotalRevenue  float64 `json:"total_revenue"`
}

// MLStatus reports the recommendation model lifecycle state.
type MLStatus struct {
	ModelVersion string     `json:"model_version,omitempty"`
	Training     bool       `json:"training"`
	LastTrained  *time.Time `json:"last_trained,omitempty"`
	Accuracy     float64    `json:"accuracy,omitempty"`
}
