package api

import (
	"context"
	"io"

	"github.com/gebeyahub/gebeya-go/core"
)

// Service enumerates the complete backend surface. The mock proxy implements
// this same interface, so pages of the application can be handed either one
// without knowing which mode is active.
type Service interface {
	// Auth and profile.
	Login(ctx context.Context, req LoginRequest) (*core.AuthResponse, error)
	Register(ctx context.Context, req RegisterRequest) (*core.AuthResponse, error)
	RegisterSupplier(ctx context.Context, req RegisterSupplierRequest) (*core.AuthResponse, error)
	Logout(ctx context.Context) error
	Profile(ctx context.Context) (*core.User, error)
	UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*core.User, error)
	ChangePassword(ctx context.Context, current, next string) error

	// Groups.
	ListGroups(ctx context.Context, filter core.GroupFilter) ([]core.Group, error)
	GetGroup(ctx context.Context, id int) (*core.Group, error)
	CreateGroup(ctx context.Context, req CreateGroupRequest) (*core.Group, error)
	JoinGroup(ctx context.Context, id int, req core.JoinGroupRequest) (*core.JoinGroupResponse, error)
	LeaveGroup(ctx context.Context, id int) error

	// Products.
	ListProducts(ctx context.Context, category string) ([]core.Product, error)
	GetProduct(ctx context.Context, id int) (*core.Product, error)
	CreateProduct(ctx context.Context, req CreateProductRequest) (*core.Product, error)
	UploadProductImage(ctx context.Context, productID int, filename string, file io.Reader) (*UploadResult, error)

	// Recommendations and ML lifecycle.
	Recommendations(ctx context.Context, limit int) ([]core.Recommendation, error)
	RetrainModel(ctx context.Context) error
	ModelStatus(ctx context.Context) (*core.MLStatus, error)

	// Admin.
	ListUsers(ctx context.Context) ([]core.User, error)
	SetUserStatus(ctx context.Context, userID int, active bool) (*core.User, error)
	DeleteUser(ctx context.Context, userID int) error
	ListAllGroups(ctx context.Context) ([]core.Group, error)
	ApproveGroup(ctx context.Context, groupID int) (*core.Group, error)
	DeleteGroup(ctx context.Context, groupID int) error
	AdminStats(ctx context.Context) (*core.AdminStats, error)

	// QR verification.
	GenerateQR(ctx context.Context, orderID int) (*core.QRCode, error)
	ScanQR(ctx context.Context, payload string) (*core.ScanResult, error)
	ScanQRImage(ctx context.Context, filename string, file io.Reader) (*core.ScanResult, error)
	QRHistory(ctx context.Context) ([]core.ScanRecord, error)

	// Supplier.
	Dashboard(ctx context.Context) (*core.DashboardStats, error)
	Orders(ctx context.Context, status string) ([]core.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID int, status string) (*core.Order, error)
	Invoices(ctx context.Context) ([]core.Invoice, error)
	SupplierPayments(ctx context.Context) ([]core.SupplierPayment, error)
	Notifications(ctx context.Context) ([]core.Notification, error)
	MarkNotificationRead(ctx context.Context, id int) error
	PickupLocations(ctx context.Context) ([]core.PickupLocation, error)
	SupplierGroups(ctx context.Context) ([]core.Group, error)

	// Payments.
	InitializePayment(ctx context.Context, req core.PaymentInitRequest) (*core.PaymentInit, error)
	VerifyPayment(ctx context.Context, txRef string) (*core.PaymentVerification, error)

	// Metadata.
	Metadata(ctx context.Context) (*core.Metadata, error)
	Categories(ctx context.Context) ([]string, error)
	Locations(ctx context.Context) ([]string, error)
}

var _ Service = (*Client)(nil)
