package gebeya

import "github.com/gebeyahub/gebeya-go/core"

// Domain types, aliased from core for convenience.
type (
	// User is a marketplace account.
	User = core.User

	// Group is a bulk-purchase deal traders can join.
	Group = core.Group

	// GroupFilter narrows group listings.
	GroupFilter = core.GroupFilter

	// Product is a supplier catalog entry.
	Product = core.Product

	// Recommendation is an ML-scored group suggestion.
	Recommendation = core.Recommendation

	// Order is a supplier-side view of a participation.
	Order = core.Order

	// Metadata is the cached configuration bundle.
	Metadata = core.Metadata

	// PaymentInit is the gateway checkout handle.
	PaymentInit = core.PaymentInit

	// PaymentVerification is the polled transaction state.
	PaymentVerification = core.PaymentVerification

	// PaymentStatus enumerates verification states.
	PaymentStatus = core.PaymentStatus

	// APIError is the normalized error shape for every failed call.
	APIError = core.APIError
)

// Payment status constants.
const (
	PaymentPending    = core.PaymentPending
	PaymentSuccessful = core.PaymentSuccessful
	PaymentFailed     = core.PaymentFailed
	PaymentError      = core.PaymentError
)

// Error predicates, re-exported for ergonomic handling at call sites.
var (
	IsUnauthorized = core.IsUnauthorized
	IsNotFound     = core.IsNotFound
	IsBadRequest   = core.IsBadRequest
	IsConflict     = core.IsConflict
	IsServerError  = core.IsServerError
	IsTransport    = core.IsTransport
	IsCanceled     = core.IsCanceled
)
