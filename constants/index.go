package constants

// Roles carried in the "role" claim of the access token.
const (
	ROLE_ADMIN    = "admin"
	ROLE_STAFF    = "staff"
	ROLE_EMPLOYEE = "employee"
)

const (
	BOOKING_STATUS_PENDING   = "pending"
	BOOKING_STATUS_CONFIRMED = "confirmed"
	BOOKING_STATUS_COMPLETED = "completed"
	BOOKING_STATUS_CANCELLED = "cancelled"
)

// Booking statuses that count as a sold seat.
var SOLD_BOOKING_STATUSES = []string{BOOKING_STATUS_CONFIRMED, BOOKING_STATUS_COMPLETED}

const (
	PAYMENT_STATUS_PENDING  = "pending"
	PAYMENT_STATUS_PAID     = "paid"
	PAYMENT_STATUS_REFUNDED = "refunded"
)

const (
	MOVIE_STATUS_ACTIVE   = "active"
	MOVIE_STATUS_INACTIVE = "inactive"
)

// Response messages
const (
	MISSING_TOKEN          = "Missing token"
	INVALID_TOKEN          = "Invalid token"
	ACCOUNT_NOT_PERMISSION = "Account does not have permission"
	ERROR_INTERNAL_ERROR   = "Internal server error"
	ERROR_DATABASE_DOWN    = "Database unavailable"

	ERROR_GET_DASHBOARD_STATISTICS = "Failed to get dashboard statistics"
	ERROR_GET_REVENUE_SUMMARY      = "Failed to get revenue summary"
	ERROR_GET_REVENUE_BY_MOVIE     = "Failed to get revenue by movie"
	ERROR_GET_TICKETS_SUMMARY      = "Failed to get tickets sold summary"
	ERROR_GET_OCCUPANCY_RATE       = "Failed to get occupancy rate"
)
