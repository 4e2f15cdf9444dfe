package constants

// Vai trò nhân sự, quyền bao trùm theo thứ tự owner > manager > staff > housekeeping
const (
	ROLE_OWNER        = "owner"
	ROLE_MANAGER      = "manager"
	ROLE_STAFF        = "staff"
	ROLE_HOUSEKEEPING = "housekeeping"
)

// Trạng thái phòng
const (
	ROOM_AVAILABLE   = "available"
	ROOM_OCCUPIED    = "occupied"
	ROOM_CLEANING    = "cleaning"
	ROOM_MAINTENANCE = "maintenance"
	ROOM_BLOCKED     = "blocked"
)

// Trạng thái đặt phòng
const (
	BOOKING_PENDING     = "pending"
	BOOKING_CONFIRMED   = "confirmed"
	BOOKING_CHECKED_IN  = "checked_in"
	BOOKING_CHECKED_OUT = "checked_out"
	BOOKING_CANCELLED   = "cancelled"
	BOOKING_NO_SHOW     = "no_show"
)

const (
	BOOKING_TYPE_OVERNIGHT = "overnight"
	BOOKING_TYPE_HOURLY    = "hourly"
)

// Loại giấy tờ tuỳ thân
const (
	ID_TYPE_CCCD     = "cccd"
	ID_TYPE_PASSPORT = "passport"
	ID_TYPE_CMND     = "cmnd"
	ID_TYPE_GPLX     = "gplx"
	ID_TYPE_OTHER    = "other"
)

// Thanh toán
const (
	PAYMENT_DEPOSIT      = "deposit"
	PAYMENT_ROOM_CHARGE  = "room_charge"
	PAYMENT_EXTRA_CHARGE = "extra_charge"
	PAYMENT_REFUND       = "refund"
	PAYMENT_ADJUSTMENT   = "adjustment"

	PAYMENT_STATUS_PENDING   = "pending"
	PAYMENT_STATUS_COMPLETED = "completed"
	PAYMENT_STATUS_FAILED    = "failed"
	PAYMENT_STATUS_REFUNDED  = "refunded"
	PAYMENT_STATUS_CANCELLED = "cancelled"

	PAYMENT_METHOD_CASH          = "cash"
	PAYMENT_METHOD_BANK_TRANSFER = "bank_transfer"
	PAYMENT_METHOD_MOMO          = "momo"
	PAYMENT_METHOD_CARD          = "card"
)

// Loại mục folio
const (
	FOLIO_ROOM     = "room"
	FOLIO_MINIBAR  = "minibar"
	FOLIO_LAUNDRY  = "laundry"
	FOLIO_FOOD     = "food"
	FOLIO_SERVICE  = "service"
	FOLIO_DAMAGE   = "damage"
	FOLIO_EARLY_IN = "early_check_in"
	FOLIO_LATE_OUT = "late_check_out"
	FOLIO_OTHER    = "other"
)

// Sổ thu chi
const (
	ENTRY_INCOME  = "income"
	ENTRY_EXPENSE = "expense"
)

// Buồng phòng
const (
	TASK_PENDING     = "pending"
	TASK_IN_PROGRESS = "in_progress"
	TASK_COMPLETED   = "completed"
	TASK_VERIFIED    = "verified"

	TASK_TYPE_CHECKOUT_CLEAN = "checkout_clean"
	TASK_TYPE_DAILY_CLEAN    = "daily_clean"
	TASK_TYPE_DEEP_CLEAN     = "deep_clean"
	TASK_TYPE_TURNDOWN       = "turndown"
)

// Bảo trì
const (
	MAINTENANCE_PENDING     = "pending"
	MAINTENANCE_ASSIGNED    = "assigned"
	MAINTENANCE_IN_PROGRESS = "in_progress"
	MAINTENANCE_ON_HOLD     = "on_hold"
	MAINTENANCE_COMPLETED   = "completed"
	MAINTENANCE_CANCELLED   = "cancelled"
)

// Chốt sổ cuối ngày
const (
	AUDIT_DRAFT     = "draft"
	AUDIT_COMPLETED = "completed"
	AUDIT_CLOSED    = "closed"
)

// Tin nhắn gửi khách
const (
	MESSAGE_DRAFT   = "draft"
	MESSAGE_PENDING = "pending"
	MESSAGE_SENT    = "sent"
	MESSAGE_FAILED  = "failed"

	CHANNEL_EMAIL = "email"
	CHANNEL_SMS   = "sms"
	CHANNEL_ZALO  = "zalo"
	CHANNEL_PUSH  = "push"
)

// Đồ thất lạc
const (
	LOST_FOUND_STORED   = "stored"
	LOST_FOUND_RETURNED = "returned"
	LOST_FOUND_DISPOSED = "disposed"
)

// Thông điệp trả về cho client
const (
	ERROR_INTERNAL_ERROR     = "Lỗi hệ thống, vui lòng thử lại sau"
	MISSING_LOGIN_INPUT      = "Thiếu thông tin đăng nhập"
	INVALID_USERNAME         = "Tài khoản không tồn tại"
	INVALID_PASSWORD         = "Mật khẩu không đúng"
	ACCOUNT_NOT_ACTIVE       = "Tài khoản đã bị khoá"
	NOT_PERMISSION           = "Bạn không có quyền thực hiện thao tác này"
	DATA_INPUT_IS_NOT_NUMBER = "Tham số phải là số"
	NOT_FOUND                = "Không tìm thấy dữ liệu"
	BOOKING_NOT_FOUND        = "Không tìm thấy đặt phòng"
	ROOM_NOT_FOUND           = "Không tìm thấy phòng"
	GUEST_NOT_FOUND          = "Không tìm thấy khách"
	BOOKING_OVERLAP          = "Phòng đã có khách trong khoảng ngày này"
	ILLEGAL_TRANSITION       = "Chuyển trạng thái không hợp lệ"
	DUPLICATE_ID_NUMBER      = "Số giấy tờ đã tồn tại trong hệ thống"
	DUPLICATE_PHONE          = "Số điện thoại đã tồn tại"
	AUDIT_CLOSED_IMMUTABLE   = "Sổ đã chốt, không thể thay đổi"
	NO_DEFAULT_INCOME        = "Chưa cấu hình danh mục thu mặc định"
	VALIDATION_FAILED        = "Dữ liệu không hợp lệ"
)
