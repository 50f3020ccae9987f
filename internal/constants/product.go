package constants

// Product types
const (
	ProductTypeAirFilter          = "air_filter"
	ProductTypeWaterFilter        = "water_filter"
	ProductTypeRefrigeratorFilter = "refrigerator_filter"
	ProductTypeHumidifierFilter   = "humidifier_filter"
	ProductTypePoolFilter         = "pool_filter"
	ProductTypeGiftCard           = "gift_card"
	ProductTypeAccessory          = "accessory"
	ProductTypeOther              = "other"
)

// Discount kinds
const (
	DiscountKindPercentage  = "percentage"
	DiscountKindFixedAmount = "fixed_amount"
)

// Discount targets
const (
	DiscountTargetGlobal      = "global"
	DiscountTargetProduct     = "product"
	DiscountTargetCategory    = "category"
	DiscountTargetProductType = "product_type"
)

// Discount rule statuses
const (
	DiscountStatusActive   = "active"
	DiscountStatusInactive = "inactive"
	DiscountStatusUsed     = "used"
)

// Verification types eligible for identity-verified discounts
const (
	VerificationTypeMilitary  = "military"
	VerificationTypeResponder = "responder"
	VerificationTypeTeacher   = "teacher"
	VerificationTypeEmployee  = "employee"
)
