package domain

type KYCStatusType string

const (
	KYCStatusPending       KYCStatusType = "pending"
	KYCStatusValidated     KYCStatusType = "validated"
	KYCStatusNotRegistered KYCStatusType = "not_registered"
)

type TransactionType string

const (
	TransactionCredit TransactionType = "credit"
	TransactionDebit  TransactionType = "debit"
)

type OrderType string

const (
	OrderTypeBuy  OrderType = "buy"
	OrderTypeSell OrderType = "sell"
)

type OrderStatusType string

// Orders execute synchronously, there is no pending or cancelled path.
const (
	OrderStatusExecuted OrderStatusType = "executed"
)
