package entity

// TransferTimeLayout is the fixed-precision timestamp format accepted and
// emitted by the transfer procedure.
const TransferTimeLayout = "2006-01-02 15:04:05"

// TransferRecord is the immutable result of one executed transfer. A record
// exists if and only if the origin instrument was debited by exactly
// DebitedTotal = Amount + Fee.
type TransferRecord struct {
	ChargeID      uint64  `json:"charge_id" gorm:"column:charge_id"`
	Amount        float64 `json:"amount" gorm:"column:amount"`
	Fee           float64 `json:"fee" gorm:"column:fee"`
	DebitedTotal  float64 `json:"debited_total" gorm:"column:debited_total"`
	NewBalance    float64 `json:"new_balance" gorm:"column:new_balance"`
	TransactionAt string  `json:"transaction_at" gorm:"column:transaction_at"`
}
