package dto

// TransferRequest represents the POST /transaction body. Amount stays a
// raw JSON number; the use case rejects anything not strictly positive.
type TransferRequest struct {
	OriginCardID          uint64  `json:"origin_card_id"`
	BeneficiaryName       string  `json:"beneficiary_name"`
	BeneficiaryAccountRef string  `json:"beneficiary_account_ref"`
	BeneficiaryBank       string  `json:"beneficiary_bank"`
	Amount                float64 `json:"amount"`
	Concept               string  `json:"concept"`
	TransactionAt         string  `json:"transaction_at"`
}
