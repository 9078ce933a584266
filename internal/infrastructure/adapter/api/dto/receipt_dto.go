package dto

// ReceiptRequest represents the POST /api/enviar-comprobante body.
type ReceiptRequest struct {
	ToEmail  string `json:"to_email"`
	Subject  string `json:"subject"`
	HTMLBody string `json:"htmlBody"`
}
