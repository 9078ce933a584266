package entity

// InstrumentKind names one of the three card products created at
// registration. The wire names are kept as the relational engine emits them.
type InstrumentKind string

const (
	// InstrumentPayroll is the payroll (nomina) card/account pair
	InstrumentPayroll InstrumentKind = "nomina"
	// InstrumentCredit is the credit card/account pair
	InstrumentCredit InstrumentKind = "credito"
	// InstrumentDigital is the digital card/account pair
	InstrumentDigital InstrumentKind = "digital"
)

// FinancialInstrument is a card+account pair bound to exactly one user at
// creation time. The balance lives in the relational engine and is only
// mutated by the transfer procedure.
type FinancialInstrument struct {
	CardNumber    string `json:"card_number"`
	AccountNumber string `json:"account_number"`
}
