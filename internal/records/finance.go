package records

import (
	"slices"

	"github.com/google/uuid"
)

// Finance is a single money movement: income, expense, investment or tax.
type Finance struct {
	ID            uuid.UUID       `json:"id"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Type          FinanceType     `json:"type"`
	Category      FinanceCategory `json:"category"`
	Amount        float64         `json:"amount"`
	Currency      string          `json:"currency"`
	Date          Time            `json:"date"`
	ClientName    *string         `json:"clientName,omitempty"`
	ProjectName   *string         `json:"projectName,omitempty"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	Status        PaymentStatus   `json:"status"`
	InvoiceNumber *string         `json:"invoiceNumber,omitempty"`
	TaxAmount     float64         `json:"taxAmount"`
	Notes         string          `json:"notes"`
	Tags          []string        `json:"tags"`
	CreatedDate   Time            `json:"createdDate"`
}

// NewFinance returns a pending income transaction dated now.
func NewFinance() Finance {
	now := Now()
	return Finance{
		ID:            uuid.New(),
		Type:          Income,
		Category:      FinanceShooting,
		Currency:      "USD",
		Date:          now,
		PaymentMethod: PaymentCash,
		Status:        PaymentPending,
		Tags:          []string{},
		CreatedDate:   now,
	}
}

func (f Finance) RecordID() uuid.UUID { return f.ID }

type FinanceType string

const (
	Income     FinanceType = "Income"
	Expense    FinanceType = "Expense"
	Investment FinanceType = "Investment"
	Tax        FinanceType = "Tax"
)

func FinanceTypeValues() []FinanceType {
	return []FinanceType{Income, Expense, Investment, Tax}
}

func (t FinanceType) Valid() bool { return slices.Contains(FinanceTypeValues(), t) }

func (t *FinanceType) UnmarshalText(text []byte) error {
	v, err := parseLabel("finance type", FinanceTypeValues(), text)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

type FinanceCategory string

const (
	FinanceShooting  FinanceCategory = "Shooting"
	FinanceEditing   FinanceCategory = "Editing"
	FinanceEquipment FinanceCategory = "Equipment"
	FinanceMarketing FinanceCategory = "Marketing"
	FinanceTravel    FinanceCategory = "Travel"
	FinanceStudio    FinanceCategory = "Studio"
	FinanceSoftware  FinanceCategory = "Software"
	FinanceEducation FinanceCategory = "Education"
	FinanceInsurance FinanceCategory = "Insurance"
	FinanceOffice    FinanceCategory = "Office"
	FinanceOther     FinanceCategory = "Other"
)

func FinanceCategoryValues() []FinanceCategory {
	return []FinanceCategory{
		FinanceShooting, FinanceEditing, FinanceEquipment, FinanceMarketing,
		FinanceTravel, FinanceStudio, FinanceSoftware, FinanceEducation,
		FinanceInsurance, FinanceOffice, FinanceOther,
	}
}

func (c FinanceCategory) Valid() bool { return slices.Contains(FinanceCategoryValues(), c) }

func (c *FinanceCategory) UnmarshalText(text []byte) error {
	v, err := parseLabel("finance category", FinanceCategoryValues(), text)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "Cash"
	PaymentCard   PaymentMethod = "Card"
	PaymentBank   PaymentMethod = "Bank Transfer"
	PaymentPayPal PaymentMethod = "PayPal"
	PaymentStripe PaymentMethod = "Stripe"
	PaymentCheck  PaymentMethod = "Check"
	PaymentCrypto PaymentMethod = "Cryptocurrency"
	PaymentOther  PaymentMethod = "Other"
)

func PaymentMethodValues() []PaymentMethod {
	return []PaymentMethod{
		PaymentCash, PaymentCard, PaymentBank, PaymentPayPal,
		PaymentStripe, PaymentCheck, PaymentCrypto, PaymentOther,
	}
}

func (m PaymentMethod) Valid() bool { return slices.Contains(PaymentMethodValues(), m) }

func (m *PaymentMethod) UnmarshalText(text []byte) error {
	v, err := parseLabel("payment method", PaymentMethodValues(), text)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "Pending"
	PaymentPaid      PaymentStatus = "Paid"
	PaymentOverdue   PaymentStatus = "Overdue"
	PaymentCancelled PaymentStatus = "Cancelled"
	PaymentRefunded  PaymentStatus = "Refunded"
)

func PaymentStatusValues() []PaymentStatus {
	return []PaymentStatus{PaymentPending, PaymentPaid, PaymentOverdue, PaymentCancelled, PaymentRefunded}
}

func (s PaymentStatus) Valid() bool { return slices.Contains(PaymentStatusValues(), s) }

func (s *PaymentStatus) UnmarshalText(text []byte) error {
	v, err := parseLabel("payment status", PaymentStatusValues(), text)
	if err != nil {
		return err
	}
	*s = v
	return nil
}
