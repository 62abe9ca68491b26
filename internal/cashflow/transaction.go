package cashflow

// Type represents the direction of a transaction.
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

// Status represents the settlement state of a transaction. Only completed
// transactions count toward financial totals.
type Status string

const (
	StatusCompleted Status = "completed"
	StatusPending   Status = "pending"
	StatusCancelled Status = "cancelled"
)

// Transaction is one cash-flow entry. The JSON shape is the persisted
// snapshot format.
type Transaction struct {
	ID            int    `json:"id"`
	Type          Type   `json:"type"`
	Description   string `json:"description"`
	Amount        int64  `json:"amount"` // Amount in cents
	Date          string `json:"date"`   // Calendar date, YYYY-MM-DD
	Category      string `json:"category"`
	Recurring     bool   `json:"recurring"`
	PaymentMethod string `json:"paymentMethod,omitempty"`
	Status        Status `json:"status"`
}

func (t Transaction) EntityID() int { return t.ID }

// Category is a suggested label for one transaction type. The lists are
// suggestions only; the category field itself is free text.
type Category struct {
	ID   string
	Name string
}

var IncomeCategories = []Category{
	{ID: "services", Name: "Serviços"},
	{ID: "consulting", Name: "Consultoria"},
	{ID: "projects", Name: "Projetos"},
	{ID: "maintenance", Name: "Manutenção"},
	{ID: "income-other", Name: "Outros"},
}

var ExpenseCategories = []Category{
	{ID: "marketing", Name: "Marketing"},
	{ID: "infrastructure", Name: "Infraestrutura"},
	{ID: "personnel", Name: "Pessoal"},
	{ID: "software", Name: "Software"},
	{ID: "hardware", Name: "Hardware"},
	{ID: "office", Name: "Escritório"},
	{ID: "expense-other", Name: "Outros"},
}

// CategoriesFor returns the suggestion list for a transaction type.
func CategoriesFor(t Type) []Category {
	if t == TypeExpense {
		return ExpenseCategories
	}

	return IncomeCategories
}

var PaymentMethods = []string{"Dinheiro", "Cartão", "Transferência", "Pix", "Boleto"}
