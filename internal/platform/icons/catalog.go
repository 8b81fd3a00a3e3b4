package icons

// ID is a stable icon identifier.
type ID string

const (
	Generic    ID = "generic"
	Dashboard  ID = "dashboard"
	Deposit    ID = "deposit"
	Withdrawal ID = "withdrawal"
	KYC        ID = "kyc"
	Users      ID = "users"
	Coins      ID = "coins"
	Bank       ID = "bank"
	Journal    ID = "journal"
	Approve    ID = "approve"
	Reject     ID = "reject"
	Edit       ID = "edit"
	Delete     ID = "delete"
	Toggle     ID = "toggle"
	Language   ID = "language"
	Menu       ID = "menu"
	Retry      ID = "retry"
)

// Definition describes one icon entry.
type Definition struct {
	ID          ID
	Name        string
	Description string
}

var catalog = []Definition{
	{ID: Generic, Name: "Generic", Description: "Fallback for unknown identifiers."},
	{ID: Dashboard, Name: "Dashboard", Description: "Overview and pending counts."},
	{ID: Deposit, Name: "Deposit", Description: "Incoming funds awaiting review."},
	{ID: Withdrawal, Name: "Withdrawal", Description: "Outgoing funds awaiting review."},
	{ID: KYC, Name: "KYC", Description: "Identity verification requests."},
	{ID: Users, Name: "Users", Description: "Registered platform users."},
	{ID: Coins, Name: "Coins", Description: "Coin values and manual credits."},
	{ID: Bank, Name: "Bank", Description: "Operator bank accounts."},
	{ID: Journal, Name: "Journal", Description: "Recorded operator decisions."},
	{ID: Approve, Name: "Approve", Description: "Accept a pending request."},
	{ID: Reject, Name: "Reject", Description: "Decline a pending request."},
	{ID: Edit, Name: "Edit", Description: "Change an existing record."},
	{ID: Delete, Name: "Delete", Description: "Remove a record."},
	{ID: Toggle, Name: "Toggle", Description: "Switch a record on or off."},
	{ID: Language, Name: "Language", Description: "Interface language selection."},
	{ID: Menu, Name: "Menu", Description: "Open the navigation drawer."},
	{ID: Retry, Name: "Retry", Description: "Repeat a failed request."},
}

// Catalog returns every icon definition in declaration order.
func Catalog() []Definition {
	return append([]Definition(nil), catalog...)
}

// Lookup returns the definition for id.
func Lookup(id ID) (Definition, bool) {
	for _, definition := range catalog {
		if definition.ID == id {
			return definition, true
		}
	}
	return Definition{}, false
}
