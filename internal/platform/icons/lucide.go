package icons

var lucideIconNames = map[ID]string{
	Generic:    "sparkle",
	Dashboard:  "layout-dashboard",
	Deposit:    "arrow-down-to-line",
	Withdrawal: "arrow-up-from-line",
	KYC:        "id-card",
	Users:      "users",
	Coins:      "coins",
	Bank:       "landmark",
	Journal:    "scroll-text",
	Approve:    "check",
	Reject:     "x",
	Edit:       "pencil",
	Delete:     "trash-2",
	Toggle:     "power",
	Language:   "languages",
	Menu:       "menu",
	Retry:      "rotate-cw",
}

// LucideName returns the Lucide icon name for id.
func LucideName(id ID) (string, bool) {
	name, ok := lucideIconNames[id]
	return name, ok
}

// LucideNameOrDefault returns the Lucide name for id, or the generic icon.
func LucideNameOrDefault(id ID) string {
	if name, ok := lucideIconNames[id]; ok {
		return name
	}
	return lucideIconNames[Generic]
}
