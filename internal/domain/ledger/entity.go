package ledger

// Account is a leaf record owned directly by its holder.
type Account struct {
	ID       string `json:"id"`
	IBAN     string `json:"iban"`
	OwnerID  string `json:"ownerId"`
	Currency string `json:"currency"`
	Balance  int64  `json:"balance"`
}

// OwnedBy returns the subject allowed to see this account.
func (a Account) OwnedBy() string {
	return a.OwnerID
}

// Transfer is a composite record embedding two account legs.
type Transfer struct {
	ID       string  `json:"id"`
	Amount   int64   `json:"amount"`
	Currency string  `json:"currency"`
	Date     string  `json:"date"`
	Creditor Account `json:"creditor"`
	Debitor  Account `json:"debitor"`
}

// OwnedBy returns the subject allowed to see this transfer.
//
// Visibility policy: only creditor-side ownership implies inclusion. The
// debitor leg is never consulted, so the sending side does not see the
// transfer in its result set.
func (t Transfer) OwnedBy() string {
	return t.Creditor.OwnerID
}
