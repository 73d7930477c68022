package store

import (
	"github.com/astro-web3/ledger-authz/internal/domain/ledger"
)

// Sample data set: two account holders with three accounts each and one
// transfer per creditor side.
const (
	SampleOwnerA = "469863216813"
	SampleOwnerB = "467745863242"
)

func SampleAccounts() []ledger.Account {
	return []ledger.Account{
		{ID: "1", IBAN: "DE02120300000000202051", OwnerID: SampleOwnerA, Currency: "EUR", Balance: 120050},
		{ID: "2", IBAN: "DE02500105170137075030", OwnerID: SampleOwnerA, Currency: "EUR", Balance: 534200},
		{ID: "3", IBAN: "DE02100500000054540402", OwnerID: SampleOwnerA, Currency: "EUR", Balance: 9900},
		{ID: "4", IBAN: "DE02300209000106531065", OwnerID: SampleOwnerB, Currency: "EUR", Balance: 78010},
		{ID: "5", IBAN: "DE02200505501015871393", OwnerID: SampleOwnerB, Currency: "EUR", Balance: 250000},
		{ID: "6", IBAN: "DE02600501010002034304", OwnerID: SampleOwnerB, Currency: "EUR", Balance: 43275},
	}
}

func SampleTransfers() []ledger.Transfer {
	accounts := SampleAccounts()
	return []ledger.Transfer{
		{
			ID:       "t-1",
			Amount:   15000,
			Currency: "EUR",
			Date:     "2026-03-14",
			Creditor: accounts[0], // owned by SampleOwnerA
			Debitor:  accounts[3],
		},
		{
			ID:       "t-2",
			Amount:   8200,
			Currency: "EUR",
			Date:     "2026-03-21",
			Creditor: accounts[4], // owned by SampleOwnerB
			Debitor:  accounts[1],
		},
	}
}

// NewSampleMemory returns an in-memory repository seeded with the sample set.
func NewSampleMemory() *Memory {
	return NewMemory(SampleAccounts(), SampleTransfers())
}
