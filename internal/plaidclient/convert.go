package plaidclient

import (
	"github.com/plaid/plaid-go/v20/plaid"

	"github.com/carson-networks/finance-inspector/internal/analytics"
)

func fromPlaidTransaction(t plaid.Transaction) analytics.Transaction {
	amount := t.GetAmount()
	authorizedDate, _ := t.GetAuthorizedDateOk()
	merchantName, _ := t.GetMerchantNameOk()

	var category *string
	if pfc, ok := t.GetPersonalFinanceCategoryOk(); ok && pfc != nil {
		category = &pfc.Primary
	}

	return newTransaction(&amount, authorizedDate, merchantName, category)
}

func newTransaction(amount *float64, authorizedDate, merchantName, category *string) analytics.Transaction {
	return analytics.Transaction{
		Amount:         analytics.OptionalAmount(amount),
		AuthorizedDate: analytics.OptionalDate(authorizedDate),
		MerchantName:   analytics.OptionalString(merchantName),
		Category:       analytics.OptionalString(category),
	}
}

func fromPlaidAccount(a plaid.AccountBase) analytics.Account {
	name := a.GetName()
	mask, _ := a.GetMaskOk()
	balances := a.GetBalances()
	available, _ := balances.GetAvailableOk()
	current, _ := balances.GetCurrentOk()

	return newAccount(&name, mask, available, current)
}

func newAccount(name, mask *string, available, current *float64) analytics.Account {
	return analytics.Account{
		Name:      analytics.OptionalString(name),
		Mask:      analytics.OptionalString(mask),
		Available: analytics.OptionalAmount(available),
		Current:   analytics.OptionalAmount(current),
	}
}
