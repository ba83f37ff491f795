package dto

import "github.com/shopspring/decimal"

// PeerTransferRequest moves taels from the caller to another member by name.
type PeerTransferRequest struct {
	RecipientName string          `json:"recipientName" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Reason        string          `json:"reason" binding:"max=200"`
}

// TransferResult reports a committed peer transfer.
type TransferResult struct {
	SenderBalance decimal.Decimal `json:"senderBalance"`
	RecipientName string          `json:"recipientName"`
	Amount        decimal.Decimal `json:"amount"`
	Message       string          `json:"message"`
}

// GrantCreditRequest is an administrative single-target credit.
type GrantCreditRequest struct {
	MemberID string          `json:"memberID" binding:"required,uuid"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Remark   string          `json:"remark" binding:"max=200"`
}

// DistributeStipendsRequest triggers the atomic monthly stipend run.
type DistributeStipendsRequest struct {
	Remark string `json:"remark" binding:"max=200"`
}

// StipendRunResult summarizes a committed stipend batch.
type StipendRunResult struct {
	MembersPaid int             `json:"membersPaid"`
	TotalPaid   decimal.Decimal `json:"totalPaid"`
	Message     string          `json:"message"`
}
