package models

import "github.com/holiman/uint256"

// Quote is an indicative conversion of Amount at the exchanger's rate.
type Quote struct {
	From         string
	To           string
	Rate         float32
	Amount       *uint256.Int
	TargetAmount *uint256.Int
}
