package common

// Fault messages shared by Roto contracts. Every failed invocation is
// aborted with exactly one of them.
const (
	// ErrUnauthorized appears when the caller is neither the required
	// account nor the trusted contract.
	ErrUnauthorized = "unauthorized"
	// ErrAlreadySet appears when one-time configuration is invoked again.
	ErrAlreadySet = "already set"

	ErrInsufficientBalance       = "insufficient balance"
	ErrInsufficientAllowance     = "insufficient allowance"
	ErrInsufficientEscrow        = "insufficient escrow"
	ErrInsufficientAttachedFunds = "insufficient attached funds"
	// ErrAttachedFundsTransfer appears when GAS refuses to move attached
	// funds from the owner, either for lack of balance or witness scope.
	ErrAttachedFundsTransfer = "attached GAS transfer failed"

	ErrUnknownTournament   = "unknown tournament"
	ErrDuplicateTournament = "duplicate tournament"
	ErrInvalidTournamentID = "invalid tournament ID"
	ErrNoActiveStake       = "no active stake"

	ErrInvalidRecipient = "invalid recipient"
	ErrInvalidAmount    = "invalid amount"

	// ErrTokenNotSet appears when the manager is used before the token
	// contract has been registered.
	ErrTokenNotSet = "token contract is not set"
)
