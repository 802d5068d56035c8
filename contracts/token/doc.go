/*
Package token implements Roto token contract.

Roto token is a NEP-17 compatible ledger of ROTO units with 18 decimals. The
whole supply of 21 000 000 ROTO is minted once on deployment to the contract's
own account, the treasury. The treasury serves as the distribution source for
the owner (see TransferFromContract) and as escrow for units staked through
the manager contract.

Stake methods (CanStake, StakeRoto, ReleaseRoto, DestroyRoto, RewardRoto) can
be invoked only by the manager contract registered once with
SetManagerContract.

# Contract notifications

Transfer notification. This is a NEP-17 standard notification. It is produced
on every balance movement, including mint of the initial supply (with null
from), stakes (to the treasury) and releases or rewards (from the treasury).

	Transfer:
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer

Approval notification. This notification is produced when owner changes
allowance of the spender.

	Approval:
	  - name: owner
	    type: Hash160
	  - name: spender
	    type: Hash160
	  - name: amount
	    type: Integer

ManagerSet notification. This notification is produced once, when the
manager contract is registered.

	ManagerSet:
	  - name: manager
	    type: Hash160

Destroyed notification. This notification is produced when a staked amount
is forfeited. Forfeited units stay in the treasury.

	Destroyed:
	  - name: staker
	    type: Hash160
	  - name: amount
	    type: Integer
*/
package token

/*
Contract storage model.

# Summary
Key-value storage format:
  - 'o' -> interop.Hash160
    contract owner, the sender of deployment transaction
  - 'm' -> interop.Hash160
    manager contract, absent until registered
  - 's' -> int
    total supply
  - 'a'<interop.Hash160> -> int
    balance of the account, zero balances are not stored
  - 'l'<owner interop.Hash160><spender interop.Hash160> -> int
    allowance of the spender
*/
