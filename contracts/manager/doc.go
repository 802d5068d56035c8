/*
Package manager implements Roto manager contract.

Manager contract coordinates tournament staking. Users stake ROTO against a
tournament, the contract owner later resolves each stake by releasing it
(optionally paying GAS from the tournament prize pool) or by destroying it.
Unstaked submissions can be rewarded with ROTO directly.

ROTO never leaves the token contract: manager calls the token contract's stake
methods, which the token accepts only from the manager registered there. GAS
prize pools are held by the manager contract account itself.

# Funding tournaments

A pool is funded either by GAS attached to CreateTournament or by NEP-17 GAS
transfers to the contract with the tournament ID as data. Attached GAS is
pulled from the owner account by the GAS contract, so the owner must sign
with Global scope or with CalledByEntry scope plus GAS in CustomContracts.
Under plain CalledByEntry the pull fails and CreateTournament aborts with
"attached GAS transfer failed"; create the tournament with zero attached GAS
and fund it by transfer instead.

# Contract notifications

TokenChanged notification. This notification is produced once, when the
token contract is registered.

	TokenChanged:
	  - name: token
	    type: Hash160

TournamentCreated notification. This notification is produced when the owner
creates a tournament.

	TournamentCreated:
	  - name: tournamentID
	    type: Hash256
	  - name: etherPrize
	    type: Integer
	  - name: rotoPrize
	    type: Integer

TournamentFunded notification. This notification is produced when GAS is
transferred to the contract with tournament ID as data.

	TournamentFunded:
	  - name: tournamentID
	    type: Hash256
	  - name: amount
	    type: Integer

StakeProcessed notification. This notification is produced on every stake,
totalAmountStaked is the accumulated stake of the staker in the tournament.

	StakeProcessed:
	  - name: tournamentID
	    type: Hash256
	  - name: staker
	    type: Hash160
	  - name: totalAmountStaked
	    type: Integer

StakeReleased notification. This notification is produced when the stake is
returned to the staker.

	StakeReleased:
	  - name: tournamentID
	    type: Hash256
	  - name: stakerAddress
	    type: Hash160
	  - name: etherReward
	    type: Integer
	  - name: rotoStaked
	    type: Integer

StakeDestroyed notification. This notification is produced when the stake is
forfeited.

	StakeDestroyed:
	  - name: tournamentID
	    type: Hash256
	  - name: stakerAddress
	    type: Hash160
	  - name: rotoLost
	    type: Integer

SubmissionRewarded notification. This notification is produced when an
unstaked submission is rewarded.

	SubmissionRewarded:
	  - name: tournamentID
	    type: Hash256
	  - name: stakerAddress
	    type: Hash160
	  - name: rotoReward
	    type: Integer
*/
package manager

/*
Contract storage model.

# Summary
Key-value storage format:
  - 'o' -> interop.Hash160
    contract owner, the sender of deployment transaction
  - 't' -> interop.Hash160
    token contract, absent until registered
  - 'f' -> bool
    strict funding flag, attached GAS must cover declared GAS prize
  - 'p' -> int
    GAS amount of the pull in progress, exists only inside CreateTournament
  - 'T'<interop.Hash256> -> std.Serialize(Tournament)
    tournament escrow state (here Tournament is a structure defined in current package)
  - 'S'<interop.Hash256><interop.Hash160> -> int
    active stake of the account in the tournament

# Resolution
Stake records are removed on release or destroy. Tournament records are never
removed.
*/
