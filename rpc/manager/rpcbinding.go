// Package manager contains RPC wrappers for Roto tournament manager contract.
package manager

import (
	"errors"
	"fmt"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"math/big"
)

// ManagerTournament is a contract-specific manager.Tournament type used by its methods.
type ManagerTournament struct {
	EtherPrize *big.Int
	RotoPrize *big.Int
	Pool *big.Int
	Staked *big.Int
}

// TokenChangedEvent represents "TokenChanged" event emitted by the contract.
type TokenChangedEvent struct {
	Token util.Uint160
}

// TournamentCreatedEvent represents "TournamentCreated" event emitted by the contract.
type TournamentCreatedEvent struct {
	TournamentID util.Uint256
	EtherPrize *big.Int
	RotoPrize *big.Int
}

// TournamentFundedEvent represents "TournamentFunded" event emitted by the contract.
type TournamentFundedEvent struct {
	TournamentID util.Uint256
	Amount *big.Int
}

// StakeProcessedEvent represents "StakeProcessed" event emitted by the contract.
type StakeProcessedEvent struct {
	TournamentID util.Uint256
	Staker util.Uint160
	TotalAmountStaked *big.Int
}

// StakeReleasedEvent represents "StakeReleased" event emitted by the contract.
type StakeReleasedEvent struct {
	TournamentID util.Uint256
	StakerAddress util.Uint160
	EtherReward *big.Int
	RotoStaked *big.Int
}

// StakeDestroyedEvent represents "StakeDestroyed" event emitted by the contract.
type StakeDestroyedEvent struct {
	TournamentID util.Uint256
	StakerAddress util.Uint160
	RotoLost *big.Int
}

// SubmissionRewardedEvent represents "SubmissionRewarded" event emitted by the contract.
type SubmissionRewardedEvent struct {
	TournamentID util.Uint256
	StakerAddress util.Uint160
	RotoReward *big.Int
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// GetToken invokes `getToken` method of contract.
func (c *ContractReader) GetToken() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "getToken"))
}

// GetTournament invokes `getTournament` method of contract.
func (c *ContractReader) GetTournament(id util.Uint256) (*ManagerTournament, error) {
	return itemToManagerTournament(unwrap.Item(c.invoker.Call(c.hash, "getTournament", id)))
}

// Owner invokes `owner` method of contract.
func (c *ContractReader) Owner() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "owner"))
}

// StakeOf invokes `stakeOf` method of contract.
func (c *ContractReader) StakeOf(tournamentID util.Uint256, staker util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "stakeOf", tournamentID, staker))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// CreateTournament creates a transaction invoking `createTournament` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) CreateTournament(id util.Uint256, etherPrize *big.Int, rotoPrize *big.Int, attached *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "createTournament", id, etherPrize, rotoPrize, attached)
}

// CreateTournamentTransaction creates a transaction invoking `createTournament` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CreateTournamentTransaction(id util.Uint256, etherPrize *big.Int, rotoPrize *big.Int, attached *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "createTournament", id, etherPrize, rotoPrize, attached)
}

// CreateTournamentUnsigned creates a transaction invoking `createTournament` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CreateTournamentUnsigned(id util.Uint256, etherPrize *big.Int, rotoPrize *big.Int, attached *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "createTournament", nil, id, etherPrize, rotoPrize, attached)
}

// DestroyRoto creates a transaction invoking `destroyRoto` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) DestroyRoto(staker util.Uint160, tournamentID util.Uint256) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "destroyRoto", staker, tournamentID)
}

// DestroyRotoTransaction creates a transaction invoking `destroyRoto` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) DestroyRotoTransaction(staker util.Uint160, tournamentID util.Uint256) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "destroyRoto", staker, tournamentID)
}

// DestroyRotoUnsigned creates a transaction invoking `destroyRoto` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) DestroyRotoUnsigned(staker util.Uint160, tournamentID util.Uint256) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "destroyRoto", nil, staker, tournamentID)
}

// ReleaseRoto creates a transaction invoking `releaseRoto` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ReleaseRoto(staker util.Uint160, tournamentID util.Uint256, etherReward *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "releaseRoto", staker, tournamentID, etherReward)
}

// ReleaseRotoTransaction creates a transaction invoking `releaseRoto` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ReleaseRotoTransaction(staker util.Uint160, tournamentID util.Uint256, etherReward *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "releaseRoto", staker, tournamentID, etherReward)
}

// ReleaseRotoUnsigned creates a transaction invoking `releaseRoto` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ReleaseRotoUnsigned(staker util.Uint160, tournamentID util.Uint256, etherReward *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "releaseRoto", nil, staker, tournamentID, etherReward)
}

// RewardRoto creates a transaction invoking `rewardRoto` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RewardRoto(recipient util.Uint160, tournamentID util.Uint256, amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "rewardRoto", recipient, tournamentID, amount)
}

// RewardRotoTransaction creates a transaction invoking `rewardRoto` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RewardRotoTransaction(recipient util.Uint160, tournamentID util.Uint256, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "rewardRoto", recipient, tournamentID, amount)
}

// RewardRotoUnsigned creates a transaction invoking `rewardRoto` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RewardRotoUnsigned(recipient util.Uint160, tournamentID util.Uint256, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "rewardRoto", nil, recipient, tournamentID, amount)
}

// SetTokenContract creates a transaction invoking `setTokenContract` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetTokenContract(token util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setTokenContract", token)
}

// SetTokenContractTransaction creates a transaction invoking `setTokenContract` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetTokenContractTransaction(token util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setTokenContract", token)
}

// SetTokenContractUnsigned creates a transaction invoking `setTokenContract` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetTokenContractUnsigned(token util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setTokenContract", nil, token)
}

// Stake creates a transaction invoking `stake` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Stake(staker util.Uint160, amount *big.Int, tournamentID util.Uint256) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "stake", staker, amount, tournamentID)
}

// StakeTransaction creates a transaction invoking `stake` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) StakeTransaction(staker util.Uint160, amount *big.Int, tournamentID util.Uint256) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "stake", staker, amount, tournamentID)
}

// StakeUnsigned creates a transaction invoking `stake` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) StakeUnsigned(staker util.Uint160, amount *big.Int, tournamentID util.Uint256) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "stake", nil, staker, amount, tournamentID)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(nefFile []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", nefFile, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(nefFile []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", nefFile, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(nefFile []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, nefFile, manifest, data)
}

// itemToManagerTournament converts stack item into *ManagerTournament.
func itemToManagerTournament(item stackitem.Item, err error) (*ManagerTournament, error) {
	if err != nil {
		return nil, err
	}
	var res = new(ManagerTournament)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of ManagerTournament from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *ManagerTournament) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.EtherPrize, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field EtherPrize: %w", err)
	}

	index++
	res.RotoPrize, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field RotoPrize: %w", err)
	}

	index++
	res.Pool, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Pool: %w", err)
	}

	index++
	res.Staked, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Staked: %w", err)
	}

	return nil
}

// TokenChangedEventsFromApplicationLog retrieves a set of all emitted events
// with "TokenChanged" name from the provided [result.ApplicationLog].
func TokenChangedEventsFromApplicationLog(log *result.ApplicationLog) ([]*TokenChangedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*TokenChangedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "TokenChanged" {
				continue
			}
			event := new(TokenChangedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize TokenChangedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to TokenChangedEvent or
// returns an error if it's not possible to do to so.
func (e *TokenChangedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 1 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Token, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Token: %w", err)
	}

	return nil
}

// TournamentCreatedEventsFromApplicationLog retrieves a set of all emitted events
// with "TournamentCreated" name from the provided [result.ApplicationLog].
func TournamentCreatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*TournamentCreatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*TournamentCreatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "TournamentCreated" {
				continue
			}
			event := new(TournamentCreatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize TournamentCreatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to TournamentCreatedEvent or
// returns an error if it's not possible to do to so.
func (e *TournamentCreatedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.TournamentID, err = func (item stackitem.Item) (util.Uint256, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint256{}, err
		}
		u, err := util.Uint256DecodeBytesBE(b)
		if err != nil {
			return util.Uint256{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field TournamentID: %w", err)
	}

	index++
	e.EtherPrize, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field EtherPrize: %w", err)
	}

	index++
	e.RotoPrize, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field RotoPrize: %w", err)
	}

	return nil
}

// TournamentFundedEventsFromApplicationLog retrieves a set of all emitted events
// with "TournamentFunded" name from the provided [result.ApplicationLog].
func TournamentFundedEventsFromApplicationLog(log *result.ApplicationLog) ([]*TournamentFundedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*TournamentFundedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "TournamentFunded" {
				continue
			}
			event := new(TournamentFundedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize TournamentFundedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to TournamentFundedEvent or
// returns an error if it's not possible to do to so.
func (e *TournamentFundedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.TournamentID, err = func (item stackitem.Item) (util.Uint256, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint256{}, err
		}
		u, err := util.Uint256DecodeBytesBE(b)
		if err != nil {
			return util.Uint256{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field TournamentID: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// StakeProcessedEventsFromApplicationLog retrieves a set of all emitted events
// with "StakeProcessed" name from the provided [result.ApplicationLog].
func StakeProcessedEventsFromApplicationLog(log *result.ApplicationLog) ([]*StakeProcessedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*StakeProcessedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "StakeProcessed" {
				continue
			}
			event := new(StakeProcessedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize StakeProcessedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to StakeProcessedEvent or
// returns an error if it's not possible to do to so.
func (e *StakeProcessedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.TournamentID, err = func (item stackitem.Item) (util.Uint256, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint256{}, err
		}
		u, err := util.Uint256DecodeBytesBE(b)
		if err != nil {
			return util.Uint256{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field TournamentID: %w", err)
	}

	index++
	e.Staker, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Staker: %w", err)
	}

	index++
	e.TotalAmountStaked, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field TotalAmountStaked: %w", err)
	}

	return nil
}

// StakeReleasedEventsFromApplicationLog retrieves a set of all emitted events
// with "StakeReleased" name from the provided [result.ApplicationLog].
func StakeReleasedEventsFromApplicationLog(log *result.ApplicationLog) ([]*StakeReleasedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*StakeReleasedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "StakeReleased" {
				continue
			}
			event := new(StakeReleasedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize StakeReleasedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to StakeReleasedEvent or
// returns an error if it's not possible to do to so.
func (e *StakeReleasedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.TournamentID, err = func (item stackitem.Item) (util.Uint256, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint256{}, err
		}
		u, err := util.Uint256DecodeBytesBE(b)
		if err != nil {
			return util.Uint256{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field TournamentID: %w", err)
	}

	index++
	e.StakerAddress, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field StakerAddress: %w", err)
	}

	index++
	e.EtherReward, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field EtherReward: %w", err)
	}

	index++
	e.RotoStaked, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field RotoStaked: %w", err)
	}

	return nil
}

// StakeDestroyedEventsFromApplicationLog retrieves a set of all emitted events
// with "StakeDestroyed" name from the provided [result.ApplicationLog].
func StakeDestroyedEventsFromApplicationLog(log *result.ApplicationLog) ([]*StakeDestroyedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*StakeDestroyedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "StakeDestroyed" {
				continue
			}
			event := new(StakeDestroyedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize StakeDestroyedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to StakeDestroyedEvent or
// returns an error if it's not possible to do to so.
func (e *StakeDestroyedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.TournamentID, err = func (item stackitem.Item) (util.Uint256, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint256{}, err
		}
		u, err := util.Uint256DecodeBytesBE(b)
		if err != nil {
			return util.Uint256{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field TournamentID: %w", err)
	}

	index++
	e.StakerAddress, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field StakerAddress: %w", err)
	}

	index++
	e.RotoLost, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field RotoLost: %w", err)
	}

	return nil
}

// SubmissionRewardedEventsFromApplicationLog retrieves a set of all emitted events
// with "SubmissionRewarded" name from the provided [result.ApplicationLog].
func SubmissionRewardedEventsFromApplicationLog(log *result.ApplicationLog) ([]*SubmissionRewardedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*SubmissionRewardedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "SubmissionRewarded" {
				continue
			}
			event := new(SubmissionRewardedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize SubmissionRewardedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to SubmissionRewardedEvent or
// returns an error if it's not possible to do to so.
func (e *SubmissionRewardedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.TournamentID, err = func (item stackitem.Item) (util.Uint256, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint256{}, err
		}
		u, err := util.Uint256DecodeBytesBE(b)
		if err != nil {
			return util.Uint256{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field TournamentID: %w", err)
	}

	index++
	e.StakerAddress, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field StakerAddress: %w", err)
	}

	index++
	e.RotoReward, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field RotoReward: %w", err)
	}

	return nil
}
